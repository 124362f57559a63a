package repository

import "time"

// Setting represents a settings row.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
