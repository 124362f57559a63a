// Package profile holds the durable user record written at the end of
// onboarding and the store contract that persists it.
package profile

import "context"

// Settings keys.
const (
	KeyName     = "name"
	KeyAge      = "age"
	KeyGender   = "gender"
	KeySignedIn = "signed_in"
)

// Profile is the committed user record. The pointer fields are nil when the
// key is absent from the store.
type Profile struct {
	Name     *string `toml:"name,omitempty" yaml:"name"`
	Age      *int    `toml:"age,omitempty" yaml:"age"`
	Gender   *string `toml:"gender,omitempty" yaml:"gender"`
	SignedIn bool    `toml:"signed_in" yaml:"signed_in"`
}

// Complete reports whether every field is present.
func (p Profile) Complete() bool {
	return p.Name != nil && p.Age != nil && p.Gender != nil
}

// Store persists a single profile.
type Store interface {
	// Read returns the current stored profile.
	Read(ctx context.Context) (Profile, error)
	// WriteProfile stores the three fields and sets signed_in as one unit.
	WriteProfile(ctx context.Context, name string, age int, gender string) error
	// ClearProfile removes the three fields and clears signed_in as one unit.
	ClearProfile(ctx context.Context) error
}
