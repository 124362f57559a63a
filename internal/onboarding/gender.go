package onboarding

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Gender is a picker value.
type Gender string

const (
	Male      Gender = "Male"
	Female    Gender = "Female"
	NonBinary Gender = "Non-Binary"
)

// Genders returns the picker options in display order.
func Genders() []Gender {
	return []Gender{Male, Female, NonBinary}
}

// Valid reports whether g is one of the allowed options.
func (g Gender) Valid() bool {
	for _, opt := range Genders() {
		if g == opt {
			return true
		}
	}
	return false
}

// ParseGender matches s against the options case-insensitively. On a miss the
// returned ValidationError suggests the nearest option.
func ParseGender(s string) (Gender, error) {
	in := strings.TrimSpace(s)
	for _, opt := range Genders() {
		if strings.EqualFold(in, string(opt)) {
			return opt, nil
		}
	}
	if in == "" {
		return "", errNoGender()
	}
	best := closestGender(in)
	return "", &ValidationError{
		Field:   FieldGender,
		Message: msgNoGender,
		Prompt:  fmt.Sprintf("Unknown gender %q. Did you mean %q?", in, best),
	}
}

func closestGender(in string) Gender {
	lower := strings.ToLower(in)
	best := Genders()[0]
	bestDist := -1
	for _, opt := range Genders() {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(string(opt)))
		if bestDist < 0 || d < bestDist {
			best, bestDist = opt, d
		}
	}
	return best
}
