package onboarding

import "math"

const (
	MinNameLength = 3
	MinAge        = 18
	MaxAge        = 100
	DefaultAge    = 25
)

// Draft is the in-progress input collected before commit.
type Draft struct {
	Name   string
	Age    float64
	Gender Gender
}

// NewDraft returns a draft with the default age.
func NewDraft() Draft {
	return Draft{Age: DefaultAge}
}

// WholeAge is the age as committed to the store.
func (d Draft) WholeAge() int {
	return int(ClampAge(d.Age))
}

// ClampAge snaps v to a whole year inside [MinAge, MaxAge]. NaN maps to the
// default age.
func ClampAge(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultAge
	}
	v = math.Round(v)
	if v < MinAge {
		return MinAge
	}
	if v > MaxAge {
		return MaxAge
	}
	return v
}
