package onboarding

import "fmt"

// Step is the position in the wizard.
type Step int

const (
	Welcome Step = iota
	AddName
	AddAge
	AddGender
	Completed
)

func (s Step) String() string {
	switch s {
	case Welcome:
		return "welcome"
	case AddName:
		return "add_name"
	case AddAge:
		return "add_age"
	case AddGender:
		return "add_gender"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// ButtonLabel is the caption of the button that advances from s.
func (s Step) ButtonLabel() string {
	switch s {
	case Welcome:
		return "Sign Up"
	case AddGender:
		return "Finish"
	case Completed:
		return ""
	default:
		return "Next"
	}
}
