package onboarding

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// State is the wizard position plus the draft collected so far.
type State struct {
	Step  Step
	Draft Draft
}

// Start is the state a fresh wizard begins in.
func Start() State {
	return State{Step: Welcome, Draft: NewDraft()}
}

// Action is an input to the wizard.
type Action interface{ isAction() }

// SetName replaces the draft name.
type SetName struct{ Value string }

// SetAge replaces the draft age, clamped to the allowed range.
type SetAge struct{ Value float64 }

// NudgeAge moves the draft age by Delta, clamped to the allowed range.
type NudgeAge struct{ Delta float64 }

// SetGender replaces the draft gender.
type SetGender struct{ Value Gender }

// Advance moves to the next step when the current input is valid.
type Advance struct{}

func (SetName) isAction()   {}
func (SetAge) isAction()    {}
func (NudgeAge) isAction()  {}
func (SetGender) isAction() {}
func (Advance) isAction()   {}

// Effect is a side effect requested by Reduce.
type Effect interface{ isEffect() }

// CommitProfile persists the finished draft and signs the user in.
type CommitProfile struct {
	Name   string
	Age    int
	Gender Gender
}

func (CommitProfile) isEffect() {}

// Reduce applies a to s. It never touches the store; on a ValidationError the
// returned state equals s.
func Reduce(s State, a Action) (State, []Effect, error) {
	switch a := a.(type) {
	case SetName:
		s.Draft.Name = a.Value
		return s, nil, nil
	case SetAge:
		s.Draft.Age = ClampAge(a.Value)
		return s, nil, nil
	case NudgeAge:
		s.Draft.Age = ClampAge(s.Draft.Age + a.Delta)
		return s, nil, nil
	case SetGender:
		s.Draft.Gender = a.Value
		return s, nil, nil
	case Advance:
		return advance(s)
	default:
		return s, nil, fmt.Errorf("onboarding: unknown action %T", a)
	}
}

func advance(s State) (State, []Effect, error) {
	switch s.Step {
	case Welcome:
		s.Step = AddName
		return s, nil, nil
	case AddName:
		if uniseg.GraphemeClusterCount(s.Draft.Name) < MinNameLength {
			return s, nil, errNameTooShort()
		}
		s.Step = AddAge
		return s, nil, nil
	case AddAge:
		s.Step = AddGender
		return s, nil, nil
	case AddGender:
		if !s.Draft.Gender.Valid() {
			return s, nil, errNoGender()
		}
		commit := CommitProfile{
			Name:   s.Draft.Name,
			Age:    s.Draft.WholeAge(),
			Gender: s.Draft.Gender,
		}
		s.Step = Completed
		return s, []Effect{commit}, nil
	case Completed:
		return s, nil, nil
	default:
		return s, nil, fmt.Errorf("onboarding: invalid step %s", s.Step)
	}
}
