package onboarding

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/onboarded/internal/profile"
)

// Flow runs the wizard against a profile store.
type Flow struct {
	store profile.Store
	log   *zap.Logger
	state State
}

// NewFlow starts a wizard at Welcome with a default draft.
func NewFlow(store profile.Store, log *zap.Logger) *Flow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Flow{store: store, log: log, state: Start()}
}

// Step returns the current step.
func (f *Flow) Step() Step { return f.state.Step }

// Draft returns a copy of the current draft.
func (f *Flow) Draft() Draft { return f.state.Draft }

// Done reports whether the profile has been committed.
func (f *Flow) Done() bool { return f.state.Step == Completed }

// Dispatch applies a and runs any resulting effects. Validation failures are
// returned as *ValidationError and leave the state unchanged; store failures
// are wrapped and also leave the state unchanged.
func (f *Flow) Dispatch(ctx context.Context, a Action) error {
	next, effects, err := Reduce(f.state, a)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			f.log.Info("advance rejected",
				zap.Stringer("step", f.state.Step),
				zap.String("field", string(verr.Field)),
				zap.String("reason", verr.Message))
		}
		return err
	}
	for _, eff := range effects {
		if err := f.run(ctx, eff); err != nil {
			f.log.Error("onboarding effect failed", zap.Stringer("step", f.state.Step), zap.Error(err))
			return err
		}
	}
	if next.Step != f.state.Step {
		f.log.Debug("onboarding step",
			zap.Stringer("from", f.state.Step),
			zap.Stringer("to", next.Step))
	}
	f.state = next
	return nil
}

func (f *Flow) run(ctx context.Context, eff Effect) error {
	switch e := eff.(type) {
	case CommitProfile:
		if err := f.store.WriteProfile(ctx, e.Name, e.Age, string(e.Gender)); err != nil {
			return fmt.Errorf("commit profile: %w", err)
		}
		f.log.Info("signed in", zap.Int("age", e.Age), zap.String("gender", string(e.Gender)))
		return nil
	default:
		return fmt.Errorf("onboarding: unknown effect %T", eff)
	}
}

// Advance is shorthand for Dispatch(ctx, Advance{}).
func (f *Flow) Advance(ctx context.Context) error {
	return f.Dispatch(ctx, Advance{})
}

// Run drives a fresh flow through a full sign-up without user interaction,
// stopping at the first rejected step.
func (f *Flow) Run(ctx context.Context, name string, age float64, gender Gender) error {
	if err := f.RunToGender(ctx, name, age); err != nil {
		return err
	}
	return f.dispatchAll(ctx, SetGender{Value: gender}, Advance{})
}

// RunToGender drives a fresh flow through Welcome, AddName and AddAge and
// stops on AddGender.
func (f *Flow) RunToGender(ctx context.Context, name string, age float64) error {
	return f.dispatchAll(ctx,
		Advance{},
		SetName{Value: name},
		Advance{},
		SetAge{Value: age},
		Advance{},
	)
}

func (f *Flow) dispatchAll(ctx context.Context, actions ...Action) error {
	for _, a := range actions {
		if err := f.Dispatch(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
