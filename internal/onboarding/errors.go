package onboarding

import (
	"errors"
	"fmt"
)

// Field names a draft input.
type Field string

const (
	FieldName   Field = "name"
	FieldGender Field = "gender"
)

const (
	msgNameTooShort = "name too short"
	msgNoGender     = "no gender selected"
)

// ErrValidation matches every *ValidationError through errors.Is.
var ErrValidation = errors.New("onboarding: validation failed")

// ValidationError rejects an advance. The flow stays on the current step.
type ValidationError struct {
	Field   Field
	Message string
	// Prompt is the text shown to the user in the blocking alert.
	Prompt string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func errNameTooShort() *ValidationError {
	return &ValidationError{
		Field:   FieldName,
		Message: msgNameTooShort,
		Prompt:  fmt.Sprintf("Your name must be at least %d characters long!", MinNameLength),
	}
}

func errNoGender() *ValidationError {
	return &ValidationError{
		Field:   FieldGender,
		Message: msgNoGender,
		Prompt:  "Please select a gender before moving forward!",
	}
}
