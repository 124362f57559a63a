// Package onboarding implements the forward-only sign-up wizard.
//
// The wizard walks Welcome, AddName, AddAge and AddGender before reaching
// Completed. Input arrives as Actions; Reduce turns the current State and an
// Action into the next State plus the Effects to run. Flow executes those
// effects against a profile.Store and only adopts the new State once they
// succeed, so a failed commit leaves the user on the last screen.
package onboarding
