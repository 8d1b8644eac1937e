package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine boundary. Wrap with additional context and
// classify with errors.Is.
var (
	// ErrConfigIncomplete is returned when a RatesConfig is missing a
	// required jurisdiction parameter.
	ErrConfigIncomplete = errors.New("rates config incomplete")

	// ErrInvalidInput is returned for inputs the engine refuses to compute
	// on, such as negative asset values or liability principals.
	ErrInvalidInput = errors.New("invalid input")

	// ErrHouseholdNotFound is returned by stores when no snapshot exists
	// for the requested id.
	ErrHouseholdNotFound = errors.New("household not found")
)

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func configIncompletef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfigIncomplete, fmt.Sprintf(format, args...))
}
