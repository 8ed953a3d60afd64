// Package faults defines the failure kinds the pipeline distinguishes.
// A failed stage fails the whole run; nothing is retried. The kind only
// changes how the failure is reported, never whether it aborts.
package faults

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration covers missing credentials, topics or config values.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation covers malformed or missing intermediate artifacts.
	ErrValidation = errors.New("validation error")
	// ErrExternalTool covers encoder processes that fail or cannot start.
	ErrExternalTool = errors.New("external tool error")
	// ErrTransport covers generative backend call failures.
	ErrTransport = errors.New("transport error")
)

func Configuration(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrConfiguration)...)
}

func Validation(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrValidation)...)
}

func ExternalTool(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrExternalTool)...)
}

func Transport(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrTransport)...)
}
