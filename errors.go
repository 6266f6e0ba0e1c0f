package fx

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fx package.
var (
	// ErrInvalidValue is returned when an effect or paint attribute is
	// assigned a value outside its domain.
	ErrInvalidValue = errors.New("fx: invalid value")

	// ErrMalformedShadow is returned when shadow parameters cannot be
	// coerced into a Shadow.
	ErrMalformedShadow = errors.New("fx: malformed shadow spec")

	// ErrInvalidColor is returned when a color spec cannot be interpreted.
	ErrInvalidColor = errors.New("fx: invalid color")

	// ErrUnknownBackend is returned by NewBackend for unregistered names.
	ErrUnknownBackend = errors.New("fx: unknown backend")

	// ErrNoBackend is returned when a Context is flushed without a backend.
	ErrNoBackend = errors.New("fx: no backend")

	// ErrUnbalancedScope is returned by Flush while a container scope
	// (such as a Mask block) is still open.
	ErrUnbalancedScope = errors.New("fx: flush inside an open scope")

	// ErrUnknownStyle is returned when a named style is not in the sheet.
	ErrUnknownStyle = errors.New("fx: unknown style")
)

// ValueError describes a rejected attribute assignment.
// It unwraps to ErrInvalidValue.
type ValueError struct {
	Attr   string
	Value  any
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("fx: invalid %s %v: %s", e.Attr, e.Value, e.Reason)
}

func (e *ValueError) Unwrap() error { return ErrInvalidValue }

// ShadowSpecError is returned when a shadow parameter list is malformed.
// It unwraps to both ErrMalformedShadow and the underlying cause.
type ShadowSpecError struct {
	Args []any
	Err  error
}

func (e *ShadowSpecError) Error() string {
	return fmt.Sprintf("fx: malformed shadow spec %v: %v", e.Args, e.Err)
}

func (e *ShadowSpecError) Unwrap() []error { return []error{ErrMalformedShadow, e.Err} }
