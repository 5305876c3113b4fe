package validate

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure.
type Kind string

// Validation failure kinds.
const (
	KindShapeMismatch         Kind = "shape_mismatch"
	KindTypeMismatch          Kind = "type_mismatch"
	KindInvalidValue          Kind = "invalid_value"
	KindPreconditionViolation Kind = "precondition_violation"
)

// Common errors. A *ValidationError matches the sentinel of its Kind
// under errors.Is.
var (
	ErrShapeMismatch         = errors.New("tensor shape mismatch")
	ErrTypeMismatch          = errors.New("tensor type mismatch")
	ErrInvalidValue          = errors.New("invalid tensor value")
	ErrPreconditionViolation = errors.New("precondition violated")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Kind    Kind   // Which check failed
	Role    string // Tensor role, e.g. "edges", "label", "image"
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("%s: tensor %q: %s", e.Kind, e.Role, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Details)
}

// Is reports whether target is the sentinel for e.Kind.
func (e *ValidationError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ValidationError) sentinel() error {
	switch e.Kind {
	case KindShapeMismatch:
		return ErrShapeMismatch
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindInvalidValue:
		return ErrInvalidValue
	case KindPreconditionViolation:
		return ErrPreconditionViolation
	default:
		return nil
	}
}

// AssertionError is the raw failure of a numeric comparison assertion.
// Role validators translate it into a *ValidationError before returning.
type AssertionError struct {
	Op   string // Comparison, e.g. ">="
	X, Y int
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: x %s y (x = %d, y = %d)", e.Op, e.X, e.Y)
}
