package errors

import (
	"fmt"
)

// SchemaError occurs when a record array does not conform to its fixed
// schema, or when a named field is missing or of an unusable kind
type SchemaError struct{ Message string }

// Error returns a textual representation of this SchemaError
func (e SchemaError) Error() string {
	return fmt.Sprintf("schema error: %s", e.Message)
}

// ShapeError occurs when the length of a supplied sequence does not match
// the record count it must parallel
type ShapeError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this ShapeError
func (e ShapeError) Error() string {
	return fmt.Sprintf("shape mismatch: expected length %d, got %d", e.Expected, e.Actual)
}

// GroupingError occurs when a candidate column grouping is invalid against
// the shape of a wrapper
type GroupingError struct{ Message string }

// Error returns a textual representation of this GroupingError
func (e GroupingError) Error() string {
	return fmt.Sprintf("invalid grouping: %s", e.Message)
}

// SelectionError occurs when a label-based selection resolves to nothing
// where a non-empty result is required, or references an unknown label
type SelectionError struct{ Message string }

// Error returns a textual representation of this SelectionError
func (e SelectionError) Error() string {
	return fmt.Sprintf("selection error: %s", e.Message)
}

// KernelError occurs when a user-supplied map kernel fails (or panics) for a
// record. Pos is the position of the offending record. The underlying error
// can be accessed via errors.Unwrap.
type KernelError struct {
	Pos   int
	Cause error
}

// Error returns a textual representation of this KernelError
func (e KernelError) Error() string {
	return fmt.Sprintf("kernel failed at record %d: %v", e.Pos, e.Cause)
}

// Unwrap returns the underlying cause of this KernelError
func (e KernelError) Unwrap() error {
	return e.Cause
}
