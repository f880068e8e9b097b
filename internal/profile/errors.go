// Package profile owns the user's profile record: field-level mutators,
// persistence and the schema upgrade applied on load.
package profile

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an update or remove names an id that is not
// in the collection. The collection is left untouched.
var ErrNotFound = errors.New("profile: entry not found")

// LoadError represents an error reading or decoding the persisted profile
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
