package store

import (
	"errors"
	"fmt"
)

// Predefined errors for store operations
var (
	ErrProductNotFound = errors.New("store: product not found")
)

// ValidationError reports a rejected manual add/edit. It carries the field
// that failed so the adapter can surface a precise message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store: invalid %s: %s", e.Field, e.Reason)
}
