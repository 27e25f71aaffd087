package model

import (
	"errors"
	"fmt"
)

// ErrReferenceNotFound is the sentinel matched by errors.Is for any missing
// catalog reference (material, machine, part).
var ErrReferenceNotFound = errors.New("reference not found")

// ReferenceError reports a missing entry in a reference catalog.
type ReferenceError struct {
	Kind string // "material", "machine", "part"
	Name string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *ReferenceError) Unwrap() error {
	return ErrReferenceNotFound
}
