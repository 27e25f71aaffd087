package engine

import "fmt"

// InputError reports invalid caller-supplied data such as an empty mesh or
// non-positive manual dimensions.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// GeometryDegenerateError reports geometry that survived parsing but cannot
// support analysis, such as a zero-extent bounding box.
type GeometryDegenerateError struct {
	Reason string
}

func (e *GeometryDegenerateError) Error() string {
	return fmt.Sprintf("degenerate geometry: %s", e.Reason)
}

// ResourceExceededError reports that an analysis budget was exhausted before
// completion.
type ResourceExceededError struct {
	Resource string
	Limit    string
}

func (e *ResourceExceededError) Error() string {
	return fmt.Sprintf("resource limit exceeded: %s (limit %s)", e.Resource, e.Limit)
}
