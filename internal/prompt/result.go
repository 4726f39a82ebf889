package prompt

import (
	"fmt"
	"strings"
)

// Status tells how a prompt ended.
type Status int

const (
	StatusCancelled Status = iota
	StatusSelected
)

// Result is the outcome of one prompt. Quitting yields StatusCancelled and
// leaves the remaining fields empty; the caller decides whether to exit.
type Result struct {
	Status Status

	// Single choice (Select, Confirm).
	Index int
	Value string

	// Multiple choice (Checkbox), ascending by index.
	Indices []int
	Values  []string
}

// Cancelled reports whether the user quit the prompt.
func (r Result) Cancelled() bool {
	return r.Status == StatusCancelled
}

func (r Result) String() string {
	switch {
	case r.Cancelled():
		return "cancelled"
	case r.Values != nil:
		return fmt.Sprintf("selected [%s]", strings.Join(r.Values, ", "))
	default:
		return fmt.Sprintf("selected %q", r.Value)
	}
}

func cancelled() Result {
	return Result{Status: StatusCancelled, Index: -1}
}
