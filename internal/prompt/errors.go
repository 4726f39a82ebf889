package prompt

import (
	"errors"
	"fmt"
)

// ErrNoOptions is returned when a prompt is given an empty option list.
var ErrNoOptions = errors.New("prompt needs at least one option")

// RangeError reports a default index or selection bound outside its valid range.
// Lo and Hi are inclusive.
type RangeError struct {
	Field string
	Value int
	Lo    int
	Hi    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Lo, e.Hi)
}
