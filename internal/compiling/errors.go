package compiling

import "fmt"

// Error represents a LaTeX compilation failure. Log carries the captured
// diagnostic output, already truncated for display.
type Error struct {
	Message string
	Log     string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compilation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
