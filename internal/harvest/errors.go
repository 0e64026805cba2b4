package harvest

import "fmt"

// Error represents a harvest failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("harvest error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("harvest error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
