// Package camerrors provides the shared internal error type used by the
// usecase layer. Each usecase declares typed errors embedding InternalError
// so callers can match on the category with errors.As.
package camerrors

import "fmt"

// InternalError carries the originating function, the failing call and the
// wrapped error.
type InternalError struct {
	Call          string
	Function      string
	Message       string
	OriginalError error
}

// CreateCameraError -.
func CreateCameraError(function string) InternalError {
	return InternalError{Function: function}
}

func (e InternalError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s - %s: %s", e.Function, e.Call, e.OriginalError.Error())
	}

	if e.Message != "" {
		return fmt.Sprintf("%s - %s: %s", e.Function, e.Call, e.Message)
	}

	return fmt.Sprintf("%s - %s", e.Function, e.Call)
}

func (e *InternalError) Wrap(call, function string, err error) error {
	e.Call = call + " - " + function
	e.OriginalError = err

	return e
}

func (e InternalError) Unwrap() error {
	return e.OriginalError
}

// FriendlyMessage returns the short operator-facing description.
func (e InternalError) FriendlyMessage() string {
	if e.Message == "" {
		return "an unexpected error occurred"
	}

	return e.Message
}
