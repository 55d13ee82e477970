package scheduling

import (
	"context"
	"errors"
	"fmt"
)

// Failure is a gateway failure carrying an HTTP-like status code and the raw
// server message.
type Failure struct {
	StatusCode int
	Message    string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("gateway failure (status %d): %s", f.StatusCode, f.Message)
}

func NewFailure(statusCode int, message string) error {
	return &Failure{StatusCode: statusCode, Message: message}
}

// reasonForStatus maps a gateway status code to the user-facing reason. The
// table is fixed; unmapped codes fall through to a generic message carrying
// the code.
func reasonForStatus(code int) string {
	switch code {
	case 400:
		return "invalid data for this operation"
	case 401:
		return "token invalid or expired, please sign in again"
	case 403:
		return "you do not have permission for this operation"
	case 404:
		return "resource not found"
	case 409:
		return "an appointment already exists at that date and time"
	case 422:
		return "the submitted data is not valid"
	case 500:
		return "internal server error"
	default:
		return fmt.Sprintf("operation failed (status %d)", code)
	}
}

// failureReason converts any error coming back across the gateway boundary
// into a user-facing reason. Cancellation and unexpected faults get their
// own generic renderings; nothing propagates as a raw error to callers.
func failureReason(err error) string {
	var failure *Failure
	if errors.As(err, &failure) {
		return reasonForStatus(failure.StatusCode)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "operation canceled"
	}
	return "unexpected error"
}
