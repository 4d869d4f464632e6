package animate

import (
	"errors"
	"fmt"
)

// Domain errors for animation sessions.
var (
	// ErrNilDisplay indicates a session was started without a display.
	ErrNilDisplay = errors.New("animate: nil display")

	// ErrNilAnimator indicates a guard was built without an animator.
	ErrNilAnimator = errors.New("animate: nil animator")
)

// SessionError wraps a failure with the point the session reached.
type SessionError struct {
	Step    Step
	Pushes  int
	Wrapped error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session aborted at push %d/%d (%s): %v",
		e.Pushes, e.Step.Total, e.Step.Kind, e.Wrapped)
}

func (e *SessionError) Unwrap() error {
	return e.Wrapped
}
