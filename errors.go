package tweens

import (
	"errors"
	"fmt"
)

// Sentinel errors. Operations wrap them with context; test with errors.Is.
var (
	// ErrInvalidArgument reports a negative duration or delta time, a nil
	// setter or tweak, an out-of-range loop index and similar caller mistakes.
	ErrInvalidArgument = errors.New("tweens: invalid argument")

	// ErrOwnershipConflict reports an attempt to give a playable a second
	// owner, or to drive a playable that a Sequence owns.
	ErrOwnershipConflict = errors.New("tweens: ownership conflict")

	// ErrInvalidStateTransition reports an operation the current state does
	// not allow, such as seeking from inside an event handler.
	ErrInvalidStateTransition = errors.New("tweens: invalid state transition")
)

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func ownershipf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOwnershipConflict, fmt.Sprintf(format, args...))
}

func transitionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidStateTransition, fmt.Sprintf(format, args...))
}
