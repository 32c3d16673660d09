package cursor

import (
	"errors"
	"fmt"
)

// ErrInvalidState is matched by every *StateError.
var ErrInvalidState = errors.New("cursor: invalid state")

// StateError reports a reader whose coupling to another reader has been broken.
type StateError struct {
	Op  string
	Msg string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Unwrap returns ErrInvalidState.
func (e *StateError) Unwrap() error { return ErrInvalidState }
