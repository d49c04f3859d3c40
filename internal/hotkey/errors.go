package hotkey

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCombo is matched by every combo parsing failure.
	ErrInvalidCombo = errors.New("invalid hotkey combination")
	// ErrConflict is matched when a combination is already bound.
	ErrConflict = errors.New("hotkey combination already in use")
	// ErrUnsupportedKey is returned when the current platform cannot bind a key.
	ErrUnsupportedKey = errors.New("key not supported on this platform")
	// ErrNotRegistered is returned by Unregister for unknown combinations.
	ErrNotRegistered = errors.New("hotkey not registered")
	// ErrClosed is returned after the manager has been closed.
	ErrClosed = errors.New("hotkey manager closed")
)

// SyntaxError describes a malformed combination string.
type SyntaxError struct {
	Input  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid hotkey %q: %s", e.Input, e.Reason)
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidCombo
}

// ConflictError reports a combination the OS or this process already owns.
type ConflictError struct {
	Combo Combo
	Err   error
}

func (e *ConflictError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("hotkey %s is already in use", e.Combo)
	}
	return fmt.Sprintf("hotkey %s is already in use: %v", e.Combo, e.Err)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// Is reports ErrConflict regardless of the underlying OS error.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
