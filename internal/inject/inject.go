package inject

import (
	"context"
	"fmt"
)

// Injector defines the interface for synthetic mouse input
type Injector interface {
	// LeftClick presses and releases the left button at the current cursor
	// position.
	LeftClick(ctx context.Context) error
}

// SyntheticInputError is returned when the OS rejects an injected event.
type SyntheticInputError struct {
	Op  string
	Err error
}

func (e *SyntheticInputError) Error() string {
	return fmt.Sprintf("synthetic input %s: %v", e.Op, e.Err)
}

func (e *SyntheticInputError) Unwrap() error {
	return e.Err
}
