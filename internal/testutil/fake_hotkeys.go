package testutil

import (
	"fmt"
	"sync"

	"github.com/petems/autoclicker/internal/hotkey"
)

// FakeHotkeys implements hotkey.Manager in memory. Combos passed to
// NewFakeHotkeys behave as if another application owned them.
type FakeHotkeys struct {
	// Block, when set before use, makes Unregister and Close wait until it
	// is closed, like an OS backend that never confirms a release.
	Block chan struct{}

	mu        sync.Mutex
	callbacks map[string]func(bool)
	taken     map[string]bool
	closed    bool
}

var _ hotkey.Manager = (*FakeHotkeys)(nil)

// NewFakeHotkeys returns a manager where the given combos are already bound
// elsewhere.
func NewFakeHotkeys(taken ...hotkey.Combo) *FakeHotkeys {
	f := &FakeHotkeys{
		callbacks: make(map[string]func(bool)),
		taken:     make(map[string]bool),
	}
	for _, c := range taken {
		f.taken[c.String()] = true
	}
	return f
}

// Register records the callback.
func (f *FakeHotkeys) Register(combo hotkey.Combo, callback func(pressed bool)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return hotkey.ErrClosed
	}
	id := combo.String()
	if f.taken[id] {
		return &hotkey.ConflictError{Combo: combo, Err: fmt.Errorf("bound by another application")}
	}
	if _, ok := f.callbacks[id]; ok {
		return &hotkey.ConflictError{Combo: combo}
	}
	f.callbacks[id] = callback
	return nil
}

// Unregister drops the callback.
func (f *FakeHotkeys) Unregister(combo hotkey.Combo) error {
	if f.Block != nil {
		<-f.Block
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	id := combo.String()
	if _, ok := f.callbacks[id]; !ok {
		return fmt.Errorf("%w: %s", hotkey.ErrNotRegistered, id)
	}
	delete(f.callbacks, id)
	return nil
}

// Close drops every callback.
func (f *FakeHotkeys) Close() error {
	if f.Block != nil {
		<-f.Block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.callbacks = make(map[string]func(bool))
	return nil
}

// Registered reports whether combo currently has a callback.
func (f *FakeHotkeys) Registered(combo hotkey.Combo) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.callbacks[combo.String()]
	return ok
}

// Closed reports whether Close was called.
func (f *FakeHotkeys) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Press simulates one physical stroke: a press followed by a release.
// It reports false if nothing is registered for combo.
func (f *FakeHotkeys) Press(combo hotkey.Combo) bool {
	f.mu.Lock()
	cb, ok := f.callbacks[combo.String()]
	f.mu.Unlock()

	if !ok {
		return false
	}
	cb(true)
	cb(false)
	return true
}
