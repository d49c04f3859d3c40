package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/petems/autoclicker/internal/inject"
)

// FakeInjector implements inject.Injector and records click times for tests.
type FakeInjector struct {
	mu     sync.Mutex
	clicks []time.Time
	// Fail, when set, decides the error returned for the n-th click (0-based).
	Fail func(n int) error
}

// Ensure FakeInjector implements the interface.
var _ inject.Injector = (*FakeInjector)(nil)

// LeftClick records a click.
func (f *FakeInjector) LeftClick(ctx context.Context) error {
	f.mu.Lock()
	n := len(f.clicks)
	f.clicks = append(f.clicks, time.Now())
	fail := f.Fail
	f.mu.Unlock()

	if fail != nil {
		return fail(n)
	}
	return nil
}

// Count returns the number of clicks so far.
func (f *FakeInjector) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clicks)
}

// Times returns a copy of the recorded click times.
func (f *FakeInjector) Times() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]time.Time, len(f.clicks))
	copy(out, f.clicks)
	return out
}
