// Package oshotkey binds hotkey combinations to the OS global hotkey facility
// through golang.design/x/hotkey.
package oshotkey

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/petems/autoclicker/internal/hotkey"
	xhotkey "golang.design/x/hotkey"
)

type binding struct {
	hk   *xhotkey.Hotkey
	stop chan struct{}
	done chan struct{}
}

type osManager struct {
	mu     sync.Mutex
	bound  map[string]*binding
	closed bool
}

// New creates a hotkey manager backed by the OS global hotkey facility
// (RegisterHotKey on Windows, Carbon on macOS, XGrabKey on X11).
func New() (hotkey.Manager, error) {
	return &osManager{
		bound: make(map[string]*binding),
	}, nil
}

func (m *osManager) Register(combo hotkey.Combo, callback func(pressed bool)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return hotkey.ErrClosed
	}

	id := combo.String()
	if _, ok := m.bound[id]; ok {
		return &hotkey.ConflictError{Combo: combo, Err: errors.New("registered twice by this process")}
	}

	mods, key, err := nativeCombo(combo)
	if err != nil {
		return fmt.Errorf("hotkey %s: %w", combo, err)
	}

	if err := checkAvailable(combo, mods, key); err != nil {
		return err
	}

	hk := xhotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return &hotkey.ConflictError{Combo: combo, Err: err}
	}

	b := &binding{
		hk:   hk,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	m.bound[id] = b

	go b.listen(callback)

	return nil
}

func (b *binding) listen(callback func(pressed bool)) {
	defer close(b.done)

	var gate hotkey.PressGate
	for {
		select {
		case <-b.stop:
			return
		case <-b.hk.Keydown():
			if gate.Down() {
				callback(true)
			}
		case <-b.hk.Keyup():
			if gate.Up() {
				callback(false)
			}
		}
	}
}

// release stops the listener and waits for an in-flight callback to return.
// It must not be called from inside that callback. The OS unregistration is
// waited for at most releaseWait.
func (b *binding) release() error {
	close(b.stop)
	<-b.done
	return waitFor(b.hk.Unregister, releaseWait)
}

// waitFor runs fn and returns its error, or gives up after d. fn keeps
// running in the background after that. A zero d does not wait at all.
func waitFor(fn func() error, d time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- fn() }()

	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case err := <-errCh:
		return err
	case <-timer.C:
		return fmt.Errorf("no answer after %s", d)
	}
}

func (m *osManager) Unregister(combo hotkey.Combo) error {
	m.mu.Lock()
	b, ok := m.bound[combo.String()]
	if ok {
		delete(m.bound, combo.String())
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", hotkey.ErrNotRegistered, combo)
	}
	return b.release()
}

func (m *osManager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	bound := m.bound
	m.bound = make(map[string]*binding)
	m.mu.Unlock()

	var errs []error
	for id, b := range bound {
		if err := b.release(); err != nil {
			errs = append(errs, fmt.Errorf("unregister %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
