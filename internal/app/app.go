package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/petems/autoclicker/internal/clicker"
	"github.com/petems/autoclicker/internal/hotkey"
	"github.com/rs/zerolog"
)

// StatusUpdater is an interface for reflecting the click state (e.g., tray icon)
type StatusUpdater interface {
	SetIdle()
	SetClicking()
}

// DefaultShutdownTimeout bounds how long Run waits for the hotkeys to be
// released after clicking has stopped.
const DefaultShutdownTimeout = time.Second

type Config struct {
	Hotkeys hotkey.Manager
	Clicker *clicker.Controller
	Toggle  hotkey.Combo
	Exit    *hotkey.Combo // nil disables the exit hotkey
	Logger  zerolog.Logger
	Status  []StatusUpdater
	// ShutdownTimeout defaults to DefaultShutdownTimeout.
	ShutdownTimeout time.Duration
}

type App struct {
	hotkeys hotkey.Manager
	clicker *clicker.Controller
	toggle  hotkey.Combo
	exit    *hotkey.Combo
	log     zerolog.Logger
	status  []StatusUpdater
	timeout time.Duration

	mu         sync.Mutex
	closing    bool
	registered []hotkey.Combo

	exitOnce sync.Once
	exitCh   chan struct{}
	shutOnce sync.Once
	shutErr  error
}

func New(cfg Config) *App {
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}
	return &App{
		hotkeys: cfg.Hotkeys,
		clicker: cfg.Clicker,
		toggle:  cfg.Toggle,
		exit:    cfg.Exit,
		log:     cfg.Logger,
		status:  cfg.Status,
		timeout: timeout,
		exitCh:  make(chan struct{}),
	}
}

// AddStatusUpdater attaches an updater after construction (the tray needs the
// app before it can be created). Call it before Start.
func (a *App) AddStatusUpdater(s StatusUpdater) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = append(a.status, s)
}

// Start registers the hotkeys. If any registration fails, the ones already
// registered are released and the error is returned.
func (a *App) Start() error {
	if err := a.register(a.toggle, a.OnToggle); err != nil {
		return err
	}
	if a.exit != nil {
		if err := a.register(*a.exit, a.OnExit); err != nil {
			a.unregisterAll()
			return err
		}
	}

	a.log.Info().Str("hotkey", a.toggle.Describe()).Msg("Press to start or stop auto-clicking")
	if a.exit != nil {
		a.log.Info().Str("hotkey", a.exit.Describe()).Msg("Press to exit")
	}
	a.log.Info().Msg("Press CTRL+C in the terminal to exit as well")
	return nil
}

func (a *App) register(combo hotkey.Combo, callback func(pressed bool)) error {
	if err := a.hotkeys.Register(combo, callback); err != nil {
		return fmt.Errorf("register %s: %w", combo.Describe(), err)
	}
	a.mu.Lock()
	a.registered = append(a.registered, combo)
	a.mu.Unlock()
	a.log.Debug().Str("hotkey", combo.String()).Msg("Registered hotkey")
	return nil
}

// OnToggle handles the toggle hotkey. Releases are ignored.
func (a *App) OnToggle(pressed bool) {
	if !pressed {
		return
	}
	a.Toggle()
}

// OnExit handles the exit hotkey. It works in either click state.
func (a *App) OnExit(pressed bool) {
	if !pressed {
		return
	}
	a.log.Info().Msg("Exit hotkey pressed. Exiting.")
	a.RequestExit()
}

// Toggle flips the clicker and notifies status updaters. It is a no-op once
// shutdown has begun.
func (a *App) Toggle() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closing {
		return
	}

	switch a.clicker.Toggle() {
	case clicker.Clicking:
		a.log.Info().Msgf("Auto-clicking started. Press %s to stop.", a.toggle.Describe())
		a.notifyLocked(clicker.Clicking)
	case clicker.Idle:
		a.log.Info().Msgf("Auto-clicking stopped. Press %s to start again.", a.toggle.Describe())
		a.notifyLocked(clicker.Idle)
	}
}

func (a *App) notifyLocked(s clicker.State) {
	for _, st := range a.status {
		if s == clicker.Clicking {
			st.SetClicking()
		} else {
			st.SetIdle()
		}
	}
}

// RequestExit asks Run to shut down. Safe to call more than once and from
// any goroutine, including hotkey callbacks.
func (a *App) RequestExit() {
	a.exitOnce.Do(func() { close(a.exitCh) })
}

// Done is closed once an exit has been requested.
func (a *App) Done() <-chan struct{} {
	return a.exitCh
}

// Run blocks until ctx is cancelled (interrupt) or an exit is requested,
// then shuts down. Clicking always stops; hotkeys that cannot be released
// within the shutdown timeout are logged and left to process exit.
func (a *App) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		a.log.Info().Msg("Interrupt received. Exiting.")
	case <-a.exitCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil {
		a.log.Warn().Err(err).Msg("Hotkeys not fully released")
	}
	return nil
}

// Shutdown stops clicking, then releases the hotkeys. It returns once they
// are released or ctx is done, whichever comes first.
func (a *App) Shutdown(ctx context.Context) error {
	a.shutOnce.Do(func() {
		a.mu.Lock()
		a.closing = true
		if a.clicker.Stop() {
			a.log.Info().Msg("Auto-clicking stopped")
			a.notifyLocked(clicker.Idle)
		}
		a.mu.Unlock()

		// Outside the lock: unregistering waits for in-flight callbacks,
		// which take the lock themselves.
		released := make(chan error, 1)
		go func() { released <- a.releaseHotkeys() }()

		select {
		case err := <-released:
			a.shutErr = err
		case <-ctx.Done():
			a.shutErr = fmt.Errorf("release hotkeys: %w", ctx.Err())
		}
	})
	return a.shutErr
}

func (a *App) releaseHotkeys() error {
	errs := []error{a.unregisterAll()}
	if err := a.hotkeys.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close hotkeys: %w", err))
	}
	return errors.Join(errs...)
}

func (a *App) unregisterAll() error {
	a.mu.Lock()
	combos := a.registered
	a.registered = nil
	a.mu.Unlock()

	var errs []error
	for _, c := range combos {
		if err := a.hotkeys.Unregister(c); err != nil {
			errs = append(errs, fmt.Errorf("unregister %s: %w", c, err))
		}
	}
	return errors.Join(errs...)
}

// IsClicking reports whether the clicker is running.
func (a *App) IsClicking() bool {
	return a.clicker.State() == clicker.Clicking
}

// ToggleHotkey returns the toggle combination.
func (a *App) ToggleHotkey() hotkey.Combo {
	return a.toggle
}

// ExitHotkey returns the exit combination, or nil when disabled.
func (a *App) ExitHotkey() *hotkey.Combo {
	return a.exit
}
