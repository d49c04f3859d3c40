// Package cli wires the auto-clicker together behind a cobra command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/petems/autoclicker/internal/app"
	"github.com/petems/autoclicker/internal/clicker"
	"github.com/petems/autoclicker/internal/config"
	"github.com/petems/autoclicker/internal/hotkey"
	"github.com/petems/autoclicker/internal/logging"
	"github.com/petems/autoclicker/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// UsageError marks a bad flag or flag value.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode maps the error returned by the root command to a process exit
// status: 0 on a clean shutdown, 2 for invalid hotkeys or flags, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage *UsageError
	if errors.Is(err, hotkey.ErrInvalidCombo) || errors.As(err, &usage) {
		return 2
	}
	return 1
}

// NewRootCommand builds the autoclicker command.
func NewRootCommand(deps Deps) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "autoclicker",
		Short: "Toggle automatic left clicking with a global hotkey",
		Long: `autoclicker runs in the background and clicks the left mouse button every
20-30ms while clicking is toggled on. The toggle hotkey starts and stops
clicking; the exit hotkey or Ctrl+C quits.

Hotkeys are written as modifiers and one key joined by '+', for example
ctrl+alt+p, shift+f6 or cmd+option+k.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &UsageError{Err: err}
			}
			return nil
		},
		Version:       deps.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg, deps)
		},
	}
	cfg.BindFlags(cmd.Flags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	return cmd
}

// Execute runs the root command and prints a failure to stderr.
func Execute(deps Deps) error {
	cmd := NewRootCommand(deps)
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func run(ctx context.Context, cfg *config.Config, deps Deps) error {
	if err := cfg.Validate(); err != nil {
		return &UsageError{Err: err}
	}
	hotkeys, err := cfg.Hotkeys()
	if err != nil {
		return err
	}

	out := deps.LogOutput
	if out == nil {
		out = io.Discard
	}
	log, err := logging.New(out, cfg.LogLevel)
	if err != nil {
		return &UsageError{Err: err}
	}
	log.Info().Str("version", deps.Version).Msg("autoclicker starting")

	if deps.Permissions != nil {
		if err := deps.Permissions(); err != nil {
			return fmt.Errorf("required permissions not granted: %w", err)
		}
	}

	if cfg.Tray && deps.Tray == nil {
		return errors.New("--tray is not supported by this build")
	}

	// stop also cancels ctx, which ends the metrics server on every exit path.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	application, cleanup, err := build(cfg, hotkeys, reg, log, deps)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg, log); err != nil {
				log.Error().Err(err).Msg("Metrics server failed")
			}
		}()
	}

	if cfg.Tray {
		ui := deps.Tray(log, deps.Version)
		ui.SetApp(application)
		application.AddStatusUpdater(ui)

		errCh := make(chan error, 1)
		// Run MUST be on the main thread; it returns after Quit.
		ui.Run(func() {
			errCh <- start(ctx, application)
			ui.Quit()
		})
		return <-errCh
	}

	errCh := make(chan error, 1)
	deps.MainThread(func() {
		errCh <- start(ctx, application)
	})
	return <-errCh
}

// build creates the clicker and its collaborators. The returned cleanup
// releases the audio device, if one was opened.
func build(cfg *config.Config, hotkeys config.Hotkeys, reg prometheus.Registerer, log zerolog.Logger, deps Deps) (*app.App, func(), error) {
	injector, err := deps.Injector()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize click injector: %w", err)
	}

	recorder := metrics.NewRecorder(reg)
	controller, err := clicker.New(clicker.Config{
		Injector: injector,
		Interval: clicker.DefaultInterval(),
		Logger:   log,
		Hooks:    recorder.Hooks(),
	})
	if err != nil {
		return nil, nil, err
	}
	status := []app.StatusUpdater{recorder}

	cleanup := func() {}
	if cfg.Beep {
		player, err := deps.Cue(log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize audio cue: %w", err)
		}
		status = append(status, player)
		cleanup = func() {
			if err := player.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close audio cue")
			}
		}
	}

	manager, err := deps.Hotkeys()
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to initialize hotkeys: %w", err)
	}

	application := app.New(app.Config{
		Hotkeys: manager,
		Clicker: controller,
		Toggle:  hotkeys.Toggle,
		Exit:    hotkeys.Exit,
		Logger:  log,
		Status:  status,
	})
	return application, cleanup, nil
}

// start registers the hotkeys and blocks until exit or interrupt.
func start(ctx context.Context, application *app.App) error {
	if err := application.Start(); err != nil {
		// Nothing is registered any more; this only closes the manager.
		ctx, cancel := context.WithTimeout(context.Background(), app.DefaultShutdownTimeout)
		defer cancel()
		_ = application.Shutdown(ctx)
		return err
	}
	return application.Run(ctx)
}
