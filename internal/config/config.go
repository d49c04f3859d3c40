package config

import (
	"fmt"
	"strings"

	"github.com/petems/autoclicker/internal/hotkey"
	"github.com/petems/autoclicker/internal/logging"
	"github.com/spf13/pflag"
)

const (
	DefaultToggle = "ctrl+alt+p"
	DefaultExit   = "ctrl+alt+q"
	// ExitNone disables the exit hotkey; Ctrl+C still works.
	ExitNone = "none"
)

// Config holds the command-line settings. Nothing is read from or written to
// disk.
type Config struct {
	Toggle      string
	Exit        string
	LogLevel    string
	Tray        bool
	Beep        bool
	MetricsAddr string
}

// Hotkeys are the parsed combinations. Exit is nil when disabled.
type Hotkeys struct {
	Toggle hotkey.Combo
	Exit   *hotkey.Combo
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Toggle:   DefaultToggle,
		Exit:     DefaultExit,
		LogLevel: "info",
	}
}

// BindFlags registers the settings on fs, using the current values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Toggle, "toggle", c.Toggle, "hotkey that starts or stops auto-clicking")
	fs.StringVar(&c.Exit, "exit", c.Exit, "hotkey that exits the program, or 'none' to disable")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.Tray, "tray", c.Tray, "show click state in the system tray")
	fs.BoolVar(&c.Beep, "beep", c.Beep, "play a short tone when clicking starts or stops")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address (e.g. 127.0.0.1:9091)")
}

// ExitDisabled reports whether the exit hotkey is turned off.
func (c *Config) ExitDisabled() bool {
	return strings.EqualFold(strings.TrimSpace(c.Exit), ExitNone)
}

// Hotkeys parses the toggle and exit combinations.
func (c *Config) Hotkeys() (Hotkeys, error) {
	toggle, err := hotkey.ParseCombo(c.Toggle)
	if err != nil {
		return Hotkeys{}, fmt.Errorf("--toggle: %w", err)
	}
	hk := Hotkeys{Toggle: toggle}

	if c.ExitDisabled() {
		return hk, nil
	}

	exit, err := hotkey.ParseCombo(c.Exit)
	if err != nil {
		return Hotkeys{}, fmt.Errorf("--exit: %w", err)
	}
	if exit == toggle {
		return Hotkeys{}, fmt.Errorf("--exit: %w", &hotkey.SyntaxError{
			Input:  c.Exit,
			Reason: "same combination as --toggle",
		})
	}
	hk.Exit = &exit
	return hk, nil
}

// Validate checks every setting without touching the OS.
func (c *Config) Validate() error {
	if _, err := c.Hotkeys(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}
