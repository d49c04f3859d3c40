package cli

import (
	"io"

	"github.com/petems/autoclicker/internal/app"
	"github.com/petems/autoclicker/internal/cue"
	"github.com/petems/autoclicker/internal/hotkey"
	"github.com/petems/autoclicker/internal/inject"
	"github.com/rs/zerolog"
)

// Deps are the OS-facing constructors used by the root command. The real
// ones are wired in cmd/autoclicker; tests use fakes from internal/testutil.
type Deps struct {
	Hotkeys     func() (hotkey.Manager, error)
	Injector    func() (inject.Injector, error)
	Cue         func(log zerolog.Logger) (cue.Player, error)
	Tray        func(log zerolog.Logger, version string) TrayUI
	Permissions func() error
	// MainThread runs fn while the main thread services the OS event loop.
	// It is bypassed in tray mode, where the tray owns the main thread.
	MainThread func(fn func())
	LogOutput  io.Writer
	Version    string
}

// TrayUI is the status icon shown with --tray.
type TrayUI interface {
	app.StatusUpdater
	SetApp(application *app.App)
	// Run calls start once the icon exists and blocks until Quit.
	Run(start func())
	Quit()
}
