package main

import (
	"os"
	"runtime"

	"github.com/petems/autoclicker/internal/cli"
	"github.com/petems/autoclicker/internal/cue/pa"
	"github.com/petems/autoclicker/internal/hotkey/oshotkey"
	"github.com/petems/autoclicker/internal/inject"
	"github.com/petems/autoclicker/internal/inject/robot"
	"github.com/petems/autoclicker/internal/permissions"
	"github.com/petems/autoclicker/internal/tray"
	"github.com/rs/zerolog"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

func init() {
	// The hotkey backend and the tray both need the OS main thread.
	runtime.LockOSThread()
}

func main() {
	deps := cli.Deps{
		Hotkeys: oshotkey.New,
		Injector: func() (inject.Injector, error) {
			return robot.New(), nil
		},
		Cue: pa.New,
		Tray: func(log zerolog.Logger, version string) cli.TrayUI {
			return tray.New(log, version)
		},
		Permissions: permissions.EnsurePermissions,
		MainThread:  oshotkey.RunOnMainThread,
		LogOutput:   os.Stderr,
		Version:     Version + " (" + Commit + ")",
	}

	os.Exit(cli.ExitCode(cli.Execute(deps)))
}
