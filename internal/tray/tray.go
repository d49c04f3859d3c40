package tray

import (
	"fmt"

	"github.com/getlantern/systray"
	"github.com/petems/autoclicker/internal/app"
	"github.com/petems/autoclicker/internal/clicker"
	"github.com/rs/zerolog"
)

type UI struct {
	app     *app.App
	version string
	log     zerolog.Logger
	ready   chan struct{}

	// Menu items
	mStatus *systray.MenuItem
	mToggle *systray.MenuItem
}

func New(log zerolog.Logger, version string) *UI {
	return &UI{
		version: version,
		log:     log,
		ready:   make(chan struct{}),
	}
}

// SetApp sets the app reference (for circular dependency resolution)
func (u *UI) SetApp(application *app.App) {
	u.app = application
}

// Status update methods for the app to call
func (u *UI) SetIdle() {
	u.updateStatus(clicker.Idle)
}

func (u *UI) SetClicking() {
	u.updateStatus(clicker.Clicking)
}

// Run starts the tray event loop and calls start once the menu exists. It
// blocks until Quit is called and MUST run on the main thread.
func (u *UI) Run(start func()) {
	systray.Run(func() {
		u.onReady()
		go start()
	}, u.onExit)
}

// Quit ends the tray event loop, making Run return.
func (u *UI) Quit() {
	systray.Quit()
}

func (u *UI) onReady() {
	systray.SetTooltip("Auto clicker")

	u.mStatus = systray.AddMenuItem("", "Current state")
	u.mStatus.Disable()
	u.mToggle = systray.AddMenuItem("", "Start or stop clicking")
	systray.AddSeparator()

	if u.app != nil {
		hint := systray.AddMenuItem("Toggle: "+u.app.ToggleHotkey().Describe(), "Toggle hotkey")
		hint.Disable()
		if exit := u.app.ExitHotkey(); exit != nil {
			exitHint := systray.AddMenuItem("Exit: "+exit.Describe(), "Exit hotkey")
			exitHint.Disable()
		}
		systray.AddSeparator()
	}

	mAbout := systray.AddMenuItem("About", "About autoclicker")
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	close(u.ready)
	u.updateStatus(clicker.Idle)

	// Event loop
	go u.handleEvents(mAbout, mQuit)
}

func (u *UI) handleEvents(mAbout, mQuit *systray.MenuItem) {
	for {
		select {
		case <-u.mToggle.ClickedCh:
			if u.app != nil {
				u.app.Toggle()
			}
		case <-mAbout.ClickedCh:
			u.log.Info().Str("version", u.version).Msg("autoclicker")
		case <-mQuit.ClickedCh:
			u.log.Info().Msg("Quit selected from tray")
			if u.app != nil {
				u.app.RequestExit()
			} else {
				systray.Quit()
			}
			return
		}
	}
}

func (u *UI) onExit() {
	// Cleanup
}

// updateStatus sets the tray title and menu labels for s. Calls made before
// the menu exists are ignored; onReady paints the initial state.
func (u *UI) updateStatus(s clicker.State) {
	select {
	case <-u.ready:
	default:
		return
	}

	systray.SetTitle(fmt.Sprintf("🖱 %s", emojiForState(s)))
	u.mStatus.SetTitle(statusLabel(s))
	u.mToggle.SetTitle(toggleLabel(s))
}

// emojiForState returns the appropriate status emoji
func emojiForState(s clicker.State) string {
	switch s {
	case clicker.Clicking:
		return "🔴" // Red - clicking
	default:
		return "🟢" // Green - idle
	}
}

func statusLabel(s clicker.State) string {
	if s == clicker.Clicking {
		return "Status: clicking"
	}
	return "Status: idle"
}

func toggleLabel(s clicker.State) string {
	if s == clicker.Clicking {
		return "Stop clicking"
	}
	return "Start clicking"
}
