//go:build linux

package oshotkey

// RunOnMainThread runs fn directly; X11 hotkeys have no main-thread requirement.
func RunOnMainThread(fn func()) {
	fn()
}
