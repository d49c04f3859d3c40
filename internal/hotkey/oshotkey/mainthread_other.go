//go:build !linux

package oshotkey

import "golang.design/x/hotkey/mainthread"

// RunOnMainThread runs fn while the main thread services the OS event loop.
// The caller must be on the main goroutine with runtime.LockOSThread held.
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}
