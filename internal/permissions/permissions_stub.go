//go:build !darwin

package permissions

// EnsurePermissions is a no-op on non-macOS platforms: Windows and X11 allow
// global hotkeys and synthetic input without a user grant.
func EnsurePermissions() error {
	return nil
}
