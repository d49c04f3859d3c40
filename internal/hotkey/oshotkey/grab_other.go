//go:build !linux

package oshotkey

import (
	"time"

	"github.com/petems/autoclicker/internal/hotkey"
	xhotkey "golang.design/x/hotkey"
)

const releaseWait = time.Second

// checkAvailable is a no-op: RegisterHotKey and RegisterEventHotKey report
// conflicts from Register itself.
func checkAvailable(hotkey.Combo, []xhotkey.Modifier, xhotkey.Key) error {
	return nil
}
