//go:build linux

package oshotkey

/*
#cgo pkg-config: x11
#include <X11/Xlib.h>

static int grabDenied;

static int recordGrabError(Display* d, XErrorEvent* e) {
    if (e->error_code == BadAccess) {
        grabDenied = 1;
    }
    return 0;
}

// tryGrab grabs and releases the key once. It returns 1 if the grab
// succeeded, 0 if another client holds it, -1 without a display and -2 if
// the keysym is not on the keyboard.
int tryGrab(unsigned int mod, unsigned long keysym) {
    Display* d = XOpenDisplay(NULL);
    if (d == NULL) return -1;

    Window root = DefaultRootWindow(d);
    int keycode = XKeysymToKeycode(d, (KeySym)keysym);
    if (keycode == 0) {
        XCloseDisplay(d);
        return -2;
    }

    grabDenied = 0;
    XErrorHandler prev = XSetErrorHandler(recordGrabError);
    XGrabKey(d, keycode, mod, root, False, GrabModeAsync, GrabModeAsync);
    XSync(d, False);
    int ok = !grabDenied;
    if (ok) {
        XUngrabKey(d, keycode, mod, root);
        XSync(d, False);
    }
    XSetErrorHandler(prev);
    XCloseDisplay(d);
    return ok;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/petems/autoclicker/internal/hotkey"
	xhotkey "golang.design/x/hotkey"
)

// The X11 listener only sees its cancellation after the next stroke of the
// combination, so Unregister is not waited for. The grab goes away on that
// stroke or when the process exits.
const releaseWait time.Duration = 0

var (
	errGrabbed   = errors.New("grabbed by another X client")
	errNoDisplay = errors.New("cannot open X display")
)

// grabMu guards the process-wide Xlib error handler.
var grabMu sync.Mutex

// checkAvailable grabs the key synchronously before the library does. The
// library grabs from a background thread, where a BadAccess error would
// abort the process instead of being reported.
func checkAvailable(combo hotkey.Combo, mods []xhotkey.Modifier, key xhotkey.Key) error {
	var mask xhotkey.Modifier
	for _, m := range mods {
		mask |= m
	}

	grabMu.Lock()
	defer grabMu.Unlock()

	switch C.tryGrab(C.uint(mask), C.ulong(key)) {
	case 1:
		return nil
	case 0:
		return &hotkey.ConflictError{Combo: combo, Err: errGrabbed}
	case -2:
		return fmt.Errorf("hotkey %s: %w: keysym %#x has no keycode", combo, hotkey.ErrUnsupportedKey, uint16(key))
	default:
		return fmt.Errorf("hotkey %s: %w", combo, errNoDisplay)
	}
}
