//go:build windows

package oshotkey

import (
	"github.com/petems/autoclicker/internal/hotkey"
	xhotkey "golang.design/x/hotkey"
)

var modifierMap = map[hotkey.Modifier]xhotkey.Modifier{
	hotkey.ModCtrl:  xhotkey.ModCtrl,
	hotkey.ModShift: xhotkey.ModShift,
	hotkey.ModAlt:   xhotkey.ModAlt,
	hotkey.ModSuper: xhotkey.ModWin,
}

// virtual-key codes
var platformKeys = map[string]xhotkey.Key{
	"0": xhotkey.Key0,
	"1": xhotkey.Key1,
	"2": xhotkey.Key2,
	"3": xhotkey.Key3,
	"4": xhotkey.Key4,
	"5": xhotkey.Key5,
	"6": xhotkey.Key6,
	"7": xhotkey.Key7,
	"8": xhotkey.Key8,
	"9": xhotkey.Key9,

	"tab":         xhotkey.KeyTab,
	"delete":      xhotkey.KeyDelete,
	"backspace":   0x08,
	"pause":       0x13,
	"capslock":    0x14,
	"pageup":      0x21,
	"pagedown":    0x22,
	"end":         0x23,
	"home":        0x24,
	"printscreen": 0x2C,
	"insert":      0x2D,
	"menu":        0x5D,
	"f21":         0x84,
	"f22":         0x85,
	"f23":         0x86,
	"f24":         0x87,
	"scrolllock":  0x91,
}
