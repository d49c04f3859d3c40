//go:build darwin

package oshotkey

import (
	"github.com/petems/autoclicker/internal/hotkey"
	xhotkey "golang.design/x/hotkey"
)

var modifierMap = map[hotkey.Modifier]xhotkey.Modifier{
	hotkey.ModCtrl:  xhotkey.ModCtrl,
	hotkey.ModShift: xhotkey.ModShift,
	hotkey.ModAlt:   xhotkey.ModOption,
	hotkey.ModSuper: xhotkey.ModCmd,
}

// Carbon virtual key codes. Mac keyboards have no F21-F24, pause,
// scroll lock, print screen or menu key, and caps lock cannot be grabbed.
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

	"tab":       xhotkey.KeyTab,
	"backspace": 0x33,
	"insert":    0x72,
	"home":      0x73,
	"pageup":    0x74,
	"delete":    0x75,
	"end":       0x77,
	"pagedown":  0x79,
}
