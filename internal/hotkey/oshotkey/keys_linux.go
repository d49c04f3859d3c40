//go:build linux

package oshotkey

import (
	"github.com/petems/autoclicker/internal/hotkey"
	xhotkey "golang.design/x/hotkey"
)

var modifierMap = map[hotkey.Modifier]xhotkey.Modifier{
	hotkey.ModCtrl:  xhotkey.ModCtrl,
	hotkey.ModShift: xhotkey.ModShift,
	hotkey.ModAlt:   xhotkey.Mod1,
	hotkey.ModSuper: xhotkey.Mod4,
}

// X11 keysyms
var platformKeys = map[string]xhotkey.Key{
	"0": 0x30,
	"1": 0x31,
	"2": 0x32,
	"3": 0x33,
	"4": 0x34,
	"5": 0x35,
	"6": 0x36,
	"7": 0x37,
	"8": 0x38,
	"9": 0x39,

	"tab":         0xff09,
	"backspace":   0xff08,
	"pause":       0xff13,
	"scrolllock":  0xff14,
	"home":        0xff50,
	"pageup":      0xff55,
	"pagedown":    0xff56,
	"end":         0xff57,
	"printscreen": 0xff61,
	"insert":      0xff63,
	"menu":        0xff67,
	"f21":         0xffd2,
	"f22":         0xffd3,
	"f23":         0xffd4,
	"f24":         0xffd5,
	"capslock":    0xffe5,
	"delete":      0xffff,
}
