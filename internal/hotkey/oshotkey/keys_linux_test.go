package oshotkey

import xhotkey "golang.design/x/hotkey"

var wantKeys = map[string]xhotkey.Key{
	"0":         0x30,
	"1":         0x31,
	"5":         0x35,
	"9":         0x39,
	"a":         0x61,
	"p":         0x70,
	"tab":       0xff09,
	"esc":       0xff1b,
	"enter":     0xff0d,
	"space":     0x20,
	"backspace": 0xff08,
	"delete":    0xffff,
	"left":      0xff51,
	"f1":        0xffbe,
	"f12":       0xffc9,
	"f24":       0xffd5,
}
