package oshotkey

import xhotkey "golang.design/x/hotkey"

var wantKeys = map[string]xhotkey.Key{
	"0":         0x30,
	"1":         0x31,
	"9":         0x39,
	"a":         0x41,
	"p":         0x50,
	"tab":       0x09,
	"esc":       0x1B,
	"enter":     0x0D,
	"space":     0x20,
	"backspace": 0x08,
	"f1":        0x70,
	"f24":       0x87,
}
