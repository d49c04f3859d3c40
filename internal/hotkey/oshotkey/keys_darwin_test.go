package oshotkey

import xhotkey "golang.design/x/hotkey"

var wantKeys = map[string]xhotkey.Key{
	"0":         29,
	"1":         18,
	"9":         25,
	"a":         0x00,
	"p":         0x23,
	"tab":       0x30,
	"esc":       0x35,
	"enter":     0x24,
	"space":     49,
	"backspace": 0x33,
	"delete":    0x75,
}
