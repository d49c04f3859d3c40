package hotkey

import (
	"strconv"
	"strings"
)

// Modifier is a bit set of modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModSuper
)

// canonical order used by String and Describe
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModShift, "shift"},
	{ModSuper, "super"},
}

var modifierAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
	"cmd":     ModSuper,
	"win":     ModSuper,
	"super":   ModSuper,
	"meta":    ModSuper,
}

// keyAliases maps accepted spellings to canonical key names.
var keyAliases = map[string]string{
	"tab":          "tab",
	"space":        "space",
	"spacebar":     "space",
	"enter":        "enter",
	"return":       "enter",
	"esc":          "esc",
	"escape":       "esc",
	"backspace":    "backspace",
	"delete":       "delete",
	"del":          "delete",
	"home":         "home",
	"end":          "end",
	"pageup":       "pageup",
	"page_up":      "pageup",
	"pagedown":     "pagedown",
	"page_down":    "pagedown",
	"insert":       "insert",
	"pause":        "pause",
	"break":        "pause",
	"capslock":     "capslock",
	"caps_lock":    "capslock",
	"scrolllock":   "scrolllock",
	"scroll_lock":  "scrolllock",
	"printscreen":  "printscreen",
	"print_screen": "printscreen",
	"menu":         "menu",
	"apps":         "menu",
	"left":         "left",
	"right":        "right",
	"up":           "up",
	"down":         "down",
}

// Combo is a parsed key combination: a set of modifiers plus one primary key.
type Combo struct {
	Mods Modifier
	Key  string
}

// ParseCombo parses strings such as "ctrl+alt+p" or "f6".
//
// Tokens are joined by '+', matched case-insensitively and may appear in any
// order, but exactly one of them must be a primary key.
func ParseCombo(s string) (Combo, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return Combo{}, &SyntaxError{Input: s, Reason: "empty combination"}
	}

	var c Combo
	for _, raw := range strings.Split(input, "+") {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			return Combo{}, &SyntaxError{Input: s, Reason: "empty key name"}
		}

		if mod, ok := modifierAliases[token]; ok {
			if c.Mods&mod != 0 {
				return Combo{}, &SyntaxError{Input: s, Reason: "duplicate modifier " + strconv.Quote(token)}
			}
			c.Mods |= mod
			continue
		}

		key, ok := canonicalKey(token)
		if !ok {
			return Combo{}, &SyntaxError{Input: s, Reason: "unknown key " + strconv.Quote(token)}
		}
		if c.Key != "" {
			return Combo{}, &SyntaxError{Input: s, Reason: "more than one non-modifier key"}
		}
		c.Key = key
	}

	if c.Key == "" {
		return Combo{}, &SyntaxError{Input: s, Reason: "missing non-modifier key"}
	}
	return c, nil
}

func canonicalKey(token string) (string, bool) {
	if name, ok := keyAliases[token]; ok {
		return name, true
	}
	if len(token) == 1 {
		ch := token[0]
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			return token, true
		}
		return "", false
	}
	if n, ok := functionKey(token); ok {
		return "f" + strconv.Itoa(n), true
	}
	return "", false
}

// functionKey returns the number of an "f1".."f24" token.
func functionKey(token string) (int, bool) {
	if len(token) < 2 || token[0] != 'f' {
		return 0, false
	}
	digits := token[1:]
	if digits[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > 24 {
		return 0, false
	}
	return n, true
}

// Has reports whether every modifier in m is part of the combination.
func (c Combo) Has(m Modifier) bool {
	return c.Mods&m == m
}

// Modifiers returns the combination's modifiers in canonical order.
func (c Combo) Modifiers() []Modifier {
	var mods []Modifier
	for _, m := range modifierOrder {
		if c.Has(m.mod) {
			mods = append(mods, m.mod)
		}
	}
	return mods
}

// String returns the canonical name of a single modifier.
func (m Modifier) String() string {
	for _, o := range modifierOrder {
		if o.mod == m {
			return o.name
		}
	}
	return "mod(" + strconv.Itoa(int(m)) + ")"
}

// String returns the canonical form, e.g. "ctrl+alt+p".
func (c Combo) String() string {
	parts := make([]string, 0, 5)
	for _, m := range c.Modifiers() {
		parts = append(parts, m.String())
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}

// Describe returns a display form such as "CTRL + ALT + P".
func (c Combo) Describe() string {
	return strings.ToUpper(strings.ReplaceAll(c.String(), "+", " + "))
}
