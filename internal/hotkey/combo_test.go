package hotkey

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComboValid(t *testing.T) {
	tests := []struct {
		input string
		want  Combo
		canon string
	}{
		{"ctrl+alt+p", Combo{Mods: ModCtrl | ModAlt, Key: "p"}, "ctrl+alt+p"},
		{"f6", Combo{Key: "f6"}, "f6"},
		{"F24", Combo{Key: "f24"}, "f24"},
		{"CTRL+ALT+Q", Combo{Mods: ModCtrl | ModAlt, Key: "q"}, "ctrl+alt+q"},
		{" shift + tab ", Combo{Mods: ModShift, Key: "tab"}, "shift+tab"},
		{"p+alt+ctrl", Combo{Mods: ModCtrl | ModAlt, Key: "p"}, "ctrl+alt+p"},
		{"cmd+space", Combo{Mods: ModSuper, Key: "space"}, "super+space"},
		{"win+shift+1", Combo{Mods: ModSuper | ModShift, Key: "1"}, "shift+super+1"},
		{"option+enter", Combo{Mods: ModAlt, Key: "enter"}, "alt+enter"},
		{"control+return", Combo{Mods: ModCtrl, Key: "enter"}, "ctrl+enter"},
		{"ctrl+spacebar", Combo{Mods: ModCtrl, Key: "space"}, "ctrl+space"},
		{"alt+left", Combo{Mods: ModAlt, Key: "left"}, "alt+left"},
		{"ctrl+page_down", Combo{Mods: ModCtrl, Key: "pagedown"}, "ctrl+pagedown"},
		{"escape", Combo{Key: "esc"}, "esc"},
		{"meta+apps", Combo{Mods: ModSuper, Key: "menu"}, "super+menu"},
		{"ctrl+shift+alt+super+z", Combo{Mods: ModCtrl | ModShift | ModAlt | ModSuper, Key: "z"}, "ctrl+alt+shift+super+z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCombo(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.canon, got.String())

			again, err := ParseCombo(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again, "canonical form should parse to the same combo")
		})
	}
}

func TestParseComboInvalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"+",
		"ctrl++p",
		"ctrl+",
		"ctrl+alt",
		"ctrl+ctrl+p",
		"cmd+win+p",
		"option+alt+p",
		"ctrl+hyper+p",
		"a+b",
		"f0",
		"f25",
		"f07",
		"ctrl+!",
		"ctrl+pp",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCombo(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCombo))

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, input, syntaxErr.Input)
		})
	}
}

func TestComboDescribe(t *testing.T) {
	c, err := ParseCombo("alt+ctrl+p")
	require.NoError(t, err)
	assert.Equal(t, "CTRL + ALT + P", c.Describe())

	c, err = ParseCombo("f6")
	require.NoError(t, err)
	assert.Equal(t, "F6", c.Describe())
}

func TestComboModifiers(t *testing.T) {
	c := Combo{Mods: ModSuper | ModCtrl | ModShift, Key: "k"}
	assert.True(t, c.Has(ModCtrl|ModShift))
	assert.False(t, c.Has(ModAlt))
	assert.Equal(t, []Modifier{ModCtrl, ModShift, ModSuper}, c.Modifiers())
	assert.Empty(t, Combo{Key: "f6"}.Modifiers())

	assert.Equal(t, "alt", ModAlt.String())
	assert.Equal(t, "super", ModSuper.String())
}

func TestConflictErrorMatchesSentinel(t *testing.T) {
	osErr := errors.New("RegisterHotKey failed")
	err := error(&ConflictError{Combo: Combo{Key: "f6"}, Err: osErr})

	assert.True(t, errors.Is(err, ErrConflict))
	assert.True(t, errors.Is(err, osErr))
	assert.Contains(t, err.Error(), "f6")
}
