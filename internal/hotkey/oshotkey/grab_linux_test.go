package oshotkey

import (
	"errors"
	"testing"
	"time"

	"github.com/petems/autoclicker/internal/hotkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xhotkey "golang.design/x/hotkey"
)

// The library grabs on its own X connection, so it acts as another client.
func TestCheckAvailableReportsGrabbedKey(t *testing.T) {
	combo, err := hotkey.ParseCombo("ctrl+shift+alt+f19")
	require.NoError(t, err)
	mods, key, err := nativeCombo(combo)
	require.NoError(t, err)

	require.NoError(t, checkAvailable(combo, mods, key), "key should be free before the grab")

	other := xhotkey.New(mods, key)
	require.NoError(t, other.Register())
	// other is never unregistered: X11 Unregister blocks until a keystroke.

	var conflict *hotkey.ConflictError
	require.Eventually(t, func() bool {
		err := checkAvailable(combo, mods, key)
		return errors.As(err, &conflict)
	}, 2*time.Second, 20*time.Millisecond)
	assert.ErrorIs(t, conflict, hotkey.ErrConflict)
	assert.Equal(t, combo, conflict.Combo)
}

func TestRegisterReportsConflictFromAnotherClient(t *testing.T) {
	combo, err := hotkey.ParseCombo("ctrl+shift+alt+f18")
	require.NoError(t, err)
	mods, key, err := nativeCombo(combo)
	require.NoError(t, err)

	other := xhotkey.New(mods, key)
	require.NoError(t, other.Register())
	require.Eventually(t, func() bool {
		return checkAvailable(combo, mods, key) != nil
	}, 2*time.Second, 20*time.Millisecond)

	m, err := New()
	require.NoError(t, err)
	defer m.Close()

	err = m.Register(combo, func(bool) {})
	assert.ErrorIs(t, err, hotkey.ErrConflict)
}

func TestCloseDoesNotWaitForX11(t *testing.T) {
	combo, err := hotkey.ParseCombo("ctrl+shift+alt+f17")
	require.NoError(t, err)

	m, err := New()
	require.NoError(t, err)
	require.NoError(t, m.Register(combo, func(bool) {}))

	start := time.Now()
	require.NoError(t, m.Close())
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
