package hotkey

// PressGate turns a raw stream of key-down/key-up events into one press and
// one release per physical key stroke. Auto-repeat produces extra key-down
// events on some platforms; they are swallowed until the next key-up.
type PressGate struct {
	held bool
}

// Down reports whether a key-down event starts a new press.
func (g *PressGate) Down() bool {
	if g.held {
		return false
	}
	g.held = true
	return true
}

// Up reports whether a key-up event ends a press.
func (g *PressGate) Up() bool {
	if !g.held {
		return false
	}
	g.held = false
	return true
}
