package hotkey

// Manager defines the interface for global hotkey management.
//
// The callback receives pressed=true once per physical press and
// pressed=false when the combination is released. Key auto-repeat never
// produces a second pressed=true.
type Manager interface {
	Register(combo Combo, callback func(pressed bool)) error
	Unregister(combo Combo) error
	Close() error
}
