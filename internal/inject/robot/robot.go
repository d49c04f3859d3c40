// Package robot injects mouse clicks through robotgo.
package robot

import (
	"context"

	"github.com/go-vgo/robotgo"
	"github.com/petems/autoclicker/internal/inject"
)

type robotInjector struct{}

// New creates an injector that posts mouse events through robotgo
// (SendInput on Windows, CGEvent on macOS, XTest on X11).
func New() inject.Injector {
	return &robotInjector{}
}

func (r *robotInjector) LeftClick(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := robotgo.Toggle("left"); err != nil {
		return &inject.SyntheticInputError{Op: "left down", Err: err}
	}
	if err := robotgo.Toggle("left", "up"); err != nil {
		return &inject.SyntheticInputError{Op: "left up", Err: err}
	}
	return nil
}
