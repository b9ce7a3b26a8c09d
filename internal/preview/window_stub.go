//go:build !cgo

package preview

import (
	"context"

	"raytray/canvas"
)

func Run(_ context.Context, _ *canvas.Canvas, _ StepFunc, _ Options) error {
	return ErrNoWindow
}
