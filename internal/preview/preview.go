// Package preview shows a canvas in a desktop window while it is drawn.
package preview

import (
	"errors"
	"image"

	"raytray/canvas"
	"raytray/internal/buildinfo"

	"golang.org/x/image/draw"
)

var ErrNoWindow = errors.New("preview window requires cgo (build with CGO_ENABLED=1)")

// Options controls the preview window.
type Options struct {
	// Title defaults to "raytray (<version>)".
	Title string
	// Scale is the integer zoom factor. Zero picks one that makes the
	// window roughly 960 pixels on its longer side.
	Scale int
	// TPS is the number of steps per second. Zero means 60.
	TPS int
}

// StepFunc advances the picture by one tick. Once it reports done it is not
// called again, and the window keeps showing the final canvas.
type StepFunc func() (done bool, err error)

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "raytray (" + buildinfo.Short() + ")"
	}
	if o.TPS <= 0 {
		o.TPS = 60
	}
	return o
}

// renderFrame upscales c into dst with nearest-neighbour sampling so single
// pixels stay crisp.
func renderFrame(dst *image.RGBA, c *canvas.Canvas) {
	src := c.NRGBA()
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

func frameScale(w, h, requested int) int {
	if requested > 0 {
		return requested
	}
	longest := max(w, h, 1)
	return max(1, 960/longest)
}
