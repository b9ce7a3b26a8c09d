package canvas

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Display)(nil)

// Display adapts a Canvas to drivers.Displayer so tinyfont can draw on it.
//
// Display coordinates are screen oriented (y=0 is the top row). The first
// out-of-range write is kept, later writes are skipped, and Display returns
// that error.
type Display struct {
	c   *Canvas
	err error
}

func NewDisplay(c *Canvas) *Display {
	return &Display{c: c}
}

func (d *Display) Size() (x, y int16) {
	return clampInt16(d.c.width), clampInt16(d.c.height)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.err != nil {
		return
	}
	px := Pixel{X: int(x), Y: d.c.height - 1 - int(y)}
	if err := d.c.SetPixel(px, FromRGBA(c)); err != nil {
		d.err = err
	}
}

// Display reports the first failed write, if any.
func (d *Display) Display() error {
	return d.err
}

func clampInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}
