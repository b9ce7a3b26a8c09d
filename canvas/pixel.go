package canvas

import (
	"fmt"

	"raytray/geom"

	"github.com/chewxy/math32"
)

// Pixel is a (column, row) canvas index. Row 0 is the bottom row.
type Pixel struct {
	X, Y int
}

// PixelAt rounds p's x and y to the nearest integers, halves away from zero.
func PixelAt(p geom.Point3D) Pixel {
	return Pixel{X: int(math32.Round(p.X)), Y: int(math32.Round(p.Y))}
}

func (px Pixel) String() string { return fmt.Sprintf("(%d, %d)", px.X, px.Y) }
