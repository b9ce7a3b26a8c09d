package canvas

import (
	"fmt"
	"image/color"

	"raytray/geom"

	"github.com/chewxy/math32"
)

// Color is an RGBA color with float channels.
//
// Constructors clamp channels to at most 1.0 but never from below, so
// differences and products can go negative before the final byte export.
type Color struct {
	R, G, B, A geom.Scalar
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

func RGBA(r, g, b, a geom.Scalar) Color {
	return Color{R: min(r, 1), G: min(g, 1), B: min(b, 1), A: min(a, 1)}
}

// RGB returns an opaque color.
func RGB(r, g, b geom.Scalar) Color { return RGBA(r, g, b, 1) }

// FromRGBA converts an 8-bit color as used by tinygo drivers.
func FromRGBA(c color.RGBA) Color {
	return RGBA(geom.Scalar(c.R)/255, geom.Scalar(c.G)/255, geom.Scalar(c.B)/255, geom.Scalar(c.A)/255)
}

func (c Color) Add(o Color) Color { return RGB(c.R+o.R, c.G+o.G, c.B+o.B) }
func (c Color) Sub(o Color) Color { return RGB(c.R-o.R, c.G-o.G, c.B-o.B) }

// Mul is the Hadamard product used to blend light and surface colors.
func (c Color) Mul(o Color) Color { return RGB(c.R*o.R, c.G*o.G, c.B*o.B) }

func (c Color) Scale(s geom.Scalar) Color { return RGB(c.R*s, c.G*s, c.B*s) }

func (c Color) Div(s geom.Scalar) (Color, error) {
	if s == 0 {
		return Color{}, fmt.Errorf("divide %v: %w", c, geom.ErrZeroDivisor)
	}
	return RGB(c.R/s, c.G/s, c.B/s), nil
}

// Bytes converts r, g and b to 0..255, rounding to nearest.
func (c Color) Bytes() [3]uint8 {
	return [3]uint8{toByte(c.R), toByte(c.G), toByte(c.B)}
}

func toByte(v geom.Scalar) uint8 {
	v = math32.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (c Color) Equal(o Color) bool {
	return geom.ApproxEqual(c.R, o.R) &&
		geom.ApproxEqual(c.G, o.G) &&
		geom.ApproxEqual(c.B, o.B) &&
		geom.ApproxEqual(c.A, o.A)
}

// NRGBA returns the 8-bit non-premultiplied form of c.
func (c Color) NRGBA() color.NRGBA {
	b := c.Bytes()
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: toByte(c.A)}
}

// ToRGBA returns the premultiplied 8-bit form used by display drivers.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) { return c.NRGBA().RGBA() }

func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}
