// Package canvas holds colors and the pixel grid they are drawn into.
//
// A Canvas uses mathematical orientation: Pixel{0, 0} is the bottom-left
// cell and y grows upwards, matching the geometry in package geom. Everything
// that turns a canvas into a screen-oriented picture (the ppm encoder,
// NRGBA, Display) flips rows so low y ends up at the bottom of the image.
//
// Out-of-range pixels are errors everywhere; writes are never dropped.
package canvas

import (
	"errors"
	"fmt"
	"image"

	"raytray/geom"
)

var (
	ErrOutOfBounds = errors.New("pixel out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// Canvas is a width×height grid of colors stored row by row in one buffer.
type Canvas struct {
	width  int
	height int
	cells  []Color
}

// New returns a canvas with every cell opaque black.
func New(width, height int) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}
	c.Fill(Black)
	return c, nil
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Contains reports whether px addresses a cell.
func (c *Canvas) Contains(px Pixel) bool {
	return px.X >= 0 && px.X < c.width && px.Y >= 0 && px.Y < c.height
}

// InBounds reports whether p, rounded to a pixel, lies on the canvas.
func (c *Canvas) InBounds(p geom.Point3D) bool {
	return c.Contains(PixelAt(p))
}

func (c *Canvas) index(px Pixel) (int, error) {
	if !c.Contains(px) {
		return 0, fmt.Errorf("%v on %dx%d canvas: %w", px, c.width, c.height, ErrOutOfBounds)
	}
	return px.Y*c.width + px.X, nil
}

func (c *Canvas) SetPixel(px Pixel, col Color) error {
	i, err := c.index(px)
	if err != nil {
		return err
	}
	c.cells[i] = col
	return nil
}

func (c *Canvas) At(px Pixel) (Color, error) {
	i, err := c.index(px)
	if err != nil {
		return Color{}, err
	}
	return c.cells[i], nil
}

// Row returns a copy of row y, left to right.
func (c *Canvas) Row(y int) ([]Color, error) {
	if y < 0 || y >= c.height {
		return nil, fmt.Errorf("row %d on %dx%d canvas: %w", y, c.width, c.height, ErrOutOfBounds)
	}
	row := make([]Color, c.width)
	copy(row, c.cells[y*c.width:(y+1)*c.width])
	return row, nil
}

// ScanRows calls fn for every row in screen order, from y = height-1 down
// to 0. fn must not modify or retain row.
func (c *Canvas) ScanRows(fn func(y int, row []Color)) {
	for y := c.height - 1; y >= 0; y-- {
		fn(y, c.cells[y*c.width:(y+1)*c.width])
	}
}

func (c *Canvas) Fill(col Color) {
	for i := range c.cells {
		c.cells[i] = col
	}
}

func (c *Canvas) Clone() *Canvas {
	out := &Canvas{width: c.width, height: c.height, cells: make([]Color, len(c.cells))}
	copy(out.cells, c.cells)
	return out
}

// NRGBA renders the canvas in screen orientation (row 0 at the top).
func (c *Canvas) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	c.ScanRows(func(y int, row []Color) {
		off := (c.height - 1 - y) * img.Stride
		for x, col := range row {
			b := col.Bytes()
			p := img.Pix[off+x*4 : off+x*4+4]
			p[0], p[1], p[2], p[3] = b[0], b[1], b[2], 0xFF
		}
	})
	return img
}
