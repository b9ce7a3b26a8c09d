// Package ppm encodes a canvas as a plain-text PPM (P3) image.
//
// The format is a three-line header followed by every channel byte in
// decimal, separated by single spaces and wrapped so that no line is longer
// than 70 characters:
//
//	P3
//	<width> <height>
//	255
//	255 0 0 0 128 255 ...
//
// Rows are written top to bottom in screen orientation, which means the
// canvas's last row (highest y) comes first.
package ppm

import (
	"io"
	"strconv"
	"strings"

	"raytray/canvas"

	"github.com/mitchellh/go-wordwrap"
)

const (
	// MaxValue is the fixed maximum channel value in the header.
	MaxValue = 255
	// LineWidth is the longest body line a P3 reader must accept.
	LineWidth = 70
)

// Image is a read-only P3 document: dimensions plus one RGB triple per pixel.
type Image struct {
	width  int
	height int
	body   []byte
}

// FromCanvas snapshots c. Later changes to c do not affect the image.
func FromCanvas(c *canvas.Canvas) *Image {
	w, h := c.Width(), c.Height()
	body := make([]byte, 0, w*h*3)
	c.ScanRows(func(_ int, row []canvas.Color) {
		for _, col := range row {
			b := col.Bytes()
			body = append(body, b[0], b[1], b[2])
		}
	})
	return &Image{width: w, height: h, body: body}
}

func (m *Image) Width() int  { return m.width }
func (m *Image) Height() int { return m.height }

// Body returns the RGB triples in scan order. The slice must not be modified.
func (m *Image) Body() []byte { return m.body }

// Len is the number of pixels.
func (m *Image) Len() int      { return len(m.body) / 3 }
func (m *Image) IsEmpty() bool { return m.Len() == 0 }

func (m *Image) Header() string {
	return "P3\n" + strconv.Itoa(m.width) + " " + strconv.Itoa(m.height) + "\n" + strconv.Itoa(MaxValue)
}

// String renders the whole document, trailing newline included.
func (m *Image) String() string {
	values := make([]string, len(m.body))
	for i, b := range m.body {
		values[i] = strconv.Itoa(int(b))
	}
	var sb strings.Builder
	sb.WriteString(m.Header())
	sb.WriteByte('\n')
	sb.WriteString(wordwrap.WrapString(strings.Join(values, " "), LineWidth))
	sb.WriteByte('\n')
	return sb.String()
}

// WriteTo implements io.WriterTo.
func (m *Image) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}

// Encode writes c to w as a P3 document.
func Encode(w io.Writer, c *canvas.Canvas) error {
	_, err := FromCanvas(c).WriteTo(w)
	return err
}
