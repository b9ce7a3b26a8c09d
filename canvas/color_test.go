package canvas

import (
	"errors"
	"image/color"
	"testing"

	"raytray/geom"
)

func TestSimilarColorsAreEqual(t *testing.T) {
	c1 := RGB(0.3489778009, 1.097864356, 0.03747588)
	c2 := RGB(0.3489, 1.0978, 0.0374)
	if !c1.Equal(c2) {
		t.Fatalf("%v != %v", c1, c2)
	}
	if RGB(0.3, 0.5, 0.5).Equal(RGB(0.2, 0.5, 0.5)) {
		t.Fatalf("distinct colors compared equal")
	}
	if RGB(0.2, 0.5, 0.5).Equal(RGB(0.3, 0.5, 0.5)) {
		t.Fatalf("equality must be symmetric")
	}
}

func TestConstructorsClampAboveOnly(t *testing.T) {
	c := RGBA(1.5, -0.5, 0.25, 2)
	if c.R != 1 || c.G != -0.5 || c.B != 0.25 || c.A != 1 {
		t.Fatalf("RGBA clamp = %v", c)
	}
	if RGB(0, 0, 0).A != 1 {
		t.Fatalf("RGB must be opaque")
	}
}

func TestColorArithmetic(t *testing.T) {
	if got := RGB(0.5, 0.5, 0.5).Add(RGB(0.25, 0.25, 0.25)); !got.Equal(RGB(0.75, 0.75, 0.75)) {
		t.Fatalf("add = %v", got)
	}
	if got := RGB(0.9, 0.6, 0.75).Sub(RGB(0.7, 0.1, 0.25)); !got.Equal(RGB(0.2, 0.5, 0.5)) {
		t.Fatalf("sub = %v", got)
	}
	if got := RGB(0.34, 0.56, 0).Mul(RGB(0.34, 1, 0)); !got.Equal(RGB(0.1156, 0.56, 0)) {
		t.Fatalf("hadamard = %v", got)
	}
	if got := RGB(0.2, 0.3, 0.4).Scale(2); !got.Equal(RGB(0.4, 0.6, 0.8)) {
		t.Fatalf("scale = %v", got)
	}
	got, err := RGB(0.4, 0.6, 0.8).Div(2)
	if err != nil {
		t.Fatalf("div: %v", err)
	}
	if !got.Equal(RGB(0.2, 0.3, 0.4)) {
		t.Fatalf("div = %v", got)
	}
}

func TestColorArithmeticResetsAlpha(t *testing.T) {
	got := RGBA(0.1, 0.1, 0.1, 0.2).Add(RGBA(0.1, 0.1, 0.1, 0.3))
	if got.A != 1 {
		t.Fatalf("alpha = %v, want 1", got.A)
	}
}

func TestNegativeIntermediateSurvives(t *testing.T) {
	diff := RGB(0.1, 0.2, 0.3).Sub(RGB(0.5, 0.5, 0.5))
	if !diff.Equal(RGB(-0.4, -0.3, -0.2)) {
		t.Fatalf("sub = %v", diff)
	}
	if got := diff.Add(RGB(0.5, 0.5, 0.5)); !got.Equal(RGB(0.1, 0.2, 0.3)) {
		t.Fatalf("recomposed = %v", got)
	}
}

func TestColorDivByZero(t *testing.T) {
	if _, err := White.Div(0); !errors.Is(err, geom.ErrZeroDivisor) {
		t.Fatalf("err = %v, want ErrZeroDivisor", err)
	}
}

func TestBytes(t *testing.T) {
	cases := []struct {
		c    Color
		want [3]uint8
	}{
		{Black, [3]uint8{0, 0, 0}},
		{White, [3]uint8{255, 255, 255}},
		{RGB(1.5, 0, 0), [3]uint8{255, 0, 0}},
		{RGB(-0.5, 0.5, 0.2), [3]uint8{0, 128, 51}},
		{RGB(0, 0.0019, 0.0021), [3]uint8{0, 0, 1}},
	}
	for _, tc := range cases {
		if got := tc.c.Bytes(); got != tc.want {
			t.Fatalf("%v bytes = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestImageColorInterop(t *testing.T) {
	in := color.RGBA{R: 255, G: 0, B: 51, A: 255}
	c := FromRGBA(in)
	if !c.Equal(RGB(1, 0, 0.2)) {
		t.Fatalf("FromRGBA = %v", c)
	}
	if got := c.NRGBA(); got != (color.NRGBA{R: 255, G: 0, B: 51, A: 255}) {
		t.Fatalf("NRGBA = %v", got)
	}
	var _ color.Color = c
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 51*0x101 || a != 0xffff {
		t.Fatalf("RGBA() = %d %d %d %d", r, g, b, a)
	}
	if got := c.ToRGBA(); got != in {
		t.Fatalf("ToRGBA = %v, want %v", got, in)
	}
}
