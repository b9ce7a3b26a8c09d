package geom

import "github.com/chewxy/math32"

// Translation moves points by offset and leaves vectors unchanged.
func Translation(offset Tuple) Matrix {
	x, y, z := offset.Components()
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

func Scaling(factor Tuple) Matrix {
	x, y, z := factor.Components()
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX rotates rad radians around the x axis; a quarter turn takes +y
// to +z.
func RotationX(rad Scalar) Matrix {
	c, s := math32.Cos(rad), math32.Sin(rad)
	return Matrix{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

func RotationY(rad Scalar) Matrix {
	c, s := math32.Cos(rad), math32.Sin(rad)
	return Matrix{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func RotationZ(rad Scalar) Matrix {
	c, s := math32.Cos(rad), math32.Sin(rad)
	return Matrix{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing moves each component in proportion to the other two: xy is the
// share of y added to x, and so on.
func Shearing(xy, xz, yx, yz, zx, zy Scalar) Matrix {
	return Matrix{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}
