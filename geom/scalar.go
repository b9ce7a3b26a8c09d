package geom

import (
	"errors"

	"github.com/chewxy/math32"
)

// Scalar is the numeric type of every geometric component.
type Scalar = float32

// Epsilon is the tolerance of every approximate comparison in raytray.
const Epsilon Scalar = 1e-4

var (
	ErrZeroDivisor   = errors.New("division by zero")
	ErrZeroVector    = errors.New("zero-length vector")
	ErrIndexRange    = errors.New("matrix index out of range")
	ErrNotInvertible = errors.New("matrix is not invertible")
)

// ApproxEqual reports whether a and b differ by at most Epsilon.
func ApproxEqual(a, b Scalar) bool {
	return math32.Abs(a-b) <= Epsilon
}

// Tuple is implemented by Point3D and Vector3D.
type Tuple interface {
	Components() (x, y, z Scalar)
	// W is the implicit homogeneous coordinate: 1 for points, 0 for vectors.
	W() Scalar
}
