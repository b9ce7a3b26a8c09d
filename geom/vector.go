package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector3D is a free displacement in 3D space.
type Vector3D struct {
	X, Y, Z Scalar
}

func V(x, y, z Scalar) Vector3D { return Vector3D{X: x, Y: y, Z: z} }

func (v Vector3D) Components() (x, y, z Scalar) { return v.X, v.Y, v.Z }
func (v Vector3D) W() Scalar                    { return 0 }

func (v Vector3D) Add(o Vector3D) Vector3D { return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3D) Sub(o Vector3D) Vector3D { return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3D) Negate() Vector3D        { return Vector3D{-v.X, -v.Y, -v.Z} }
func (v Vector3D) Scale(s Scalar) Vector3D { return Vector3D{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3D) Dot(o Vector3D) Scalar   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3D) Magnitude() Scalar       { return math32.Sqrt(v.Dot(v)) }

// Div divides every component by s.
func (v Vector3D) Div(s Scalar) (Vector3D, error) {
	if s == 0 {
		return Vector3D{}, fmt.Errorf("divide %v: %w", v, ErrZeroDivisor)
	}
	return Vector3D{v.X / s, v.Y / s, v.Z / s}, nil
}

// Normalize returns the unit vector pointing the same way as v.
func (v Vector3D) Normalize() (Vector3D, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector3D{}, fmt.Errorf("normalize %v: %w", v, ErrZeroVector)
	}
	return Vector3D{v.X / m, v.Y / m, v.Z / m}, nil
}

// Cross is the right-handed cross product v × o.
func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3D) Equal(o Vector3D) bool {
	return ApproxEqual(v.X, o.X) && ApproxEqual(v.Y, o.Y) && ApproxEqual(v.Z, o.Z)
}

func (v Vector3D) String() string {
	return fmt.Sprintf("vector(%g, %g, %g)", v.X, v.Y, v.Z)
}
