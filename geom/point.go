package geom

import "fmt"

// Point3D is a fixed location in 3D space.
type Point3D struct {
	X, Y, Z Scalar
}

func P(x, y, z Scalar) Point3D { return Point3D{X: x, Y: y, Z: z} }

func (p Point3D) Components() (x, y, z Scalar) { return p.X, p.Y, p.Z }
func (p Point3D) W() Scalar                    { return 1 }

// Add moves p by v.
func (p Point3D) Add(v Vector3D) Point3D { return Point3D{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// Sub returns the displacement from o to p.
func (p Point3D) Sub(o Point3D) Vector3D { return Vector3D{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// SubVector moves p by -v.
func (p Point3D) SubVector(v Vector3D) Point3D { return Point3D{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }

// Translate applies Translation(offset) to p.
func (p Point3D) Translate(offset Tuple) Point3D {
	return Translation(offset).MulPoint(p)
}

func (p Point3D) Equal(o Point3D) bool {
	return ApproxEqual(p.X, o.X) && ApproxEqual(p.Y, o.Y) && ApproxEqual(p.Z, o.Z)
}

func (p Point3D) String() string {
	return fmt.Sprintf("point(%g, %g, %g)", p.X, p.Y, p.Z)
}
