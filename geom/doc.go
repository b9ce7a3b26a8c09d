// Package geom provides the affine geometry kernel used by raytray.
//
// Points and vectors are distinct value types: a Point3D is a location and a
// Vector3D is a displacement. The implicit homogeneous coordinate (w=1 for
// points, w=0 for vectors) is never stored; it only decides whether the
// translation column of a Matrix applies.
//
//	Point3D − Point3D → Vector3D
//	Point3D + Vector3D → Point3D
//	Point3D − Vector3D → Point3D
//
// Adding two points has no meaning and does not compile.
//
// Every value is immutable: operations return new values. Equality is
// approximate within Epsilon so the types can serve as test oracles for
// float32 pipelines.
//
// Matrices are fixed 4×4, row-major. Determinant, cofactor and inverse are
// computed by cofactor expansion (4×4 → 3×3 → 2×2); this is exact enough and
// fast enough for the fixed size and is not meant to generalize to N×N.
//
// Precondition violations (division by zero, normalizing a zero vector,
// out-of-range submatrix indices, inverting a singular matrix) are reported
// as errors. No operation returns NaN silently.
package geom
