package geom

import "fmt"

// Matrix is a row-major 4×4 affine transform: m[row][col].
type Matrix [4][4]Scalar

// NewMatrix builds a matrix from its rows.
func NewMatrix(rows [4][4]Scalar) Matrix { return Matrix(rows) }

// Identity returns the 4×4 identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns m × o. Used as a transform, o is applied first.
func (m Matrix) Mul(o Matrix) Matrix {
	var out Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][col] =
				m[row][0]*o[0][col] +
					m[row][1]*o[1][col] +
					m[row][2]*o[2][col] +
					m[row][3]*o[3][col]
		}
	}
	return out
}

// apply multiplies m by the homogeneous column (x, y, z, w) and returns the
// first three components. The fourth row is not checked: a non-affine matrix
// still yields a value typed by the caller.
func (m Matrix) apply(x, y, z, w Scalar) (Scalar, Scalar, Scalar) {
	row := func(r int) Scalar {
		return m[r][0]*x + m[r][1]*y + m[r][2]*z + m[r][3]*w
	}
	return row(0), row(1), row(2)
}

// MulPoint transforms p with w=1, so translation applies.
func (m Matrix) MulPoint(p Point3D) Point3D {
	return P(m.apply(p.X, p.Y, p.Z, 1))
}

// MulVector transforms v with w=0, so translation has no effect.
func (m Matrix) MulVector(v Vector3D) Vector3D {
	return V(m.apply(v.X, v.Y, v.Z, 0))
}

func (m Matrix) Transpose() Matrix {
	var out Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col][row] = m[row][col]
		}
	}
	return out
}

// Submatrix drops row and col, leaving a 3×3 matrix.
func (m Matrix) Submatrix(row, col int) (Matrix3, error) {
	if err := checkIndex(4, row, col); err != nil {
		return Matrix3{}, err
	}
	return m.submatrix(row, col), nil
}

func (m Matrix) submatrix(row, col int) Matrix3 {
	var out Matrix3
	for r, sr := 0, 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c, sc := 0, 0; c < 4; c++ {
			if c == col {
				continue
			}
			out[sr][sc] = m[r][c]
			sc++
		}
		sr++
	}
	return out
}

// Minor is the determinant of Submatrix(row, col).
func (m Matrix) Minor(row, col int) (Scalar, error) {
	if err := checkIndex(4, row, col); err != nil {
		return 0, err
	}
	return m.submatrix(row, col).Determinant(), nil
}

// Cofactor is Minor(row, col) with sign (-1)^(row+col).
func (m Matrix) Cofactor(row, col int) (Scalar, error) {
	if err := checkIndex(4, row, col); err != nil {
		return 0, err
	}
	return m.cofactor(row, col), nil
}

func (m Matrix) cofactor(row, col int) Scalar {
	return sign(row, col) * m.submatrix(row, col).Determinant()
}

// Determinant expands along the first row.
func (m Matrix) Determinant() Scalar {
	var det Scalar
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is exactly non-zero.
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the transposed cofactor matrix divided by the determinant.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}
	var out Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col][row] = m.cofactor(row, col) / det
		}
	}
	return out, nil
}

func (m Matrix) Equal(o Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !ApproxEqual(m[row][col], o[row][col]) {
				return false
			}
		}
	}
	return true
}

func checkIndex(n, row, col int) error {
	if row < 0 || row >= n || col < 0 || col >= n {
		return fmt.Errorf("%dx%d submatrix (%d, %d): %w", n, n, row, col, ErrIndexRange)
	}
	return nil
}

func sign(row, col int) Scalar {
	if (row+col)%2 == 1 {
		return -1
	}
	return 1
}
