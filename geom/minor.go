package geom

// Matrix3 is a 3×3 submatrix of a Matrix.
type Matrix3 [3][3]Scalar

// Matrix2 is a 2×2 submatrix of a Matrix3.
type Matrix2 [2][2]Scalar

func (m Matrix3) Submatrix(row, col int) (Matrix2, error) {
	if err := checkIndex(3, row, col); err != nil {
		return Matrix2{}, err
	}
	return m.submatrix(row, col), nil
}

func (m Matrix3) submatrix(row, col int) Matrix2 {
	var out Matrix2
	for r, sr := 0, 0; r < 3; r++ {
		if r == row {
			continue
		}
		for c, sc := 0, 0; c < 3; c++ {
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

func (m Matrix3) Minor(row, col int) (Scalar, error) {
	if err := checkIndex(3, row, col); err != nil {
		return 0, err
	}
	return m.submatrix(row, col).Determinant(), nil
}

func (m Matrix3) Cofactor(row, col int) (Scalar, error) {
	if err := checkIndex(3, row, col); err != nil {
		return 0, err
	}
	return m.cofactor(row, col), nil
}

func (m Matrix3) cofactor(row, col int) Scalar {
	return sign(row, col) * m.submatrix(row, col).Determinant()
}

func (m Matrix3) Determinant() Scalar {
	var det Scalar
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

func (m Matrix2) Determinant() Scalar {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}
