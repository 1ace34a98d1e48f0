// Package matrix provides GF(256) matrix construction and inversion used
// by the rs package to build and invert systematic encoder matrices.
package matrix

import (
	"github.com/mrz1836/gfshard/internal/gf256"
)

// Matrix is a dense row-major matrix over GF(256).
type Matrix [][]byte

// New allocates a rows x cols zero matrix.
func New(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]byte, cols)
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Vandermonde returns a rows x cols matrix where entry (i,j) = (i+1)^j,
// i.e. row i evaluates the monomial basis at the point (i+1). Column 0 is
// therefore all-ones.
func Vandermonde(rows, cols int) Matrix {
	m := New(rows, cols)
	for i := 0; i < rows; i++ {
		point := byte(i + 1)
		for j := 0; j < cols; j++ {
			m[i][j] = gf256.Pow(point, j)
		}
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// SubMatrix extracts the rows x cols block starting at (rowStart, colStart).
func (m Matrix) SubMatrix(rowStart, colStart, rows, cols int) (Matrix, error) {
	if rowStart < 0 || colStart < 0 || rows < 0 || cols < 0 ||
		rowStart+rows > m.Rows() || colStart+cols > m.Cols() {
		return nil, ErrOutOfBounds
	}
	out := New(rows, cols)
	for i := 0; i < rows; i++ {
		copy(out[i], m[rowStart+i][colStart:colStart+cols])
	}
	return out, nil
}

// Multiply returns m * other.
func (m Matrix) Multiply(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, ErrDimensionMismatch
	}
	out := New(m.Rows(), other.Cols())
	for i := 0; i < m.Rows(); i++ {
		for k := 0; k < m.Cols(); k++ {
			a := m[i][k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.Cols(); j++ {
				out[i][j] = gf256.Add(out[i][j], gf256.Mul(a, other[k][j]))
			}
		}
	}
	return out, nil
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]byte(nil), row...)
	}
	return out
}

// Invert computes the inverse of a square matrix via Gauss-Jordan
// elimination in GF(256) with partial pivoting (first non-zero entry at or
// below the pivot row in the pivot column). Returns ErrSingular if no
// pivot can be found for some column.
func (m Matrix) Invert() (Matrix, error) {
	n := m.Rows()
	if n == 0 || n != m.Cols() {
		return nil, ErrNotSquare
	}

	work := m.Clone()
	inv := Identity(n)

	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if work[row][col] != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return nil, ErrSingular
		}
		if pivot != col {
			work[pivot], work[col] = work[col], work[pivot]
			inv[pivot], inv[col] = inv[col], inv[pivot]
		}

		pivotInv, err := gf256.Inv(work[col][col])
		if err != nil {
			return nil, ErrSingular
		}
		scaleRow(work[col], pivotInv)
		scaleRow(inv[col], pivotInv)

		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := work[row][col]
			if factor == 0 {
				continue
			}
			addScaledRow(work[row], work[col], factor)
			addScaledRow(inv[row], inv[col], factor)
		}
	}

	return inv, nil
}

func scaleRow(row []byte, factor byte) {
	for i, v := range row {
		row[i] = gf256.Mul(v, factor)
	}
}

// addScaledRow adds factor*src to dst in place (dst -= factor*src, but
// subtraction is XOR in GF(256) so it is addition either way).
func addScaledRow(dst, src []byte, factor byte) {
	for i, v := range src {
		if v == 0 {
			continue
		}
		dst[i] = gf256.Add(dst[i], gf256.Mul(factor, v))
	}
}

// SelectRows builds a submatrix consisting of the given row indices, in
// order. Repeated indices are allowed and simply repeat the row. An empty
// index list is rejected.
func (m Matrix) SelectRows(indices []int) (Matrix, error) {
	if len(indices) == 0 {
		return nil, ErrEmptySelection
	}
	out := make(Matrix, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= m.Rows() {
			return nil, ErrOutOfBounds
		}
		out[i] = append([]byte(nil), m[idx]...)
	}
	return out, nil
}
