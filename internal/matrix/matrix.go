// Package matrix implements dense matrix multiplication over float64 values.
//
// A Matrix is a slice of equally sized rows (dense, row-major). Multiply is
// the classic triple-nested-loop product in O(m·n·p) time with an O(m·n)
// result allocation. Accumulation runs row-major, left to right, with no
// numeric stabilization, so results are bit-exact against any straightforward
// summation of the same operands. There is no parallel or blocked variant.
//
// Malformed operands are never assumed away: every operation validates its
// inputs and fails with a structured apperrors.DimensionError instead of
// panicking or reading out of bounds.
package matrix

import (
	"math"
	"math/rand"

	apperrors "github.com/primkit/primkit/internal/errors"
)

// Matrix is a dense, rectangular matrix of float64 values in row-major order.
type Matrix [][]float64

// Zero returns a rows×cols matrix with every element set to 0.
func Zero(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := Zero(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Random returns a rows×cols matrix with elements drawn uniformly from
// [-1, 1) using rng. Used by the bench/demo surfaces to generate inputs.
func Random(rows, cols int, rng *rand.Rand) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = rng.Float64()*2 - 1
		}
	}
	return m
}

// Dims returns the number of rows and columns. An empty matrix reports 0x0;
// column count is taken from the first row.
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// IsRectangular reports whether every row has the same length as the first.
func (m Matrix) IsRectangular() bool {
	if len(m) == 0 {
		return true
	}
	cols := len(m[0])
	for _, row := range m[1:] {
		if len(row) != cols {
			return false
		}
	}
	return true
}

// Multiply computes the product a·b, where a is m×p and b is p×n, returning a
// newly allocated m×n matrix with C[i][j] = sum over k of a[i][k]*b[k][j].
// Neither operand is modified.
//
// Preconditions are validated rather than assumed: both operands must be
// non-empty and rectangular, and cols(a) must equal rows(b); violations
// return a DimensionError.
func Multiply(a, b Matrix) (Matrix, error) {
	if err := validateOperands(a, b); err != nil {
		return nil, err
	}

	aRows, aCols := a.Dims()
	_, bCols := b.Dims()

	// Result starts fully zero-initialized; the k loop accumulates into it
	// left to right, matching the reference summation order.
	result := Zero(aRows, bCols)
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			for k := 0; k < aCols; k++ {
				result[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return result, nil
}

// validateOperands checks the multiply preconditions.
func validateOperands(a, b Matrix) error {
	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()

	switch {
	case aRows == 0 || aCols == 0:
		return apperrors.DimensionError{
			ARows: aRows, ACols: aCols, BRows: bRows, BCols: bCols,
			Reason: "left operand is empty",
		}
	case bRows == 0 || bCols == 0:
		return apperrors.DimensionError{
			ARows: aRows, ACols: aCols, BRows: bRows, BCols: bCols,
			Reason: "right operand is empty",
		}
	case !a.IsRectangular():
		return apperrors.DimensionError{
			ARows: aRows, ACols: aCols, BRows: bRows, BCols: bCols,
			Reason: "left operand is not rectangular",
		}
	case !b.IsRectangular():
		return apperrors.DimensionError{
			ARows: aRows, ACols: aCols, BRows: bRows, BCols: bCols,
			Reason: "right operand is not rectangular",
		}
	case aCols != bRows:
		return apperrors.DimensionError{
			ARows: aRows, ACols: aCols, BRows: bRows, BCols: bCols,
			Reason: "inner dimensions differ",
		}
	}
	return nil
}

// EqualApprox reports whether a and b have identical dimensions and all
// corresponding elements differ by at most tol.
func EqualApprox(a, b Matrix, tol float64) bool {
	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()
	if aRows != bRows || aCols != bCols {
		return false
	}
	for i := range a {
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
