package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/primkit/primkit/internal/errors"
)

func TestMultiply_Golden(t *testing.T) {
	t.Parallel()
	a := Matrix{{1, 2}, {3, 4}}
	b := Matrix{{5, 6}, {7, 8}}

	got, err := Multiply(a, b)
	require.NoError(t, err)
	assert.Equal(t, Matrix{{19, 22}, {43, 50}}, got)
}

func TestMultiply_Rectangular(t *testing.T) {
	t.Parallel()
	// 2x3 · 3x2 -> 2x2
	a := Matrix{{1, 2, 3}, {4, 5, 6}}
	b := Matrix{{7, 8}, {9, 10}, {11, 12}}

	got, err := Multiply(a, b)
	require.NoError(t, err)
	assert.Equal(t, Matrix{{58, 64}, {139, 154}}, got)

	rows, cols := got.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
}

func TestMultiply_DoesNotMutateOperands(t *testing.T) {
	t.Parallel()
	a := Matrix{{1, 2}, {3, 4}}
	b := Matrix{{5, 6}, {7, 8}}

	_, err := Multiply(a, b)
	require.NoError(t, err)
	assert.Equal(t, Matrix{{1, 2}, {3, 4}}, a)
	assert.Equal(t, Matrix{{5, 6}, {7, 8}}, b)
}

func TestMultiply_Identity(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	a := Random(4, 4, rng)

	got, err := Multiply(a, Identity(4))
	require.NoError(t, err)
	assert.True(t, EqualApprox(a, got, 1e-12), "A·I should equal A")

	got, err = Multiply(Identity(4), a)
	require.NoError(t, err)
	assert.True(t, EqualApprox(a, got, 1e-12), "I·A should equal A")
}

func TestMultiply_SingleElement(t *testing.T) {
	t.Parallel()
	got, err := Multiply(Matrix{{3}}, Matrix{{4}})
	require.NoError(t, err)
	assert.Equal(t, Matrix{{12}}, got)
}

func TestMultiply_InvalidOperands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		a, b   Matrix
		reason string
	}{
		{
			name:   "incompatible inner dimensions",
			a:      Matrix{{1, 2}, {3, 4}},
			b:      Matrix{{1, 2}, {3, 4}, {5, 6}},
			reason: "inner dimensions differ",
		},
		{
			name:   "empty left operand",
			a:      Matrix{},
			b:      Matrix{{1}},
			reason: "left operand is empty",
		},
		{
			name:   "empty right operand",
			a:      Matrix{{1}},
			b:      nil,
			reason: "right operand is empty",
		},
		{
			name:   "ragged left operand",
			a:      Matrix{{1, 2}, {3}},
			b:      Matrix{{1}, {2}},
			reason: "left operand is not rectangular",
		},
		{
			name:   "ragged right operand",
			a:      Matrix{{1, 2}},
			b:      Matrix{{1, 2}, {3}},
			reason: "right operand is not rectangular",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Multiply(tt.a, tt.b)
			require.Error(t, err)
			assert.Nil(t, got, "failed multiply must not return a partial result")
			assert.True(t, apperrors.IsInvalidDimensions(err), "expected DimensionError, got %T", err)

			var de apperrors.DimensionError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.reason, de.Reason)
		})
	}
}

func TestZeroAndIdentity(t *testing.T) {
	t.Parallel()
	z := Zero(2, 3)
	rows, cols := z.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	for i := range z {
		for j := range z[i] {
			assert.Zero(t, z[i][j])
		}
	}

	id := Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, 1.0, id[i][j])
			} else {
				assert.Zero(t, id[i][j])
			}
		}
	}
}

func TestEqualApprox(t *testing.T) {
	t.Parallel()
	a := Matrix{{1, 2}, {3, 4}}
	b := Matrix{{1 + 1e-13, 2}, {3, 4 - 1e-13}}

	assert.True(t, EqualApprox(a, b, 1e-12))
	assert.False(t, EqualApprox(a, b, 1e-14))
	assert.False(t, EqualApprox(a, Matrix{{1, 2}}, 1e-9), "dimension mismatch is never equal")
}

func BenchmarkMultiply(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{8, 32, 64} {
		x := Random(size, size, rng)
		y := Random(size, size, rng)
		b.Run(benchName(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Multiply(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchName(size int) string {
	switch size {
	case 8:
		return "8x8"
	case 32:
		return "32x32"
	default:
		return "64x64"
	}
}
