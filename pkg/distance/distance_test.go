package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManhattan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "identical", a: []float64{1, 2, 3}, b: []float64{1, 2, 3}, want: 0},
		{name: "unit offsets", a: []float64{0, 0, 0}, b: []float64{1, -2, 3}, want: 6},
		{name: "single", a: []float64{5}, b: []float64{2}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Manhattan(tt.a, tt.b)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEuclidean(t *testing.T) {
	t.Parallel()

	got, err := Euclidean([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	require.InDelta(t, 5, got, 1e-12)

	got, err = Euclidean([]float64{1, 1, 1}, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestCosine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "parallel", a: []float64{1, 2, 3}, b: []float64{2, 4, 6}, want: 1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		{name: "opposed", a: []float64{1, 2}, b: []float64{-1, -2}, want: -1},
		{name: "diagonal", a: []float64{1, 0}, b: []float64{1, 1}, want: math.Sqrt2 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Cosine(tt.a, tt.b)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCosineZeroVector(t *testing.T) {
	t.Parallel()

	_, err := Cosine([]float64{0, 0}, []float64{1, 2})
	require.ErrorIs(t, err, ErrZeroVector)

	_, err = Cosine([]float64{1, 2}, []float64{0, 0})
	require.ErrorIs(t, err, ErrZeroVector)
}

func TestOperandErrors(t *testing.T) {
	t.Parallel()

	type metric func(a, b []float64) (float64, error)
	for name, fn := range map[string]metric{
		"manhattan": Manhattan,
		"euclidean": Euclidean,
		"cosine":    Cosine,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := fn(nil, []float64{1})
			require.ErrorIs(t, err, ErrEmpty)

			_, err = fn([]float64{1}, []float64{})
			require.ErrorIs(t, err, ErrEmpty)

			_, err = fn([]float64{1, 2}, []float64{1, 2, 3})
			require.ErrorIs(t, err, ErrLengthMismatch)
		})
	}
}
