package movavg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Each transform is pure with immutable configuration, so one instance may
// smooth different series from many goroutines at once.
func TestConcurrentTransformsAgree(t *testing.T) {
	t.Parallel()

	in := make([]float64, 500)
	for i := range in {
		in[i] = float64(i%17) - 8
	}

	sma, err := NewSimple(5)
	require.NoError(t, err)
	ema, err := NewExponential(5)
	require.NoError(t, err)
	wma, err := NewWeighted(LinearWeights(5))
	require.NoError(t, err)

	for _, tr := range []Transformer{sma, ema, wma} {
		want, err := tr.Transform(in)
		require.NoError(t, err)

		const workers = 8
		results := make([][]float64, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				out, err := tr.Transform(in)
				if err == nil {
					results[i] = out
				}
			}()
		}
		wg.Wait()

		for i, got := range results {
			require.Equal(t, want, got, "worker %d", i)
		}
	}
}

func TestTransformsAllocateFreshOutput(t *testing.T) {
	t.Parallel()

	in := []float64{1, 2, 3, 4, 5, 6}

	sma, err := NewSimple(2)
	require.NoError(t, err)
	ema, err := NewExponential(2)
	require.NoError(t, err)
	wma, err := NewWeighted([]float64{0.5, 0.5})
	require.NoError(t, err)

	for _, tr := range []Transformer{sma, ema, wma} {
		a, err := tr.Transform(in)
		require.NoError(t, err)
		b, err := tr.Transform(in)
		require.NoError(t, err)
		require.Equal(t, a, b)

		a[3] = -1000
		require.NotEqual(t, a[3], b[3])
	}
}
