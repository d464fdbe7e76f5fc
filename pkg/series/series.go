// Package series converts ordered numeric sequences into the float64 sample
// form the smoothing transforms consume.
package series

// Number covers the numeric element types a series may arrive with.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Samples converts xs to float64 samples. A nil input stays nil; otherwise
// the result is a fresh slice of the same length.
func Samples[T Number](xs []T) []float64 {
	if xs == nil {
		return nil
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
