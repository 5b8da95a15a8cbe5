package regression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pkoffee/dataset"
)

// coffeeSample is the five-point reference sample.
func coffeeSample(t testing.TB) dataset.Sample {
	t.Helper()

	s, err := dataset.NewSample(
		[]float64{0, 1, 2, 3, 4},
		[]float64{1, 2, 3, 3.5, 3.8},
	)
	require.NoError(t, err)

	return s
}

func sampleFrom(t testing.TB, f Func, params []float64, x []float64) dataset.Sample {
	t.Helper()

	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = f(xi, params)
	}
	s, err := dataset.NewSample(x, y)
	require.NoError(t, err)

	return s
}

func newTestFitter(t testing.TB, opts ...FitOption) *Fitter {
	t.Helper()

	f, err := NewFitter(opts...)
	require.NoError(t, err)

	return f
}
