package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name     string
		scores   []float64
		expected []string
	}{
		{
			name:     "descending",
			scores:   []float64{0.5, 0.9, 0.7},
			expected: []string{"m1", "m2", "m0"},
		},
		{
			name:     "non-finite last",
			scores:   []float64{nan, 0.1, math.Inf(1), -3, math.Inf(-1)},
			expected: []string{"m1", "m3", "m0", "m2", "m4"},
		},
		{
			name:     "ties keep input order",
			scores:   []float64{0.8, 0.9, 0.8, 0.9},
			expected: []string{"m1", "m3", "m0", "m2"},
		},
		{
			name:     "all nan keeps input order",
			scores:   []float64{nan, nan, nan},
			expected: []string{"m0", "m1", "m2"},
		},
		{
			name:     "empty",
			scores:   nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fits := fitsWithScores(tt.scores)

			ranked := Rank(fits)
			require.Equal(t, tt.expected, names(ranked))
			require.Equal(t, tt.expected, names(Rank(ranked)), "ranking must be idempotent")
		})
	}
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	fits := fitsWithScores([]float64{0.1, 0.2})
	fits[0].Params = []float64{1, 2}

	ranked := Rank(fits)
	require.Equal(t, []string{"m0", "m1"}, names(fits))

	ranked[1].Params[0] = 99
	require.Equal(t, 1.0, fits[0].Params[0])
}

func TestBest(t *testing.T) {
	_, ok := Best(nil)
	require.False(t, ok)

	best, ok := Best(fitsWithScores([]float64{math.NaN(), 0.3, 0.6}))
	require.True(t, ok)
	require.Equal(t, "m2", best.Name)
}

func TestFitResult_Label(t *testing.T) {
	require.Equal(t, "Linear (R²=0.913)", FitResult{Name: "Linear", R2: 0.91349}.Label())
	require.Equal(t, "Quadratic (R²=NaN)", FitResult{Name: "Quadratic", R2: math.NaN()}.Label())
}

func TestFitResult_Estimate(t *testing.T) {
	fit := FitResult{Func: linear, Params: []float64{2, 1}}
	require.Equal(t, 7.0, fit.Estimate(3))
	require.True(t, math.IsNaN(FitResult{}.Estimate(3)))
}

func fitsWithScores(scores []float64) []FitResult {
	fits := make([]FitResult, len(scores))
	for i, s := range scores {
		fits[i] = FitResult{Name: "m" + string(rune('0'+i)), R2: s}
	}

	return fits
}
