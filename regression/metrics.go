package regression

import (
	"math"

	"github.com/montanaflynn/stats"
)

// goodnessOfFit computes R² and RMSE of predictions against observations.
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// Parameters:
//   - observed: Actual output values
//   - predicted: Model output at the same inputs
//
// Returns:
//   - r2: Coefficient of determination, NaN when SS_tot is zero or a prediction is not finite
//   - rmse: Root mean square error, NaN when a prediction is not finite
//   - degenerate: True when SS_tot is zero
func goodnessOfFit(observed, predicted []float64) (r2, rmse float64, degenerate bool) {
	if len(observed) == 0 || len(observed) != len(predicted) {
		return math.NaN(), math.NaN(), false
	}

	mean, _ := stats.Mean(observed)
	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		residual := observed[i] - predicted[i]
		ssRes += residual * residual
	}

	rmse = math.Sqrt(ssRes / float64(len(observed)))
	if ssTot == 0 {
		return math.NaN(), rmse, true
	}

	return 1.0 - (ssRes / ssTot), rmse, false
}
