package regression

import (
	"fmt"
	"math"
	"slices"
)

// Status classifies the outcome of a single model fit.
type Status int

const (
	// StatusConverged means the solver converged and R² is defined.
	StatusConverged Status = iota
	// StatusDegenerate means the solver converged but the observed output has
	// zero variance, so R² is undefined (NaN).
	StatusDegenerate
	// StatusFailed means the solver did not produce a solution; Params holds
	// the initial guess and R² is NaN.
	StatusFailed
)

var statusNames = map[Status]string{
	StatusConverged:  "converged",
	StatusDegenerate: "degenerate",
	StatusFailed:     "failed",
}

// String returns the string representation of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return "unknown"
}

// FitResult is the outcome of fitting one model.
//
// Exactly one FitResult is produced per registry entry, failed fits included.
// A FitResult is never modified after Fit returns it.
//
// Fields:
//   - Name: Display name of the model
//   - Type: Model type
//   - Params: Fitted parameters, or a copy of the initial guess on failure
//   - Func: Model function, evaluated with Params by Estimate
//   - Formula: Human-readable formula
//   - R2: Coefficient of determination; NaN when undefined or on failure
//   - RMSE: Root mean square error; NaN on failure
//   - Status: Outcome classification
//   - Evaluations: Number of model evaluations over the whole sample
//   - Err: Cause of a failure, nil otherwise
type FitResult struct {
	Name        string
	Type        ModelType
	Params      []float64
	Func        Func
	Formula     string
	R2          float64
	RMSE        float64
	Status      Status
	Evaluations int
	Err         error
}

// Estimate evaluates the fitted model at x.
func (r FitResult) Estimate(x float64) float64 {
	if r.Func == nil {
		return math.NaN()
	}

	return r.Func(x, r.Params)
}

// Finite reports whether R² is a finite number.
func (r FitResult) Finite() bool {
	return !math.IsNaN(r.R2) && !math.IsInf(r.R2, 0)
}

// Label returns the legend label, e.g. "Linear (R²=0.912)".
func (r FitResult) Label() string {
	return fmt.Sprintf("%s (R²=%.3f)", r.Name, r.R2)
}

// String returns a string representation of the result.
func (r FitResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("FitResult{Name: %s, Status: %s, Err: %v}", r.Name, r.Status, r.Err)
	}

	return fmt.Sprintf("FitResult{Name: %s, Status: %s, R²: %.4f, RMSE: %.4f, Params: %v}",
		r.Name, r.Status, r.R2, r.RMSE, r.Params)
}

func (r FitResult) clone() FitResult {
	r.Params = slices.Clone(r.Params)
	return r
}
