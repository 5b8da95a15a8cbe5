package regression

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/pkoffee/dataset"
	"github.com/arloliu/pkoffee/internal/options"
)

// ErrInsufficientData is returned when the sample has fewer observations than
// the most complex model has parameters.
var ErrInsufficientData = errors.New("insufficient data points for regression")

// Fitter fits every model of a registry to a sample.
//
// A Fitter is immutable after construction and may be reused across samples.
type Fitter struct {
	cfg    FitConfig
	solver solver
}

// NewFitter creates a Fitter with the given options.
//
// Defaults: Levenberg-Marquardt, DefaultMaxEvaluations, ftol = xtol = 1e-12,
// no-op logger.
//
// Returns:
//   - *Fitter: The fitter
//   - error: Invalid option value
func NewFitter(opts ...FitOption) (*Fitter, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	f := &Fitter{cfg: cfg}
	switch cfg.Solver {
	case SolverNelderMead:
		f.solver = nelderMead{}
	default:
		f.solver = levenbergMarquardt{}
	}

	return f, nil
}

// Config returns the effective configuration.
func (f *Fitter) Config() FitConfig {
	return f.cfg
}

// Fit fits every model of the registry to the sample, in registry order.
//
// A failing model never stops the loop: its result carries StatusFailed, a
// copy of the initial guess, NaN R² and the cause in Err. The returned slice
// always has one entry per model.
//
// Parameters:
//   - reg: Candidate models
//   - s: Observations
//
// Returns:
//   - []FitResult: One result per model, in registry order
//   - error: ErrEmptyRegistry or ErrInsufficientData
func (f *Fitter) Fit(reg *Registry, s dataset.Sample) ([]FitResult, error) {
	if reg.Len() == 0 {
		return nil, ErrEmptyRegistry
	}
	if s.Len() < reg.MaxParams() {
		return nil, fmt.Errorf("%w: %d observations, %d parameters needed", ErrInsufficientData, s.Len(), reg.MaxParams())
	}

	x, y := s.X(), s.Y()
	results := make([]FitResult, 0, reg.Len())
	for _, spec := range reg.specs {
		res := f.fitOne(spec, x, y)
		if res.Status == StatusFailed {
			f.cfg.Logger.Warn("model fit failed",
				zap.String("model", res.Name),
				zap.Int("evaluations", res.Evaluations),
				zap.Error(res.Err))
		} else {
			f.cfg.Logger.Debug("model fitted",
				zap.String("model", res.Name),
				zap.Stringer("status", res.Status),
				zap.Float64("r2", res.R2),
				zap.Float64("rmse", res.RMSE),
				zap.Float64s("params", res.Params),
				zap.Int("evaluations", res.Evaluations))
		}
		results = append(results, res)
	}

	return results, nil
}

func (f *Fitter) fitOne(spec ModelSpec, x, y []float64) FitResult {
	res := FitResult{
		Name:    spec.Name,
		Type:    spec.Type,
		Func:    spec.Func,
		Formula: spec.Formula,
	}

	prob := newProblem(spec, x, y, f.cfg)
	sol, err := f.solver.solve(prob)
	res.Evaluations = min(prob.evals, prob.maxEvals)
	if err != nil {
		return failed(res, spec, err)
	}

	predicted, err := prob.predict(sol.params)
	if err != nil {
		return failed(res, spec, err)
	}

	r2, rmse, degenerate := goodnessOfFit(y, predicted)
	res.Params = sol.params
	res.R2 = r2
	res.RMSE = rmse
	res.Status = StatusConverged
	if degenerate {
		res.Status = StatusDegenerate
	}

	return res
}

func failed(res FitResult, spec ModelSpec, err error) FitResult {
	res.Params = slices.Clone(spec.P0)
	res.R2 = math.NaN()
	res.RMSE = math.NaN()
	res.Status = StatusFailed
	res.Err = err

	return res
}
