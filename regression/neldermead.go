package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// nmConvergeIterations is the number of iterations without relative
// improvement after which the simplex is considered converged.
const nmConvergeIterations = 200

// nelderMead minimizes the residual sum of squares with a Nelder-Mead simplex
// over unconstrained variables mapped onto the bounds.
type nelderMead struct{}

func (nelderMead) solve(p *problem) (solution, error) {
	n, m := p.numParams(), p.numObs()
	if !(Bounds{Lower: p.lower, Upper: p.upper}).Contains(p.p0) {
		return solution{}, ErrInfeasibleStart
	}

	r := make([]float64, m)
	if err := p.residuals(r, p.p0); err != nil {
		return solution{}, err
	}
	if !isFinite(sumSquares(r)) {
		return solution{}, ErrNonFiniteStart
	}

	params := make([]float64, n)
	objective := optimize.Problem{
		Func: func(z []float64) float64 {
			toBounded(params, z, p.lower, p.upper)
			if err := p.residuals(r, params); err != nil {
				return math.Inf(1)
			}

			return sumSquares(r)
		},
	}

	settings := &optimize.Settings{
		// One evaluation was spent on the start check.
		FuncEvaluations: max(p.maxEvals-1, 1),
		Converger: &optimize.FunctionConverge{
			Absolute:   p.ftol,
			Relative:   p.ftol,
			Iterations: nmConvergeIterations,
		},
	}

	z0 := toInternal(make([]float64, n), p.p0, p.lower, p.upper)
	result, err := optimize.Minimize(objective, z0, settings, &optimize.NelderMead{})
	if p.err != nil {
		return solution{}, p.err
	}
	if result != nil {
		switch result.Status {
		case optimize.FunctionEvaluationLimit, optimize.IterationLimit, optimize.RuntimeLimit:
			return solution{}, fmt.Errorf("%w (%d)", ErrEvaluationLimit, p.maxEvals)
		case optimize.Failure:
			return solution{}, fmt.Errorf("nelder-mead failed: %w", result.Status.Err())
		}
	}
	if err != nil {
		return solution{}, fmt.Errorf("nelder-mead failed: %w", err)
	}

	if !isFinite(result.F) {
		return solution{}, fmt.Errorf("nelder-mead ended at a non-finite cost %v", result.F)
	}
	best := toBounded(make([]float64, n), result.X, p.lower, p.upper)

	return solution{params: best, cost: result.F}, nil
}
