package regression

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEvaluationLimit is returned when a fit exhausts its evaluation budget.
	ErrEvaluationLimit = errors.New("maximum number of function evaluations exceeded")
	// ErrNonFiniteStart is returned when the model is not finite at the initial guess.
	ErrNonFiniteStart = errors.New("residuals are not finite at the initial guess")
	// ErrInfeasibleStart is returned when the initial guess violates the bounds.
	ErrInfeasibleStart = errors.New("initial guess is outside the bounds")
	// ErrNonFiniteJacobian is returned when the Jacobian contains NaN or Inf.
	ErrNonFiniteJacobian = errors.New("jacobian is not finite")
	// ErrModelPanic is returned when a model function panics.
	ErrModelPanic = errors.New("model function panicked")
)

// solution is the outcome of a successful solver run.
type solution struct {
	params []float64
	cost   float64
}

// solver minimizes the residual sum of squares of a problem within its bounds.
type solver interface {
	solve(p *problem) (solution, error)
}

// problem is one bounded least squares problem: one model against one sample.
//
// It counts model evaluations over the whole sample and turns budget
// exhaustion and panics into sticky errors, so solvers that drive callbacks
// they cannot abort still stop cleanly.
type problem struct {
	f        Func
	x, y     []float64
	p0       []float64
	lower    []float64
	upper    []float64
	maxEvals int
	ftol     float64
	xtol     float64

	evals int
	err   error
}

func newProblem(spec ModelSpec, x, y []float64, cfg FitConfig) *problem {
	return &problem{
		f:        spec.Func,
		x:        x,
		y:        y,
		p0:       spec.P0,
		lower:    spec.Bounds.Lower,
		upper:    spec.Bounds.Upper,
		maxEvals: cfg.MaxEvaluations,
		ftol:     cfg.FTol,
		xtol:     cfg.XTol,
	}
}

func (p *problem) numParams() int {
	return len(p.p0)
}

func (p *problem) numObs() int {
	return len(p.x)
}

// residuals fills dst with f(x_i, params) - y_i.
//
// Once the budget is exhausted or the model panicked, dst is filled with NaN
// and the sticky error is returned on every call.
func (p *problem) residuals(dst, params []float64) error {
	if p.err == nil {
		p.evals++
		if p.evals > p.maxEvals {
			p.err = fmt.Errorf("%w (%d)", ErrEvaluationLimit, p.maxEvals)
		}
	}
	if p.err != nil {
		for i := range dst {
			dst[i] = math.NaN()
		}

		return p.err
	}

	p.evalInto(dst, params)

	return p.err
}

func (p *problem) evalInto(dst, params []float64) {
	defer func() {
		if r := recover(); r != nil {
			p.err = fmt.Errorf("%w: %v", ErrModelPanic, r)
			for i := range dst {
				dst[i] = math.NaN()
			}
		}
	}()

	for i, xi := range p.x {
		dst[i] = p.f(xi, params) - p.y[i]
	}
}

// predict evaluates the model at every input without counting evaluations.
func (p *problem) predict(params []float64) (out []float64, err error) {
	out = make([]float64, len(p.x))
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrModelPanic, r)
		}
	}()

	for i, xi := range p.x {
		out[i] = p.f(xi, params)
	}

	return out, nil
}

// sumSquares returns Σ r_i², or +Inf when any residual is not finite.
func sumSquares(r []float64) float64 {
	sum := 0.0
	for _, v := range r {
		sum += v * v
	}
	if math.IsNaN(sum) {
		return math.Inf(1)
	}

	return sum
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
