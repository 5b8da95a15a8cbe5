package regression

import (
	"errors"
	"slices"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	lmInitialLambda = 1e-3
	lmMinLambda     = 1e-15
	lmMaxLambda     = 1e16
	lmMinCurvature  = 1e-12
)

// levenbergMarquardt is a projected Levenberg-Marquardt solver.
//
// Each iteration solves the damped normal equations
//
//	(JᵀJ + λ·diag(JᵀJ)) δ = -Jᵀr
//
// by Cholesky factorization and projects p + δ back onto the bounds.
// Parameters held at a bound by the gradient are frozen for the iteration.
// λ grows tenfold on a rejected step and shrinks tenfold on an accepted one.
// The Jacobian is a forward-difference approximation.
type levenbergMarquardt struct{}

func (levenbergMarquardt) solve(p *problem) (solution, error) {
	n, m := p.numParams(), p.numObs()
	if !(Bounds{Lower: p.lower, Upper: p.upper}).Contains(p.p0) {
		return solution{}, ErrInfeasibleStart
	}

	params := slices.Clone(p.p0)
	r := make([]float64, m)
	if err := p.residuals(r, params); err != nil {
		return solution{}, err
	}
	cost := sumSquares(r)
	if !isFinite(cost) {
		return solution{}, ErrNonFiniteStart
	}

	var (
		jac    = mat.NewDense(m, n, nil)
		jtj    = mat.NewSymDense(n, nil)
		damped = mat.NewSymDense(n, nil)
		grad   = mat.NewVecDense(n, nil)
		rhs    = mat.NewVecDense(n, nil)
		step   = mat.NewVecDense(n, nil)
		free   = make([]bool, n)
		chol   mat.Cholesky
		trial  = make([]float64, n)
		rTrial = make([]float64, m)
		lambda = lmInitialLambda
	)

	jacSettings := &fd.JacobianSettings{Formula: fd.Forward}
	residualFunc := func(y, x []float64) {
		_ = p.residuals(y, x)
	}

	for {
		if cost == 0 {
			return solution{params: params, cost: cost}, nil
		}

		jacSettings.OriginValue = r
		fd.Jacobian(jac, residualFunc, params, jacSettings)
		if p.err != nil {
			return solution{}, p.err
		}
		if !allFinite(jac.RawMatrix().Data) {
			return solution{}, ErrNonFiniteJacobian
		}

		jtj.SymOuterK(1, jac.T())
		grad.MulVec(jac.T(), mat.NewVecDense(m, r))
		if !freeParams(free, params, grad.RawVector().Data, p.lower, p.upper) {
			return solution{params: params, cost: cost}, nil
		}
		for i := range n {
			if free[i] {
				rhs.SetVec(i, grad.AtVec(i))
			} else {
				rhs.SetVec(i, 0)
			}
		}

		for {
			if lambda > lmMaxLambda {
				// No descent direction left inside the bounds.
				return solution{params: params, cost: cost}, nil
			}

			for i := range n {
				for j := i; j < n; j++ {
					switch {
					case !free[i] || !free[j]:
						damped.SetSym(i, j, 0)
					case i == j:
						damped.SetSym(i, i, jtj.At(i, i)+lambda*max(jtj.At(i, i), lmMinCurvature))
					default:
						damped.SetSym(i, j, jtj.At(i, j))
					}
				}
				if !free[i] {
					damped.SetSym(i, i, 1)
				}
			}
			if ok := chol.Factorize(damped); !ok {
				lambda *= 10
				continue
			}
			if err := chol.SolveVecTo(step, rhs); err != nil && !isConditionError(err) {
				lambda *= 10
				continue
			}

			for i := range n {
				trial[i] = params[i] - step.AtVec(i)
			}
			project(trial, p.lower, p.upper)

			if floats.Distance(trial, params, 2) <= p.xtol*(p.xtol+floats.Norm(params, 2)) {
				return solution{params: params, cost: cost}, nil
			}

			if err := p.residuals(rTrial, trial); err != nil {
				return solution{}, err
			}
			trialCost := sumSquares(rTrial)

			if trialCost < cost {
				reduction := (cost - trialCost) / cost
				copy(params, trial)
				copy(r, rTrial)
				cost = trialCost
				lambda = max(lambda/10, lmMinLambda)

				if cost == 0 || reduction <= p.ftol {
					return solution{params: params, cost: cost}, nil
				}

				break
			}

			lambda *= 10
		}
	}
}

// freeParams marks the parameters that may move: those not held at a bound
// by a gradient pointing out of the box. It reports whether any free
// parameter has a non-zero gradient.
func freeParams(free []bool, params, grad, lower, upper []float64) bool {
	descent := false
	for i, g := range grad {
		atLower := params[i] <= lower[i] && g > 0
		atUpper := params[i] >= upper[i] && g < 0
		free[i] = !atLower && !atUpper
		if free[i] && g != 0 {
			descent = true
		}
	}

	return descent
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if !isFinite(v) {
			return false
		}
	}

	return true
}

func isConditionError(err error) bool {
	var condErr mat.Condition

	return errors.As(err, &condErr)
}
