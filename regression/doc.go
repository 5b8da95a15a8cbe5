// Package regression fits candidate productivity models to a coffee sample.
//
// The package compares a small, closed set of nonlinear models of productivity
// as a function of cups of coffee. Every model is fitted by bounded nonlinear
// least squares, scored by R², and ranked best first.
//
// # Usage
//
//	fitter, err := regression.NewFitter()
//	if err != nil {
//	    return err
//	}
//
//	fits, err := fitter.Fit(regression.DefaultRegistry(), sample)
//	if err != nil {
//	    return err
//	}
//
//	for _, fit := range regression.Rank(fits) {
//	    fmt.Println(fit.Label())
//	}
//
// # Model Types
//
// The default registry holds five models, in this order:
//
//   - **Linear**: y = a*x + b
//   - **Logarithmic**: y = a*ln(x + c) + b, with c > 0
//   - **Michaelis-Menten**: y = a*x / (b + x), with a ≥ 0 and b > 0
//   - **Exponential rise**: y = a*(1 - e^(-b*x)) + c, with a ≥ 0 and 0 < b ≤ 50
//   - **Quadratic**: y = a*x² + b*x + c
//
// Registry order matters: models are fitted in this order and it breaks ties
// in the ranking. Use Registry.Select to fit a subset, or NewRegistry to
// supply custom models.
//
// # Solvers
//
//   - **Levenberg-Marquardt** (default): damped Gauss-Newton steps with a
//     forward-difference Jacobian, projected onto the bounds
//   - **Nelder-Mead**: derivative-free simplex search over variables mapped
//     onto the bounds
//
// Both solvers share a per-model budget of model evaluations over the whole
// sample (DefaultMaxEvaluations).
//
// # Failure Handling
//
// Fit returns exactly one FitResult per model. A model that cannot be fitted
// (budget exhausted, non-finite start, panic inside the model function)
// reports StatusFailed with its initial guess as Params and a NaN R². A sample
// whose output has zero variance yields StatusDegenerate and a NaN R² for every
// converged model. Rank places every non-finite R² after all finite ones.
package regression
