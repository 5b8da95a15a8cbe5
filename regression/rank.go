package regression

import (
	"cmp"
	"math"
	"slices"
)

// Rank returns the results ordered by R², best first.
//
// Non-finite R² values (failed or degenerate fits) compare below every finite
// value. The sort is stable, so equal scores keep their input order, and
// ranking an already ranked slice leaves it unchanged. The input slice is not
// modified.
//
// Parameters:
//   - fits: Results to rank
//
// Returns:
//   - []FitResult: A new, ranked slice
func Rank(fits []FitResult) []FitResult {
	ranked := make([]FitResult, len(fits))
	for i, fit := range fits {
		ranked[i] = fit.clone()
	}

	slices.SortStableFunc(ranked, func(a, b FitResult) int {
		return cmp.Compare(score(b), score(a))
	})

	return ranked
}

// Best returns the highest ranked result and whether there is one.
func Best(fits []FitResult) (FitResult, bool) {
	if len(fits) == 0 {
		return FitResult{}, false
	}

	return Rank(fits)[0], true
}

func score(r FitResult) float64 {
	if !r.Finite() {
		return math.Inf(-1)
	}

	return r.R2
}
