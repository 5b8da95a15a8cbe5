package dataset

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/pkoffee/internal/hash"
)

var (
	// ErrLengthMismatch is returned when X and Y have different lengths.
	ErrLengthMismatch = errors.New("x and y must have the same length")
	// ErrEmptyTable is returned when a sample has no observations.
	ErrEmptyTable = errors.New("table has no observations")
	// ErrNonFinite is returned when an observation is NaN or infinite.
	ErrNonFinite = errors.New("observation is not finite")
)

// Sample is an immutable set of paired observations.
//
// The zero value is an empty sample; use NewSample to build a valid one.
type Sample struct {
	x []float64
	y []float64
}

// Group holds the Y values observed at one distinct X.
type Group struct {
	X float64
	Y []float64
}

// NewSample creates a sample from paired observations.
//
// Both slices are copied, so later changes by the caller do not affect the sample.
//
// Parameters:
//   - x: Input values
//   - y: Output values, same length as x
//
// Returns:
//   - Sample: The sample
//   - error: ErrLengthMismatch, ErrEmptyTable or ErrNonFinite
func NewSample(x, y []float64) (Sample, error) {
	if len(x) != len(y) {
		return Sample{}, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return Sample{}, ErrEmptyTable
	}

	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return Sample{}, fmt.Errorf("%w: row %d (x=%v, y=%v)", ErrNonFinite, i, x[i], y[i])
		}
	}

	return Sample{x: slices.Clone(x), y: slices.Clone(y)}, nil
}

// Len returns the number of observations.
func (s Sample) Len() int {
	return len(s.x)
}

// X returns a copy of the input column.
func (s Sample) X() []float64 {
	return slices.Clone(s.x)
}

// Y returns a copy of the output column.
func (s Sample) Y() []float64 {
	return slices.Clone(s.y)
}

// Range returns the smallest and largest X value.
//
// Both values are zero for an empty sample.
func (s Sample) Range() (lo, hi float64) {
	if len(s.x) == 0 {
		return 0, 0
	}
	lo, _ = stats.Min(s.x)
	hi, _ = stats.Max(s.x)

	return lo, hi
}

// Groups returns the Y values grouped by distinct X, in ascending X order.
//
// Within a group, Y values keep their row order.
func (s Sample) Groups() []Group {
	order := make([]int, len(s.x))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case s.x[a] < s.x[b]:
			return -1
		case s.x[a] > s.x[b]:
			return 1
		default:
			return 0
		}
	})

	var groups []Group
	for _, i := range order {
		if n := len(groups); n > 0 && groups[n-1].X == s.x[i] {
			groups[n-1].Y = append(groups[n-1].Y, s.y[i])
			continue
		}
		groups = append(groups, Group{X: s.x[i], Y: []float64{s.y[i]}})
	}

	return groups
}

// Linspace returns n evenly spaced values covering the X range, both ends included.
//
// Parameters:
//   - n: Number of points, at least 2
//
// Returns:
//   - []float64: The points in ascending order
//   - error: If n < 2 or the sample is empty
func (s Sample) Linspace(n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("linspace needs at least 2 points, got %d", n)
	}
	if len(s.x) == 0 {
		return nil, ErrEmptyTable
	}
	lo, hi := s.Range()

	xs := floats.Span(make([]float64, n), lo, hi)
	xs[n-1] = hi

	return xs, nil
}

// Fingerprint returns an xxHash64 digest of the observations.
//
// Two samples with the same values in the same order share a fingerprint.
func (s Sample) Fingerprint() uint64 {
	return hash.Floats(s.x, s.y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
