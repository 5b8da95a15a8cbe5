package regression

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Func evaluates a model at x for the given parameters.
//
// A Func must not panic and must not modify params. Outside the model's
// mathematical domain it returns NaN.
type Func func(x float64, params []float64) float64

// ModelType identifies one of the built-in candidate models.
type ModelType int

const (
	// ModelTypeCustom marks a caller-supplied model that is not built in.
	ModelTypeCustom ModelType = iota
	// ModelTypeLinear represents the linear model: y = a*x + b
	ModelTypeLinear
	// ModelTypeLogarithmic represents the shifted logarithmic model: y = a*ln(x + c) + b
	ModelTypeLogarithmic
	// ModelTypeSaturating represents the Michaelis-Menten model: y = a*x / (b + x)
	ModelTypeSaturating
	// ModelTypeExponentialRise represents the exponential rise model: y = a*(1 - e^(-b*x)) + c
	ModelTypeExponentialRise
	// ModelTypeQuadratic represents the quadratic model: y = a*x² + b*x + c
	ModelTypeQuadratic
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelTypeCustom:          "custom",
	ModelTypeLinear:          "linear",
	ModelTypeLogarithmic:     "logarithmic",
	ModelTypeSaturating:      "michaelis-menten",
	ModelTypeExponentialRise: "exponential-rise",
	ModelTypeQuadratic:       "quadratic",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// modelTypeFromString maps string names to ModelType.
var modelTypeFromString = map[string]ModelType{
	"linear":           ModelTypeLinear,
	"logarithmic":      ModelTypeLogarithmic,
	"michaelis-menten": ModelTypeSaturating,
	"exponential-rise": ModelTypeExponentialRise,
	"quadratic":        ModelTypeQuadratic,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(strings.TrimSpace(name))]; exists {
		return modelType
	}

	return ModelType(-1)
}

// Bounds holds per-parameter box constraints.
//
// math.Inf(-1) and math.Inf(1) mark an open side.
type Bounds struct {
	Lower []float64
	Upper []float64
}

// Open returns bounds with every side open for n parameters.
func Open(n int) Bounds {
	b := Bounds{Lower: make([]float64, n), Upper: make([]float64, n)}
	for i := range n {
		b.Lower[i] = math.Inf(-1)
		b.Upper[i] = math.Inf(1)
	}

	return b
}

// Contains reports whether every parameter lies inside the bounds.
func (b Bounds) Contains(params []float64) bool {
	if len(params) != len(b.Lower) || len(params) != len(b.Upper) {
		return false
	}
	for i, p := range params {
		if math.IsNaN(p) || p < b.Lower[i] || p > b.Upper[i] {
			return false
		}
	}

	return true
}

// ModelSpec describes one candidate model.
//
// Fields:
//   - Name: Display name, used in labels and results
//   - Type: Built-in model type, or ModelTypeCustom
//   - Func: Model function
//   - P0: Initial guess; len(P0) is the number of parameters
//   - Bounds: Box constraints, same length as P0
//   - Formula: Human-readable formula
type ModelSpec struct {
	Name    string
	Type    ModelType
	Func    Func
	P0      []float64
	Bounds  Bounds
	Formula string
}

// NumParams returns the number of free parameters.
func (s ModelSpec) NumParams() int {
	return len(s.P0)
}

// Validate checks that the spec is internally consistent.
//
// Returns:
//   - error: All violations joined, nil if the spec is valid
func (s ModelSpec) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, errors.New("model name is empty"))
	}
	if s.Func == nil {
		errs = append(errs, fmt.Errorf("model %q has no function", s.Name))
	}
	if len(s.P0) == 0 {
		errs = append(errs, fmt.Errorf("model %q has no parameters", s.Name))
	}
	if len(s.Bounds.Lower) != len(s.P0) || len(s.Bounds.Upper) != len(s.P0) {
		errs = append(errs, fmt.Errorf("model %q: bounds length (%d, %d) does not match %d parameters",
			s.Name, len(s.Bounds.Lower), len(s.Bounds.Upper), len(s.P0)))

		return errors.Join(errs...)
	}
	for i, p := range s.P0 {
		lo, hi := s.Bounds.Lower[i], s.Bounds.Upper[i]
		if lo > hi {
			errs = append(errs, fmt.Errorf("model %q: parameter %d has lower bound %g above upper bound %g", s.Name, i, lo, hi))
			continue
		}
		if math.IsNaN(p) || p < lo || p > hi {
			errs = append(errs, fmt.Errorf("model %q: initial value %g of parameter %d is outside [%g, %g]", s.Name, p, i, lo, hi))
		}
	}

	return errors.Join(errs...)
}

func linear(x float64, p []float64) float64 {
	return p[0]*x + p[1]
}

func logarithmic(x float64, p []float64) float64 {
	arg := x + p[2]
	if arg <= 0 {
		return math.NaN()
	}

	return p[0]*math.Log(arg) + p[1]
}

func michaelisMenten(x float64, p []float64) float64 {
	den := p[1] + x
	if den == 0 {
		return math.NaN()
	}

	return p[0] * x / den
}

func exponentialRise(x float64, p []float64) float64 {
	return p[0]*(1-math.Exp(-p[1]*x)) + p[2]
}

func quadratic(x float64, p []float64) float64 {
	return (p[0]*x+p[1])*x + p[2]
}
