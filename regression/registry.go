package regression

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrEmptyRegistry is returned when a registry has no models.
	ErrEmptyRegistry = errors.New("registry has no models")
	// ErrUnknownModel is returned when a model name is not in the registry.
	ErrUnknownModel = errors.New("unknown model")
)

// Registry is a closed, ordered set of candidate models.
//
// Registry order is significant: models are fitted in this order and ties in
// the ranking keep it. A Registry is immutable and safe for concurrent reads.
type Registry struct {
	specs []ModelSpec
}

// DefaultRegistry returns the five built-in coffee/productivity models.
//
// Order: Linear, Logarithmic, Michaelis-Menten, Exponential rise, Quadratic.
func DefaultRegistry() *Registry {
	inf := math.Inf(1)

	return &Registry{specs: []ModelSpec{
		{
			Name:    "Linear",
			Type:    ModelTypeLinear,
			Func:    linear,
			P0:      []float64{1, 1},
			Bounds:  Open(2),
			Formula: "y = a*x + b",
		},
		{
			Name: "Logarithmic",
			Type: ModelTypeLogarithmic,
			Func: logarithmic,
			P0:   []float64{1, 1, 1},
			Bounds: Bounds{
				Lower: []float64{-inf, -inf, 1e-6},
				Upper: []float64{inf, inf, inf},
			},
			Formula: "y = a*ln(x + c) + b",
		},
		{
			Name: "Michaelis-Menten",
			Type: ModelTypeSaturating,
			Func: michaelisMenten,
			P0:   []float64{5, 1},
			Bounds: Bounds{
				Lower: []float64{0, 1e-6},
				Upper: []float64{inf, inf},
			},
			Formula: "y = a*x / (b + x)",
		},
		{
			Name: "Exponential rise",
			Type: ModelTypeExponentialRise,
			Func: exponentialRise,
			P0:   []float64{3, 0.5, 1},
			Bounds: Bounds{
				Lower: []float64{0, 1e-6, -inf},
				Upper: []float64{inf, 50, inf},
			},
			Formula: "y = a*(1 - exp(-b*x)) + c",
		},
		{
			Name:    "Quadratic",
			Type:    ModelTypeQuadratic,
			Func:    quadratic,
			P0:      []float64{0, 1, 1},
			Bounds:  Open(3),
			Formula: "y = a*x^2 + b*x + c",
		},
	}}
}

// NewRegistry creates a registry from the given specs, in order.
//
// Every spec is validated and names must be unique (case-insensitive).
// All problems are reported together.
//
// Parameters:
//   - specs: Candidate models in fitting order
//
// Returns:
//   - *Registry: The registry
//   - error: ErrEmptyRegistry, or the aggregated validation errors
func NewRegistry(specs ...ModelSpec) (*Registry, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyRegistry
	}

	var result *multierror.Error
	seen := make(map[string]int, len(specs))
	for i, spec := range specs {
		if err := spec.Validate(); err != nil {
			result = multierror.Append(result, err)
		}

		key := strings.ToLower(spec.Name)
		if j, dup := seen[key]; dup {
			result = multierror.Append(result, fmt.Errorf("model %q at position %d duplicates position %d", spec.Name, i, j))
			continue
		}
		seen[key] = i
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}

	return &Registry{specs: cloneSpecs(specs)}, nil
}

// Specs returns a copy of the models in registry order.
func (r *Registry) Specs() []ModelSpec {
	if r == nil {
		return nil
	}

	return cloneSpecs(r.specs)
}

// Len returns the number of models.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.specs)
}

// MaxParams returns the largest parameter count across the models.
func (r *Registry) MaxParams() int {
	if r == nil {
		return 0
	}

	maxParams := 0
	for _, spec := range r.specs {
		maxParams = max(maxParams, spec.NumParams())
	}

	return maxParams
}

// Lookup finds a model by display name or type name, ignoring case.
//
// Parameters:
//   - name: "Michaelis-Menten" and "michaelis-menten" both match the saturating model
//
// Returns:
//   - ModelSpec: A copy of the model
//   - bool: Whether a model matched
func (r *Registry) Lookup(name string) (ModelSpec, bool) {
	if r == nil {
		return ModelSpec{}, false
	}

	name = strings.TrimSpace(name)
	for _, spec := range r.specs {
		if strings.EqualFold(spec.Name, name) ||
			(spec.Type != ModelTypeCustom && strings.EqualFold(spec.Type.String(), name)) {
			return cloneSpec(spec), true
		}
	}

	return ModelSpec{}, false
}

// Select returns a registry restricted to the named models.
//
// The result keeps registry order, whatever the order of names. Duplicate
// names select a model once. With no names the full registry is returned.
//
// Returns:
//   - *Registry: The subset
//   - error: ErrUnknownModel listing the supported names
func (r *Registry) Select(names ...string) (*Registry, error) {
	if r.Len() == 0 {
		return nil, ErrEmptyRegistry
	}
	if len(names) == 0 {
		return r, nil
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		spec, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownModel, name, strings.Join(r.SupportedNames(), ", "))
		}
		wanted[spec.Name] = struct{}{}
	}

	subset := make([]ModelSpec, 0, len(wanted))
	for _, spec := range r.specs {
		if _, ok := wanted[spec.Name]; ok {
			subset = append(subset, cloneSpec(spec))
		}
	}

	return &Registry{specs: subset}, nil
}

// SupportedNames returns the selectable model names, sorted.
//
// Built-in models are listed by type name, custom models by display name.
func (r *Registry) SupportedNames() []string {
	if r == nil {
		return nil
	}

	names := make([]string, 0, len(r.specs))
	for _, spec := range r.specs {
		if spec.Type == ModelTypeCustom {
			names = append(names, spec.Name)
			continue
		}
		names = append(names, spec.Type.String())
	}
	slices.Sort(names)

	return names
}

func cloneSpecs(specs []ModelSpec) []ModelSpec {
	out := make([]ModelSpec, len(specs))
	for i, spec := range specs {
		out[i] = cloneSpec(spec)
	}

	return out
}

func cloneSpec(spec ModelSpec) ModelSpec {
	spec.P0 = slices.Clone(spec.P0)
	spec.Bounds = Bounds{
		Lower: slices.Clone(spec.Bounds.Lower),
		Upper: slices.Clone(spec.Bounds.Upper),
	}

	return spec
}
