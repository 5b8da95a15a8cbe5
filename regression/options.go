package regression

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/pkoffee/internal/options"
)

// DefaultMaxEvaluations is the default per-model budget of model evaluations.
const DefaultMaxEvaluations = 20000

const (
	defaultFTol = 1e-12
	defaultXTol = 1e-12
)

// SolverType selects the optimization algorithm used by a Fitter.
type SolverType int

const (
	// SolverLevenbergMarquardt is a projected Levenberg-Marquardt least squares solver.
	SolverLevenbergMarquardt SolverType = iota
	// SolverNelderMead minimizes the residual sum of squares with a bounded Nelder-Mead simplex.
	SolverNelderMead
)

var solverNames = map[SolverType]string{
	SolverLevenbergMarquardt: "levenberg-marquardt",
	SolverNelderMead:         "nelder-mead",
}

// String returns the string representation of the solver type.
func (st SolverType) String() string {
	if name, ok := solverNames[st]; ok {
		return name
	}

	return "unknown"
}

// SolverTypeFromString parses a solver name; "lm" and "nm" are accepted as short forms.
func SolverTypeFromString(name string) (SolverType, error) {
	switch name {
	case "levenberg-marquardt", "lm", "":
		return SolverLevenbergMarquardt, nil
	case "nelder-mead", "nm":
		return SolverNelderMead, nil
	default:
		return 0, fmt.Errorf("unknown solver %q (supported: levenberg-marquardt, nelder-mead)", name)
	}
}

// FitConfig holds the configuration of a Fitter.
type FitConfig struct {
	Solver         SolverType
	MaxEvaluations int
	FTol           float64
	XTol           float64
	Logger         *zap.Logger
}

func defaultFitConfig() FitConfig {
	return FitConfig{
		Solver:         SolverLevenbergMarquardt,
		MaxEvaluations: DefaultMaxEvaluations,
		FTol:           defaultFTol,
		XTol:           defaultXTol,
		Logger:         zap.NewNop(),
	}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithSolver sets the solver.
func WithSolver(solver SolverType) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if _, ok := solverNames[solver]; !ok {
			return fmt.Errorf("unknown solver type %d", solver)
		}
		cfg.Solver = solver

		return nil
	})
}

// WithMaxEvaluations sets the per-model evaluation budget; n must be positive.
func WithMaxEvaluations(n int) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if n <= 0 {
			return fmt.Errorf("max evaluations must be positive, got %d", n)
		}
		cfg.MaxEvaluations = n

		return nil
	})
}

// WithTolerance sets the relative cost (ftol) and step (xtol) convergence tolerances.
func WithTolerance(ftol, xtol float64) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if !(ftol >= 0) || !(xtol >= 0) {
			return errors.New("tolerances must be non-negative")
		}
		cfg.FTol = ftol
		cfg.XTol = xtol

		return nil
	})
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		if logger != nil {
			cfg.Logger = logger
		}
	})
}
