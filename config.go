package pkoffee

import (
	"errors"

	"go.uber.org/zap"

	"github.com/arloliu/pkoffee/regression"
)

const (
	// DefaultInputPath is the table read when no input is configured.
	DefaultInputPath = "coffee_productivity.csv"
	// DefaultOutputPath is the figure written when no output is configured.
	DefaultOutputPath = "fit_plot.png"
	// DefaultSmoothPoints is the number of X values at which curves are drawn.
	DefaultSmoothPoints = 200
)

// ErrInvalidSmoothPoints is returned when fewer than two curve points are requested.
var ErrInvalidSmoothPoints = errors.New("smooth points must be at least 2")

// Config configures a Run.
type Config struct {
	// InputPath is the CSV table, optionally compressed (.zst, .s2, .lz4).
	InputPath string
	// OutputPath is the PNG file to write; an existing file is replaced.
	OutputPath string
	// Models restricts the fit to the named models; empty means all.
	Models []string
	// Solver selects the optimization algorithm.
	Solver regression.SolverType
	// MaxEvaluations is the per-model evaluation budget; zero means the default.
	MaxEvaluations int
	// SmoothPoints is the number of X values per curve; zero means the default.
	SmoothPoints int
	// Logger receives progress logs; nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns the configuration of the reference run.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.MaxEvaluations == 0 {
		c.MaxEvaluations = regression.DefaultMaxEvaluations
	}
	if c.SmoothPoints == 0 {
		c.SmoothPoints = DefaultSmoothPoints
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return c
}
