// Package pkoffee compares models of productivity as a function of coffee intake.
//
// A run loads a table of observations (cups of coffee, productivity), fits a
// fixed set of candidate models by bounded nonlinear least squares, ranks them
// by R² and renders a figure with every fitted curve over violin plots of the
// raw data.
//
// # Basic Usage
//
//	analysis, err := pkoffee.Run(pkoffee.Config{
//	    InputPath:  "coffee_productivity.csv",
//	    OutputPath: "fit_plot.png",
//	})
//	if err != nil {
//	    var outErr *pkoffee.OutputError
//	    if !errors.As(err, &outErr) {
//	        log.Fatal(err)
//	    }
//	    // The fits are complete; only the figure is missing.
//	}
//
//	for _, fit := range analysis.Fits {
//	    fmt.Println(fit.Label())
//	}
//
// # Package Structure
//
//   - dataset: the Sample type and CSV loading, optionally compressed
//   - regression: model registry, fit engine and ranking
//   - render: the comparison figure
//
// Run wires them together; Analyze is the pure core without file I/O.
package pkoffee

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/pkoffee/dataset"
	"github.com/arloliu/pkoffee/regression"
	"github.com/arloliu/pkoffee/render"
)

// Analysis is the outcome of fitting and ranking all models on one sample.
type Analysis struct {
	// Sample is the analysed sample.
	Sample dataset.Sample
	// Fits holds one result per model, ranked best first.
	Fits []regression.FitResult
	// Smooth is the dense X sequence used to draw the curves.
	Smooth []float64
	// Fingerprint is the xxHash64 digest of the sample.
	Fingerprint uint64
}

// Best returns the highest ranked fit.
func (a *Analysis) Best() (regression.FitResult, bool) {
	if a == nil || len(a.Fits) == 0 {
		return regression.FitResult{}, false
	}

	return a.Fits[0], true
}

// Figure returns the figure content for the analysis.
func (a *Analysis) Figure() render.Figure {
	return render.Figure{
		Sample:  a.Sample,
		Fits:    a.Fits,
		Smooth:  a.Smooth,
		Caption: fmt.Sprintf("n=%d  sample %016x", a.Sample.Len(), a.Fingerprint),
	}
}

// Analyze fits every model of reg to s, ranks the results and prepares the
// dense X sequence for plotting.
//
// Analyze performs no I/O and may be called repeatedly.
//
// Parameters:
//   - s: Observations
//   - reg: Candidate models
//   - f: Fit engine
//   - smoothPoints: Length of the dense X sequence, at least 2
//
// Returns:
//   - *Analysis: Ranked fits and plotting data
//   - error: Whole-run fit error or invalid smoothPoints
func Analyze(s dataset.Sample, reg *regression.Registry, f *regression.Fitter, smoothPoints int) (*Analysis, error) {
	fits, err := f.Fit(reg, s)
	if err != nil {
		return nil, err
	}

	smooth, err := s.Linspace(smoothPoints)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Sample:      s,
		Fits:        regression.Rank(fits),
		Smooth:      smooth,
		Fingerprint: s.Fingerprint(),
	}, nil
}

// Run executes the full pipeline: load, fit, rank and render.
//
// Input problems are reported as *InputError. If the figure cannot be written
// the error is an *OutputError and the returned Analysis is still complete.
//
// Parameters:
//   - cfg: Run configuration; zero fields take their defaults
//
// Returns:
//   - *Analysis: The analysis, nil unless fitting completed
//   - error: Configuration error, *InputError or *OutputError
func Run(cfg Config) (*Analysis, error) {
	cfg = cfg.withDefaults()
	log := cfg.Logger

	if cfg.SmoothPoints < 2 {
		return nil, fmt.Errorf("invalid configuration: %w, got %d", ErrInvalidSmoothPoints, cfg.SmoothPoints)
	}

	reg, err := regression.DefaultRegistry().Select(cfg.Models...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	fitter, err := regression.NewFitter(
		regression.WithSolver(cfg.Solver),
		regression.WithMaxEvaluations(cfg.MaxEvaluations),
		regression.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	sample, err := dataset.Load(cfg.InputPath)
	if err != nil {
		return nil, &InputError{Path: cfg.InputPath, Err: err}
	}
	log.Info("sample loaded",
		zap.String("path", cfg.InputPath),
		zap.Int("rows", sample.Len()),
		zap.String("fingerprint", fmt.Sprintf("%016x", sample.Fingerprint())))

	analysis, err := Analyze(sample, reg, fitter, cfg.SmoothPoints)
	if err != nil {
		return nil, &InputError{Path: cfg.InputPath, Err: err}
	}

	for rank, fit := range analysis.Fits {
		fields := []zap.Field{
			zap.Int("rank", rank+1),
			zap.String("model", fit.Name),
			zap.Stringer("status", fit.Status),
			zap.Float64("r2", fit.R2),
			zap.Int("evaluations", fit.Evaluations),
		}
		if fit.Err != nil {
			fields = append(fields, zap.Error(fit.Err))
		}
		log.Info("model ranked", fields...)
	}

	if err := render.RenderFile(cfg.OutputPath, analysis.Figure()); err != nil {
		return analysis, &OutputError{Path: cfg.OutputPath, Err: err}
	}
	log.Info("figure written", zap.String("path", cfg.OutputPath))

	return analysis, nil
}
