package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/arloliu/pkoffee/dataset"
	"github.com/arloliu/pkoffee/internal/options"
	"github.com/arloliu/pkoffee/regression"
)

// ErrEmptyFigure is returned when a figure has no observations to draw.
var ErrEmptyFigure = errors.New("figure has no observations")

const (
	// DefaultDPI is the output resolution.
	DefaultDPI = 150

	title       = "Productivity vs Coffee"
	xAxisLabel  = "Cups of Coffee"
	yAxisLabel  = "Productivity"
	violinWidth = 0.8
)

// Figure is everything drawn in one comparison figure.
type Figure struct {
	// Sample provides the violins.
	Sample dataset.Sample
	// Fits are drawn in slice order; pass them ranked so the legend reads best first.
	Fits []regression.FitResult
	// Smooth is the dense X sequence at which curves are evaluated.
	Smooth []float64
	// Caption is printed in the top right corner when non-empty.
	Caption string
}

// Config holds the figure layout.
type Config struct {
	Width      vg.Length
	Height     vg.Length
	DPI        float64
	YMin, YMax float64
	CurveWidth vg.Length
	LineWidth  vg.Length
}

func defaultConfig() Config {
	return Config{
		Width:      10 * vg.Inch,
		Height:     6 * vg.Inch,
		DPI:        DefaultDPI,
		YMin:       -0.2,
		YMax:       8,
		CurveWidth: vg.Points(2),
		LineWidth:  vg.Points(0.8),
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithSize sets the figure size.
func WithSize(width, height vg.Length) Option {
	return options.New(func(cfg *Config) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("figure size must be positive, got %v x %v", width, height)
		}
		cfg.Width, cfg.Height = width, height

		return nil
	})
}

// WithDPI sets the output resolution.
func WithDPI(dpi float64) Option {
	return options.New(func(cfg *Config) error {
		if !(dpi > 0) {
			return fmt.Errorf("dpi must be positive, got %v", dpi)
		}
		cfg.DPI = dpi

		return nil
	})
}

// WithYRange sets the visible productivity range.
func WithYRange(lo, hi float64) Option {
	return options.New(func(cfg *Config) error {
		if !(lo < hi) {
			return fmt.Errorf("invalid y range [%v, %v]", lo, hi)
		}
		cfg.YMin, cfg.YMax = lo, hi

		return nil
	})
}

// Plot builds the figure without encoding it.
//
// Returns:
//   - *plot.Plot: The assembled plot
//   - error: ErrEmptyFigure or a plotter construction error
func Plot(fig Figure, opts ...Option) (*plot.Plot, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return buildPlot(fig, cfg)
}

func buildPlot(fig Figure, cfg Config) (*plot.Plot, error) {
	if fig.Sample.Len() == 0 {
		return nil, ErrEmptyFigure
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	p.Add(NewViolins(fig.Sample.Groups(), violinWidth, cfg.LineWidth))

	for i, fit := range fig.Fits {
		line, err := plotter.NewLine(curve(fit, fig.Smooth))
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", fit.Name, err)
		}
		line.LineStyle.Width = cfg.CurveWidth
		line.LineStyle.Color = plotutil.Color(i)

		if line.XYs.Len() > 0 {
			p.Add(line)
		}
		p.Legend.Add(fit.Label(), line)
	}

	p.Y.Min = cfg.YMin
	p.Y.Max = cfg.YMax

	return p, nil
}

// curve evaluates a fit along xs, dropping non-finite points.
func curve(fit regression.FitResult, xs []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for _, x := range xs {
		y := fit.Estimate(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}

	return pts
}

// Render draws the figure and writes it to w as PNG.
//
// Parameters:
//   - w: Destination of the PNG stream
//   - fig: Figure content
//   - opts: Layout options
//
// Returns:
//   - error: Figure, option or write error
func Render(w io.Writer, fig Figure, opts ...Option) error {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	p, err := buildPlot(fig, cfg)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(vgimg.UseWH(cfg.Width, cfg.Height), vgimg.UseDPI(int(cfg.DPI)))
	dc := draw.New(img)
	p.Draw(dc)
	if fig.Caption != "" {
		drawCaption(dc, p, fig.Caption)
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	return nil
}

func drawCaption(dc draw.Canvas, p *plot.Plot, caption string) {
	sty := p.X.Tick.Label
	sty.XAlign = text.XRight
	sty.YAlign = text.YTop
	pad := vg.Points(4)

	dc.FillText(sty, vg.Point{X: dc.Max.X - pad, Y: dc.Max.Y - pad}, caption)
}

// RenderFile renders the figure to a PNG file, replacing any existing file.
func RenderFile(path string, fig Figure, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return Render(f, fig, opts...)
}
