package render

import (
	"image/color"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/pkoffee/dataset"
	"github.com/arloliu/pkoffee/internal/pool"
)

// defaultKDEPoints is the number of density evaluations per violin.
const defaultKDEPoints = 100

// violinShape is the outline of one violin in data coordinates.
type violinShape struct {
	x float64
	// ys are the evaluation points over the observed range, ascending.
	ys []float64
	// offsets are the half widths at ys, already scaled to the plot.
	offsets []float64
	// quartiles holds Q1, median and Q3 with their half widths.
	quartiles [3][2]float64
	// tick is set for groups without spread; the violin is drawn as a
	// horizontal line at tick value.
	tick    bool
	tickAt  float64
	fill    color.Color
	maxHalf float64
}

// Violins draws one kernel density violin per distinct X.
//
// Each violin is cut at the observed range of its group and scaled so that
// its widest point spans the same width as every other violin.
type Violins struct {
	shapes  []violinShape
	yMin    float64
	yMax    float64
	Outline draw.LineStyle
	Inner   draw.LineStyle
}

var (
	_ plot.Plotter    = (*Violins)(nil)
	_ plot.DataRanger = (*Violins)(nil)
)

// NewViolins builds violins for the groups of a sample.
//
// Parameters:
//   - groups: Observations grouped by X, ascending (see dataset.Sample.Groups)
//   - widthFraction: Total violin width as a fraction of the smallest X spacing
//   - lineWidth: Outline width
//
// Returns:
//   - *Violins: The plotter, with an empty shape list for no groups
func NewViolins(groups []dataset.Group, widthFraction float64, lineWidth vg.Length) *Violins {
	half := widthFraction / 2 * minSpacing(groups)
	fills := Greens(len(groups))

	v := &Violins{
		yMin: math.Inf(1),
		yMax: math.Inf(-1),
		Outline: draw.LineStyle{
			Color: color.Gray{Y: 0x33},
			Width: lineWidth,
		},
		Inner: draw.LineStyle{
			Color:  color.Gray{Y: 0x33},
			Width:  lineWidth,
			Dashes: []vg.Length{vg.Points(3), vg.Points(2)},
		},
	}

	for i, g := range groups {
		shape := buildShape(g, half)
		shape.fill = fills[i]
		v.shapes = append(v.shapes, shape)

		lo, _ := stats.Min(g.Y)
		hi, _ := stats.Max(g.Y)
		v.yMin = math.Min(v.yMin, lo)
		v.yMax = math.Max(v.yMax, hi)
	}

	return v
}

// Len returns the number of violins.
func (v *Violins) Len() int {
	return len(v.shapes)
}

func buildShape(g dataset.Group, half float64) violinShape {
	shape := violinShape{x: g.X, maxHalf: half}

	lo, _ := stats.Min(g.Y)
	hi, _ := stats.Max(g.Y)
	sd, _ := stats.StandardDeviationSample(g.Y)
	if len(g.Y) < 2 || hi == lo || !(sd > 0) {
		shape.tick = true
		shape.tickAt, _ = stats.Median(g.Y)

		return shape
	}

	bw := scottBandwidth(sd, len(g.Y))
	shape.ys = make([]float64, defaultKDEPoints)
	density, release := pool.GetFloat64Slice(defaultKDEPoints)
	defer release()
	peak := 0.0
	for i := range shape.ys {
		y := lo + (hi-lo)*float64(i)/float64(defaultKDEPoints-1)
		shape.ys[i] = y
		density[i] = gaussianKDE(g.Y, bw, y)
		peak = math.Max(peak, density[i])
	}

	shape.offsets = make([]float64, len(density))
	for i, d := range density {
		shape.offsets[i] = d / peak * half
	}

	if q, err := stats.Quartile(g.Y); err == nil {
		for i, qv := range []float64{q.Q1, q.Q2, q.Q3} {
			shape.quartiles[i] = [2]float64{qv, gaussianKDE(g.Y, bw, qv) / peak * half}
		}
	}

	return shape
}

// scottBandwidth returns Scott's rule of thumb bandwidth σ·n^(-1/5).
func scottBandwidth(sd float64, n int) float64 {
	return sd * math.Pow(float64(n), -0.2)
}

// gaussianKDE evaluates a Gaussian kernel density estimate at y.
func gaussianKDE(data []float64, bw, y float64) float64 {
	sum := 0.0
	for _, d := range data {
		sum += distuv.UnitNormal.Prob((y - d) / bw)
	}

	return sum / (float64(len(data)) * bw)
}

// minSpacing returns the smallest gap between consecutive X values, or 1.
func minSpacing(groups []dataset.Group) float64 {
	spacing := math.Inf(1)
	for i := 1; i < len(groups); i++ {
		spacing = math.Min(spacing, groups[i].X-groups[i-1].X)
	}
	if math.IsInf(spacing, 1) || spacing <= 0 {
		return 1
	}

	return spacing
}

// Plot implements the plot.Plotter interface.
func (v *Violins) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, s := range v.shapes {
		if s.tick {
			line := []vg.Point{
				{X: trX(s.x - s.maxHalf), Y: trY(s.tickAt)},
				{X: trX(s.x + s.maxHalf), Y: trY(s.tickAt)},
			}
			c.StrokeLines(v.Outline, c.ClipLinesXY(line)...)

			continue
		}

		outline := make([]vg.Point, 0, 2*len(s.ys)+1)
		for i, y := range s.ys {
			outline = append(outline, vg.Point{X: trX(s.x - s.offsets[i]), Y: trY(y)})
		}
		for i := len(s.ys) - 1; i >= 0; i-- {
			outline = append(outline, vg.Point{X: trX(s.x + s.offsets[i]), Y: trY(s.ys[i])})
		}

		c.FillPolygon(s.fill, c.ClipPolygonXY(outline))
		outline = append(outline, outline[0])
		c.StrokeLines(v.Outline, c.ClipLinesXY(outline)...)

		for _, q := range s.quartiles {
			if q[1] == 0 {
				continue
			}
			line := []vg.Point{
				{X: trX(s.x - q[1]), Y: trY(q[0])},
				{X: trX(s.x + q[1]), Y: trY(q[0])},
			}
			c.StrokeLines(v.Inner, c.ClipLinesXY(line)...)
		}
	}
}

// DataRange implements the plot.DataRanger interface.
func (v *Violins) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(v.shapes) == 0 {
		return 0, 1, 0, 1
	}
	first, last := v.shapes[0], v.shapes[len(v.shapes)-1]

	return first.x - first.maxHalf, last.x + last.maxHalf, v.yMin, v.yMax
}
