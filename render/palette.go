package render

import (
	"fmt"
	"image/color"
	"slices"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

const (
	greensName       = "Greens"
	greensMinClasses = 3
	greensMaxClasses = 9
)

// Greens returns n colors of the ColorBrewer Greens scheme, light to dark.
//
// Between 3 and 9 colors the Brewer class of that size is used as-is. Fewer
// colors take the darkest end of the 3-class scheme so a single violin stays
// visible; more colors are interpolated along the 9-class scheme in CIELAB.
//
// Parameters:
//   - n: Number of colors
//
// Returns:
//   - []color.Color: n colors, nil for n <= 0
func Greens(n int) []color.Color {
	switch {
	case n <= 0:
		return nil
	case n < greensMinClasses:
		return brewerGreens(greensMinClasses)[greensMinClasses-n:]
	case n <= greensMaxClasses:
		return brewerGreens(n)
	default:
		return interpolatedGreens(n)
	}
}

func brewerGreens(classes int) []color.Color {
	p, err := brewer.GetPalette(brewer.TypeSequential, greensName, classes)
	if err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}

	return slices.Clone(p.Colors())
}

// interpolatedGreens samples the 9-class scheme at n evenly spaced points.
// The luminance map needs increasing lightness, so the scheme is fed dark to
// light and read back from the light end.
func interpolatedGreens(n int) []color.Color {
	controls := brewerGreens(greensMaxClasses)
	slices.Reverse(controls)

	cmap, err := moreland.NewLuminance(controls)
	if err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}
	cmap.SetMin(0)
	cmap.SetMax(1)

	out := make([]color.Color, n)
	for i := range n {
		out[i] = colorAt(cmap, 1-float64(i)/float64(n-1))
	}

	return out
}

func colorAt(cmap palette.ColorMap, v float64) color.Color {
	c, err := cmap.At(v)
	if err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}

	return c
}
