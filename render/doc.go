// Package render draws the model comparison figure.
//
// The figure overlays every fitted curve, labelled with its R², on violin
// plots of the observed productivity at each distinct number of cups. It is
// drawn with gonum/plot and encoded as PNG.
//
//	err := render.RenderFile("fit_plot.png", render.Figure{
//	    Sample: sample,
//	    Fits:   regression.Rank(fits),
//	    Smooth: xs,
//	})
package render
