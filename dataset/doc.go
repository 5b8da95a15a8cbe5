// Package dataset holds the observation sample fed to the model fits.
//
// A Sample pairs an input column X (cups of coffee) with an output column Y
// (productivity). Samples are immutable: NewSample copies its arguments and
// every accessor returns a fresh slice, so a Sample can be shared by the fit
// engine and the renderer without coordination.
//
// Load reads a CSV table with `cups` and `productivity` columns. Tables may be
// compressed; the compression is chosen from the file extension
// (see package compress).
package dataset
