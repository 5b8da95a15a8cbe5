package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSample(t *testing.T) {
	tests := []struct {
		name    string
		x, y    []float64
		wantErr error
	}{
		{name: "valid", x: []float64{0, 1, 2}, y: []float64{1, 2, 3}},
		{name: "length mismatch", x: []float64{0, 1}, y: []float64{1}, wantErr: ErrLengthMismatch},
		{name: "empty", x: nil, y: nil, wantErr: ErrEmptyTable},
		{name: "nan input", x: []float64{0, math.NaN()}, y: []float64{1, 2}, wantErr: ErrNonFinite},
		{name: "inf output", x: []float64{0, 1}, y: []float64{1, math.Inf(1)}, wantErr: ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSample(tt.x, tt.y)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tt.x), s.Len())
		})
	}
}

func TestSample_Immutable(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{1, 2, 3}
	s, err := NewSample(x, y)
	require.NoError(t, err)

	x[0] = 100
	require.Equal(t, 0.0, s.X()[0], "sample must not alias the caller's slice")

	got := s.Y()
	got[0] = 100
	require.Equal(t, 1.0, s.Y()[0], "accessors must return copies")
}

func TestSample_Range(t *testing.T) {
	s, err := NewSample([]float64{3, 0, 5, 1}, []float64{1, 1, 1, 1})
	require.NoError(t, err)

	lo, hi := s.Range()
	require.Equal(t, 0.0, lo)
	require.Equal(t, 5.0, hi)

	lo, hi = Sample{}.Range()
	require.Zero(t, lo)
	require.Zero(t, hi)
}

func TestSample_Groups(t *testing.T) {
	s, err := NewSample(
		[]float64{2, 0, 2, 1, 0},
		[]float64{5, 1, 6, 3, 2},
	)
	require.NoError(t, err)

	groups := s.Groups()
	require.Equal(t, []Group{
		{X: 0, Y: []float64{1, 2}},
		{X: 1, Y: []float64{3}},
		{X: 2, Y: []float64{5, 6}},
	}, groups)
}

func TestSample_Linspace(t *testing.T) {
	s, err := NewSample([]float64{0, 4, 2}, []float64{1, 2, 3})
	require.NoError(t, err)

	xs, err := s.Linspace(5)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1, 2, 3, 4}, xs, 1e-12)

	xs, err = s.Linspace(200)
	require.NoError(t, err)
	require.Len(t, xs, 200)
	require.Equal(t, 0.0, xs[0])
	require.Equal(t, 4.0, xs[199])

	_, err = s.Linspace(1)
	require.Error(t, err)

	_, err = Sample{}.Linspace(10)
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestSample_Fingerprint(t *testing.T) {
	a, err := NewSample([]float64{0, 1}, []float64{1, 2})
	require.NoError(t, err)
	b, err := NewSample([]float64{0, 1}, []float64{1, 2})
	require.NoError(t, err)
	c, err := NewSample([]float64{0, 1}, []float64{1, 2.5})
	require.NoError(t, err)

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
