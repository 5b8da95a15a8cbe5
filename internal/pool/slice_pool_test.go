package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"small", 10},
		{"kde grid", 100},
		{"large", 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slice, cleanup := GetFloat64Slice(tt.size)
			defer cleanup()

			require.Len(t, slice, tt.size)
			require.GreaterOrEqual(t, cap(slice), tt.size)
			for i := range slice {
				slice[i] = float64(i)
			}
		})
	}
}

func TestGetFloat64Slice_Reuse(t *testing.T) {
	first, cleanup := GetFloat64Slice(64)
	first[0] = 42
	cleanup()

	// A reused slice may carry old values; only the length is guaranteed.
	second, cleanup := GetFloat64Slice(32)
	defer cleanup()
	require.Len(t, second, 32)

	third, cleanup3 := GetFloat64Slice(128)
	defer cleanup3()
	require.Len(t, third, 128)
}
