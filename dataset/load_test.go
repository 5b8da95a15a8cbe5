package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pkoffee/compress"
)

const coffeeTable = `cups,productivity
0,1.0
1,2.0
2,3.0
3,3.5
4,3.8
`

func writeTable(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestDecode(t *testing.T) {
	s, err := Decode([]byte(coffeeTable))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3, 4}, s.X())
	require.Equal(t, []float64{1, 2, 3, 3.5, 3.8}, s.Y())
}

func TestDecode_ExtraColumnsAndOrder(t *testing.T) {
	table := "subject,productivity,cups\nann,2.5,1\nbob,4.0,3\n"

	s, err := Decode([]byte(table))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3}, s.X())
	require.Equal(t, []float64{2.5, 4.0}, s.Y())
}

func TestDecode_ByteOrderMark(t *testing.T) {
	s, err := Decode(append([]byte("\xef\xbb\xbf"), coffeeTable...))
	require.NoError(t, err)
	require.Equal(t, 5, s.Len())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr error
	}{
		{name: "empty file", table: "", wantErr: ErrEmptyTable},
		{name: "header only", table: "cups,productivity\n", wantErr: ErrEmptyTable},
		{name: "missing cups", table: "coffee,productivity\n1,2\n", wantErr: ErrMissingColumn},
		{name: "missing productivity", table: "cups,output\n1,2\n", wantErr: ErrMissingColumn},
		{name: "non finite value", table: "cups,productivity\n1,NaN\n", wantErr: ErrNonFinite},
		{name: "empty cups cell", table: "cups,productivity\n1,2\n,3\n", wantErr: ErrMissingValue},
		{name: "empty productivity cell", table: "cups,productivity\n1,\n2,3\n", wantErr: ErrMissingValue},
		{name: "blank cell", table: "cups,productivity\n1,2\n  ,3\n", wantErr: ErrMissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.table))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecode_UnparsableNumber(t *testing.T) {
	_, err := Decode([]byte("cups,productivity\n1,lots\n"))
	require.Error(t, err)
}

func TestDecode_MissingValueLocation(t *testing.T) {
	_, err := Decode([]byte("cups,productivity\n0,1\n1,2\n2,\n"))
	require.ErrorIs(t, err, ErrMissingValue)
	require.Contains(t, err.Error(), "line 4")
}

func TestLoad_Plain(t *testing.T) {
	path := writeTable(t, "coffee_productivity.csv", []byte(coffeeTable))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, s.Len())
}

func TestLoad_Compressed(t *testing.T) {
	tests := []struct {
		name string
		typ  compress.Type
	}{
		{name: "coffee.csv.zst", typ: compress.TypeZstd},
		{name: "coffee.csv.s2", typ: compress.TypeS2},
		{name: "coffee.csv.lz4", typ: compress.TypeLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := compress.CreateCodec(tt.typ)
			require.NoError(t, err)
			packed, err := codec.Compress([]byte(coffeeTable))
			require.NoError(t, err)

			s, err := Load(writeTable(t, tt.name, packed))
			require.NoError(t, err)
			require.Equal(t, []float64{1, 2, 3, 3.5, 3.8}, s.Y())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_CorruptedArchive(t *testing.T) {
	_, err := Load(writeTable(t, "coffee.csv.zst", []byte(coffeeTable)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decompress")
}
