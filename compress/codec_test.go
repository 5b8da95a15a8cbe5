package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleTable = "cups,productivity\n0,1.0\n1,2.0\n2,3.0\n3,3.5\n4,3.8\n"

func TestType_String(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		expected string
	}{
		{name: "none", typ: TypeNone, expected: "None"},
		{name: "zstd", typ: TypeZstd, expected: "Zstd"},
		{name: "s2", typ: TypeS2, expected: "S2"},
		{name: "lz4", typ: TypeLZ4, expected: "LZ4"},
		{name: "unknown", typ: Type(0xFF), expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.typ.String())
		})
	}
}

func TestTypeForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Type
	}{
		{path: "coffee_productivity.csv", expected: TypeNone},
		{path: "data/coffee.csv.zst", expected: TypeZstd},
		{path: "coffee.csv.ZSTD", expected: TypeZstd},
		{path: "coffee.csv.s2", expected: TypeS2},
		{path: "coffee.csv.sz", expected: TypeS2},
		{path: "coffee.csv.lz4", expected: TypeLZ4},
		{path: "coffee", expected: TypeNone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, TypeForPath(tt.path))
		})
	}
}

func TestCreateCodec_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte(sampleTable), 50)

	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := CreateCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			if typ != TypeNone {
				require.Less(t, len(compressed), len(data), "repetitive table should shrink")
			}

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, restored)
		})
	}
}

func TestCreateCodec_InvalidType(t *testing.T) {
	codec, err := CreateCodec(Type(0xFF))
	require.Error(t, err)
	require.Nil(t, codec)
	require.Contains(t, err.Error(), "Unknown")
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewS2Compressor(), NewLZ4Compressor(), NewZstdCompressor()} {
		out, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

func TestCodecs_CorruptedInput(t *testing.T) {
	garbage := []byte("definitely not a compressed table")

	_, err := NewZstdCompressor().Decompress(garbage)
	require.Error(t, err)

	_, err = NewS2Compressor().Decompress(garbage)
	require.Error(t, err)
}

func TestLZ4Compressor_LargeExpansion(t *testing.T) {
	// Highly repetitive data compresses far beyond the 4x initial buffer guess.
	data := bytes.Repeat([]byte("0,1.0\n"), 20000)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(data))

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, restored)
}
