package compress

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Type identifies the compression applied to an input table.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone represents an uncompressed file.
	TypeZstd Type = 0x2 // TypeZstd represents Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 represents S2 compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 represents LZ4 block compression.
)

// String returns the display name of the compression type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// extensionTypes maps lower-case file extensions to compression types.
var extensionTypes = map[string]Type{
	".zst":  TypeZstd,
	".zstd": TypeZstd,
	".s2":   TypeS2,
	".sz":   TypeS2,
	".lz4":  TypeLZ4,
}

// TypeForPath returns the compression type implied by the extension of path.
//
// Unknown extensions, including `.csv`, are treated as uncompressed.
//
// Parameters:
//   - path: File name or path of the input table
//
// Returns:
//   - Type: Compression type for the file
func TypeForPath(path string) Type {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}

	return TypeNone
}

// Compressor compresses a complete input table in one call.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result.
	// The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a complete input table in one call.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	//
	// Returns an error if the data is corrupted or was produced by a
	// different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given compression type.
//
// Parameters:
//   - t: Compression type (None, Zstd, S2, or LZ4)
//
// Returns:
//   - Codec: Codec instance for the type
//   - error: Invalid compression type error
func CreateCodec(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NewNoOpCompressor(), nil
	case TypeZstd:
		return NewZstdCompressor(), nil
	case TypeS2:
		return NewS2Compressor(), nil
	case TypeLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid compression type: %s", t)
	}
}
