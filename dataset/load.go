package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/arloliu/pkoffee/compress"
)

const (
	// ColumnCups is the header of the input column.
	ColumnCups = "cups"
	// ColumnProductivity is the header of the output column.
	ColumnProductivity = "productivity"
)

// ErrMissingColumn is returned when a required column is absent from the header.
var ErrMissingColumn = errors.New("missing required column")

// ErrMissingValue is returned when a required cell is empty.
var ErrMissingValue = errors.New("missing value")

// observation is one CSV row; unknown columns are ignored.
type observation struct {
	Cups         cell `csv:"cups"`
	Productivity cell `csv:"productivity"`
}

// cell is a required numeric cell. gocsv decodes an empty float64 as zero,
// so blank cells are rejected here.
type cell float64

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (c *cell) UnmarshalCSV(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrMissingValue
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*c = cell(v)

	return nil
}

// Load reads a sample from a CSV file.
//
// Files ending in `.zst`, `.zstd`, `.s2`, `.sz` or `.lz4` are decompressed first.
//
// Parameters:
//   - path: Path of the table
//
// Returns:
//   - Sample: The loaded sample
//   - error: I/O, decompression, header or parse error
func Load(path string) (Sample, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Sample{}, err
	}

	codec, err := compress.CreateCodec(compress.TypeForPath(path))
	if err != nil {
		return Sample{}, err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return Sample{}, fmt.Errorf("failed to decompress %s: %w", path, err)
	}

	s, err := Decode(data)
	if err != nil {
		return Sample{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Decode parses a sample from an uncompressed CSV table.
//
// The header must contain the `cups` and `productivity` columns; other columns
// are ignored and column order does not matter.
//
// Parameters:
//   - data: CSV bytes including the header row
//
// Returns:
//   - Sample: The decoded sample
//   - error: ErrMissingColumn, ErrMissingValue, ErrEmptyTable, ErrNonFinite or a parse error
func Decode(data []byte) (Sample, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if err := checkHeader(data); err != nil {
		return Sample{}, err
	}

	var rows []observation
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return Sample{}, fmt.Errorf("failed to parse table: %w", err)
	}
	if len(rows) == 0 {
		return Sample{}, ErrEmptyTable
	}

	x := make([]float64, len(rows))
	y := make([]float64, len(rows))
	for i, row := range rows {
		x[i] = float64(row.Cups)
		y[i] = float64(row.Productivity)
	}

	return NewSample(x, y)
}

func checkHeader(data []byte) error {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if errors.Is(err, io.EOF) {
		return ErrEmptyTable
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	for _, col := range []string{ColumnCups, ColumnProductivity} {
		if !slices.Contains(header, col) {
			return fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	return nil
}
