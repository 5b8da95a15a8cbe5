// Package compress decodes compressed observation tables.
//
// Input tables are small CSV files, but they are often archived next to other
// lab data in compressed form. This package maps a file name to its
// compression type and provides a codec for each supported algorithm, so the
// loader can read `coffee_productivity.csv.zst` exactly like the plain file.
//
// # Supported Algorithms
//
//   - None: plain files, returned unchanged
//   - Zstd: `.zst`, `.zstd` (Zstandard frame format, pure Go decoder)
//   - S2: `.s2`, `.sz` (S2 block format, Snappy compatible)
//   - LZ4: `.lz4` (LZ4 block format)
//
// # Usage
//
//	typ := compress.TypeForPath(path)
//	codec, err := compress.CreateCodec(typ)
//	if err != nil {
//	    return err
//	}
//	table, err := codec.Decompress(raw)
//
// Every codec also compresses, which keeps fixtures and round trips in tests
// on the same code path as production reads.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use; pooled
// encoder and decoder state is guarded by sync.Pool.
package compress
