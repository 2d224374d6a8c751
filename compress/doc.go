// Package compress decodes compressed input before it reaches the window matcher.
//
// Two shapes are supported for each algorithm:
//
//   - Block codecs (Codec) for payloads already held in memory, used by
//     window.Matcher.IndexCompressed.
//   - Stream decoders (NewReader) for single-pass sources such as files, pipes and
//     network bodies, used by window.Matcher.IndexReader.
//
// Supported algorithms:
//   - None: pass-through
//   - Zstd: github.com/klauspost/compress/zstd
//   - S2: github.com/klauspost/compress/s2 (reads Snappy streams too)
//   - LZ4: github.com/pierrec/lz4/v4
//
// Block and stream formats are not interchangeable: a payload produced by
// S2Compressor.Compress is not a valid S2 stream, and vice versa.
//
// # Thread Safety
//
// All block codecs are stateless values and safe for concurrent use. Readers returned
// by NewReader belong to a single goroutine.
package compress
