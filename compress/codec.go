package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/uniqwin/errs"
	"github.com/arloliu/uniqwin/format"
)

// Compressor compresses a whole in-memory payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Decompress returns an error if the data is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in block Codec for the specified compression type.
//
// Returns an error wrapping errs.ErrInvalidCompression for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("codec %s: %w", compressionType, errs.ErrInvalidCompression)
}

// NewReader returns a streaming decoder that reads compressed data from r.
//
// Stream formats differ from the block formats of Codec: Zstd reads standard
// zstd frames, S2 reads the S2/Snappy framed stream format and LZ4 reads LZ4
// frames. CompressionNone returns r unchanged.
//
// The caller must Close the returned reader. Closing it does not close r.
//
// Parameters:
//   - r: Source of compressed bytes
//   - compressionType: Stream format of r
//
// Returns:
//   - io.ReadCloser: Reader yielding decompressed bytes
//   - error: errs.ErrInvalidCompression for unknown types, or a decoder setup error
func NewReader(r io.Reader, compressionType format.CompressionType) (io.ReadCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return io.NopCloser(r), nil
	case format.CompressionZstd:
		dec, err := zstd.NewReader(r,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
		)
		if err != nil {
			return nil, fmt.Errorf("zstd stream: %w", err)
		}

		return dec.IOReadCloser(), nil
	case format.CompressionS2:
		return io.NopCloser(s2.NewReader(r)), nil
	case format.CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("stream %s: %w", compressionType, errs.ErrInvalidCompression)
	}
}
