package window

import (
	"fmt"

	"github.com/arloliu/uniqwin/errs"
	"github.com/arloliu/uniqwin/format"
	"github.com/arloliu/uniqwin/internal/options"
)

// DefaultReadBufferSize is the bufio buffer size used by Matcher.IndexReader.
const DefaultReadBufferSize = 64 * 1024

// Config holds the settings of a Matcher.
type Config struct {
	// ReadBufferSize is the buffer size for IndexReader.
	ReadBufferSize int
	// Compression is the format of data passed to IndexReader and IndexCompressed.
	Compression format.CompressionType
	// SymbolLimit caps how many leading symbols are scanned; 0 means no cap.
	SymbolLimit int
}

func defaultConfig() Config {
	return Config{
		ReadBufferSize: DefaultReadBufferSize,
		Compression:    format.CompressionNone,
	}
}

// Option is a functional option for New.
type Option = options.Option[*Config]

// WithReadBufferSize sets the read buffer size for IndexReader.
func WithReadBufferSize(n int) Option {
	return options.New(func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("%d: %w", n, errs.ErrInvalidBufferSize)
		}
		cfg.ReadBufferSize = n

		return nil
	})
}

// WithCompression sets the compression format of input given to IndexReader
// (stream format) and IndexCompressed (block format).
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		switch ct {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.Compression = ct
			return nil
		default:
			return fmt.Errorf("%s: %w", ct, errs.ErrInvalidCompression)
		}
	})
}

// WithSymbolLimit makes the matcher look only at the first n symbols of every input.
// A window must end within those n symbols to be found. 0 removes the limit.
func WithSymbolLimit(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%d: %w", n, errs.ErrInvalidSymbolLimit)
		}
		cfg.SymbolLimit = n

		return nil
	})
}
