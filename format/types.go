// Package format defines the identifiers shared between the matcher options and the
// compress package.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/uniqwin/errs"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents uncompressed input.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard input.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 (Snappy-compatible) input.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 input.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression converts a case-insensitive name ("none", "zstd", "s2", "lz4")
// to a CompressionType. The empty string means CompressionNone.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2", "snappy":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, errs.ErrInvalidCompression)
	}
}
