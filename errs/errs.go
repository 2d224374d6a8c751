// Package errs defines the sentinel errors shared by the uniqwin packages.
//
// Callers should compare with errors.Is, since most errors are wrapped with
// context before they are returned.
package errs

import "errors"

var (
	// ErrInvalidWindowSize is returned when a window size is zero or negative.
	ErrInvalidWindowSize = errors.New("window size must be positive")

	// ErrWindowExceedsMask is returned when a window size is larger than the bit width
	// of the mask type backing the scan. Such a window can never be all distinct.
	ErrWindowExceedsMask = errors.New("window size exceeds mask width")

	// ErrNilEncoder is returned when a matcher is built without a symbol encoder.
	ErrNilEncoder = errors.New("symbol encoder is nil")

	// ErrNotOneHot is returned when an encoder produces a code with zero or several bits set.
	ErrNotOneHot = errors.New("symbol code is not one-hot")

	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrInvalidBufferSize is returned for a non-positive read buffer size.
	ErrInvalidBufferSize = errors.New("read buffer size must be positive")

	// ErrInvalidSymbolLimit is returned for a negative symbol limit.
	ErrInvalidSymbolLimit = errors.New("symbol limit must not be negative")
)
