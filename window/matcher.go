package window

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/uniqwin/compress"
	"github.com/arloliu/uniqwin/errs"
	"github.com/arloliu/uniqwin/format"
	"github.com/arloliu/uniqwin/internal/options"
	"github.com/arloliu/uniqwin/symbol"
)

// Matcher is a validated, reusable window scan: a fixed window size, an encoder and
// input settings. A Matcher is immutable and safe for concurrent use.
type Matcher[M symbol.Mask] struct {
	enc  symbol.Encoder[M]
	size int
	cfg  Config
}

// New creates a Matcher for windows of size symbols encoded by enc.
//
// Parameters:
//   - size: Window length, between 1 and the bit width of M
//   - enc: Symbol encoder; its codes must be one-hot
//   - opts: Optional settings (WithReadBufferSize, WithCompression, WithSymbolLimit)
//
// Returns:
//   - *Matcher[M]: The matcher
//   - error: errs.ErrNilEncoder, errs.ErrInvalidWindowSize, errs.ErrWindowExceedsMask
//     or an option error
//
// Example:
//
//	m, err := window.New[uint64](14, symbol.Alnum64{},
//	    window.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	idx, err := m.IndexReader(file)
func New[M symbol.Mask](size int, enc symbol.Encoder[M], opts ...Option) (*Matcher[M], error) {
	if enc == nil {
		return nil, errs.ErrNilEncoder
	}
	if err := checkSize[M](size); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("invalid matcher option: %w", err)
	}

	return &Matcher[M]{enc: enc, size: size, cfg: cfg}, nil
}

// Size returns the window size.
func (m *Matcher[M]) Size() int {
	return m.size
}

// Config returns a copy of the matcher settings.
func (m *Matcher[M]) Config() Config {
	return m.cfg
}

// Index returns the rune index of the first qualifying window of s, or -1.
func (m *Matcher[M]) Index(s string) int {
	return indexString(s, m.size, m.enc, m.cfg.SymbolLimit)
}

// IndexBytes returns the index of the first qualifying window of b, treating every
// byte as one symbol, or -1.
func (m *Matcher[M]) IndexBytes(b []byte) int {
	if limit := m.cfg.SymbolLimit; limit > 0 && limit < len(b) {
		b = b[:limit]
	}

	return scanBytes(b, m.size, m.enc)
}

// IndexRunes returns the index of the first qualifying window of r, or -1.
func (m *Matcher[M]) IndexRunes(r []rune) int {
	if limit := m.cfg.SymbolLimit; limit > 0 && limit < len(r) {
		r = r[:limit]
	}

	return scanRunes(r, m.size, m.enc)
}

// IndexSeq returns the index of the first qualifying window of seq, or -1.
// seq is iterated once and abandoned as soon as the answer is known.
func (m *Matcher[M]) IndexSeq(seq iter.Seq[rune]) int {
	return scanSeq(seq, m.size, m.enc, m.cfg.SymbolLimit)
}

// IndexReader scans UTF-8 text read from r in a single pass and returns the rune index
// of the first qualifying window, or -1 if r ends first.
//
// If the matcher was built WithCompression, r is decoded as a stream of that format.
// Reading stops at the last symbol of the answer; the rest of r is left unread.
//
// Returns:
//   - int: Window start, or -1
//   - error: Decompression or read error; the index is -1 when err is non-nil
func (m *Matcher[M]) IndexReader(r io.Reader) (int, error) {
	src := r
	if m.cfg.Compression != format.CompressionNone {
		rc, err := compress.NewReader(r, m.cfg.Compression)
		if err != nil {
			return -1, fmt.Errorf("open %s stream: %w", m.cfg.Compression, err)
		}
		defer rc.Close()
		src = rc
	}

	br := bufio.NewReaderSize(src, m.cfg.ReadBufferSize)

	roll := newRoller[M](m.size)
	defer roll.release()

	for n := 0; m.cfg.SymbolLimit == 0 || n < m.cfg.SymbolLimit; n++ {
		sym, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			return -1, nil
		}
		if err != nil {
			return -1, fmt.Errorf("read symbol %d: %w", n, err)
		}

		if roll.feed(m.enc.Encode(sym)) {
			return roll.start(), nil
		}
	}

	return -1, nil
}

// IndexCompressed decompresses a block produced by the configured codec and scans the
// resulting UTF-8 text like Index.
func (m *Matcher[M]) IndexCompressed(data []byte) (int, error) {
	codec, err := compress.GetCodec(m.cfg.Compression)
	if err != nil {
		return -1, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return -1, fmt.Errorf("decompress %s block: %w", m.cfg.Compression, err)
	}

	return m.Index(string(raw)), nil
}
