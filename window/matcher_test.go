package window

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/uniqwin/compress"
	"github.com/arloliu/uniqwin/errs"
	"github.com/arloliu/uniqwin/format"
	"github.com/arloliu/uniqwin/internal/fixture"
	"github.com/arloliu/uniqwin/symbol"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m, err := New[uint32](14, symbol.Alpha32{})
		require.NoError(t, err)
		require.Equal(t, 14, m.Size())

		cfg := m.Config()
		require.Equal(t, DefaultReadBufferSize, cfg.ReadBufferSize)
		require.Equal(t, format.CompressionNone, cfg.Compression)
		require.Zero(t, cfg.SymbolLimit)
	})

	t.Run("options", func(t *testing.T) {
		m, err := New[uint64](4, symbol.Alnum64{},
			WithReadBufferSize(32),
			WithCompression(format.CompressionS2),
			WithSymbolLimit(100),
		)
		require.NoError(t, err)

		cfg := m.Config()
		require.Equal(t, 32, cfg.ReadBufferSize)
		require.Equal(t, format.CompressionS2, cfg.Compression)
		require.Equal(t, 100, cfg.SymbolLimit)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		_, err := New[uint32](3, symbol.Alpha32{}, nil)
		require.NoError(t, err)
	})
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		new  func() error
		err  error
	}{
		{"nil encoder", func() error {
			_, err := New[uint32](3, nil)
			return err
		}, errs.ErrNilEncoder},
		{"zero size", func() error {
			_, err := New[uint32](0, symbol.Alpha32{})
			return err
		}, errs.ErrInvalidWindowSize},
		{"size over 32", func() error {
			_, err := New[uint32](33, symbol.Alpha32{})
			return err
		}, errs.ErrWindowExceedsMask},
		{"size over 64", func() error {
			_, err := New[uint64](65, symbol.Alnum64{})
			return err
		}, errs.ErrWindowExceedsMask},
		{"zero buffer", func() error {
			_, err := New[uint32](3, symbol.Alpha32{}, WithReadBufferSize(0))
			return err
		}, errs.ErrInvalidBufferSize},
		{"negative limit", func() error {
			_, err := New[uint32](3, symbol.Alpha32{}, WithSymbolLimit(-1))
			return err
		}, errs.ErrInvalidSymbolLimit},
		{"unknown compression", func() error {
			_, err := New[uint32](3, symbol.Alpha32{}, WithCompression(format.CompressionType(0)))
			return err
		}, errs.ErrInvalidCompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.new(), tt.err)
		})
	}
}

func TestMatcher_SymbolLimit(t *testing.T) {
	// "abc" first appears at index 5, its window ends at symbol 8
	const s = "aaaaaabcd"

	for _, limit := range []int{0, 8, 9, 100} {
		m, err := New[uint32](3, symbol.Alpha32{}, WithSymbolLimit(limit))
		require.NoError(t, err)

		require.Equalf(t, 5, m.Index(s), "Index limit=%d", limit)
		require.Equalf(t, 5, m.IndexBytes([]byte(s)), "IndexBytes limit=%d", limit)
		require.Equalf(t, 5, m.IndexRunes([]rune(s)), "IndexRunes limit=%d", limit)
		require.Equalf(t, 5, m.IndexSeq(runes(s)), "IndexSeq limit=%d", limit)

		idx, err := m.IndexReader(strings.NewReader(s))
		require.NoError(t, err)
		require.Equalf(t, 5, idx, "IndexReader limit=%d", limit)
	}

	for _, limit := range []int{1, 3, 7} {
		m, err := New[uint32](3, symbol.Alpha32{}, WithSymbolLimit(limit))
		require.NoError(t, err)

		require.Equalf(t, -1, m.Index(s), "Index limit=%d", limit)
		require.Equalf(t, -1, m.IndexBytes([]byte(s)), "IndexBytes limit=%d", limit)
		require.Equalf(t, -1, m.IndexRunes([]rune(s)), "IndexRunes limit=%d", limit)
		require.Equalf(t, -1, m.IndexSeq(runes(s)), "IndexSeq limit=%d", limit)

		idx, err := m.IndexReader(strings.NewReader(s))
		require.NoError(t, err)
		require.Equalf(t, -1, idx, "IndexReader limit=%d", limit)
	}
}

func TestMatcher_SymbolLimit_NonASCII(t *testing.T) {
	// The limit counts runes, not bytes
	m, err := New[uint64](3, symbol.Alnum64{}, WithSymbolLimit(4))
	require.NoError(t, err)
	require.Equal(t, 1, m.Index("ééab"))

	m, err = New[uint64](3, symbol.Alnum64{}, WithSymbolLimit(3))
	require.NoError(t, err)
	require.Equal(t, -1, m.Index("ééab"))
}

func TestMatcher_IndexSeq_StopsAtLimit(t *testing.T) {
	consumed := 0
	seq := func(yield func(rune) bool) {
		for _, r := range "aaaaaaaaaa" {
			consumed++
			if !yield(r) {
				return
			}
		}
	}

	m, err := New[uint32](2, symbol.Alpha32{}, WithSymbolLimit(4))
	require.NoError(t, err)
	require.Equal(t, -1, m.IndexSeq(seq))
	require.Equal(t, 4, consumed)
}

func zstdStream(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func s2Stream(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := s2.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func lz4Stream(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestMatcher_IndexReader(t *testing.T) {
	text := fixture.MatchAtEnd("reader", 20000)
	want := Index[uint32](text, 14, symbol.Alpha32{})
	require.NotEqual(t, -1, want)

	tests := []struct {
		name   string
		ct     format.CompressionType
		encode func(*testing.T, []byte) []byte
	}{
		{"none", format.CompressionNone, func(_ *testing.T, b []byte) []byte { return b }},
		{"zstd", format.CompressionZstd, zstdStream},
		{"s2", format.CompressionS2, s2Stream},
		{"lz4", format.CompressionLZ4, lz4Stream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New[uint32](14, symbol.Alpha32{}, WithCompression(tt.ct))
			require.NoError(t, err)

			idx, err := m.IndexReader(bytes.NewReader(tt.encode(t, []byte(text))))
			require.NoError(t, err)
			require.Equal(t, want, idx)

			idx, err = m.IndexReader(bytes.NewReader(tt.encode(t, []byte(fixture.NoMatch("reader", 1000)))))
			require.NoError(t, err)
			require.Equal(t, -1, idx)
		})
	}
}

func TestMatcher_IndexReader_SmallBuffer(t *testing.T) {
	// Multi-byte runes straddle the 16 byte buffer boundary
	text := strings.Repeat("é世", 50) + "abcdé"

	m, err := New[uint64](5, symbol.Alnum64{}, WithReadBufferSize(16))
	require.NoError(t, err)

	idx, err := m.IndexReader(iotest.OneByteReader(strings.NewReader(text)))
	require.NoError(t, err)
	require.Equal(t, Index[uint64](text, 5, symbol.Alnum64{}), idx)
	require.Equal(t, 99, idx)
}

func TestMatcher_IndexReader_StopsAtAnswer(t *testing.T) {
	r := strings.NewReader("abcdefgh")

	m, err := New[uint32](4, symbol.Alpha32{}, WithReadBufferSize(16))
	require.NoError(t, err)

	idx, err := m.IndexReader(iotest.OneByteReader(r))
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	// bufio reads one byte at a time from a OneByteReader
	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "efgh", string(rest))
}

func TestMatcher_IndexReader_Errors(t *testing.T) {
	t.Run("read error", func(t *testing.T) {
		m, err := New[uint32](3, symbol.Alpha32{})
		require.NoError(t, err)

		r := io.MultiReader(strings.NewReader("aaaa"), iotest.ErrReader(io.ErrUnexpectedEOF))
		idx, err := m.IndexReader(r)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.Equal(t, -1, idx)
	})

	t.Run("corrupt zstd stream", func(t *testing.T) {
		m, err := New[uint32](3, symbol.Alpha32{}, WithCompression(format.CompressionZstd))
		require.NoError(t, err)

		idx, err := m.IndexReader(strings.NewReader("this is not a zstd frame"))
		require.Error(t, err)
		require.Equal(t, -1, idx)
	})

	t.Run("corrupt s2 stream", func(t *testing.T) {
		m, err := New[uint32](3, symbol.Alpha32{}, WithCompression(format.CompressionS2))
		require.NoError(t, err)

		idx, err := m.IndexReader(strings.NewReader("this is not an s2 stream"))
		require.Error(t, err)
		require.Equal(t, -1, idx)
	})
}

func TestMatcher_IndexCompressed(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(ct)
			require.NoError(t, err)

			block, err := codec.Compress([]byte(fixture.Regression))
			require.NoError(t, err)

			m, err := New[uint32](14, symbol.Alpha32{}, WithCompression(ct))
			require.NoError(t, err)

			idx, err := m.IndexCompressed(block)
			require.NoError(t, err)
			require.Equal(t, 5, idx)
		})
	}

	t.Run("corrupt zstd block", func(t *testing.T) {
		m, err := New[uint32](14, symbol.Alpha32{}, WithCompression(format.CompressionZstd))
		require.NoError(t, err)

		idx, err := m.IndexCompressed([]byte("garbage"))
		require.Error(t, err)
		require.Equal(t, -1, idx)
	})
}

func TestMatcher_Concurrent(t *testing.T) {
	m, err := New[uint32](14, symbol.Alpha32{})
	require.NoError(t, err)

	inputs := make([]string, 8)
	wants := make([]int, len(inputs))
	for i := range inputs {
		inputs[i] = fixture.Random("concurrent-"+string(rune('a'+i)), 3000, fixture.Lower)
		wants[i] = Index[uint32](inputs[i], 14, symbol.Alpha32{})
	}

	var wg sync.WaitGroup
	results := make([][]int, len(inputs))
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 50 {
				results[i] = append(results[i], m.IndexSeq(runes(inputs[i])))
				idx, err := m.IndexReader(strings.NewReader(inputs[i]))
				if err != nil {
					idx = -2
				}
				results[i] = append(results[i], idx)
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		for _, idx := range got {
			require.Equal(t, wants[i], idx)
		}
	}
}
