package window_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/arloliu/uniqwin/compress"
	"github.com/arloliu/uniqwin/format"
	"github.com/arloliu/uniqwin/symbol"
	"github.com/arloliu/uniqwin/window"
)

func ExampleIndex() {
	fmt.Println(window.Index[uint32]("mjqjpqmgbljsphdztnvjfqwrcgsmlb", 4, symbol.Alpha32{}))
	fmt.Println(window.Index[uint32]("mjqjpqmgbljsphdztnvjfqwrcgsmlb", 14, symbol.Alpha32{}))
	fmt.Println(window.Index[uint32]("ab", 3, symbol.Alpha32{}))

	// Output:
	// 3
	// 5
	// -1
}

func ExampleIndex_caseSensitivity() {
	// Alpha32 folds case, Alnum64 does not
	fmt.Println(window.Index[uint32]("aAbc", 3, symbol.Alpha32{}))
	fmt.Println(window.Index[uint64]("aAbc", 3, symbol.Alnum64{}))

	// Output:
	// 1
	// 0
}

func ExampleMatcher_IndexReader() {
	m, err := window.New[uint64](4, symbol.Alnum64{}, window.WithSymbolLimit(1000))
	if err != nil {
		log.Fatal(err)
	}

	idx, err := m.IndexReader(strings.NewReader("aabbccdEfgh"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(idx)

	// Output:
	// 5
}

func ExampleMatcher_IndexCompressed() {
	codec, err := compress.GetCodec(format.CompressionS2)
	if err != nil {
		log.Fatal(err)
	}

	block, err := codec.Compress([]byte("zzzzuniq"))
	if err != nil {
		log.Fatal(err)
	}

	m, err := window.New[uint32](4, symbol.Alpha32{}, window.WithCompression(format.CompressionS2))
	if err != nil {
		log.Fatal(err)
	}

	idx, err := m.IndexCompressed(block)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(idx)

	// Output:
	// 3
}
