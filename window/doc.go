// Package window finds the first run of S consecutive symbols that are pairwise distinct.
//
// # Algorithm
//
// Every symbol is encoded as a one-hot mask by a symbol.Encoder. The masks of the S
// symbols in the current window are XORed into a single window mask. A symbol that
// appears twice cancels its own bit, so the window is all distinct exactly when the
// window mask has S bits set. Sliding the window one step XORs out the mask of the
// symbol leaving on the left and XORs in the mask of the symbol entering on the right,
// which keeps each step O(1) and the whole scan O(n) with no re-scan of the window.
//
// # Inputs
//
// Replayable inputs (strings, byte and rune slices) are scanned with two cursors i and
// i+S over the same slice. Single-pass inputs (iter.Seq, io.Reader) are scanned in one
// forward pass that keeps the masks of the last S symbols in a ring buffer.
//
//	idx := window.Index[uint32]("mjqjpqmgbljsphdztnvjfqwrcgsmlb", 14, symbol.Alpha32{})
//	// idx == 5
//
// All entry points return the zero-based symbol index of the first qualifying window,
// or -1 when there is none, including when the input is shorter than the window.
//
// # Window Size
//
// The window size must be between 1 and the bit width of the mask type (32 for uint32,
// 64 for uint64). The package-level functions panic on a size outside that range;
// New validates it once and returns an error instead.
//
// # Collisions
//
// Symbols that the encoder maps to the same bit are treated as duplicates of each
// other. See the symbol package for the aliasing each built-in encoder accepts.
package window
