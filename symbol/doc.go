// Package symbol maps symbols to one-hot masks for the rolling window matcher.
//
// An Encoder turns a single symbol into an unsigned integer with exactly one bit set.
// The window package XORs these codes together and counts the set bits of the result:
// a window of S symbols is all distinct exactly when that count equals S. The test is
// only sound while every code is one-hot, so this is a precondition on every Encoder.
//
// # Built-in Encoders
//
// Alpha32 (uint32) covers case-insensitive ASCII letters:
//
//	symbol.Encode32('a') // 1
//	symbol.Encode32('A') // 1, upper and lower case share a bit
//	symbol.Encode32('z') // 1 << 25
//
// Alnum64 (uint64) covers case-sensitive ASCII letters and digits:
//
//	symbol.Encode64('A') // 1
//	symbol.Encode64('a') // 1 << 26
//	symbol.Encode64('0') // 1 << 52
//	symbol.Encode64('!') // 1 << 63, the shared bucket for everything else
//
// # Collisions
//
// Neither encoder can fail. Symbols outside the documented domain fold onto a bit that
// another symbol already owns, and the matcher then treats the two as duplicates. This
// is accepted degradation, not a defect. Audit reports such aliasing for a sample of
// symbols, and InDomain32 / InDomain64 tell whether a string stays collision-free.
package symbol
