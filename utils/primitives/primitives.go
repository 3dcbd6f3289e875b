// Package primitives implements the 64-bit word operations used by the modular arithmetic
// of the ring package: add with carry, subtract with borrow, 64x64 -> 128 multiplication,
// most significant bit index and 128/64 division.
//
// Two implementations of the [Arithmetic] interface are provided: [Intrinsic], backed by the
// compiler intrinsics of math/bits, and [Portable], a bit-twiddling rendition on 32-bit limbs
// that is bit-for-bit equivalent. The package level functions [Add64], [Sub64], [Mul64],
// [MulHi64] and [MSB64] are resolved at build time (the purego build tag selects the portable
// bodies) and are the ones hot loops call.
package primitives

// Arithmetic is the interface for the word-level primitives.
// All operations have exact 64-bit wraparound semantics and never trap.
type Arithmetic interface {
	// Name returns a short identifier of the implementation.
	Name() string

	// AddWithCarry returns a + b + carry and the carry out. carry must be 0 or 1.
	AddWithCarry(a, b, carry uint64) (sum, carryOut uint64)

	// SubWithBorrow returns a - b - borrow and the borrow out. borrow must be 0 or 1.
	SubWithBorrow(a, b, borrow uint64) (diff, borrowOut uint64)

	// MulWide returns the 128-bit product a * b as (hi, lo).
	MulWide(a, b uint64) (hi, lo uint64)

	// MulHigh returns the upper 64 bits of a * b.
	MulHigh(a, b uint64) uint64

	// MSBIndex returns the index of the most significant set bit of x, or -1 if x is zero.
	MSBIndex(x uint64) int

	// Div128 returns the quotient and remainder of (hi, lo) divided by y.
	// It panics if y is zero or y <= hi.
	Div128(hi, lo, y uint64) (quo, rem uint64)
}
