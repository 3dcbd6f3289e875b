//go:build !purego

package primitives

import "math/bits"

const purego = false

// Add64 returns a + b + carry and the carry out.
func Add64(a, b, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carry)
}

// Sub64 returns a - b - borrow and the borrow out.
func Sub64(a, b, borrow uint64) (diff, borrowOut uint64) {
	return bits.Sub64(a, b, borrow)
}

// Mul64 returns the 128-bit product a * b as (hi, lo).
func Mul64(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// MulHi64 returns the upper 64 bits of a * b.
func MulHi64(a, b uint64) (hi uint64) {
	hi, _ = bits.Mul64(a, b)
	return
}

// MSB64 returns the index of the most significant set bit of x, or -1 if x is zero.
func MSB64(x uint64) int {
	return bits.Len64(x) - 1
}
