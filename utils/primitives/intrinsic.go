package primitives

import "math/bits"

// Intrinsic implements [Arithmetic] with the math/bits functions, which the
// compiler lowers to single instructions on 64-bit targets.
type Intrinsic struct{}

func (Intrinsic) Name() string {
	return "intrinsic"
}

func (Intrinsic) AddWithCarry(a, b, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carry)
}

func (Intrinsic) SubWithBorrow(a, b, borrow uint64) (diff, borrowOut uint64) {
	return bits.Sub64(a, b, borrow)
}

func (Intrinsic) MulWide(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

func (Intrinsic) MulHigh(a, b uint64) uint64 {
	hi, _ := bits.Mul64(a, b)
	return hi
}

func (Intrinsic) MSBIndex(x uint64) int {
	return bits.Len64(x) - 1
}

func (Intrinsic) Div128(hi, lo, y uint64) (quo, rem uint64) {
	return bits.Div64(hi, lo, y)
}
