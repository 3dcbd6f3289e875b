package primitives

import (
	"fmt"
)

const mask32 = 0xFFFFFFFF

// Portable implements [Arithmetic] without relying on hardware wide multiplication
// or carry flags. Products are assembled from 32-bit limbs.
type Portable struct{}

func (Portable) Name() string {
	return "portable"
}

func (Portable) AddWithCarry(a, b, carry uint64) (sum, carryOut uint64) {
	sum = a + b + carry
	carryOut = ((a & b) | ((a | b) &^ sum)) >> 63
	return
}

func (Portable) SubWithBorrow(a, b, borrow uint64) (diff, borrowOut uint64) {
	diff = a - b - borrow
	borrowOut = ((^a & b) | (^(a ^ b) & diff)) >> 63
	return
}

func (Portable) MulWide(a, b uint64) (hi, lo uint64) {

	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32

	ll := aLo * bLo
	lh := aLo * bHi
	hl := aHi * bLo
	hh := aHi * bHi

	// at most 3 * (2^32 - 1), cannot overflow
	mid := (ll >> 32) + (lh & mask32) + (hl & mask32)

	lo = (mid << 32) | (ll & mask32)
	hi = hh + (lh >> 32) + (hl >> 32) + (mid >> 32)
	return
}

func (p Portable) MulHigh(a, b uint64) uint64 {
	hi, _ := p.MulWide(a, b)
	return hi
}

func (Portable) MSBIndex(x uint64) (idx int) {

	if x == 0 {
		return -1
	}

	for _, shift := range [...]int{32, 16, 8, 4, 2, 1} {
		if x >= 1<<shift {
			x >>= shift
			idx += shift
		}
	}

	return
}

// Div128 is a restoring shift-subtract division, one quotient bit per step.
func (Portable) Div128(hi, lo, y uint64) (quo, rem uint64) {

	if y == 0 || y <= hi {
		panic(fmt.Errorf("cannot Div128: quotient overflow (hi=%d, y=%d)", hi, y))
	}

	rem = hi
	for i := 63; i >= 0; i-- {
		top := rem >> 63
		rem = rem<<1 | (lo>>uint(i))&1
		if top == 1 || rem >= y {
			rem -= y
			quo |= 1 << uint(i)
		}
	}

	return
}
