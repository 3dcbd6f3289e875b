package ring

import (
	"github.com/joshbeal/SEAL/utils/primitives"
)

// condSub returns x - bound if x >= bound and x otherwise.
// The comparison compiles to a conditional move, not a branch.
func condSub(x, bound uint64) uint64 {
	if x >= bound {
		x -= bound
	}
	return x
}

// condAddOnBorrow returns x + bound if borrow is set and x otherwise.
func condAddOnBorrow(x, borrow, bound uint64) uint64 {
	if borrow != 0 {
		x += bound
	}
	return x
}

// BarrettReduce128 returns (hi * 2^64 + lo) mod q.
// It approximates the quotient with the three significant partial products of
// (hi, lo) * floor(2^128/q) and needs a single final correction, which holds for
// every modulus of at most MaxModulusBits bits.
func BarrettReduce128(hi, lo uint64, m Modulus) uint64 {

	if debug {
		checkModulus("BarrettReduce128", m)
	}

	ratio := m.constRatio

	// round 1
	carry := primitives.MulHi64(lo, ratio[0])
	pHi, pLo := primitives.Mul64(lo, ratio[1])
	tmp1, c := primitives.Add64(pLo, carry, 0)
	tmp3 := pHi + c

	// round 2
	pHi, pLo = primitives.Mul64(hi, ratio[0])
	_, c = primitives.Add64(tmp1, pLo, 0)
	carry = pHi + c

	quo := hi*ratio[1] + tmp3 + carry

	return condSub(lo-quo*m.value, m.value)
}

// BarrettReduce64 returns x mod q for any uint64 x.
func BarrettReduce64(x uint64, m Modulus) uint64 {

	if debug {
		checkModulus("BarrettReduce64", m)
	}

	quo := primitives.MulHi64(x, m.constRatio[1])
	return condSub(x-quo*m.value, m.value)
}

// MulMod returns a * b mod q. The operands need not be reduced.
func MulMod(a, b uint64, m Modulus) uint64 {

	if debug {
		checkModulus("MulMod", m)
	}

	hi, lo := primitives.Mul64(a, b)
	return BarrettReduce128(hi, lo, m)
}

// ShoupConstant returns floor(w * 2^64 / q) for w in [0, q), the precomputed
// companion of a fixed multiplicand w used by [MulModShoup].
func ShoupConstant(w uint64, m Modulus) uint64 {

	if debug {
		checkReduced("ShoupConstant", w, m)
	}

	quo, _ := primitives.Default().Div128(w, 0, m.value)
	return quo
}

// MulModShoupLazy returns x * w mod q in [0, 2q) for any uint64 x, given w in [0, q)
// and wShoup = ShoupConstant(w).
func MulModShoupLazy(x, w, wShoup uint64, m Modulus) uint64 {
	return w*x - primitives.MulHi64(wShoup, x)*m.value
}

// MulModShoup returns x * w mod q in [0, q) for any uint64 x, given w in [0, q)
// and wShoup = ShoupConstant(w).
func MulModShoup(x, w, wShoup uint64, m Modulus) uint64 {
	return condSub(MulModShoupLazy(x, w, wShoup, m), m.value)
}

// AddMod returns a + b mod q for a, b in [0, q).
func AddMod(a, b uint64, m Modulus) uint64 {

	if debug {
		checkReduced("AddMod", a, m)
		checkReduced("AddMod", b, m)
	}

	// a + b < 2q cannot wrap around 2^64
	return condSub(a+b, m.value)
}

// SubMod returns a - b mod q for a, b in [0, q).
func SubMod(a, b uint64, m Modulus) uint64 {

	if debug {
		checkReduced("SubMod", a, m)
		checkReduced("SubMod", b, m)
	}

	d, borrow := primitives.Sub64(a, b, 0)
	return condAddOnBorrow(d, borrow, m.value)
}

// NegMod returns -a mod q for a in [0, q). NegMod(0) is 0.
func NegMod(a uint64, m Modulus) uint64 {

	if debug {
		checkReduced("NegMod", a, m)
	}

	r := m.value - a
	if a == 0 {
		r = 0
	}
	return r
}

// IncMod returns a + 1 mod q for a in [0, q).
func IncMod(a uint64, m Modulus) uint64 {

	if debug {
		checkReduced("IncMod", a, m)
	}

	return condSub(a+1, m.value)
}

// DecMod returns a - 1 mod q for a in [0, q).
func DecMod(a uint64, m Modulus) uint64 {

	if debug {
		checkReduced("DecMod", a, m)
	}

	d, borrow := primitives.Sub64(a, 1, 0)
	return condAddOnBorrow(d, borrow, m.value)
}

// Div2Mod returns a * 2^-1 mod q for an odd q.
// Odd operands are made even by adding q first; the carry of that addition
// becomes the top bit after the shift.
func Div2Mod(a uint64, m Modulus) uint64 {

	if debug {
		checkModulus("Div2Mod", m)
	}

	if a&1 == 0 {
		return a >> 1
	}

	s, carry := primitives.Add64(a, m.value, 0)
	return s>>1 | carry<<63
}

// ExpMod returns a^e mod q by square and multiply.
func ExpMod(a, e uint64, m Modulus) (r uint64) {

	if debug {
		checkModulus("ExpMod", m)
	}

	if e == 0 {
		return 1
	}

	r = 1
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = MulMod(r, a, m)
		}
		a = MulMod(a, a, m)
	}

	return
}

// InvMod returns a^-1 mod q and true, or 0 and false if a is not invertible modulo q.
func InvMod(a uint64, m Modulus) (uint64, bool) {

	q := m.value

	if q < 2 {
		return 0, false
	}

	// extended Euclid on (q, a mod q), tracking the coefficient of a.
	// |t0|, |t1| <= q < 2^61 fit in an int64.
	r0, r1 := q, a%q
	t0, t1 := int64(0), int64(1)

	for r1 != 0 {
		quo := r0 / r1
		r0, r1 = r1, r0-quo*r1
		t0, t1 = t1, t0-int64(quo)*t1
	}

	if r0 != 1 {
		return 0, false
	}

	if t0 < 0 {
		t0 += int64(q)
	}

	return uint64(t0), true
}

// ReduceWords returns the multi-word integer value mod q.
// Words are given least significant first. value is left untouched.
func ReduceWords(value []uint64, m Modulus) (r uint64) {

	if debug {
		checkModulus("ReduceWords", m)
	}

	n := len(value)
	if n == 0 {
		return 0
	}

	r = BarrettReduce64(value[n-1], m)
	for i := n - 2; i >= 0; i-- {
		r = BarrettReduce128(r, value[i], m)
	}

	return
}

// ReduceWordsInPlace reduces the multi-word integer value mod q:
// the result is stored in value[0] and the other words are set to zero.
func ReduceWordsInPlace(value []uint64, m Modulus) {

	if len(value) == 0 {
		return
	}

	r := ReduceWords(value, m)
	for i := range value {
		value[i] = 0
	}
	value[0] = r
}
