package ring

import (
	"unsafe"
)

// The kernels of this file process eight coefficients per iteration through
// array views and finish with a scalar loop on the N mod 8 remaining ones.
// Every lane calls the scalar function of modular_reduction.go, so the result
// is identical to a plain loop for every length.
// Outputs may be equal to an input (same slice), but must not partially overlap it.

// MulModVec evaluates p3 = p1 * p2 mod q coefficient-wise.
func MulModVec(p1, p2, p3 []uint64, m Modulus) {

	N := len(p1)
	checkLen("MulModVec", N, len(p2), len(p3))

	if debug {
		checkModulus("MulModVec", m)
	}

	for j := 0; j < N-(N&7); j += 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = MulMod(x[0], y[0], m)
		z[1] = MulMod(x[1], y[1], m)
		z[2] = MulMod(x[2], y[2], m)
		z[3] = MulMod(x[3], y[3], m)
		z[4] = MulMod(x[4], y[4], m)
		z[5] = MulMod(x[5], y[5], m)
		z[6] = MulMod(x[6], y[6], m)
		z[7] = MulMod(x[7], y[7], m)
	}

	for j := N - (N & 7); j < N; j++ {
		p3[j] = MulMod(p1[j], p2[j], m)
	}
}

// MulScalarModVec evaluates p2 = p1 * scalar mod q coefficient-wise.
// Neither the coefficients nor the scalar need to be reduced.
func MulScalarModVec(p1 []uint64, scalar uint64, p2 []uint64, m Modulus) {

	N := len(p1)
	checkLen("MulScalarModVec", N, len(p2))

	if debug {
		checkModulus("MulScalarModVec", m)
	}

	for j := 0; j < N-(N&7); j += 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = MulMod(x[0], scalar, m)
		z[1] = MulMod(x[1], scalar, m)
		z[2] = MulMod(x[2], scalar, m)
		z[3] = MulMod(x[3], scalar, m)
		z[4] = MulMod(x[4], scalar, m)
		z[5] = MulMod(x[5], scalar, m)
		z[6] = MulMod(x[6], scalar, m)
		z[7] = MulMod(x[7], scalar, m)
	}

	for j := N - (N & 7); j < N; j++ {
		p2[j] = MulMod(p1[j], scalar, m)
	}
}

// MulShoupScalarVec evaluates p2 = p1 * scalar mod q coefficient-wise with Shoup's method,
// for a scalar in [0, q) and scalarShoup = ShoupConstant(scalar). The coefficients need not be reduced.
func MulShoupScalarVec(p1 []uint64, scalar, scalarShoup uint64, p2 []uint64, m Modulus) {

	N := len(p1)
	checkLen("MulShoupScalarVec", N, len(p2))

	if debug {
		checkReduced("MulShoupScalarVec", scalar, m)
	}

	for j := 0; j < N-(N&7); j += 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = MulModShoup(x[0], scalar, scalarShoup, m)
		z[1] = MulModShoup(x[1], scalar, scalarShoup, m)
		z[2] = MulModShoup(x[2], scalar, scalarShoup, m)
		z[3] = MulModShoup(x[3], scalar, scalarShoup, m)
		z[4] = MulModShoup(x[4], scalar, scalarShoup, m)
		z[5] = MulModShoup(x[5], scalar, scalarShoup, m)
		z[6] = MulModShoup(x[6], scalar, scalarShoup, m)
		z[7] = MulModShoup(x[7], scalar, scalarShoup, m)
	}

	for j := N - (N & 7); j < N; j++ {
		p2[j] = MulModShoup(p1[j], scalar, scalarShoup, m)
	}
}

// AddModVec evaluates p3 = p1 + p2 mod q coefficient-wise, for coefficients in [0, q).
func AddModVec(p1, p2, p3 []uint64, m Modulus) {

	N := len(p1)
	checkLen("AddModVec", N, len(p2), len(p3))

	if debug {
		checkReducedVec("AddModVec", p1, m)
		checkReducedVec("AddModVec", p2, m)
	}

	q := m.value

	for j := 0; j < N-(N&7); j += 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = condSub(x[0]+y[0], q)
		z[1] = condSub(x[1]+y[1], q)
		z[2] = condSub(x[2]+y[2], q)
		z[3] = condSub(x[3]+y[3], q)
		z[4] = condSub(x[4]+y[4], q)
		z[5] = condSub(x[5]+y[5], q)
		z[6] = condSub(x[6]+y[6], q)
		z[7] = condSub(x[7]+y[7], q)
	}

	for j := N - (N & 7); j < N; j++ {
		p3[j] = condSub(p1[j]+p2[j], q)
	}
}

// SubModVec evaluates p3 = p1 - p2 mod q coefficient-wise, for coefficients in [0, q).
func SubModVec(p1, p2, p3 []uint64, m Modulus) {

	N := len(p1)
	checkLen("SubModVec", N, len(p2), len(p3))

	if debug {
		checkReducedVec("SubModVec", p1, m)
		checkReducedVec("SubModVec", p2, m)
	}

	for j := 0; j < N-(N&7); j += 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = SubMod(x[0], y[0], m)
		z[1] = SubMod(x[1], y[1], m)
		z[2] = SubMod(x[2], y[2], m)
		z[3] = SubMod(x[3], y[3], m)
		z[4] = SubMod(x[4], y[4], m)
		z[5] = SubMod(x[5], y[5], m)
		z[6] = SubMod(x[6], y[6], m)
		z[7] = SubMod(x[7], y[7], m)
	}

	for j := N - (N & 7); j < N; j++ {
		p3[j] = SubMod(p1[j], p2[j], m)
	}
}

// NegModVec evaluates p2 = -p1 mod q coefficient-wise, for coefficients in [0, q).
func NegModVec(p1, p2 []uint64, m Modulus) {

	N := len(p1)
	checkLen("NegModVec", N, len(p2))

	if debug {
		checkReducedVec("NegModVec", p1, m)
	}

	for j := 0; j < N-(N&7); j += 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = NegMod(x[0], m)
		z[1] = NegMod(x[1], m)
		z[2] = NegMod(x[2], m)
		z[3] = NegMod(x[3], m)
		z[4] = NegMod(x[4], m)
		z[5] = NegMod(x[5], m)
		z[6] = NegMod(x[6], m)
		z[7] = NegMod(x[7], m)
	}

	for j := N - (N & 7); j < N; j++ {
		p2[j] = NegMod(p1[j], m)
	}
}

// ReduceVec evaluates p2 = p1 mod q coefficient-wise, for any uint64 coefficients.
func ReduceVec(p1, p2 []uint64, m Modulus) {

	N := len(p1)
	checkLen("ReduceVec", N, len(p2))

	if debug {
		checkModulus("ReduceVec", m)
	}

	for j := 0; j < N-(N&7); j += 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = BarrettReduce64(x[0], m)
		z[1] = BarrettReduce64(x[1], m)
		z[2] = BarrettReduce64(x[2], m)
		z[3] = BarrettReduce64(x[3], m)
		z[4] = BarrettReduce64(x[4], m)
		z[5] = BarrettReduce64(x[5], m)
		z[6] = BarrettReduce64(x[6], m)
		z[7] = BarrettReduce64(x[7], m)
	}

	for j := N - (N & 7); j < N; j++ {
		p2[j] = BarrettReduce64(p1[j], m)
	}
}

// CondSubVec evaluates p2[i] = p1[i] - bound if p1[i] >= bound, and p1[i] otherwise.
// It brings lazy values in [0, 2*bound) back to [0, bound).
func CondSubVec(p1, p2 []uint64, bound uint64) {

	N := len(p1)
	checkLen("CondSubVec", N, len(p2))

	for j := 0; j < N-(N&7); j += 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = condSub(x[0], bound)
		z[1] = condSub(x[1], bound)
		z[2] = condSub(x[2], bound)
		z[3] = condSub(x[3], bound)
		z[4] = condSub(x[4], bound)
		z[5] = condSub(x[5], bound)
		z[6] = condSub(x[6], bound)
		z[7] = condSub(x[7], bound)
	}

	for j := N - (N & 7); j < N; j++ {
		p2[j] = condSub(p1[j], bound)
	}
}
