package ring

import (
	"fmt"

	"github.com/joshbeal/SEAL/utils"
)

// ModuloPoly evaluates out = p mod q coefficient-wise.
func ModuloPoly(p []uint64, m Modulus, out []uint64) {
	ReduceVec(p, out, m)
}

// NegatePoly evaluates out = -p mod q coefficient-wise.
func NegatePoly(p []uint64, m Modulus, out []uint64) {
	NegModVec(p, out, m)
}

// AddPoly evaluates out = p1 + p2 mod q coefficient-wise.
func AddPoly(p1, p2 []uint64, m Modulus, out []uint64) {
	AddModVec(p1, p2, out, m)
}

// SubPoly evaluates out = p1 - p2 mod q coefficient-wise.
func SubPoly(p1, p2 []uint64, m Modulus, out []uint64) {
	SubModVec(p1, p2, out, m)
}

// MulScalarPoly evaluates out = p * scalar mod q coefficient-wise.
func MulScalarPoly(p []uint64, scalar uint64, m Modulus, out []uint64) {
	MulScalarModVec(p, scalar, out, m)
}

// DyadicProduct evaluates out = p1 * p2 mod q coefficient-wise.
// On operands in the NTT domain this is the product of the underlying polynomials.
func DyadicProduct(p1, p2 []uint64, m Modulus, out []uint64) {
	MulModVec(p1, p2, out, m)
}

// AddPolyArray adds two arrays of count polynomials of N coefficients stored contiguously.
func AddPolyArray(a1, a2 []uint64, count, N int, m Modulus, out []uint64) {

	checkLen("AddPolyArray", count*N, len(a1), len(a2), len(out))

	for i := 0; i < count; i++ {
		AddModVec(a1[i*N:(i+1)*N], a2[i*N:(i+1)*N], out[i*N:(i+1)*N], m)
	}
}

// MulPolyPoly evaluates the schoolbook product of p1 and p2 with coefficients mod q,
// truncated to len(out) coefficients. The product is not reduced by any polynomial
// modulus: a full product needs len(out) = len(p1) + len(p2) - 1.
// out must not alias p1 or p2.
func MulPolyPoly(p1, p2 []uint64, m Modulus, out []uint64) {

	if debug {
		checkModulus("MulPolyPoly", m)
		checkNoAlias("MulPolyPoly", p1, out)
		checkNoAlias("MulPolyPoly", p2, out)
	}

	for i := range out {
		out[i] = 0
	}

	for i := range p1 {

		if p1[i] == 0 || i >= len(out) {
			continue
		}

		row := out[i:]
		if len(row) > len(p2) {
			row = row[:len(p2)]
		}

		for j := range row {
			row[j] = AddMod(row[j], MulMod(p1[i], p2[j], m), m)
		}
	}
}

// MulPolyPolyTruncate evaluates p1 * p2 mod (x^N, q) where N = len(p1) = len(p2) = len(out).
func MulPolyPolyTruncate(p1, p2 []uint64, m Modulus, out []uint64) {
	checkLen("MulPolyPolyTruncate", len(p1), len(p2), len(out))
	MulPolyPoly(p1, p2, m, out)
}

// DividePolyInPlace divides numerator by denominator with coefficients mod q.
// numerator is overwritten by the remainder and the quotient is written in quotient,
// which must have the same length as numerator.
// Coefficients must be in [0, q). It panics if the denominator is zero or if its
// leading coefficient is not invertible mod q.
func DividePolyInPlace(numerator, denominator []uint64, m Modulus, quotient []uint64) {

	checkLen("DividePolyInPlace", len(numerator), len(quotient))

	if debug {
		checkReducedVec("DividePolyInPlace", numerator, m)
		checkReducedVec("DividePolyInPlace", denominator, m)
		checkNoAlias("DividePolyInPlace", numerator, quotient)
	}

	for i := range quotient {
		quotient[i] = 0
	}

	denDeg := utils.SignificantLength(denominator) - 1
	if denDeg < 0 {
		panic(fmt.Errorf("cannot DividePolyInPlace: denominator is zero"))
	}

	leadInv, ok := InvMod(denominator[denDeg], m)
	if !ok {
		panic(fmt.Errorf("cannot DividePolyInPlace: leading coefficient %d of the denominator: %w", denominator[denDeg], ErrNotInvertible))
	}

	for numDeg := utils.SignificantLength(numerator) - 1; numDeg >= denDeg; numDeg-- {

		if numerator[numDeg] == 0 {
			continue
		}

		shift := numDeg - denDeg
		factor := MulMod(numerator[numDeg], leadInv, m)
		quotient[shift] = factor

		for i := 0; i <= denDeg; i++ {
			numerator[shift+i] = SubMod(numerator[shift+i], MulMod(factor, denominator[i], m), m)
		}
	}
}

// DividePoly divides numerator by denominator with coefficients mod q, writing the quotient
// and remainder, both of the length of numerator. numerator is left untouched.
func DividePoly(numerator, denominator []uint64, m Modulus, quotient, remainder []uint64) {
	checkLen("DividePoly", len(numerator), len(remainder))
	copy(remainder, numerator)
	DividePolyInPlace(remainder, denominator, m, quotient)
}

// InfNorm returns the infinity norm of p, taking for each coefficient c in [0, q)
// the representative of smallest absolute value, that is min(c, q-c).
func InfNorm(p []uint64, m Modulus) (norm uint64) {

	if debug {
		checkReducedVec("InfNorm", p, m)
	}

	half := (m.value + 1) >> 1

	for _, c := range p {
		if c >= half {
			c = m.value - c
		}
		if c > norm {
			norm = c
		}
	}

	return
}
