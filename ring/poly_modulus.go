package ring

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/joshbeal/SEAL/utils"
)

// PolyModulus is the defining polynomial of a quotient ring Z_q[x]/(f(x)).
// Coefficients are stored least significant first with a non-zero leading coefficient.
// The negacyclic shape x^N + 1 is detected and reduced with a dedicated fold.
type PolyModulus struct {
	coeffs     []uint64
	negacyclic bool
}

// NewPolyModulus returns the polynomial modulus of the given coefficients.
// Trailing zero coefficients are ignored; the resulting degree must be at least 1.
func NewPolyModulus(coeffs []uint64) (pm PolyModulus, err error) {

	n := utils.SignificantLength(coeffs)
	if n < 2 {
		return PolyModulus{}, fmt.Errorf("cannot NewPolyModulus: degree must be at least 1")
	}

	pm.coeffs = utils.CopyNew(coeffs[:n])

	pm.negacyclic = utils.IsPowerOfTwo(n-1) && pm.coeffs[0] == 1 && pm.coeffs[n-1] == 1
	for i := 1; i < n-1 && pm.negacyclic; i++ {
		pm.negacyclic = pm.coeffs[i] == 0
	}

	return
}

// NewNegacyclicPolyModulus returns the polynomial modulus x^N + 1.
func NewNegacyclicPolyModulus(N int) PolyModulus {
	coeffs := make([]uint64, N+1)
	coeffs[0], coeffs[N] = 1, 1
	return PolyModulus{coeffs: coeffs, negacyclic: utils.IsPowerOfTwo(N)}
}

// Degree returns the degree N of the polynomial modulus.
// Reduced polynomials have N coefficients.
func (pm PolyModulus) Degree() int {
	return len(pm.coeffs) - 1
}

// Coeffs returns a copy of the coefficients of the polynomial modulus.
func (pm PolyModulus) Coeffs() []uint64 {
	return utils.CopyNew(pm.coeffs)
}

// Equal returns true if both polynomial moduli have the same coefficients.
func (pm PolyModulus) Equal(other PolyModulus) bool {
	return cmp.Equal(pm.coeffs, other.coeffs)
}

// IsNegacyclic returns true if the polynomial modulus is x^N + 1 with N a power of two.
func (pm PolyModulus) IsNegacyclic() bool {
	return pm.negacyclic
}

// ModuloPolyInPlace reduces value modulo the polynomial modulus and q.
// On return value[:N] holds the remainder and value[N:] is zero.
// Coefficients must be in [0, q).
func ModuloPolyInPlace(value []uint64, pm PolyModulus, m Modulus) {

	if debug {
		checkReducedVec("ModuloPolyInPlace", value, m)
	}

	N := pm.Degree()

	if pm.negacyclic {
		// x^N = -1: fold from the top so that folded coefficients are folded again.
		for i := len(value) - 1; i >= N; i-- {
			value[i-N] = SubMod(value[i-N], value[i], m)
			value[i] = 0
		}
		return
	}

	lead := pm.coeffs[N]
	leadInv, ok := InvMod(lead, m)
	if !ok {
		panic(fmt.Errorf("cannot ModuloPolyInPlace: leading coefficient %d of the modulus: %w", lead, ErrNotInvertible))
	}

	for i := len(value) - 1; i >= N; i-- {

		if value[i] == 0 {
			continue
		}

		factor := MulMod(value[i], leadInv, m)
		shift := i - N

		for j := 0; j < N; j++ {
			value[shift+j] = SubMod(value[shift+j], MulMod(factor, pm.coeffs[j], m), m)
		}

		value[i] = 0
	}
}

// ModuloPolyModulus writes value modulo the polynomial modulus and q in out,
// which must have N coefficients. value is left untouched.
func ModuloPolyModulus(value []uint64, pm PolyModulus, m Modulus, out []uint64, pool *BufferPool) {

	N := pm.Degree()
	checkLen("ModuloPolyModulus", N, len(out))

	if len(value) <= N {
		copy(out, value)
		for i := len(value); i < N; i++ {
			out[i] = 0
		}
		return
	}

	buff := pool.GetBuffUint64(len(value))
	defer pool.RecycleBuffUint64(buff)

	copy(*buff, value)
	ModuloPolyInPlace(*buff, pm, m)
	copy(out, (*buff)[:N])
}

// MulPolyMod evaluates out = p1 * p2 mod (f(x), q) with a schoolbook product followed by a
// polynomial-modulus reduction. p1, p2 and out have N coefficients; out may alias p1 or p2.
func MulPolyMod(p1, p2 []uint64, pm PolyModulus, m Modulus, out []uint64, pool *BufferPool) {

	N := pm.Degree()
	checkLen("MulPolyMod", N, len(p1), len(p2), len(out))

	buff := pool.GetBuffUint64(2*N - 1)
	defer pool.RecycleBuffUint64(buff)

	MulPolyPoly(p1, p2, m, *buff)
	ModuloPolyInPlace(*buff, pm, m)
	copy(out, (*buff)[:N])
}

// MulPolyModInPlace is like MulPolyMod without scratch memory: out must have at least
// 2N-1 coefficients and must not alias p1 or p2. The result is in out[:N].
func MulPolyModInPlace(p1, p2 []uint64, pm PolyModulus, m Modulus, out []uint64) {

	N := pm.Degree()
	checkLen("MulPolyModInPlace", N, len(p1), len(p2))

	if len(out) < 2*N-1 {
		panic(fmt.Errorf("cannot MulPolyModInPlace: len(out)=%d < 2N-1=%d", len(out), 2*N-1))
	}

	MulPolyPoly(p1, p2, m, out[:2*N-1])
	ModuloPolyInPlace(out[:2*N-1], pm, m)
}

// InvertPoly computes the inverse of op modulo (f(x), q) with the extended Euclidean
// algorithm and writes it in out. It returns false, leaving out undefined, if op is not
// invertible. q must be prime and op must have N coefficients in [0, q).
func InvertPoly(op []uint64, pm PolyModulus, m Modulus, out []uint64, pool *BufferPool) bool {

	N := pm.Degree()
	checkLen("InvertPoly", N, len(op), len(out))

	if debug {
		checkReducedVec("InvertPoly", op, m)
	}

	if utils.SignificantLength(op) == 0 {
		return false
	}

	// six scratch polynomials of N+1 coefficients
	buff := pool.GetBuffUint64(6 * (N + 1))
	defer pool.RecycleBuffUint64(buff)

	b := *buff
	for i := range b {
		b[i] = 0
	}

	r0, r1 := b[0*(N+1):1*(N+1)], b[1*(N+1):2*(N+1)]
	t0, t1 := b[2*(N+1):3*(N+1)], b[3*(N+1):4*(N+1)]
	quo, tmp := b[4*(N+1):5*(N+1)], b[5*(N+1):6*(N+1)]

	copy(r0, pm.coeffs)
	copy(r1, op)
	t1[0] = 1

	// invariant: t_i * op = r_i mod f(x), deg(t_i) < N
	for {

		deg := utils.SignificantLength(r1) - 1

		if deg < 0 {
			return false
		}

		if deg == 0 {
			inv, ok := InvMod(r1[0], m)
			if !ok {
				return false
			}
			MulScalarModVec(t1[:N], inv, out, m)
			return true
		}

		// r0 <- r0 mod r1, quo <- r0 / r1
		DividePolyInPlace(r0, r1, m, quo)

		// t0 <- t0 - quo * t1
		MulPolyPoly(quo, t1, m, tmp)
		SubModVec(t0, tmp, t0, m)

		r0, r1 = r1, r0
		t0, t1 = t1, t0
	}
}

// ExpPolyMod evaluates out = p^e mod (f(x), q) by square and multiply, where the exponent e
// is the multi-word integer given least significant word first. p and out have N coefficients.
func ExpPolyMod(p []uint64, exponent []uint64, pm PolyModulus, m Modulus, out []uint64, pool *BufferPool) {

	N := pm.Degree()
	checkLen("ExpPolyMod", N, len(p), len(out))

	buff := pool.GetBuffUint64(2 * N)
	defer pool.RecycleBuffUint64(buff)

	power, acc := (*buff)[:N], (*buff)[N:]
	copy(power, p)
	for i := range acc {
		acc[i] = 0
	}
	acc[0] = 1

	words := utils.SignificantLength(exponent)

	for w := 0; w < words; w++ {

		e := exponent[w]
		bitsLeft := 64
		if w == words-1 {
			bitsLeft = utils.Log2(e) + 1
		}

		for k := 0; k < bitsLeft; k++ {

			if e&1 == 1 {
				MulPolyMod(acc, power, pm, m, acc, pool)
			}

			e >>= 1

			if w < words-1 || k < bitsLeft-1 {
				MulPolyMod(power, power, pm, m, power, pool)
			}
		}
	}

	copy(out, acc)
}
