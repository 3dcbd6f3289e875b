package ring

import (
	"github.com/joshbeal/SEAL/utils"
)

// GaloisGen is the generator of the cyclic subgroup of Z_2N^* used for rotations.
const GaloisGen uint64 = 3

// GaloisElement returns GaloisGen^k mod 2N for N = 2^logN.
// k can be negative; it is taken modulo N/2, the order of GaloisGen.
func GaloisElement(k, logN int) uint64 {

	if logN < 2 {
		return 1
	}

	order := 1 << (logN - 1)

	k %= order
	if k < 0 {
		k += order
	}

	return modExpPow2(GaloisGen, uint64(k), uint64(2<<logN)-1)
}

// GaloisElementConjugate returns 2N-1, the Galois element of the map x -> x^-1.
func GaloisElementConjugate(logN int) uint64 {
	return uint64(2<<logN) - 1
}

// GaloisElementInverse returns galEl^-1 mod 2N for an odd galEl.
func GaloisElementInverse(galEl uint64, logN int) uint64 {
	// Z_2N^* has order N
	return modExpPow2(galEl, uint64(1<<logN)-1, uint64(2<<logN)-1)
}

// modExpPow2 returns x^e mod (mask+1) for mask+1 a power of two.
func modExpPow2(x, e, mask uint64) (r uint64) {
	r = 1
	for x &= mask; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = (r * x) & mask
		}
		x = (x * x) & mask
	}
	return
}

// ApplyGalois evaluates out(x) = in(x^galEl) in Z_q[x]/(x^N+1), N = 2^logN, on
// polynomials in the coefficient domain. The coefficient i moves to i*galEl mod N and
// is negated if i*galEl mod 2N falls in [N, 2N).
// galEl must be odd and in [1, 2N), coefficients in [0, q), and out must not alias in.
func ApplyGalois(in []uint64, logN int, galEl uint64, m Modulus, out []uint64) {

	N := 1 << logN
	checkLen("ApplyGalois", N, len(in), len(out))

	if debug {
		checkGaloisElement("ApplyGalois", logN, galEl)
		checkModulus("ApplyGalois", m)
		checkNoAlias("ApplyGalois", in, out)
	}

	mask := uint64(N - 1)

	for i := uint64(0); i < uint64(N); i++ {

		raw := i * galEl
		v := in[i]

		if (raw>>logN)&1 == 1 {
			v = NegMod(v, m)
		}

		out[raw&mask] = v
	}
}

// ApplyGaloisNTT evaluates the automorphism x -> x^galEl on a polynomial in the NTT domain
// (bit-reversed evaluation order, as produced by [NTTLazy]). It is a pure permutation.
// galEl must be odd and in [1, 2N), and out must not alias in.
func ApplyGaloisNTT(in []uint64, logN int, galEl uint64, out []uint64) {

	N := 1 << logN
	checkLen("ApplyGaloisNTT", N, len(in), len(out))

	if debug {
		checkGaloisElement("ApplyGaloisNTT", logN, galEl)
		checkNoAlias("ApplyGaloisNTT", in, out)
	}

	mask := uint64(2*N - 1)
	bitLen := uint64(logN)

	for i := uint64(0); i < uint64(N); i++ {
		raw := (galEl * (2*utils.BitReverse64(i, bitLen) + 1)) & mask
		out[i] = in[utils.BitReverse64((raw-1)>>1, bitLen)]
	}
}

// GaloisPermutationNTT returns the permutation applied by [ApplyGaloisNTT]:
// out[i] = in[index[i]].
func GaloisPermutationNTT(logN int, galEl uint64) (index []uint64) {

	N := 1 << logN

	if debug {
		checkGaloisElement("GaloisPermutationNTT", logN, galEl)
	}

	index = make([]uint64, N)

	mask := uint64(2*N - 1)
	bitLen := uint64(logN)

	for i := uint64(0); i < uint64(N); i++ {
		raw := (galEl * (2*utils.BitReverse64(i, bitLen) + 1)) & mask
		index[i] = utils.BitReverse64((raw-1)>>1, bitLen)
	}

	return
}

// PermuteNTTWithIndex evaluates out[i] = in[index[i]], applying a permutation
// precomputed with [GaloisPermutationNTT]. out must not alias in.
func PermuteNTTWithIndex(in []uint64, index []uint64, out []uint64) {

	checkLen("PermuteNTTWithIndex", len(index), len(in), len(out))

	if debug {
		checkNoAlias("PermuteNTTWithIndex", in, out)
	}

	for i, j := range index {
		out[i] = in[j]
	}
}
