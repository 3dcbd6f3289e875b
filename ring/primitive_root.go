package ring

import (
	"github.com/joshbeal/SEAL/utils"
)

// IsPrimitiveRoot returns true if root is a primitive degree-th root of unity mod q,
// for degree a power of two greater than one: such a root satisfies root^(degree/2) = -1.
func IsPrimitiveRoot(root, degree uint64, m Modulus) bool {

	if root == 0 || m.value < 3 || degree < 2 || !utils.IsPowerOfTwo(degree) {
		return false
	}

	return ExpMod(root, degree>>1, m) == m.value-1
}

// PrimitiveRoot returns a primitive degree-th root of unity mod q and true, or false if
// none exists, which is the case unless q is prime, degree is a power of two larger than
// one and q = 1 mod degree.
// The search is deterministic: the candidates g^((q-1)/degree) are tried for g = 2, 3, ...
func PrimitiveRoot(degree uint64, m Modulus) (root uint64, ok bool) {

	q := m.value

	if q < 3 || degree < 2 || !utils.IsPowerOfTwo(degree) || (q-1)%degree != 0 || !IsPrime(q) {
		return 0, false
	}

	exp := (q - 1) / degree

	// any quadratic non-residue g gives a primitive root, about half the candidates
	for g := uint64(2); g < q; g++ {
		if root = ExpMod(g, exp, m); IsPrimitiveRoot(root, degree, m) {
			return root, true
		}
	}

	return 0, false
}

// MinimalPrimitiveRoot returns the smallest primitive degree-th root of unity mod q and true,
// or false if none exists (see [PrimitiveRoot]).
func MinimalPrimitiveRoot(degree uint64, m Modulus) (uint64, bool) {

	root, ok := PrimitiveRoot(degree, m)
	if !ok {
		return 0, false
	}

	// the primitive roots are exactly the odd powers of any one of them
	square := MulMod(root, root, m)
	current := root
	minimal := root

	for i := uint64(0); i < degree>>1; i++ {
		if current < minimal {
			minimal = current
		}
		current = MulMod(current, square, m)
	}

	return minimal, true
}
