// Package ring implements modular arithmetic over word-size moduli, polynomial arithmetic
// in Z_q[X]/(f(X)) and the negacyclic Number Theoretic Transform over Z_q[X]/(X^N+1).
package ring

import (
	"errors"
	"fmt"

	"github.com/joshbeal/SEAL/utils/sampling"
)

// Ring bundles the parameters of Z_q[X]/(X^N+1): the modulus, the polynomial modulus
// X^N+1, the NTT table if q is NTT-friendly for N, and a pool of scratch buffers.
// A Ring is read-only after creation and safe for concurrent use on distinct buffers.
type Ring struct {
	logN        int
	modulus     Modulus
	polyModulus PolyModulus
	table       *NTTTable
	ntt         NumberTheoreticTransformer
	pool        *BufferPool
}

// NewRing returns the ring Z_q[X]/(X^N+1) with N = 2^logN.
// The NTT table is taken from reg, or generated privately if reg is nil.
// If no primitive 2N-th root of unity exists mod q the ring is created without NTT
// and products fall back to schoolbook multiplication.
func NewRing(logN int, m Modulus, reg *Registry) (r *Ring, err error) {

	if logN < MinLogN || logN > MaxLogN {
		return nil, fmt.Errorf("cannot NewRing: logN=%d not in [%d, %d]: %w", logN, MinLogN, MaxLogN, ErrInvalidDegree)
	}

	if m.IsZero() {
		return nil, fmt.Errorf("cannot NewRing: %w", ErrZeroModulus)
	}

	r = &Ring{
		logN:        logN,
		modulus:     m,
		polyModulus: NewNegacyclicPolyModulus(1 << logN),
		pool:        NewBufferPool(2 << logN),
	}

	var table *NTTTable
	if reg != nil {
		table, err = reg.Get(logN, m)
	} else {
		table, err = NewNTTTable(logN, m)
	}

	switch {
	case err == nil:
		r.table = table
		r.ntt = NewHarveyTransformer(table)
	case errors.Is(err, ErrNoPrimitiveRoot):
	default:
		return nil, fmt.Errorf("cannot NewRing: %w", err)
	}

	return r, nil
}

// N returns the ring degree.
func (r *Ring) N() int {
	return 1 << r.logN
}

// LogN returns log2 of the ring degree.
func (r *Ring) LogN() int {
	return r.logN
}

// Modulus returns the modulus of the ring.
func (r *Ring) Modulus() Modulus {
	return r.modulus
}

// PolyModulus returns X^N+1.
func (r *Ring) PolyModulus() PolyModulus {
	return r.polyModulus
}

// NTTTable returns the NTT table of the ring, or nil if the ring has no NTT.
func (r *Ring) NTTTable() *NTTTable {
	return r.table
}

// NTTFriendly returns true if q = 1 mod 2N and q is prime, so that the NTT is available.
func (r *Ring) NTTFriendly() bool {
	return r.table != nil
}

// NewPoly returns a new zero polynomial of N coefficients.
func (r *Ring) NewPoly() []uint64 {
	return make([]uint64, r.N())
}

// Reduce evaluates p2 = p1 mod q.
func (r *Ring) Reduce(p1, p2 []uint64) {
	ModuloPoly(p1, r.modulus, p2)
}

// Add evaluates p3 = p1 + p2 mod q.
func (r *Ring) Add(p1, p2, p3 []uint64) {
	AddPoly(p1, p2, r.modulus, p3)
}

// Sub evaluates p3 = p1 - p2 mod q.
func (r *Ring) Sub(p1, p2, p3 []uint64) {
	SubPoly(p1, p2, r.modulus, p3)
}

// Neg evaluates p2 = -p1 mod q.
func (r *Ring) Neg(p1, p2 []uint64) {
	NegatePoly(p1, r.modulus, p2)
}

// MulScalar evaluates p2 = p1 * scalar mod q. Neither p1 nor scalar need to be reduced.
func (r *Ring) MulScalar(p1 []uint64, scalar uint64, p2 []uint64) {
	scalar = BarrettReduce64(scalar, r.modulus)
	MulShoupScalarVec(p1, scalar, ShoupConstant(scalar, r.modulus), p2, r.modulus)
}

// MulCoeffs evaluates p3 = p1 * p2 mod q coefficient-wise.
func (r *Ring) MulCoeffs(p1, p2, p3 []uint64) {
	DyadicProduct(p1, p2, r.modulus, p3)
}

func (r *Ring) mustNTT(op string) {
	if r.ntt == nil {
		panic(fmt.Errorf("cannot %s: q=%d is not NTT-friendly for N=%d", op, r.modulus.value, r.N()))
	}
}

// NTT evaluates in place the NTT of p, with output in [0, q).
// It panics if the ring has no NTT.
func (r *Ring) NTT(p []uint64) {
	r.mustNTT("NTT")
	r.ntt.Forward(p)
}

// NTTLazy evaluates in place the NTT of p, with output in [0, 4q).
func (r *Ring) NTTLazy(p []uint64) {
	r.mustNTT("NTTLazy")
	r.ntt.ForwardLazy(p)
}

// INTT evaluates in place the inverse NTT of p, with output in [0, q).
func (r *Ring) INTT(p []uint64) {
	r.mustNTT("INTT")
	r.ntt.Backward(p)
}

// INTTLazy evaluates in place the inverse NTT of p, with output in [0, 2q).
func (r *Ring) INTTLazy(p []uint64) {
	r.mustNTT("INTTLazy")
	r.ntt.BackwardLazy(p)
}

// MulPoly evaluates p3 = p1 * p2 in Z_q[X]/(X^N+1) for operands in the coefficient domain
// with coefficients in [0, q). It goes through the NTT when available and through
// schoolbook multiplication otherwise. p3 may alias p1 or p2.
func (r *Ring) MulPoly(p1, p2, p3 []uint64) {

	N := r.N()
	checkLen("MulPoly", N, len(p1), len(p2), len(p3))

	if r.ntt == nil {
		MulPolyMod(p1, p2, r.polyModulus, r.modulus, p3, r.pool)
		return
	}

	buff := r.pool.GetBuffUint64(2 * N)
	defer r.pool.RecycleBuffUint64(buff)

	a, b := (*buff)[:N], (*buff)[N:]
	copy(a, p1)
	copy(b, p2)

	r.ntt.ForwardLazy(a)
	r.ntt.ForwardLazy(b)
	MulModVec(a, b, a, r.modulus)
	r.ntt.Backward(a)

	copy(p3, a)
}

// Automorphism evaluates p2(X) = p1(X^galEl) in the coefficient domain.
func (r *Ring) Automorphism(p1 []uint64, galEl uint64, p2 []uint64) {
	ApplyGalois(p1, r.logN, galEl, r.modulus, p2)
}

// AutomorphismNTT evaluates p2(X) = p1(X^galEl) in the NTT domain.
func (r *Ring) AutomorphismNTT(p1 []uint64, galEl uint64, p2 []uint64) {
	ApplyGaloisNTT(p1, r.logN, galEl, p2)
}

// InfNorm returns the infinity norm of p over the centered representatives.
func (r *Ring) InfNorm(p []uint64) uint64 {
	return InfNorm(p, r.modulus)
}

// Stats returns [log2(std), mean] of the centered coefficients of p.
func (r *Ring) Stats(p []uint64) [2]float64 {
	return Stats(p, r.modulus)
}

// NewUniformSampler returns a UniformSampler for the modulus of the ring.
func (r *Ring) NewUniformSampler(prng sampling.PRNG) *UniformSampler {
	return NewUniformSampler(prng, r.modulus)
}
