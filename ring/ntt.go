package ring

import (
	"fmt"

	"github.com/joshbeal/SEAL/utils/primitives"
)

// NumberTheoreticTransformer is an interface to provide
// flexibility on what type of NTT is used by the struct Ring.
type NumberTheoreticTransformer interface {
	Forward(p []uint64)
	ForwardLazy(p []uint64)
	Backward(p []uint64)
	BackwardLazy(p []uint64)
}

// HarveyTransformer computes the negacyclic NTT in Z_q[X]/(X^N+1) with
// Harvey's lazy butterflies over a generated [NTTTable].
type HarveyTransformer struct {
	table *NTTTable
}

// NewHarveyTransformer returns a HarveyTransformer over the given generated table.
func NewHarveyTransformer(table *NTTTable) HarveyTransformer {
	return HarveyTransformer{table: table}
}

// Forward evaluates the NTT of p in place, with output in [0, q) and bit-reversed order.
func (h HarveyTransformer) Forward(p []uint64) {
	NTT(p, h.table)
}

// ForwardLazy evaluates the NTT of p in place, with output in [0, 4q) and bit-reversed order.
func (h HarveyTransformer) ForwardLazy(p []uint64) {
	NTTLazy(p, h.table)
}

// Backward evaluates the inverse NTT of p in place, with output in [0, q) and natural order.
func (h HarveyTransformer) Backward(p []uint64) {
	INTT(p, h.table)
}

// BackwardLazy evaluates the inverse NTT of p in place, with output in [0, 2q) and natural order.
func (h HarveyTransformer) BackwardLazy(p []uint64) {
	INTTLazy(p, h.table)
}

// butterfly is the forward Cooley-Tukey butterfly with Shoup multiplication:
// X' = X + W*Y and Y' = X - W*Y, with X reduced to [0, 2q) first, W*Y computed in [0, 2q)
// and both outputs in [0, 4q).
func butterfly(x, y, w, wShoup, q, twoQ uint64) (uint64, uint64) {
	x = condSub(x, twoQ)
	quo := primitives.MulHi64(wShoup, y)
	t := w*y - quo*q
	return x + t, x + twoQ - t
}

// invButterfly is the inverse Gentleman-Sande butterfly with the halving folded in:
// U' = (U + V)/2 and V' = (W/2)*(U - V), for inputs in [0, 2q) and outputs in [0, 2q).
func invButterfly(u, v, w, wShoup, q, twoQ uint64) (uint64, uint64) {
	t := twoQ - v + u
	u = halve(condSub(u+v, twoQ), q)
	quo := primitives.MulHi64(wShoup, t)
	return u, w*t - quo*q
}

// halve returns x/2 mod q for x in [0, 2q), with result in [0, 2q).
func halve(x, q uint64) uint64 {
	if x&1 == 1 {
		x += q
	}
	return x >> 1
}

func checkNTT(op string, p []uint64, table *NTTTable) {
	if debug {
		checkGenerated(op, table)
	}
	if len(p) != table.n {
		panic(fmt.Errorf("cannot %s: len(p)=%d != N=%d", op, len(p), table.n))
	}
}

// NTTLazy evaluates in place the forward negacyclic NTT of p, whose coefficients must be
// in [0, 4q). The output is in [0, 4q) and in bit-reversed order: p[j] = p(psi^(2*bitrev(j)+1)).
func NTTLazy(p []uint64, table *NTTTable) {

	checkNTT("NTTLazy", p, table)

	N := table.n
	q := table.modulus.value
	twoQ := q << 1

	roots := table.rootPowers
	scaled := table.scaledRootPowers

	t := N
	for m := 1; m < N; m <<= 1 {

		t >>= 1

		for i := 0; i < m; i++ {

			w, wShoup := roots[m+i], scaled[m+i]

			j1 := 2 * i * t
			x := p[j1 : j1+t]
			y := p[j1+t : j1+2*t]
			y = y[:len(x)]

			for j := range x {
				x[j], y[j] = butterfly(x[j], y[j], w, wShoup, q, twoQ)
			}
		}
	}
}

// INTTLazy evaluates in place the inverse negacyclic NTT of p, given in bit-reversed order
// with coefficients in [0, 2q). Every stage halves its outputs, so the result is divided by N
// without a final scaling. The output is in [0, 2q) and in natural order.
func INTTLazy(p []uint64, table *NTTTable) {

	checkNTT("INTTLazy", p, table)

	N := table.n
	q := table.modulus.value
	twoQ := q << 1

	roots := table.invRootPowersDivTwo
	scaled := table.scaledInvRootPowersDivTwo

	t := 1
	for m := N; m > 1; m >>= 1 {

		h := m >> 1

		for i, j1 := 0, 0; i < h; i, j1 = i+1, j1+2*t {

			w, wShoup := roots[h+i], scaled[h+i]

			x := p[j1 : j1+t]
			y := p[j1+t : j1+2*t]
			y = y[:len(x)]

			for j := range x {
				x[j], y[j] = invButterfly(x[j], y[j], w, wShoup, q, twoQ)
			}
		}

		t <<= 1
	}
}

// FinalizeLazy4 maps in place the values of p from [0, 4q) to [0, q).
func FinalizeLazy4(p []uint64, m Modulus) {
	q := m.value
	CondSubVec(p, p, q<<1)
	CondSubVec(p, p, q)
}

// FinalizeLazy2 maps in place the values of p from [0, 2q) to [0, q).
func FinalizeLazy2(p []uint64, m Modulus) {
	CondSubVec(p, p, m.value)
}

// NTT evaluates in place the forward negacyclic NTT of p, with coefficients in [0, 4q),
// and reduces the output to [0, q). The output is in bit-reversed order.
func NTT(p []uint64, table *NTTTable) {
	NTTLazy(p, table)
	FinalizeLazy4(p, table.modulus)
}

// INTT evaluates in place the inverse negacyclic NTT of p, given in bit-reversed order with
// coefficients in [0, 2q), and reduces the output to [0, q).
func INTT(p []uint64, table *NTTTable) {
	INTTLazy(p, table)
	FinalizeLazy2(p, table.modulus)
}
