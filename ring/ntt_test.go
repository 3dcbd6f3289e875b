package ring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshbeal/SEAL/utils"
)

func TestNTT(t *testing.T) {

	testNTTKnownAnswer(t)
	testNTTAllOnes(t)

	for _, tc := range genTestParams(t, 10) {
		testNTTRoundTrip(tc, t)
		testNTTLazyRanges(tc, t)
		testNTTEvaluation(tc, t)
		testNTTMultiplication(tc, t)
	}
}

func testNTTKnownAnswer(t *testing.T) {

	t.Run("NTT/logN=2/q=17", func(t *testing.T) {

		table, err := NewNTTTable(2, MustModulus(17))
		require.NoError(t, err)

		p := []uint64{1, 2, 3, 4}
		NTTLazy(p, table)
		require.Equal(t, []uint64{15, 45, 30, 50}, p)

		FinalizeLazy4(p, table.Modulus())
		require.Equal(t, []uint64{15, 11, 13, 16}, p)

		INTT(p, table)
		require.Equal(t, []uint64{1, 2, 3, 4}, p)
	})
}

func testNTTAllOnes(t *testing.T) {

	m := MustModulus(1152921504606844417)

	t.Run(testString("NTT/AllOnes", 6, m), func(t *testing.T) {

		require.Equal(t, 60, m.BitCount())
		require.Equal(t, uint64(1), m.Value()%128)

		table, err := NewNTTTable(6, m)
		require.NoError(t, err)

		p := make([]uint64, 64)
		for i := range p {
			p[i] = 1
		}

		NTT(p, table)
		for _, c := range p {
			require.Less(t, c, m.Value())
		}

		INTT(p, table)
		for i := range p {
			require.Equal(t, uint64(1), p[i])
		}
	})
}

func testNTTRoundTrip(tc *testParams, t *testing.T) {

	t.Run(testString("NTT/RoundTrip", tc.logN, tc.m), func(t *testing.T) {

		table := tc.ring.NTTTable()
		transformer := NewHarveyTransformer(table)

		p := tc.sampler.ReadNew(tc.ring.N())
		want := utils.CopyNew(p)

		transformer.Forward(p)
		transformer.Backward(p)
		require.Equal(t, want, p)

		transformer.ForwardLazy(p)
		FinalizeLazy4(p, tc.m)
		transformer.BackwardLazy(p)
		FinalizeLazy2(p, tc.m)
		require.Equal(t, want, p)

		tc.ring.NTT(p)
		tc.ring.INTT(p)
		require.Equal(t, want, p)
	})
}

func testNTTLazyRanges(tc *testParams, t *testing.T) {

	t.Run(testString("NTT/LazyRanges", tc.logN, tc.m), func(t *testing.T) {

		q := tc.m.Value()
		N := tc.ring.N()

		// forward inputs up to 4q-1
		p := tc.sampler.ReadNew(N)
		want := utils.CopyNew(p)
		for i := range p {
			p[i] += uint64(i&3) * q
		}
		p[0] = want[0] + 3*q

		tc.ring.NTTLazy(p)
		for _, c := range p {
			require.Less(t, c, 4*q)
		}

		FinalizeLazy4(p, tc.m)

		// inverse inputs up to 2q-1
		for i := range p {
			p[i] += uint64(i&1) * q
		}

		tc.ring.INTTLazy(p)
		for _, c := range p {
			require.Less(t, c, 2*q)
		}

		FinalizeLazy2(p, tc.m)
		require.Equal(t, want, p)
	})
}

// testNTTEvaluation checks that out[j] = p(psi^(2*bitrev(j)+1)).
func testNTTEvaluation(tc *testParams, t *testing.T) {

	if tc.logN > 6 {
		return
	}

	t.Run(testString("NTT/Evaluation", tc.logN, tc.m), func(t *testing.T) {

		m := tc.m
		N := tc.ring.N()
		table := tc.ring.NTTTable()

		p := tc.sampler.ReadNew(N)
		out := utils.CopyNew(p)
		NTT(out, table)

		for j := 0; j < N; j++ {

			x := ExpMod(table.Root(), 2*utils.BitReverse64(uint64(j), uint64(tc.logN))+1, m)

			// Horner
			var eval uint64
			for i := N - 1; i >= 0; i-- {
				eval = AddMod(MulMod(eval, x, m), p[i], m)
			}

			require.Equal(t, eval, out[j], "j=%d", j)
		}
	})
}

func testNTTMultiplication(tc *testParams, t *testing.T) {

	if tc.logN > 8 {
		return
	}

	t.Run(testString("NTT/Multiplication", tc.logN, tc.m), func(t *testing.T) {

		r := tc.ring
		N := r.N()

		p1 := tc.sampler.ReadNew(N)
		p2 := tc.sampler.ReadNew(N)

		want := r.NewPoly()
		MulPolyMod(p1, p2, r.PolyModulus(), tc.m, want, nil)

		a, b := utils.CopyNew(p1), utils.CopyNew(p2)
		r.NTT(a)
		r.NTT(b)
		DyadicProduct(a, b, tc.m, a)
		r.INTT(a)

		require.Equal(t, want, a)
	})
}

func TestNTTPanics(t *testing.T) {

	table, err := NewNTTTable(3, MustModulus(17))
	require.NoError(t, err)

	require.Panics(t, func() { NTT(make([]uint64, 4), table) })
	require.Panics(t, func() { INTTLazy(make([]uint64, 16), table) })
}
