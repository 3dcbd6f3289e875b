package ring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshbeal/SEAL/utils/sampling"
)

func TestVecOps(t *testing.T) {

	prng := newTestPRNG(t)

	lengths := []int{64, 65}
	for n := 0; n < 34; n++ {
		lengths = append(lengths, n)
	}

	for _, q := range []uint64{17, 1073707009, 2305843009213554689} {

		m := MustModulus(q)
		sampler := NewUniformSampler(prng, m)

		for _, n := range lengths {

			p1 := sampler.ReadNew(n)
			p2 := sampler.ReadNew(n)
			p3 := make([]uint64, n)

			raw := make([]uint64, n)
			sampling.FillUint64(prng, raw, make([]byte, 8*n))

			scalar := sampling.ReadUint64(prng)

			name := func(op string) string {
				return fmt.Sprintf("%s/n=%d/q=%d", op, n, q)
			}

			t.Run(name("MulModVec"), func(t *testing.T) {
				MulModVec(p1, p2, p3, m)
				for i := range p3 {
					require.Equal(t, MulMod(p1[i], p2[i], m), p3[i])
				}
			})

			t.Run(name("MulScalarModVec"), func(t *testing.T) {
				MulScalarModVec(p1, scalar, p3, m)
				for i := range p3 {
					require.Equal(t, MulMod(p1[i], scalar, m), p3[i])
				}
			})

			t.Run(name("MulShoupScalarVec"), func(t *testing.T) {
				w := scalar % q
				MulShoupScalarVec(raw, w, ShoupConstant(w, m), p3, m)
				for i := range p3 {
					require.Equal(t, MulMod(raw[i], w, m), p3[i])
				}
			})

			t.Run(name("AddModVec"), func(t *testing.T) {
				AddModVec(p1, p2, p3, m)
				for i := range p3 {
					require.Equal(t, AddMod(p1[i], p2[i], m), p3[i])
				}
			})

			t.Run(name("SubModVec"), func(t *testing.T) {
				SubModVec(p1, p2, p3, m)
				for i := range p3 {
					require.Equal(t, SubMod(p1[i], p2[i], m), p3[i])
				}
			})

			t.Run(name("NegModVec"), func(t *testing.T) {
				NegModVec(p1, p3, m)
				for i := range p3 {
					require.Equal(t, NegMod(p1[i], m), p3[i])
				}
			})

			t.Run(name("ReduceVec"), func(t *testing.T) {
				ReduceVec(raw, p3, m)
				for i := range p3 {
					require.Equal(t, raw[i]%q, p3[i])
				}
			})

			t.Run(name("CondSubVec"), func(t *testing.T) {
				lazy := make([]uint64, n)
				for i := range lazy {
					lazy[i] = p1[i] + (p2[i]&1)*q
				}
				CondSubVec(lazy, p3, q)
				require.Equal(t, p1, p3)
			})

			t.Run(name("InPlace"), func(t *testing.T) {
				want := make([]uint64, n)
				AddModVec(p1, p2, want, m)
				tmp := append([]uint64{}, p1...)
				AddModVec(tmp, p2, tmp, m)
				require.Equal(t, want, tmp)
			})
		}
	}

	t.Run("LengthMismatch", func(t *testing.T) {
		m := MustModulus(17)
		require.Panics(t, func() { MulModVec(make([]uint64, 8), make([]uint64, 8), make([]uint64, 7), m) })
		require.Panics(t, func() { AddModVec(make([]uint64, 9), make([]uint64, 8), make([]uint64, 9), m) })
		require.Panics(t, func() { NegModVec(make([]uint64, 3), make([]uint64, 4), m) })
		require.Panics(t, func() { CondSubVec(make([]uint64, 3), make([]uint64, 4), 17) })
		require.Panics(t, func() { MulShoupScalarVec(make([]uint64, 3), 1, ShoupConstant(1, m), make([]uint64, 2), m) })
	})
}
