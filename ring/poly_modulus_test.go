package ring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshbeal/SEAL/utils"
)

func TestPolyModulus(t *testing.T) {

	t.Run("NewPolyModulus", func(t *testing.T) {

		pm, err := NewPolyModulus([]uint64{1, 0, 0, 0, 1, 0, 0})
		require.NoError(t, err)
		require.True(t, pm.IsNegacyclic())
		require.Equal(t, 4, pm.Degree())
		require.True(t, pm.Equal(NewNegacyclicPolyModulus(4)))

		pm, err = NewPolyModulus([]uint64{1, 0, 0, 1})
		require.NoError(t, err)
		require.False(t, pm.IsNegacyclic())

		pm, err = NewPolyModulus([]uint64{5, 0, 3, 0, 0, 0, 0, 0, 1})
		require.NoError(t, err)
		require.False(t, pm.IsNegacyclic())
		require.Equal(t, 8, pm.Degree())
		require.Equal(t, []uint64{5, 0, 3, 0, 0, 0, 0, 0, 1}, pm.Coeffs())

		_, err = NewPolyModulus([]uint64{7, 0, 0})
		require.Error(t, err)
		_, err = NewPolyModulus(nil)
		require.Error(t, err)
	})

	prng := newTestPRNG(t)

	for _, q := range []uint64{17, 1073707009, 1152921504606830593} {

		m := MustModulus(q)
		sampler := NewUniformSampler(prng, m)

		for _, N := range []int{2, 8, 16} {

			pm := NewNegacyclicPolyModulus(N)
			pool := NewBufferPool(2 * N)

			// the generic path on the same polynomial
			generic := PolyModulus{coeffs: pm.Coeffs()}

			name := func(op string) string {
				return fmt.Sprintf("%s/N=%d/q=%d", op, N, q)
			}

			t.Run(name("ModuloPolyInPlace"), func(t *testing.T) {

				for _, length := range []int{N, N + 1, 2*N - 1, 3*N + 2} {

					value := sampler.ReadNew(length)

					fast := utils.CopyNew(value)
					ModuloPolyInPlace(fast, pm, m)

					slow := utils.CopyNew(value)
					ModuloPolyInPlace(slow, generic, m)

					require.Equal(t, fast, slow)
					require.Zero(t, utils.SignificantLength(fast[N:]))

					out := make([]uint64, N)
					ModuloPolyModulus(value, pm, m, out, pool)
					require.Equal(t, fast[:N], out)
				}

				short := sampler.ReadNew(N - 1)
				out := make([]uint64, N)
				ModuloPolyModulus(short, pm, m, out, pool)
				require.Equal(t, append(utils.CopyNew(short), 0), out)
			})

			t.Run(name("MulPolyMod"), func(t *testing.T) {

				p1 := sampler.ReadNew(N)
				p2 := sampler.ReadNew(N)
				want := negacyclicProduct(p1, p2, q)

				out := make([]uint64, N)
				MulPolyMod(p1, p2, pm, m, out, pool)
				require.Equal(t, want, out)

				MulPolyMod(p1, p2, generic, m, out, nil)
				require.Equal(t, want, out)

				scratch := make([]uint64, 2*N-1)
				MulPolyModInPlace(p1, p2, pm, m, scratch)
				require.Equal(t, want, scratch[:N])

				require.Panics(t, func() { MulPolyModInPlace(p1, p2, pm, m, scratch[:N]) })

				// aliasing
				MulPolyMod(p1, p2, pm, m, p1, pool)
				require.Equal(t, want, p1)
			})

			t.Run(name("InvertPoly"), func(t *testing.T) {

				one := make([]uint64, N)
				one[0] = 1

				inv := make([]uint64, N)
				prod := make([]uint64, N)

				for i := 0; i < 4; i++ {

					op := sampler.ReadNew(N)

					if !InvertPoly(op, pm, m, inv, pool) {
						// only possible if op shares a root with X^N+1
						continue
					}

					MulPolyMod(op, inv, pm, m, prod, pool)
					require.Equal(t, one, prod)
				}

				// X^-1 = -X^(N-1)
				x := make([]uint64, N)
				x[1] = 1
				require.True(t, InvertPoly(x, pm, m, inv, pool))
				want := make([]uint64, N)
				want[N-1] = q - 1
				require.Equal(t, want, inv)

				// constants
				c := make([]uint64, N)
				c[0] = 5
				require.True(t, InvertPoly(c, pm, m, inv, pool))
				require.Equal(t, uint64(1), MulMod(5, inv[0], m))
				require.Zero(t, utils.SignificantLength(inv[1:]))

				require.False(t, InvertPoly(make([]uint64, N), pm, m, inv, pool))
			})

			t.Run(name("ExpPolyMod"), func(t *testing.T) {

				p := sampler.ReadNew(N)
				out := make([]uint64, N)

				ExpPolyMod(p, []uint64{0}, pm, m, out, pool)
				one := make([]uint64, N)
				one[0] = 1
				require.Equal(t, one, out)

				ExpPolyMod(p, nil, pm, m, out, pool)
				require.Equal(t, one, out)

				ExpPolyMod(p, []uint64{1}, pm, m, out, pool)
				require.Equal(t, p, out)

				want := utils.CopyNew(p)
				for i := 1; i < 13; i++ {
					MulPolyMod(want, p, pm, m, want, pool)
				}
				ExpPolyMod(p, []uint64{13, 0}, pm, m, out, pool)
				require.Equal(t, want, out)

				// p^(2^64) = (p^(2^32))^(2^32)
				half := make([]uint64, N)
				ExpPolyMod(p, []uint64{1 << 32}, pm, m, half, pool)
				ExpPolyMod(half, []uint64{1 << 32}, pm, m, want, pool)
				ExpPolyMod(p, []uint64{0, 1}, pm, m, out, pool)
				require.Equal(t, want, out)
			})
		}
	}

	t.Run("InvertPoly/NotInvertible", func(t *testing.T) {

		// X - psi divides X^N+1 when psi is a primitive 2N-th root of unity
		m := MustModulus(1073707009)
		N := 8

		table, err := NewNTTTable(3, m)
		require.NoError(t, err)

		op := make([]uint64, N)
		op[0] = NegMod(table.Root(), m)
		op[1] = 1

		inv := make([]uint64, N)
		require.False(t, InvertPoly(op, NewNegacyclicPolyModulus(N), m, inv, nil))
	})

	t.Run("ModuloPolyInPlace/Generic", func(t *testing.T) {

		// f = X^4 + 3X^2 + 5 mod 17
		m := MustModulus(17)
		pm, err := NewPolyModulus([]uint64{5, 0, 3, 0, 1})
		require.NoError(t, err)

		value := []uint64{1, 2, 3, 4, 5, 6, 7}
		quo := make([]uint64, len(value))
		rem := make([]uint64, len(value))
		DividePoly(value, pm.Coeffs(), m, quo, rem)

		ModuloPolyInPlace(value, pm, m)
		require.Equal(t, rem, value)
	})
}
