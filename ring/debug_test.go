//go:build ringdebug

package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugChecks(t *testing.T) {

	m := MustModulus(17)

	t.Run("ZeroModulus", func(t *testing.T) {
		require.Panics(t, func() { MulMod(1, 2, Modulus{}) })
		require.Panics(t, func() { AddMod(1, 2, Modulus{}) })
		require.Panics(t, func() { BarrettReduce64(5, Modulus{}) })
	})

	t.Run("Unreduced", func(t *testing.T) {
		require.Panics(t, func() { AddMod(17, 0, m) })
		require.Panics(t, func() { SubMod(0, 18, m) })
		require.Panics(t, func() { NegMod(17, m) })
		require.Panics(t, func() { AddModVec([]uint64{1, 2}, []uint64{3, 17}, make([]uint64, 2), m) })
		require.NotPanics(t, func() { MulMod(17, 100, m) })
	})

	t.Run("GaloisElement", func(t *testing.T) {
		in, out := make([]uint64, 8), make([]uint64, 8)
		require.Panics(t, func() { ApplyGalois(in, 3, 2, m, out) })
		require.Panics(t, func() { ApplyGalois(in, 3, 17, m, out) })
		require.Panics(t, func() { ApplyGaloisNTT(in, 3, 4, out) })
		require.NotPanics(t, func() { ApplyGaloisNTT(in, 3, 15, out) })
	})

	t.Run("Aliasing", func(t *testing.T) {
		p := make([]uint64, 8)
		require.Panics(t, func() { ApplyGalois(p, 3, 3, m, p) })
		require.Panics(t, func() { MulPolyPoly(p[:4], p[4:], m, p[2:6]) })
	})

	t.Run("EmptyTable", func(t *testing.T) {
		require.Panics(t, func() { NTTLazy(nil, &NTTTable{}) })
	})
}
