package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitReverse(t *testing.T) {
	require.Equal(t, uint64(0), BitReverse64(0, 3))
	require.Equal(t, uint64(4), BitReverse64(1, 3))
	require.Equal(t, uint64(6), BitReverse64(3, 3))
	require.Equal(t, uint64(1), BitReverse64(4, 3))

	for logN := uint64(1); logN < 12; logN++ {
		N := uint64(1) << logN
		seen := make(map[uint64]bool, N)
		for i := uint64(0); i < N; i++ {
			r := BitReverse64(i, logN)
			require.Less(t, r, N)
			require.Equal(t, i, BitReverse64(r, logN))
			seen[r] = true
		}
		require.Len(t, seen, int(N))
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	require.False(t, IsPowerOfTwo(0))
	require.False(t, IsPowerOfTwo(-4))
	require.False(t, IsPowerOfTwo(uint64(12)))
	require.True(t, IsPowerOfTwo(1))
	require.True(t, IsPowerOfTwo(uint64(1)<<63))
	require.Equal(t, 10, Log2(uint(1024)))
	require.Equal(t, 10, Log2(uint(2047)))
	require.Equal(t, -1, Log2(uint(0)))
}

func TestSlices(t *testing.T) {
	a := make([]uint64, 8)
	require.True(t, Alias1D(a, a[2:4]))
	require.False(t, Alias1D(a, make([]uint64, 8)))
	require.False(t, Overlap(a, a[:0]))
	require.True(t, Overlap(a[:5], a[4:]))
	require.False(t, Overlap(a[:4], a[4:]))
	require.True(t, Overlap(a[2:6], a[3:4]))
	require.False(t, Overlap(a[6:], a[1:5]))

	b := []uint64{1, 2, 0, 0}
	c := CopyNew(b)
	c[0] = 7
	require.Equal(t, uint64(1), b[0])
	require.Nil(t, CopyNew[uint64](nil))

	require.Equal(t, 2, SignificantLength(b))
	require.Equal(t, 0, SignificantLength([]uint64{0, 0}))
}
