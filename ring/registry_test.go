package ring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {

	t.Run("Get/Concurrent", func(t *testing.T) {

		reg := NewRegistry()
		m := MustModulus(1152921504606830593)

		const workers = 16

		tables := make([]*NTTTable, workers)
		errs := make([]error, workers)

		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func(i int) {
				defer wg.Done()
				tables[i], errs[i] = reg.Get(10, m)
			}(i)
		}
		wg.Wait()

		for i := range tables {
			require.NoError(t, errs[i])
			require.Same(t, tables[0], tables[i])
		}

		require.Equal(t, 1, reg.Len())
		require.True(t, tables[0].IsGenerated())
	})

	t.Run("Get/Distinct", func(t *testing.T) {

		reg := NewRegistry()

		t0, err := reg.Get(3, MustModulus(97))
		require.NoError(t, err)
		t1, err := reg.Get(4, MustModulus(97))
		require.NoError(t, err)
		t2, err := reg.Get(3, MustModulus(17))
		require.NoError(t, err)

		require.NotSame(t, t0, t1)
		require.NotSame(t, t0, t2)
		require.Equal(t, 3, reg.Len())

		again, err := reg.Get(3, MustModulus(97))
		require.NoError(t, err)
		require.Same(t, t0, again)
	})

	t.Run("Get/FailureNotRecorded", func(t *testing.T) {

		reg := NewRegistry()

		_, err := reg.Get(4, MustModulus(17))
		require.ErrorIs(t, err, ErrNoPrimitiveRoot)
		_, err = reg.Get(0, MustModulus(17))
		require.ErrorIs(t, err, ErrInvalidDegree)

		require.Zero(t, reg.Len())
	})
}
