package ring

import (
	"math/big"

	"github.com/joshbeal/SEAL/utils/bignum"
)

// Stats returns [log2(std), mean] of the coefficients of p, each taken as its centered
// representative in (-q/2, q/2].
func Stats(p []uint64, m Modulus) [2]float64 {

	q := m.value
	half := q >> 1

	values := make([]big.Int, len(p))
	for i, c := range p {
		if c > half {
			values[i].SetInt64(-int64(q - c))
		} else {
			values[i].SetUint64(c)
		}
	}

	return bignum.Stats(values, 128)
}
