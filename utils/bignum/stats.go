package bignum

import (
	"math"
	"math/big"
)

// Stats returns [log2(std), mean] of values, computed with prec bits of precision.
// The standard deviation is the sample one (normalized by N-1). A zero standard
// deviation gives -Inf, and fewer than two values give NaN for the first entry.
func Stats(values []big.Int, prec uint) [2]float64 {

	N := len(values)

	if N == 0 {
		return [2]float64{math.NaN(), math.NaN()}
	}

	mean := NewFloat(0, prec)
	tmp := NewFloat(0, prec)

	for i := 0; i < N; i++ {
		mean.Add(mean, tmp.SetInt(&values[i]))
	}

	mean.Quo(mean, NewFloat(N, prec))
	meanF64, _ := mean.Float64()

	if N == 1 {
		return [2]float64{math.NaN(), meanF64}
	}

	variance := NewFloat(0, prec)

	for i := 0; i < N; i++ {
		tmp.SetInt(&values[i])
		tmp.Sub(tmp, mean)
		tmp.Mul(tmp, tmp)
		variance.Add(variance, tmp)
	}

	variance.Quo(variance, NewFloat(N-1, prec))

	if variance.Sign() == 0 {
		return [2]float64{math.Inf(-1), meanF64}
	}

	// log2(std) = log2(variance)/2
	log2Std, _ := Log2(variance).Float64()

	return [2]float64{log2Std / 2, meanF64}
}
