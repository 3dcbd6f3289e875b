package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// IsPrime applies the Baillie-PSW test, which is 100% accurate for numbers below 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// GenerateNTTPrimes returns count distinct primes q of exactly logQ bits with q = 1 mod 2N,
// N = 2^logN, searching downward from 2^logQ. Such primes admit an [NTTTable] for logN.
func GenerateNTTPrimes(logQ, logN, count int) (primes []uint64, err error) {

	if logQ < 2 || logQ > MaxModulusBits {
		return nil, fmt.Errorf("cannot GenerateNTTPrimes: logQ=%d not in [2, %d]", logQ, MaxModulusBits)
	}

	if logN < 0 || logN+1 >= logQ {
		return nil, fmt.Errorf("cannot GenerateNTTPrimes: logN=%d too large for logQ=%d", logN, logQ)
	}

	if count < 1 {
		return nil, nil
	}

	nthRoot := uint64(2) << logN

	// largest x = 1 mod 2N below 2^logQ
	x := uint64(1)<<logQ - nthRoot + 1

	for bits.Len64(x) == logQ {

		if IsPrime(x) {
			primes = append(primes, x)
			if len(primes) == count {
				return
			}
		}

		if x < nthRoot {
			break
		}

		x -= nthRoot
	}

	return nil, fmt.Errorf("cannot GenerateNTTPrimes: only %d primes of %d bits are 1 mod %d", len(primes), logQ, nthRoot)
}

// NextNTTPrime returns the smallest prime larger than q that is 1 mod 2^(logN+1).
// q must itself be 1 mod 2^(logN+1).
func NextNTTPrime(q uint64, logN int) (qNext uint64, err error) {

	nthRoot := uint64(2) << logN

	for qNext = q + nthRoot; !IsPrime(qNext); qNext += nthRoot {
		if bits.Len64(qNext) > MaxModulusBits {
			return 0, fmt.Errorf("cannot NextNTTPrime: next NTT prime exceeds the maximum bit-size of %d bits", MaxModulusBits)
		}
	}

	return
}

// PreviousNTTPrime returns the largest prime smaller than q that is 1 mod 2^(logN+1).
// q must itself be 1 mod 2^(logN+1).
func PreviousNTTPrime(q uint64, logN int) (qPrev uint64, err error) {

	nthRoot := uint64(2) << logN

	for qPrev = q; ; {

		if qPrev <= nthRoot {
			return 0, fmt.Errorf("cannot PreviousNTTPrime: previous NTT prime is smaller than 2N=%d", nthRoot)
		}

		if qPrev -= nthRoot; IsPrime(qPrev) {
			return
		}
	}
}
