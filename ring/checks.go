package ring

import (
	"fmt"

	"github.com/joshbeal/SEAL/utils"
)

// The functions of this file are only reached when built with the ringdebug tag,
// except checkLen which guards every buffer operation.

func checkLen(op string, n int, lens ...int) {
	for i, l := range lens {
		if l != n {
			panic(fmt.Errorf("cannot %s: len(operand[%d])=%d != %d", op, i+1, l, n))
		}
	}
}

func checkModulus(op string, m Modulus) {
	if m.IsZero() {
		panic(fmt.Errorf("cannot %s: %w", op, ErrZeroModulus))
	}
}

func checkReduced(op string, x uint64, m Modulus) {
	checkModulus(op, m)
	if x >= m.value {
		panic(fmt.Errorf("cannot %s: operand %d is not in [0, %d)", op, x, m.value))
	}
}

func checkReducedVec(op string, p []uint64, m Modulus) {
	for _, x := range p {
		checkReduced(op, x, m)
	}
}

func checkNoAlias(op string, in, out []uint64) {
	if utils.Overlap(in, out) {
		panic(fmt.Errorf("cannot %s: output aliases input", op))
	}
}

func checkGaloisElement(op string, logN int, galEl uint64) {
	if logN <= 0 || logN > 62 {
		panic(fmt.Errorf("cannot %s: invalid logN=%d", op, logN))
	}
	if galEl&1 == 0 || galEl >= 2<<logN {
		panic(fmt.Errorf("cannot %s: galois element %d is not odd or not in [1, %d)", op, galEl, uint64(2)<<logN))
	}
}

func checkGenerated(op string, table *NTTTable) {
	if table == nil || !table.IsGenerated() {
		panic(fmt.Errorf("cannot %s: NTT table is not generated", op))
	}
}
