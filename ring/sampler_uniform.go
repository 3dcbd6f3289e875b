package ring

import (
	"encoding/binary"

	"github.com/joshbeal/SEAL/utils/sampling"
)

const randomBufferSize = 1024

// UniformSampler samples polynomials with coefficients uniform in [0, q) from a PRNG,
// by rejection sampling on the bit length of q.
// A UniformSampler is not safe for concurrent use.
type UniformSampler struct {
	prng    sampling.PRNG
	modulus Modulus
	mask    uint64
	buffer  []byte
	ptr     int
}

// NewUniformSampler creates a new UniformSampler reading from prng.
func NewUniformSampler(prng sampling.PRNG, m Modulus) *UniformSampler {
	return &UniformSampler{
		prng:    prng,
		modulus: m,
		mask:    uint64(1)<<m.bitCount - 1,
		buffer:  make([]byte, randomBufferSize),
		ptr:     randomBufferSize,
	}
}

func (u *UniformSampler) next() uint64 {
	if u.ptr == len(u.buffer) {
		if _, err := u.prng.Read(u.buffer); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		u.ptr = 0
	}
	x := binary.LittleEndian.Uint64(u.buffer[u.ptr:])
	u.ptr += 8
	return x
}

// Read fills pol with uniform coefficients in [0, q).
func (u *UniformSampler) Read(pol []uint64) {

	if debug {
		checkModulus("UniformSampler.Read", u.modulus)
	}

	q := u.modulus.value

	for i := range pol {
		for {
			if x := u.next() & u.mask; x < q {
				pol[i] = x
				break
			}
		}
	}
}

// ReadNew returns a new polynomial of N uniform coefficients in [0, q).
func (u *UniformSampler) ReadNew(N int) (pol []uint64) {
	pol = make([]uint64, N)
	u.Read(pol)
	return
}
