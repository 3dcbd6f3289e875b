// Package sampling implements sources of random bytes and helpers to turn them into integers.
package sampling

import (
	"encoding/binary"
)

// ReadUint64 reads 8 bytes from prng and returns them as a little-endian uint64.
// It panics if prng returns an error.
func ReadUint64(prng PRNG) uint64 {
	var b [8]byte
	if _, err := prng.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}

// FillUint64 fills buff with uint64 read from prng, using scratch as intermediate
// byte storage. scratch must be at least 8*len(buff) bytes long.
func FillUint64(prng PRNG, buff []uint64, scratch []byte) {
	scratch = scratch[:8*len(buff)]
	if _, err := prng.Read(scratch); err != nil {
		panic(err)
	}
	for i := range buff {
		buff[i] = binary.LittleEndian.Uint64(scratch[8*i:])
	}
}
