package ring

import (
	"fmt"

	"github.com/joshbeal/SEAL/utils/primitives"
)

const (
	// UserModulusBits is the maximum bit length of a modulus provided by a user.
	UserModulusBits = 60

	// MaxModulusBits is the maximum bit length of any modulus.
	// Barrett reduction with a single correction and the lazy ranges of the NTT
	// ([0, 4q) must fit in 63 bits) rely on it.
	MaxModulusBits = 61
)

// Modulus is a word-size modulus q together with its Barrett constant floor(2^128/q).
// A Modulus is immutable: the only way to get a different modulus is to build a new one.
// The zero value is the zero modulus, a sentinel meaning "no modulus" that must not be
// used for arithmetic.
type Modulus struct {
	value      uint64
	bitCount   int
	constRatio [2]uint64
}

// NewModulus returns the Modulus q.
// q = 0 gives the zero modulus. An error is returned if q = 1 or if q has more than
// MaxModulusBits bits.
func NewModulus(q uint64) (m Modulus, err error) {

	if q == 0 {
		return
	}

	if q == 1 {
		return Modulus{}, fmt.Errorf("cannot NewModulus: q=1: %w", ErrInvalidModulus)
	}

	bitCount := primitives.MSB64(q) + 1
	if bitCount > MaxModulusBits {
		return Modulus{}, fmt.Errorf("cannot NewModulus: q=%d has %d > %d bits: %w", q, bitCount, MaxModulusBits, ErrInvalidModulus)
	}

	// floor(2^128/q) by long division on the words [1, 0, 0]
	arith := primitives.Default()
	hi, rem := arith.Div128(1, 0, q)
	lo, _ := arith.Div128(rem, 0, q)

	return Modulus{
		value:      q,
		bitCount:   bitCount,
		constRatio: [2]uint64{lo, hi},
	}, nil
}

// NewUserModulus returns the Modulus q, checking that q is a prime
// of at most UserModulusBits bits.
func NewUserModulus(q uint64) (m Modulus, err error) {

	if q == 0 {
		return Modulus{}, fmt.Errorf("cannot NewUserModulus: %w", ErrZeroModulus)
	}

	if bitCount := primitives.MSB64(q) + 1; bitCount > UserModulusBits {
		return Modulus{}, fmt.Errorf("cannot NewUserModulus: q=%d has %d > %d bits: %w", q, bitCount, UserModulusBits, ErrInvalidModulus)
	}

	if !IsPrime(q) {
		return Modulus{}, fmt.Errorf("cannot NewUserModulus: q=%d: %w", q, ErrNotPrime)
	}

	return NewModulus(q)
}

// MustModulus is like NewModulus but panics on error.
func MustModulus(q uint64) Modulus {
	m, err := NewModulus(q)
	if err != nil {
		panic(err)
	}
	return m
}

// Value returns q, or 0 for the zero modulus.
func (m Modulus) Value() uint64 {
	return m.value
}

// BitCount returns the bit length of q.
func (m Modulus) BitCount() int {
	return m.bitCount
}

// ConstRatio returns floor(2^128/q) as two words, low word first.
func (m Modulus) ConstRatio() [2]uint64 {
	return m.constRatio
}

// IsZero returns true for the zero modulus.
func (m Modulus) IsZero() bool {
	return m.value == 0
}

// IsPrime returns true if q is prime.
func (m Modulus) IsPrime() bool {
	return m.value != 0 && IsPrime(m.value)
}

// Equal returns true if both moduli have the same value.
func (m Modulus) Equal(other Modulus) bool {
	return m.value == other.value
}

func (m Modulus) String() string {
	return fmt.Sprintf("Modulus(%d)", m.value)
}
