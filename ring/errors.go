package ring

import "errors"

var (
	// ErrZeroModulus is returned when an operation requires a modulus but got the zero sentinel.
	ErrZeroModulus = errors.New("modulus is zero")

	// ErrInvalidModulus is returned for moduli that are out of the supported range.
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrNotPrime is returned when a prime modulus is required.
	ErrNotPrime = errors.New("modulus is not prime")

	// ErrInvalidDegree is returned when the ring degree is not a supported power of two.
	ErrInvalidDegree = errors.New("invalid ring degree")

	// ErrNoPrimitiveRoot is returned when no primitive 2N-th root of unity exists modulo q,
	// that is when q is not prime or q != 1 mod 2N.
	ErrNoPrimitiveRoot = errors.New("no primitive root of unity")

	// ErrNotInvertible is returned when a value has no inverse modulo q.
	ErrNotInvertible = errors.New("value is not invertible")
)
