//go:build ringdebug

package ring

// debug enables the validation of value preconditions (zero modulus, operands
// out of range, invalid Galois elements, aliasing) on every call.
const debug = true
