package ring

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/exp/slices"

	"github.com/joshbeal/SEAL/utils"
	"github.com/joshbeal/SEAL/utils/buffer"
)

const (
	// MinLogN is the smallest supported log2 of the ring degree.
	MinLogN = 1
	// MaxLogN is the largest supported log2 of the ring degree.
	MaxLogN = 17
)

// NTTTable stores the precomputed values of the negacyclic NTT for a ring degree N = 2^logN
// and a modulus q = 1 mod 2N: the minimal primitive 2N-th root of unity psi and six tables of
// N values, stored in bit-reversed order (the power psi^i is at index bitrev(i)):
//
//   - the powers of psi and their Shoup twins floor(psi^i * 2^64 / q),
//   - the powers of psi^-1 and their Shoup twins,
//   - the powers of psi^-1 halved mod q and their Shoup twins, used by the inverse transform.
//
// A table is either generated or empty. Once generated it is read-only and can be
// shared across goroutines.
type NTTTable struct {
	logN      int
	n         int
	modulus   Modulus
	root      uint64
	invRoot   uint64
	invDegree uint64

	rootPowers                []uint64
	scaledRootPowers          []uint64
	invRootPowers             []uint64
	scaledInvRootPowers       []uint64
	invRootPowersDivTwo       []uint64
	scaledInvRootPowersDivTwo []uint64
}

// NewNTTTable allocates and generates a new NTTTable.
func NewNTTTable(logN int, m Modulus) (t *NTTTable, err error) {
	t = new(NTTTable)
	if err = t.Generate(logN, m); err != nil {
		return nil, err
	}
	return
}

// Generate populates the table for the given logN and modulus.
// On error the table is left empty, whatever its previous state.
// Generate must not be called while the table is being read.
func (t *NTTTable) Generate(logN int, m Modulus) (err error) {

	t.Reset()

	if logN < MinLogN || logN > MaxLogN {
		return fmt.Errorf("cannot Generate: logN=%d not in [%d, %d]: %w", logN, MinLogN, MaxLogN, ErrInvalidDegree)
	}

	if m.IsZero() {
		return fmt.Errorf("cannot Generate: %w", ErrZeroModulus)
	}

	t.logN = logN
	t.n = 1 << logN
	t.modulus = m

	root, ok := MinimalPrimitiveRoot(uint64(2*t.n), m)
	if !ok {
		t.Reset()
		return fmt.Errorf("cannot Generate: logN=%d, q=%d: %w", logN, m.value, ErrNoPrimitiveRoot)
	}

	invRoot, ok := InvMod(root, m)
	if !ok {
		t.Reset()
		return fmt.Errorf("cannot Generate: root %d: %w", root, ErrNotInvertible)
	}

	t.root = root
	t.invRoot = invRoot

	t.rootPowers = t.powersOfRoot(root)
	t.scaledRootPowers = t.scale(t.rootPowers)

	t.invRootPowers = t.powersOfRoot(invRoot)
	t.scaledInvRootPowers = t.scale(t.invRootPowers)

	t.invRootPowersDivTwo = make([]uint64, t.n)
	for i, w := range t.invRootPowers {
		t.invRootPowersDivTwo[i] = Div2Mod(w, m)
	}
	t.scaledInvRootPowersDivTwo = t.scale(t.invRootPowersDivTwo)

	if t.invDegree, ok = InvMod(uint64(t.n), m); !ok {
		t.Reset()
		return fmt.Errorf("cannot Generate: N=%d: %w", 1<<logN, ErrNotInvertible)
	}

	return nil
}

// powersOfRoot returns the powers of root in bit-reversed order: the i-th power is
// written at index bitrev(i) and computed from the (i-1)-th one.
func (t *NTTTable) powersOfRoot(root uint64) (powers []uint64) {

	powers = make([]uint64, t.n)
	powers[0] = 1

	var prev uint64
	for i := 1; i < t.n; i++ {
		idx := utils.BitReverse64(uint64(i), uint64(t.logN))
		powers[idx] = MulMod(powers[prev], root, t.modulus)
		prev = idx
	}

	return
}

// scale returns the Shoup constants of values, all in [0, q).
func (t *NTTTable) scale(values []uint64) (scaled []uint64) {
	scaled = make([]uint64, len(values))
	for i, x := range values {
		scaled[i] = ShoupConstant(x, t.modulus)
	}
	return
}

// Reset puts the table in the empty state.
func (t *NTTTable) Reset() {
	*t = NTTTable{}
}

// IsGenerated returns true if the table holds generated values.
func (t *NTTTable) IsGenerated() bool {
	return t.rootPowers != nil
}

// LogN returns log2 of the ring degree, or 0 for an empty table.
func (t *NTTTable) LogN() int {
	return t.logN
}

// N returns the ring degree, or 0 for an empty table.
func (t *NTTTable) N() int {
	return t.n
}

// Modulus returns the modulus of the table.
func (t *NTTTable) Modulus() Modulus {
	return t.modulus
}

// Root returns the minimal primitive 2N-th root of unity psi.
func (t *NTTTable) Root() uint64 {
	return t.root
}

// InvRoot returns psi^-1 mod q.
func (t *NTTTable) InvRoot() uint64 {
	return t.invRoot
}

// InvDegree returns N^-1 mod q.
func (t *NTTTable) InvDegree() uint64 {
	return t.invDegree
}

// The following accessors return the internal tables, which must not be modified.

// RootPowers returns the powers of psi in bit-reversed order.
func (t *NTTTable) RootPowers() []uint64 {
	return t.rootPowers
}

// ScaledRootPowers returns the Shoup twins of [NTTTable.RootPowers].
func (t *NTTTable) ScaledRootPowers() []uint64 {
	return t.scaledRootPowers
}

// InvRootPowers returns the powers of psi^-1 in bit-reversed order.
func (t *NTTTable) InvRootPowers() []uint64 {
	return t.invRootPowers
}

// ScaledInvRootPowers returns the Shoup twins of [NTTTable.InvRootPowers].
func (t *NTTTable) ScaledInvRootPowers() []uint64 {
	return t.scaledInvRootPowers
}

// InvRootPowersDivTwo returns the powers of psi^-1 halved mod q, in bit-reversed order.
func (t *NTTTable) InvRootPowersDivTwo() []uint64 {
	return t.invRootPowersDivTwo
}

// ScaledInvRootPowersDivTwo returns the Shoup twins of [NTTTable.InvRootPowersDivTwo].
func (t *NTTTable) ScaledInvRootPowersDivTwo() []uint64 {
	return t.scaledInvRootPowersDivTwo
}

// CopyNew returns a deep copy of the table.
func (t *NTTTable) CopyNew() *NTTTable {
	return &NTTTable{
		logN:                      t.logN,
		n:                         t.n,
		modulus:                   t.modulus,
		root:                      t.root,
		invRoot:                   t.invRoot,
		invDegree:                 t.invDegree,
		rootPowers:                utils.CopyNew(t.rootPowers),
		scaledRootPowers:          utils.CopyNew(t.scaledRootPowers),
		invRootPowers:             utils.CopyNew(t.invRootPowers),
		scaledInvRootPowers:       utils.CopyNew(t.scaledInvRootPowers),
		invRootPowersDivTwo:       utils.CopyNew(t.invRootPowersDivTwo),
		scaledInvRootPowersDivTwo: utils.CopyNew(t.scaledInvRootPowersDivTwo),
	}
}

// Equal returns true if both tables hold the same values.
func (t *NTTTable) Equal(other *NTTTable) bool {
	return t.logN == other.logN &&
		t.modulus.Equal(other.modulus) &&
		t.root == other.root &&
		t.invRoot == other.invRoot &&
		t.invDegree == other.invDegree &&
		slices.Equal(t.rootPowers, other.rootPowers) &&
		slices.Equal(t.scaledRootPowers, other.scaledRootPowers) &&
		slices.Equal(t.invRootPowers, other.invRootPowers) &&
		slices.Equal(t.scaledInvRootPowers, other.scaledInvRootPowers) &&
		slices.Equal(t.invRootPowersDivTwo, other.invRootPowersDivTwo) &&
		slices.Equal(t.scaledInvRootPowersDivTwo, other.scaledInvRootPowersDivTwo)
}

// Digest returns the BLAKE3 hash of the parameters and of the six tables.
func (t *NTTTable) Digest() [32]byte {

	h := blake3.New()

	var word [8]byte
	write := func(x uint64) {
		binary.LittleEndian.PutUint64(word[:], x)
		/* #nosec G104 -- a hash.Hash never returns an error */
		h.Write(word[:])
	}

	write(uint64(t.logN))
	write(t.modulus.value)
	write(t.root)

	for _, table := range [][]uint64{
		t.rootPowers, t.scaledRootPowers,
		t.invRootPowers, t.scaledInvRootPowers,
		t.invRootPowersDivTwo, t.scaledInvRootPowersDivTwo,
	} {
		for _, x := range table {
			write(x)
		}
	}

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// BinarySize returns the size in bytes of the serialized table.
func (t *NTTTable) BinarySize() int {
	return 1 + 8
}

// WriteTo writes the parameters (logN, q) of the table on w; the tables themselves are
// regenerated deterministically by [NTTTable.ReadFrom].
func (t *NTTTable) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint8(w, uint8(t.logN)); err != nil {
			return n + inc, err
		}
		n += inc

		if inc, err = buffer.WriteUint64(w, t.modulus.value); err != nil {
			return n + inc, err
		}
		n += inc

		return n, w.Flush()

	default:
		return t.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the parameters written by [NTTTable.WriteTo] and regenerates the table.
// Encoded empty tables decode to an empty table.
func (t *NTTTable) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var logN uint8
		var q uint64

		var inc int
		if inc, err = buffer.ReadUint8(r, &logN); err != nil {
			return n + int64(inc), fmt.Errorf("cannot ReadFrom: logN: %w", err)
		}
		n += int64(inc)

		if inc, err = buffer.ReadUint64(r, &q); err != nil {
			return n + int64(inc), fmt.Errorf("cannot ReadFrom: q: %w", err)
		}
		n += int64(inc)

		if logN == 0 && q == 0 {
			t.Reset()
			return n, nil
		}

		var m Modulus
		if m, err = NewModulus(q); err != nil {
			t.Reset()
			return n, fmt.Errorf("cannot ReadFrom: %w", err)
		}

		return n, t.Generate(int(logN), m)

	default:
		return t.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the table on a slice of bytes.
func (t *NTTTable) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(t.BinarySize())
	_, err = t.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes written by [NTTTable.MarshalBinary].
func (t *NTTTable) UnmarshalBinary(data []byte) (err error) {

	if len(data) != t.BinarySize() {
		return fmt.Errorf("cannot UnmarshalBinary: len(data)=%d != %d", len(data), t.BinarySize())
	}

	_, err = t.ReadFrom(buffer.NewBuffer(data))
	return
}
