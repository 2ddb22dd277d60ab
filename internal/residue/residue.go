// Package residue computes quadratic residue sets and renders them as report
// lines.
package residue

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// ErrInvalidModulus is returned when a modulus is not a positive integer.
var ErrInvalidModulus = errors.New("modulus must be a positive integer")

// defaultModuli is the fixed list of moduli reported by the residues command.
var defaultModuli = [...]int{256, 9, 5, 7, 13, 17, 97, 241, 257, 673}

// DefaultModuli returns a copy of the fixed modulus list in declaration order.
func DefaultModuli() []int {
	moduli := make([]int, len(defaultModuli))
	copy(moduli, defaultModuli[:])
	return moduli
}

// Set holds the quadratic residues of a single modulus.
// Bit r is set iff r is a residue, so every member is in [0, m).
type Set struct {
	modulus int
	bits    *bitset.BitSet
}

// Compute returns the set of values x*x mod m.
//
// Only x in [0, m/2] is visited: (m-x)^2 is congruent to x^2 mod m, so the
// upper half of the range repeats residues already seen.
func Compute(m int) (Set, error) {
	if m <= 0 {
		return Set{}, errors.WithMessagef(ErrInvalidModulus, "modulus %d", m)
	}

	mod := uint64(m)
	b := bitset.New(uint(m))
	for x := uint64(0); x <= mod/2; x++ {
		hi, lo := bits.Mul64(x, x)
		b.Set(uint(bits.Rem64(hi, lo, mod)))
	}

	return Set{modulus: m, bits: b}, nil
}

// Modulus returns the modulus the set was computed for.
func (s Set) Modulus() int {
	return s.modulus
}

// Contains reports whether r is a quadratic residue of the set's modulus.
func (s Set) Contains(r int) bool {
	if s.bits == nil || r < 0 || r >= s.modulus {
		return false
	}
	return s.bits.Test(uint(r))
}

// Len returns the number of distinct residues.
func (s Set) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Sorted returns the residues in ascending order.
func (s Set) Sorted() []int {
	if s.bits == nil {
		return nil
	}

	residues := make([]int, 0, s.Len())
	for r, ok := s.bits.NextSet(0); ok; r, ok = s.bits.NextSet(r + 1) {
		residues = append(residues, int(r))
	}
	return residues
}

// Equal reports whether both sets have the same modulus and members.
func (s Set) Equal(other Set) bool {
	if s.modulus != other.modulus {
		return false
	}
	if s.bits == nil || other.bits == nil {
		return s.bits == other.bits
	}
	return s.bits.Equal(other.bits)
}
