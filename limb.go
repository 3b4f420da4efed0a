package bigint

import "math/bits"

// Word is the unsigned machine word underlying a Limb. All limb storage can be
// reinterpreted as words with no copy, see wordsView.
type Word = uint64

// Limb is the atomic storage and carry-propagation unit of every fixed-width
// integer in this package: a single 64-bit unsigned word.
type Limb uint64

const (
	// LimbBits is the size of a Limb in bits.
	LimbBits = 64
	// LimbBytes is the size of a Limb in bytes.
	LimbBytes = 8
	// MaxLimb is the all-ones limb.
	MaxLimb = Limb(1<<64 - 1)
)

// Choice is a constant-time boolean whose value is always 0 or 1. Using a full
// word instead of bool lets decisions be turned into bitmasks without
// branching. Any other value makes the result of the selection helpers
// undefined.
type Choice uint64

// Not returns the logical negation of c.
func (c Choice) Not() Choice { return c ^ 1 }

// mask expands c into an all-zeros or all-ones limb.
func (c Choice) mask() Limb { return -Limb(c) }

// Add returns x + y + carry as a sum and an outgoing carry. carry must be 0 or
// 1. The execution time does not depend on the inputs.
func (x Limb) Add(y, carry Limb) (sum, carryOut Limb) {
	s, c := bits.Add64(Word(x), Word(y), Word(carry))
	return Limb(s), Limb(c)
}

// Sub returns x - y - borrow as a difference and an outgoing borrow. borrow
// must be 0 or 1. The execution time does not depend on the inputs.
func (x Limb) Sub(y, borrow Limb) (diff, borrowOut Limb) {
	d, b := bits.Sub64(Word(x), Word(y), Word(borrow))
	return Limb(d), Limb(b)
}

// Mul returns the full 128-bit product x * y split into a high and a low limb.
// The execution time does not depend on the inputs.
func (x Limb) Mul(y Limb) (hi, lo Limb) {
	h, l := bits.Mul64(Word(x), Word(y))
	return Limb(h), Limb(l)
}

// IsOdd returns 1 if the least significant bit of x is set, 0 otherwise.
func (x Limb) IsOdd() Choice { return Choice(x & 1) }

// Select returns a if c == 0 and b if c == 1, without branching on c.
func Select(a, b Limb, c Choice) Limb {
	m := c.mask()
	return a ^ (m & (a ^ b))
}

// ctEq returns 1 if x == y, and 0 otherwise, in constant time.
func ctEq(x, y Limb) Choice {
	// If x != y, one of the two subtractions generates a borrow.
	_, b1 := bits.Sub64(Word(x), Word(y), 0)
	_, b2 := bits.Sub64(Word(y), Word(x), 0)
	return Choice(b1 | b2).Not()
}

// ctGeq returns 1 if x >= y, and 0 otherwise, in constant time.
func ctGeq(x, y Limb) Choice {
	_, b := bits.Sub64(Word(x), Word(y), 0)
	return Choice(b).Not()
}

// ctEqWord returns 1 if x == y, and 0 otherwise, in constant time.
func ctEqWord(x, y Word) Choice { return ctEq(Limb(x), Limb(y)) }
