package bigint

import "encoding"

// Capability interfaces. Each width type implements the subset its width
// supports; concatenation and splitting are expressed directly as methods on
// the enumerated widths, so a mismatched pairing is a compile error rather
// than anything these interfaces could catch at runtime.

// Bounded is satisfied by every fixed-width integer: the width is a property
// of the type, not of the value.
type Bounded interface {
	// Bits is the width in bits.
	Bits() int
	// Size is the width in bytes.
	Size() int
}

// Integer unifies the value-independent queries of a fixed-width integer.
type Integer interface {
	Bounded
	IsZero() Choice
	IsOdd() Choice
}

// LimbView exposes the limb storage of a fixed-width integer. Satisfied by
// pointers to the width types; consumed by the Resize functions.
type LimbView interface {
	Limbs() []Limb
}

// Serializable is satisfied by pointers to every width type and is the
// contract the encoding package builds on: binary is the big-endian byte
// array, text is lower-case hex.
type Serializable interface {
	Bounded
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}
