// Package bigint implements fixed-width, constant-time big unsigned integer
// arithmetic intended as a primitive layer for cryptographic software:
// modular exponentiation, RSA-style computation, field arithmetic.
//
// Each width type (U64 .. U4096) is an ordered array of 64-bit limbs, least
// significant first, with the width fixed by the type. For a given width,
// every operation executes the same sequence of word operations and memory
// accesses regardless of the operand values, so timing and cache behaviour
// leak only the width. The documented exceptions are the hex codec, the
// BitSet accessor and modulus construction, which handle public data.
//
// Overflow never faults: wrapping operators reduce modulo 2^Bits, and the
// Adc/Sbb forms surface the carry or borrow explicitly. Division by zero and
// non-invertible elements are reported through a Choice validity flag rather
// than an error value, so callers can stay branch-free on secret data.
//
// The width types are generated; see internal/generator.
package bigint
