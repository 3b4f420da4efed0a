package bigint

import "errors"

// Construction-time failures are ordinary errors. Failures on potentially
// secret-dependent paths (division by zero, non-invertible element) are
// signalled through a Choice validity flag instead, so no allocation or
// branch depends on the operand values.
var (
	// ErrEvenModulus is returned when building a precomputed modulus from an
	// even value; the Montgomery reduction constants require an odd modulus.
	ErrEvenModulus = errors.New("bigint: modulus must be odd")

	// ErrModulusTooSmall is returned when building a precomputed modulus from
	// a value below 3.
	ErrModulusTooSmall = errors.New("bigint: modulus must be at least 3")

	// ErrHexLength is returned when a hex string does not hold exactly two
	// digits per byte of the target width.
	ErrHexLength = errors.New("bigint: hex string length does not match width")

	// ErrHexDigit is returned when a hex string holds a non-hex character.
	ErrHexDigit = errors.New("bigint: invalid hex digit")

	// ErrByteLength is returned by UnmarshalBinary when the input length does
	// not match the width.
	ErrByteLength = errors.New("bigint: encoded length does not match width")
)
