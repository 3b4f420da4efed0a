package bigint

import "encoding/binary"

// Byte and hex codecs shared by the width types. Byte encodings are exact
// inverses of one another; hex parsing is strict (fixed digit count, optional
// 0x prefix, either case) and runs in variable time — it exists for
// human-readable constants and test vectors, not for secret material.

// setBEBytes loads z from a big-endian byte sequence of length 8*len(z).
func setBEBytes(z []Limb, b []byte) {
	for i := range z {
		z[i] = Limb(binary.BigEndian.Uint64(b[len(b)-8*(i+1):]))
	}
}

// setLEBytes loads z from a little-endian byte sequence of length 8*len(z).
func setLEBytes(z []Limb, b []byte) {
	for i := range z {
		z[i] = Limb(binary.LittleEndian.Uint64(b[8*i:]))
	}
}

// beBytes writes x to dst in big-endian order. len(dst) == 8*len(x).
func beBytes(dst []byte, x []Limb) {
	for i := range x {
		binary.BigEndian.PutUint64(dst[len(dst)-8*(i+1):], Word(x[i]))
	}
}

// leBytes writes x to dst in little-endian order. len(dst) == 8*len(x).
func leBytes(dst []byte, x []Limb) {
	for i := range x {
		binary.LittleEndian.PutUint64(dst[8*i:], Word(x[i]))
	}
}

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// hexString renders x most-significant byte first, limb by limb from the top,
// with a fixed 16 digits per limb.
func hexString(x []Limb, upper bool) string {
	digits := hexLower
	if upper {
		digits = hexUpper
	}
	buf := make([]byte, 16*len(x))
	for i := range x {
		limb := Word(x[len(x)-1-i])
		for j := 0; j < 16; j++ {
			buf[16*i+j] = digits[(limb>>(60-4*uint(j)))&0xF]
		}
	}
	return string(buf)
}

// setHex parses a hex string of exactly 16*len(z) digits, after an optional
// 0x/0X prefix, most significant first.
func setHex(z []Limb, s string) error {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) != 16*len(z) {
		return ErrHexLength
	}
	for i := range z {
		var limb Word
		for j := 0; j < 16; j++ {
			nib, ok := hexNibble(s[16*i+j])
			if !ok {
				return ErrHexDigit
			}
			limb = limb<<4 | Word(nib)
		}
		z[len(z)-1-i] = Limb(limb)
	}
	return nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
