package bigint

import "math/bits"

// Logical shifts. The shift amount n is treated as secret: instead of moving
// limbs by n directly, the kernels apply a fixed ladder of power-of-two shifts
// and select each rung with a bitmask, so the instruction trace is identical
// for every n. Shifting by n >= the width saturates to zero; the saturation
// test is itself constant-time.

// shl computes z = x << n. z may alias x.
func shl(z, x []Limb, n uint) {
	copy(z, x)
	width := uint(len(x)) * LimbBits
	t := make([]Limb, len(x))
	for k := uint(0); uint(1)<<k < width; k++ {
		shlFixed(t, z, uint(1)<<k)
		condAssign(z, t, Choice((n>>k)&1))
	}
	condZero(z, ltWord(uint64(n), uint64(width)).Not())
}

// shr computes z = x >> n. z may alias x.
func shr(z, x []Limb, n uint) {
	copy(z, x)
	width := uint(len(x)) * LimbBits
	t := make([]Limb, len(x))
	for k := uint(0); uint(1)<<k < width; k++ {
		shrFixed(t, z, uint(1)<<k)
		condAssign(z, t, Choice((n>>k)&1))
	}
	condZero(z, ltWord(uint64(n), uint64(width)).Not())
}

// shlFixed computes t = z << s for a shift amount fixed by the caller. The
// control flow depends only on s and the lengths. t must not alias z.
func shlFixed(t, z []Limb, s uint) {
	limbOff := int(s / LimbBits)
	bitOff := s % LimbBits
	for i := len(z) - 1; i >= 0; i-- {
		j := i - limbOff
		var v Limb
		if j >= 0 {
			v = z[j] << bitOff
			if j > 0 {
				// Shifting by 64-0=64 is defined as 0 in Go, so the
				// bitOff == 0 case needs no special path.
				v |= z[j-1] >> (LimbBits - bitOff)
			}
		}
		t[i] = v
	}
}

// shrFixed computes t = z >> s for a shift amount fixed by the caller.
// t must not alias z.
func shrFixed(t, z []Limb, s uint) {
	limbOff := int(s / LimbBits)
	bitOff := s % LimbBits
	for i := 0; i < len(z); i++ {
		j := i + limbOff
		var v Limb
		if j < len(z) {
			v = z[j] >> bitOff
			if j+1 < len(z) {
				v |= z[j+1] << (LimbBits - bitOff)
			}
		}
		t[i] = v
	}
}

// shl1 shifts x left by one bit in place and returns the bit shifted out.
func shl1(x []Limb) Limb {
	var c Limb
	for i := range x {
		nc := x[i] >> (LimbBits - 1)
		x[i] = x[i]<<1 | c
		c = nc
	}
	return c
}

// shr1 shifts x right by one bit in place, shifting hi (0 or 1) into the most
// significant position.
func shr1(x []Limb, hi Limb) {
	n := len(x)
	for i := 0; i < n-1; i++ {
		x[i] = x[i]>>1 | x[i+1]<<(LimbBits-1)
	}
	x[n-1] = x[n-1]>>1 | hi<<(LimbBits-1)
}

// condZero zeroes z if on == 1 and leaves it unchanged otherwise.
func condZero(z []Limb, on Choice) {
	m := on.Not().mask()
	for i := range z {
		z[i] &= m
	}
}

// ltWord returns 1 if x < y for plain words, in constant time.
func ltWord(x, y uint64) Choice {
	_, b := bits.Sub64(x, y, 0)
	return Choice(b)
}
