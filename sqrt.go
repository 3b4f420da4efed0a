package bigint

// sqrt computes z = floor(sqrt(x)) by digit-by-digit extraction from the most
// significant bit pair down: a fixed width/2 iterations of compare, masked
// subtract and shift, so the iteration count depends only on the width.
// z must not alias x.
func sqrt(z, x []Limb) {
	n := len(x)
	num := make([]Limb, n)
	t := make([]Limb, n)
	copy(num, x)
	setZero(z)

	for i := n*LimbBits - 2; i >= 0; i -= 2 {
		// t = z + 2^i. z is a multiple of 2^i at this point, so the addition
		// is a plain bit set with no carry.
		copy(t, z)
		t[i/LimbBits] |= 1 << (uint(i) % LimbBits)
		ge := geq(num, t)
		condSub(num, t, ge)
		shr1(z, 0)
		z[i/LimbBits] |= Limb(ge) << (uint(i) % LimbBits)
	}
}
