package bigint

// Modular kernels against a runtime modulus. addMod, subMod and negMod expect
// operands already reduced below m and bring the raw result back into [0, m)
// with a single mask-selected correction, never a data-dependent branch.
// mulMod accepts unreduced operands: it forms the full double-width product
// and reduces it with the width-only-time division kernel.

// addMod computes z = x + y mod m, requiring x, y < m. z may alias x or y.
func addMod(z, x, y, m []Limb) {
	c := add(z, x, y)
	// Subtract m when the raw sum overflowed the width or still reaches m.
	// If it overflowed, the wrapping subtraction is exact because the true
	// sum minus m fits back into the width.
	ge := Choice(c) | geq(z, m)
	condSub(z, m, ge)
}

// subMod computes z = x - y mod m, requiring x, y < m. z may alias x or y.
func subMod(z, x, y, m []Limb) {
	b := sub(z, x, y)
	condAdd(z, m, Choice(b))
}

// negMod computes z = -x mod m, requiring x < m. Negating zero yields zero.
// z may alias x.
func negMod(z, x, m []Limb) {
	xz := isZero(x)
	sub(z, m, x)
	condZero(z, xz)
}

// mulMod computes z = x * y mod m. Operands need not be reduced. Returns 0
// and zeroes z if m == 0. z must not alias the inputs.
func mulMod(z, x, y, m []Limb) Choice {
	n := len(m)
	wide := make([]Limb, 2*n)
	q := make([]Limb, 2*n)
	mulWide(wide, x, y)
	return divRem(q, z, wide, m)
}

// halveMod computes u = u / 2 mod m for odd m, requiring u < m. When u is odd
// it first adds m (making the sum even); the carry of that addition becomes
// the incoming top bit of the shift.
func halveMod(u, m []Limb) {
	c := condAdd(u, m, isOdd(u))
	shr1(u, c)
}
