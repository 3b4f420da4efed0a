package bigint

// invMod computes z = x^-1 mod m for odd m > 1 using a binary extended GCD
// with a fixed iteration count of 2*width, so the number of steps depends only
// on the width. Throughout, the invariants u*x == a (mod m) and v*x == b
// (mod m) hold; a strictly halves every iteration, so it reaches zero well
// within the bound and b ends as gcd(x, m).
//
// Returns 1 when the inverse exists (gcd(x, m) == 1 and m odd). Otherwise z is
// zeroed and 0 returned, so callers can branch on validity without branching
// on the operand. x need not be reduced below m.
func invMod(z, x, m []Limb) Choice {
	n := len(m)
	a := make([]Limb, n)
	b := make([]Limb, n)
	u := make([]Limb, n)
	v := make([]Limb, n)
	t := make([]Limb, n)
	copy(a, x)
	copy(b, m)
	u[0] = 1

	for i := 0; i < 2*n*LimbBits; i++ {
		odd := isOdd(a)
		// b is odd at all times, so when a is also odd, swapping on a < b
		// guarantees the subtraction below cannot underflow.
		swap := odd & lt(a, b)
		condSwap(a, b, swap)
		condSwap(u, v, swap)
		condSub(a, b, odd)
		subMod(t, u, v, m)
		condAssign(u, t, odd)
		// a is now even in either case.
		shr1(a, 0)
		halveMod(u, m)
	}

	t[0] = 1
	for i := 1; i < n; i++ {
		t[i] = 0
	}
	ok := eq(b, t) & isOdd(m)
	copy(z, v)
	condZero(z, ok.Not())
	return ok
}
