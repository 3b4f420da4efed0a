package bigint

// divRem computes the quotient q = x / d and remainder r = x mod d by binary
// long division. len(q) == len(x), len(r) == len(d) and len(d) <= len(x); the
// divisor may carry any number of leading zero limbs. The bit loop runs a
// fixed 64*len(x) iterations with mask-based corrections, so the running time
// depends only on the operand widths, not their values.
//
// Returns 0 if d == 0, in which case q and r are zeroed; no fault is raised.
func divRem(q, r, x, d []Limb) Choice {
	ok := isZero(d).Not()
	setZero(q)
	setZero(r)
	for i := len(x)*LimbBits - 1; i >= 0; i-- {
		// r = r<<1 | bit i of x. The shifted-out bit means the true partial
		// remainder exceeds the divisor width, so it forces a subtraction.
		top := shl1(r)
		r[0] |= (x[i/LimbBits] >> (uint(i) % LimbBits)) & 1
		ge := Choice(top) | geq(r, d)
		// When top == 1 the wrapping subtraction is still exact: the true
		// value of r minus d fits back into len(d) limbs.
		condSub(r, d, ge)
		q[i/LimbBits] |= Limb(ge) << (uint(i) % LimbBits)
	}
	condZero(q, ok.Not())
	condZero(r, ok.Not())
	return ok
}
