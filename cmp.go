package bigint

// Comparison kernels. Every function scans all limbs with no early exit, so
// execution time is independent of where the operands first differ.

// eq returns 1 if x == y, and 0 otherwise. Both slices must have the same
// length.
func eq(x, y []Limb) Choice {
	equal := Choice(1)
	for i := range x {
		equal &= ctEq(x[i], y[i])
	}
	return equal
}

// geq returns 1 if x >= y, and 0 otherwise. Both slices must have the same
// length.
func geq(x, y []Limb) Choice {
	var b Limb
	for i := range x {
		_, b = x[i].Sub(y[i], b)
	}
	// A final borrow means x - y underflowed, i.e. x < y.
	return Choice(b).Not()
}

// lt returns 1 if x < y, and 0 otherwise.
func lt(x, y []Limb) Choice {
	return geq(x, y).Not()
}

// isZero returns 1 if every limb of x is zero.
func isZero(x []Limb) Choice {
	var acc Limb
	for i := range x {
		acc |= x[i]
	}
	return ctEq(acc, 0)
}

// isOdd returns 1 if the least significant bit is set. An empty limb sequence
// is even by definition.
func isOdd(x []Limb) Choice {
	if len(x) == 0 {
		return 0
	}
	return x[0].IsOdd()
}
