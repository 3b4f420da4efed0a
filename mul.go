package bigint

// mulWide computes the full product z = x * y with no information loss.
// len(z) must equal len(x) + len(y). z must not alias x or y; it is zeroed
// on entry. Schoolbook limb grid, time depends only on the lengths.
func mulWide(z, x, y []Limb) {
	setZero(z)
	for i := range x {
		var carry Limb
		xi := x[i]
		for j := range y {
			hi, lo := xi.Mul(y[j])
			var c1, c2 Limb
			lo, c1 = lo.Add(z[i+j], 0)
			hi, _ = hi.Add(0, c1)
			lo, c2 = lo.Add(carry, 0)
			hi, _ = hi.Add(0, c2)
			z[i+j] = lo
			carry = hi
		}
		// The accumulated value at each position never exceeds
		// 2^(64*(len(x)+len(y))) - 1, so the row carry fits in one limb.
		z[i+len(y)] = carry
	}
}

// mulLow computes the wrapping product z = x * y mod 2^(64*len(z)).
// All slices have the same length; z must not alias x or y.
func mulLow(z, x, y []Limb) {
	n := len(z)
	setZero(z)
	for i := range x {
		var carry Limb
		xi := x[i]
		for j := 0; j < n-i; j++ {
			hi, lo := xi.Mul(y[j])
			var c1, c2 Limb
			lo, c1 = lo.Add(z[i+j], 0)
			hi, _ = hi.Add(0, c1)
			lo, c2 = lo.Add(carry, 0)
			hi, _ = hi.Add(0, c2)
			z[i+j] = lo
			carry = hi
		}
	}
}
