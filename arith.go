package bigint

// This file holds the carry-propagating kernels shared by every width type.
// All functions are length-driven: the number and kind of word operations they
// execute depend only on the slice lengths, never on the limb values.

// adc computes z = x + y + carry and returns the outgoing carry (0 or 1).
// carry must be 0 or 1. All slices must have the same length. z may alias x
// or y.
func adc(z, x, y []Limb, carry Limb) Limb {
	c := carry
	for i := range z {
		z[i], c = x[i].Add(y[i], c)
	}
	return c
}

// add computes z = x + y and returns the outgoing carry (0 or 1).
func add(z, x, y []Limb) Limb {
	return adc(z, x, y, 0)
}

// sbb computes z = x - y - borrow and returns the outgoing borrow (0 or 1).
// borrow must be 0 or 1. All slices must have the same length. z may alias x
// or y.
func sbb(z, x, y []Limb, borrow Limb) Limb {
	b := borrow
	for i := range z {
		z[i], b = x[i].Sub(y[i], b)
	}
	return b
}

// sub computes z = x - y and returns the outgoing borrow (0 or 1).
func sub(z, x, y []Limb) Limb {
	return sbb(z, x, y, 0)
}

// neg computes the two's complement z = -x mod 2^(64*len(x)).
// Negating zero yields zero.
func neg(z, x []Limb) {
	var c Limb = 1
	for i := range z {
		z[i], c = (^x[i]).Add(0, c)
	}
}

// condAdd computes x += y if on == 1 and leaves x unchanged otherwise. The
// carry chain is walked either way; the returned carry is that of the
// performed (or discarded) addition.
func condAdd(x, y []Limb, on Choice) Limb {
	m := on.mask()
	var c Limb
	for i := range x {
		x[i], c = x[i].Add(y[i]&m, c)
	}
	return c
}

// condSub computes x -= y if on == 1 and leaves x unchanged otherwise.
func condSub(x, y []Limb, on Choice) Limb {
	m := on.mask()
	var b Limb
	for i := range x {
		x[i], b = x[i].Sub(y[i]&m, b)
	}
	return b
}

// ctSelectSlice sets z to a if c == 0 and to b if c == 1, limb by limb.
func ctSelectSlice(z, a, b []Limb, c Choice) {
	m := c.mask()
	for i := range z {
		z[i] = a[i] ^ (m & (a[i] ^ b[i]))
	}
}

// condAssign sets x to y if on == 1 and leaves it unchanged otherwise.
func condAssign(x, y []Limb, on Choice) {
	m := on.mask()
	for i := range x {
		x[i] ^= m & (x[i] ^ y[i])
	}
}

// condSwap exchanges x and y if on == 1 and leaves both unchanged otherwise.
func condSwap(x, y []Limb, on Choice) {
	m := on.mask()
	for i := range x {
		d := m & (x[i] ^ y[i])
		x[i] ^= d
		y[i] ^= d
	}
}

// wipe zeroes the limb storage. Used for values holding secrets once they go
// out of use.
func wipe(x []Limb) {
	for i := range x {
		x[i] = 0
	}
}

// setZero zeroes z.
func setZero(z []Limb) {
	for i := range z {
		z[i] = 0
	}
}
