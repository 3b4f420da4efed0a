package bigint

// Per-limb bitwise kernels. Trivially constant-time: one pass, no decisions.

func and(z, x, y []Limb) {
	for i := range z {
		z[i] = x[i] & y[i]
	}
}

func or(z, x, y []Limb) {
	for i := range z {
		z[i] = x[i] | y[i]
	}
}

func xor(z, x, y []Limb) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
}

func not(z, x []Limb) {
	for i := range z {
		z[i] = ^x[i]
	}
}
