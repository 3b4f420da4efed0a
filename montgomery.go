package bigint

// Montgomery kernel backing the precomputed-modulus types. The reduction
// constants (-m^-1 mod 2^64 and R^2 mod m, R = 2^width) are derived once at
// modulus construction and reused for every operation, trading a one-time
// setup cost for division-free per-multiplication reduction.

// negInvWord returns -m0^-1 mod 2^64 for odd m0. Since m0^2 == 1 (mod 8), m0
// is its own inverse to three bits; five Newton steps double that precision
// past 64 bits.
func negInvWord(m0 Limb) Word {
	y := Word(m0)
	for i := 0; i < 5; i++ {
		y *= 2 - Word(m0)*y
	}
	return -y
}

// modulusRR computes rr = R^2 mod m by 2*width modular doublings of 1.
// m must be odd and > 1.
func modulusRR(rr, m []Limb) {
	setZero(rr)
	rr[0] = 1
	for i := 0; i < 2*len(m)*LimbBits; i++ {
		addMod(rr, rr, rr, m)
	}
}

// montMul computes z = x * y * R^-1 mod m (word-by-word CIOS). Inputs must be
// reduced below m; z must not alias x, y or m.
func montMul(z, x, y, m []Limb, m0inv Word) {
	n := len(m)
	t := make([]Limb, n+2)
	for i := 0; i < n; i++ {
		// t += x[i] * y
		var c Limb
		for j := 0; j < n; j++ {
			hi, lo := x[i].Mul(y[j])
			s, c1 := t[j].Add(lo, 0)
			s, c2 := s.Add(c, 0)
			t[j] = s
			c = hi + c1 + c2
		}
		var c1 Limb
		t[n], c1 = t[n].Add(c, 0)
		t[n+1] += c1

		// t += (t[0] * m0inv) * m; t >>= 64. The low limb cancels by
		// construction of m0inv.
		u := Limb(Word(t[0]) * m0inv)
		hi, lo := u.Mul(m[0])
		_, c3 := t[0].Add(lo, 0)
		c = hi + c3
		for j := 1; j < n; j++ {
			hi, lo := u.Mul(m[j])
			s, cc1 := t[j].Add(lo, 0)
			s, cc2 := s.Add(c, 0)
			t[j-1] = s
			c = hi + cc1 + cc2
		}
		t[n-1], c1 = t[n].Add(c, 0)
		t[n] = t[n+1] + c1
		t[n+1] = 0
	}
	// t < 2m with the excess in t[n]; one masked subtraction finishes.
	ge := Choice(t[n]) | geq(t[:n], m)
	copy(z, t[:n])
	condSub(z, m, ge)
}

// montExp computes z = x^e mod m with a fixed 4-bit window. Every window is
// processed identically: four squarings, a full-table masked scan, one
// multiplication — including zero windows — so the trace is independent of the
// exponent value. x must be reduced below m; z must not alias the inputs.
func montExp(z, x, e, m, rr []Limb, m0inv Word) {
	n := len(m)
	one := make([]Limb, n)
	one[0] = 1

	xR := make([]Limb, n)
	montMul(xR, x, rr, m, m0inv)

	// table[k] = x^k * R mod m
	table := make([][]Limb, 16)
	table[0] = make([]Limb, n)
	montMul(table[0], one, rr, m, m0inv)
	for k := 1; k < 16; k++ {
		table[k] = make([]Limb, n)
		montMul(table[k], table[k-1], xR, m, m0inv)
	}

	acc := make([]Limb, n)
	tmp := make([]Limb, n)
	sel := make([]Limb, n)
	copy(acc, table[0])

	for i := n*LimbBits - 4; i >= 0; i -= 4 {
		for s := 0; s < 4; s++ {
			montMul(tmp, acc, acc, m, m0inv)
			acc, tmp = tmp, acc
		}
		w := (Word(e[i/LimbBits]) >> (uint(i) % LimbBits)) & 0xF
		setZero(sel)
		for k := 0; k < 16; k++ {
			condAssign(sel, table[k], ctEqWord(w, Word(k)))
		}
		montMul(tmp, acc, sel, m, m0inv)
		acc, tmp = tmp, acc
	}

	montMul(z, acc, one, m, m0inv)
}
