package bigint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property tests pitting the constant-time engine against math/big.

func genU256() gopter.Gen {
	return gopter.CombineGens(gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64()).
		Map(func(vals []interface{}) U256 {
			return U256FromWords([4]Word{
				vals[0].(uint64), vals[1].(uint64), vals[2].(uint64), vals[3].(uint64),
			})
		})
}

func genU128() gopter.Gen {
	return gopter.CombineGens(gen.UInt64(), gen.UInt64()).
		Map(func(vals []interface{}) U128 {
			return U128FromWords([2]Word{vals[0].(uint64), vals[1].(uint64)})
		})
}

func testParams() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}

func TestAddSubProperties(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	properties.Property("wrapping sum equals (a+b) mod 2^256 and carry flags overflow", prop.ForAll(
		func(a, b U256) bool {
			sum, carry := a.Adc(b, 0)
			ref := new(big.Int).Add(bigFromU256(a), bigFromU256(b))
			overflow := ref.Cmp(mod2_256()) >= 0
			ref.Mod(ref, mod2_256())
			return bigFromU256(sum).Cmp(ref) == 0 && (carry == 1) == overflow
		},
		genU256(), genU256(),
	))

	properties.Property("a - b + b == a", prop.ForAll(
		func(a, b U256) bool {
			return a.Sub(b).Add(b).Eq(a) == 1
		},
		genU256(), genU256(),
	))

	properties.Property("neg is the additive inverse", prop.ForAll(
		func(a U256) bool {
			return a.Add(a.Neg()).IsZero() == 1
		},
		genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMulProperties(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	properties.Property("MulFull equals the math/big product", prop.ForAll(
		func(a, b U256) bool {
			ref := new(big.Int).Mul(bigFromU256(a), bigFromU256(b))
			return bigFromU512(a.MulFull(b)).Cmp(ref) == 0
		},
		genU256(), genU256(),
	))

	properties.Property("Mul is the low half of MulWide", prop.ForAll(
		func(a, b U256) bool {
			lo, _ := a.MulWide(b)
			return a.Mul(b).Eq(lo) == 1
		},
		genU256(), genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDivRemProperties(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	properties.Property("a == b*q + r with r < b", prop.ForAll(
		func(a, b U256) bool {
			if b.IsZero() == 1 {
				b = OneU256()
			}
			q, r, ok := a.DivRem(b)
			if ok != 1 || r.Lt(b) != 1 {
				return false
			}
			ref := new(big.Int).Mul(bigFromU256(b), bigFromU256(q))
			ref.Add(ref, bigFromU256(r))
			return ref.Cmp(bigFromU256(a)) == 0
		},
		genU256(), genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBitwiseProperties(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	properties.Property("and/or/xor/not match math/big", prop.ForAll(
		func(a, b U256) bool {
			ba, bb := bigFromU256(a), bigFromU256(b)
			if bigFromU256(a.And(b)).Cmp(new(big.Int).And(ba, bb)) != 0 {
				return false
			}
			if bigFromU256(a.Or(b)).Cmp(new(big.Int).Or(ba, bb)) != 0 {
				return false
			}
			if bigFromU256(a.Xor(b)).Cmp(new(big.Int).Xor(ba, bb)) != 0 {
				return false
			}
			// ^a == MAX - a over a fixed width
			notRef := new(big.Int).Sub(bigFromU256(MaxU256()), ba)
			return bigFromU256(a.Not()).Cmp(notRef) == 0
		},
		genU256(), genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestEncodingProperties(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	properties.Property("BE and LE byte round-trips restore the value", prop.ForAll(
		func(a U256) bool {
			fromBE := U256FromBEBytes(a.BytesBE())
			fromLE := U256FromLEBytes(a.BytesLE())
			return fromBE.Eq(a) == 1 && fromLE.Eq(a) == 1
		},
		genU256(),
	))

	properties.Property("reversing the BE encoding yields the LE encoding", prop.ForAll(
		func(a U256) bool {
			be := a.BytesBE()
			le := a.BytesLE()
			for i := range be {
				if be[i] != le[len(le)-1-i] {
					return false
				}
			}
			return true
		},
		genU256(),
	))

	properties.Property("hex round-trips restore the value", prop.ForAll(
		func(a U256) bool {
			x, err := U256FromHex(a.String())
			return err == nil && x.Eq(a) == 1
		},
		genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
