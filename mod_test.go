package bigint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// genU256Mod yields (a, b, m) with m > 0 and a, b already reduced below m.
func genU256Mod() gopter.Gen {
	return gopter.CombineGens(genU256(), genU256(), genU256()).
		Map(func(vals []interface{}) [3]U256 {
			a, b, m := vals[0].(U256), vals[1].(U256), vals[2].(U256)
			if m.IsZero() == 1 {
				m = U256From64(1)
			}
			_, a, _ = a.DivRem(m)
			_, b, _ = b.DivRem(m)
			return [3]U256{a, b, m}
		})
}

func TestAddSubNegMod(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	properties.Property("AddMod matches math/big and stays below m", prop.ForAll(
		func(v [3]U256) bool {
			a, b, m := v[0], v[1], v[2]
			z := a.AddMod(b, m)
			ref := new(big.Int).Add(bigFromU256(a), bigFromU256(b))
			ref.Mod(ref, bigFromU256(m))
			return bigFromU256(z).Cmp(ref) == 0 && z.Lt(m) == 1
		},
		genU256Mod(),
	))

	properties.Property("a + 0 mod m == a for reduced a", prop.ForAll(
		func(v [3]U256) bool {
			a, m := v[0], v[2]
			return a.AddMod(ZeroU256(), m).Eq(a) == 1
		},
		genU256Mod(),
	))

	properties.Property("SubMod matches math/big and stays below m", prop.ForAll(
		func(v [3]U256) bool {
			a, b, m := v[0], v[1], v[2]
			z := a.SubMod(b, m)
			ref := new(big.Int).Sub(bigFromU256(a), bigFromU256(b))
			ref.Mod(ref, bigFromU256(m))
			return bigFromU256(z).Cmp(ref) == 0 && z.Lt(m) == 1
		},
		genU256Mod(),
	))

	properties.Property("NegMod is the additive inverse mod m", prop.ForAll(
		func(v [3]U256) bool {
			a, m := v[0], v[2]
			z := a.NegMod(m)
			return a.AddMod(z, m).IsZero() == 1 && z.Lt(m) == 1
		},
		genU256Mod(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMulMod(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	properties.Property("MulMod matches math/big for unreduced operands", prop.ForAll(
		func(a, b, m U256) bool {
			if m.IsZero() == 1 {
				m = U256From64(1)
			}
			z, ok := a.MulMod(b, m)
			if ok != 1 {
				return false
			}
			ref := new(big.Int).Mul(bigFromU256(a), bigFromU256(b))
			ref.Mod(ref, bigFromU256(m))
			return bigFromU256(z).Cmp(ref) == 0
		},
		genU256(), genU256(), genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMulModZeroModulus(t *testing.T) {
	z, ok := MaxU256().MulMod(MaxU256(), ZeroU256())
	require.Equal(t, Choice(0), ok)
	require.Equal(t, Choice(1), z.IsZero())
}

func TestInvMod(t *testing.T) {
	// odd modulus, coprime operand
	m := U256From64(101)
	a := U256From64(17)
	inv, ok := a.InvMod(m)
	require.Equal(t, Choice(1), ok)
	prod, okMul := a.MulMod(inv, m)
	require.Equal(t, Choice(1), okMul)
	require.Equal(t, Choice(1), prod.Eq(OneU256()))
}

func TestInvModProperty(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	// m forced odd; the flag decides whether gcd(a, m) == 1 and, when set,
	// the inverse must verify.
	properties.Property("InvMod agrees with math/big ModInverse", prop.ForAll(
		func(a, m U256) bool {
			m = m.Or(OneU256())
			inv, ok := a.InvMod(m)
			ref := new(big.Int).ModInverse(bigFromU256(a), bigFromU256(m))
			if ref == nil {
				return ok == 0 && inv.IsZero() == 1
			}
			return ok == 1 && bigFromU256(inv).Cmp(ref) == 0
		},
		genU256(), genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestInvModNonCoprime(t *testing.T) {
	m := U256From64(15)
	a := U256From64(5)
	inv, ok := a.InvMod(m)
	require.Equal(t, Choice(0), ok)
	require.Equal(t, Choice(1), inv.IsZero())
}

func TestInvModEvenModulus(t *testing.T) {
	inv, ok := U256From64(3).InvMod(U256From64(8))
	require.Equal(t, Choice(0), ok)
	require.Equal(t, Choice(1), inv.IsZero())
}

func TestInvModUnreducedOperand(t *testing.T) {
	m := U256From64(101)
	a := U256From64(17 + 3*101)
	inv, ok := a.InvMod(m)
	require.Equal(t, Choice(1), ok)
	prod, _ := a.MulMod(inv, m)
	require.Equal(t, Choice(1), prod.Eq(OneU256()))
}
