package bigint

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// bn254 scalar field modulus, a convenient real-world odd prime.
const frModulusHex = "30644E72E131A029B85045B68181585D2833E84879B9709143E1F593F0000001"

func frModulus(t *testing.T) Modulus256 {
	t.Helper()
	m, err := U256FromHex(frModulusHex)
	require.NoError(t, err)
	mod, err := NewModulus256(m)
	require.NoError(t, err)
	return mod
}

func TestNewModulusRejectsEven(t *testing.T) {
	_, err := NewModulus256(U256From64(8))
	require.ErrorIs(t, err, ErrEvenModulus)

	_, err = NewModulus256(ZeroU256())
	require.ErrorIs(t, err, ErrEvenModulus)
}

func TestNewModulusRejectsOne(t *testing.T) {
	_, err := NewModulus256(OneU256())
	require.ErrorIs(t, err, ErrModulusTooSmall)
}

// genU256Below yields values reduced below the given modulus.
func genU256Below(mod Modulus256) gopter.Gen {
	return genU256().Map(func(a U256) U256 {
		return mod.Reduce(a)
	})
}

func TestModulusArithmetic(t *testing.T) {
	mod := frModulus(t)
	m := bigFromU256(mod.Value())
	properties := gopter.NewProperties(testParams())

	properties.Property("Add matches math/big", prop.ForAll(
		func(a, b U256) bool {
			ref := new(big.Int).Add(bigFromU256(a), bigFromU256(b))
			ref.Mod(ref, m)
			return bigFromU256(mod.Add(a, b)).Cmp(ref) == 0
		},
		genU256Below(mod), genU256Below(mod),
	))

	properties.Property("Sub matches math/big", prop.ForAll(
		func(a, b U256) bool {
			ref := new(big.Int).Sub(bigFromU256(a), bigFromU256(b))
			ref.Mod(ref, m)
			return bigFromU256(mod.Sub(a, b)).Cmp(ref) == 0
		},
		genU256Below(mod), genU256Below(mod),
	))

	properties.Property("Neg is the additive inverse", prop.ForAll(
		func(a U256) bool {
			return mod.Add(a, mod.Neg(a)).IsZero() == 1
		},
		genU256Below(mod),
	))

	properties.Property("Mul matches math/big", prop.ForAll(
		func(a, b U256) bool {
			ref := new(big.Int).Mul(bigFromU256(a), bigFromU256(b))
			ref.Mod(ref, m)
			return bigFromU256(mod.Mul(a, b)).Cmp(ref) == 0
		},
		genU256Below(mod), genU256Below(mod),
	))

	properties.Property("Reduce matches math/big for unreduced input", prop.ForAll(
		func(a U256) bool {
			ref := new(big.Int).Mod(bigFromU256(a), m)
			return bigFromU256(mod.Reduce(a)).Cmp(ref) == 0
		},
		genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestModulusExp(t *testing.T) {
	mod := frModulus(t)
	m := bigFromU256(mod.Value())
	properties := gopter.NewProperties(testParams())

	properties.Property("Exp matches math/big", prop.ForAll(
		func(a, e U256) bool {
			ref := new(big.Int).Exp(bigFromU256(a), bigFromU256(e), m)
			return bigFromU256(mod.Exp(a, e)).Cmp(ref) == 0
		},
		genU256Below(mod), genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestModulusExpEdgeCases(t *testing.T) {
	mod := frModulus(t)

	// x^0 == 1, including 0^0 by convention
	require.Equal(t, Choice(1), mod.Exp(U256From64(42), ZeroU256()).Eq(OneU256()))
	require.Equal(t, Choice(1), mod.Exp(ZeroU256(), ZeroU256()).Eq(OneU256()))

	// x^1 == x
	x := mod.Reduce(MaxU256())
	require.Equal(t, Choice(1), mod.Exp(x, OneU256()).Eq(x))

	// Fermat: x^(m-1) == 1 for prime m and x != 0
	expFermat := mod.Value().Sub(OneU256())
	require.Equal(t, Choice(1), mod.Exp(U256From64(2), expFermat).Eq(OneU256()))
}

func TestModulusInv(t *testing.T) {
	mod := frModulus(t)

	x := mod.Reduce(MaxU256())
	inv, ok := mod.Inv(x)
	require.Equal(t, Choice(1), ok)
	require.Equal(t, Choice(1), mod.Mul(x, inv).Eq(OneU256()))

	_, ok = mod.Inv(ZeroU256())
	require.Equal(t, Choice(0), ok)
}

// TestModulusAgainstFieldElement cross-checks the generic Montgomery engine
// against gnark-crypto's specialized bn254 scalar field arithmetic.
func TestModulusAgainstFieldElement(t *testing.T) {
	mod := frModulus(t)
	properties := gopter.NewProperties(testParams())

	toFr := func(x U256) fr.Element {
		var e fr.Element
		e.SetBigInt(bigFromU256(x))
		return e
	}
	fromFr := func(e fr.Element) U256 {
		var v big.Int
		e.BigInt(&v)
		return u256FromBig(t, &v)
	}

	properties.Property("Mul agrees with fr.Element", prop.ForAll(
		func(a, b U256) bool {
			var ref fr.Element
			ea, eb := toFr(a), toFr(b)
			ref.Mul(&ea, &eb)
			return mod.Mul(a, b).Eq(fromFr(ref)) == 1
		},
		genU256Below(mod), genU256Below(mod),
	))

	properties.Property("Exp agrees with fr.Element", prop.ForAll(
		func(a, e U256) bool {
			var ref fr.Element
			ea := toFr(a)
			ref.Exp(ea, bigFromU256(e))
			return mod.Exp(a, e).Eq(fromFr(ref)) == 1
		},
		genU256Below(mod), genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
