package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimbAdd(t *testing.T) {
	s, c := Limb(1).Add(2, 0)
	require.Equal(t, Limb(3), s)
	require.Equal(t, Limb(0), c)

	s, c = MaxLimb.Add(1, 0)
	require.Equal(t, Limb(0), s)
	require.Equal(t, Limb(1), c)

	s, c = MaxLimb.Add(MaxLimb, 1)
	require.Equal(t, MaxLimb, s)
	require.Equal(t, Limb(1), c)
}

func TestLimbSub(t *testing.T) {
	d, b := Limb(3).Sub(2, 0)
	require.Equal(t, Limb(1), d)
	require.Equal(t, Limb(0), b)

	d, b = Limb(0).Sub(1, 0)
	require.Equal(t, MaxLimb, d)
	require.Equal(t, Limb(1), b)

	d, b = Limb(0).Sub(0, 1)
	require.Equal(t, MaxLimb, d)
	require.Equal(t, Limb(1), b)
}

func TestLimbMul(t *testing.T) {
	hi, lo := MaxLimb.Mul(MaxLimb)
	// (2^64-1)^2 = 2^128 - 2^65 + 1
	require.Equal(t, MaxLimb-1, hi)
	require.Equal(t, Limb(1), lo)

	hi, lo = Limb(1<<32).Mul(1 << 32)
	require.Equal(t, Limb(1), hi)
	require.Equal(t, Limb(0), lo)
}

func TestLimbSelect(t *testing.T) {
	require.Equal(t, Limb(0xAA), Select(0xAA, 0xBB, 0))
	require.Equal(t, Limb(0xBB), Select(0xAA, 0xBB, 1))
}

func TestLimbCompare(t *testing.T) {
	require.Equal(t, Choice(1), ctEq(42, 42))
	require.Equal(t, Choice(0), ctEq(42, 43))
	require.Equal(t, Choice(1), ctEq(0, 0))
	require.Equal(t, Choice(1), ctEq(MaxLimb, MaxLimb))

	require.Equal(t, Choice(1), ctGeq(5, 5))
	require.Equal(t, Choice(1), ctGeq(6, 5))
	require.Equal(t, Choice(0), ctGeq(5, 6))
	require.Equal(t, Choice(1), ctGeq(MaxLimb, 0))
	require.Equal(t, Choice(0), ctGeq(0, MaxLimb))
}

func TestLimbIsOdd(t *testing.T) {
	require.Equal(t, Choice(1), Limb(1).IsOdd())
	require.Equal(t, Choice(0), Limb(2).IsOdd())
	require.Equal(t, Choice(1), MaxLimb.IsOdd())
}

func TestChoiceNot(t *testing.T) {
	require.Equal(t, Choice(0), Choice(1).Not())
	require.Equal(t, Choice(1), Choice(0).Not())
}
