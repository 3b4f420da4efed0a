package bigint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestSqrtSmall(t *testing.T) {
	for _, tc := range []struct{ x, want uint64 }{
		{0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 2}, {8, 2}, {9, 3},
		{15, 3}, {16, 4}, {255, 15}, {256, 16}, {10000, 100},
	} {
		got := U256From64(tc.x).Sqrt()
		require.Equal(t, Choice(1), got.Eq(U256From64(tc.want)), "x=%d", tc.x)
	}
}

func TestSqrtAgainstBig(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	properties.Property("Sqrt equals math/big floor square root", prop.ForAll(
		func(a U256) bool {
			ref := new(big.Int).Sqrt(bigFromU256(a))
			return bigFromU256(a.Sqrt()).Cmp(ref) == 0
		},
		genU256(),
	))

	properties.Property("square of a 128-bit value round-trips", prop.ForAll(
		func(r U128) bool {
			wide := ResizeU256(&r)
			sq := wide.Mul(wide)
			return sq.Sqrt().Eq(wide) == 1
		},
		genU128(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSqrtMax(t *testing.T) {
	// floor(sqrt(2^256 - 1)) == 2^128 - 1
	var want U256
	want.limbs[0] = MaxLimb
	want.limbs[1] = MaxLimb
	require.Equal(t, Choice(1), MaxU256().Sqrt().Eq(want))
}
