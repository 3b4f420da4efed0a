package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShlAgainstBig(t *testing.T) {
	x, err := U256FromHex("AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD00002222444466668888AAAACCCCEEEE")
	require.NoError(t, err)

	for n := uint(0); n < 256; n++ {
		ref := new(big.Int).Lsh(bigFromU256(x), n)
		ref.Mod(ref, mod2_256())
		require.Equal(t, 0, bigFromU256(x.Shl(n)).Cmp(ref), "n=%d", n)
	}
}

func TestShrAgainstBig(t *testing.T) {
	x, err := U256FromHex("AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD00002222444466668888AAAACCCCEEEE")
	require.NoError(t, err)

	for n := uint(0); n < 256; n++ {
		ref := new(big.Int).Rsh(bigFromU256(x), n)
		require.Equal(t, 0, bigFromU256(x.Shr(n)).Cmp(ref), "n=%d", n)
	}
}

func TestShiftSaturates(t *testing.T) {
	x := MaxU256()
	for _, n := range []uint{256, 257, 300, 512, 1 << 20} {
		require.Equal(t, Choice(1), x.Shl(n).IsZero(), "n=%d", n)
		require.Equal(t, Choice(1), x.Shr(n).IsZero(), "n=%d", n)
	}
}

// Boundary patterns: shifting all-zero and all-one values exercises the same
// ladder of masked fixed shifts for every amount; the results stay exact at
// both extremes.
func TestShiftBoundaryValues(t *testing.T) {
	for n := uint(0); n < 256; n++ {
		require.Equal(t, Choice(1), ZeroU256().Shl(n).IsZero())
		require.Equal(t, Choice(1), ZeroU256().Shr(n).IsZero())

		ones := MaxU256()
		refL := new(big.Int).Lsh(bigFromU256(ones), n)
		refL.Mod(refL, mod2_256())
		require.Equal(t, 0, bigFromU256(ones.Shl(n)).Cmp(refL), "n=%d", n)
		refR := new(big.Int).Rsh(bigFromU256(ones), n)
		require.Equal(t, 0, bigFromU256(ones.Shr(n)).Cmp(refR), "n=%d", n)
	}
}

func TestShiftNonPowerOfTwoWidth(t *testing.T) {
	// U192's width is not a power of two; the saturation test still has to
	// trigger exactly at 192.
	var x U192
	x.Limbs()[0] = 1
	require.Equal(t, Choice(0), x.Shl(191).IsZero())
	require.Equal(t, Choice(1), x.Shl(192).IsZero())

	top := x.Shl(191)
	require.Equal(t, Choice(0), top.Shr(191).IsZero())
	require.Equal(t, Choice(1), top.Shr(192).IsZero())
}
