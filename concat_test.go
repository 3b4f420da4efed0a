package bigint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestConcatSplitRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	properties.Property("split after concat restores both halves", prop.ForAll(
		func(hi, lo U128) bool {
			gotHi, gotLo := hi.Concat(lo).Split()
			return gotHi.Eq(hi) == 1 && gotLo.Eq(lo) == 1
		},
		genU128(), genU128(),
	))

	properties.Property("concat after split restores the value", prop.ForAll(
		func(x U256) bool {
			hi, lo := x.Split()
			return hi.Concat(lo).Eq(x) == 1
		},
		genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestConcatPlacesHalves(t *testing.T) {
	hi := U128From64(1)
	lo := U128From64(2)
	x := hi.Concat(lo)
	require.Equal(t,
		"0000000000000000000000000000000100000000000000000000000000000002",
		x.String())
}

func TestConcatAcrossWidths(t *testing.T) {
	// 64 -> 128
	x128 := U64From64(0xAAAA).Concat(U64From64(0xBBBB))
	require.Equal(t, "000000000000AAAA000000000000BBBB", x128.String())
	h64, l64 := x128.Split()
	require.Equal(t, Choice(1), h64.Eq(U64From64(0xAAAA)))
	require.Equal(t, Choice(1), l64.Eq(U64From64(0xBBBB)))

	// 192 -> 384, a non-power-of-two width
	var hi192, lo192 U192
	hi192.Limbs()[2] = 7
	lo192.Limbs()[0] = 9
	x384 := hi192.Concat(lo192)
	gotHi, gotLo := x384.Split()
	require.Equal(t, Choice(1), gotHi.Eq(hi192))
	require.Equal(t, Choice(1), gotLo.Eq(lo192))

	// 2048 -> 4096, the top of the table
	var hi2048, lo2048 U2048
	hi2048.Limbs()[31] = MaxLimb
	lo2048.Limbs()[0] = 1
	x4096 := hi2048.Concat(lo2048)
	gotHi2, gotLo2 := x4096.Split()
	require.Equal(t, Choice(1), gotHi2.Eq(hi2048))
	require.Equal(t, Choice(1), gotLo2.Eq(lo2048))
}

// MulFull must agree with MulWide reassembled through Concat.
func TestMulFullMatchesConcatOfHalves(t *testing.T) {
	properties := gopter.NewProperties(testParams())

	properties.Property("MulFull == Concat(hi, lo) of MulWide", prop.ForAll(
		func(a, b U256) bool {
			lo, hi := a.MulWide(b)
			return a.MulFull(b).Eq(hi.Concat(lo)) == 1
		},
		genU256(), genU256(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
