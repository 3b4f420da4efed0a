package bigint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var cmpU128 = cmp.Comparer(func(a, b U128) bool { return a.Eq(b) == 1 })

func TestDisplay(t *testing.T) {
	x, err := U128FromHex("AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD")
	require.NoError(t, err)
	require.Equal(t, "AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD", x.String())

	// leading zeros are never trimmed
	x, err = U128FromHex("00AAAAAABBBBBBBBCCCCCCCCDDDDDDDD")
	require.NoError(t, err)
	require.Equal(t, "00AAAAAABBBBBBBBCCCCCCCCDDDDDDDD", x.String())

	x, err = U128FromHex("0000AAAABBBBBBBBCCCCCCCCDDDDDDDD")
	require.NoError(t, err)
	require.Equal(t, "0000AAAABBBBBBBBCCCCCCCCDDDDDDDD", x.String())

	x, err = U128FromHex("00000000BBBBBBBBCCCCCCCCDDDDDDDD")
	require.NoError(t, err)
	require.Equal(t, "00000000BBBBBBBBCCCCCCCCDDDDDDDD", x.String())

	require.Equal(t, "00000000000000000000000000000000", ZeroU128().String())
}

func TestFromHexAcceptsPrefixAndCase(t *testing.T) {
	want, err := U128FromHex("AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD")
	require.NoError(t, err)

	for _, s := range []string{
		"0xAAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD",
		"0XAAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD",
		"aaaaaaaabbbbbbbbccccccccdddddddd",
		"0xaaaaaaaabbbbbbbbccccccccdddddddd",
	} {
		got, err := U128FromHex(s)
		require.NoError(t, err, "input %q", s)
		require.Empty(t, cmp.Diff(want, got, cmpU128), "input %q", s)
	}
}

func TestFromHexErrors(t *testing.T) {
	// wrong length, with and without prefix
	_, err := U128FromHex("AAAA")
	require.ErrorIs(t, err, ErrHexLength)
	_, err = U128FromHex("0x" + "AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD" + "00")
	require.ErrorIs(t, err, ErrHexLength)
	_, err = U128FromHex("")
	require.ErrorIs(t, err, ErrHexLength)

	// bad digit
	_, err = U128FromHex("GAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD")
	require.ErrorIs(t, err, ErrHexDigit)
}

func TestFromBytesPlacement(t *testing.T) {
	var be [16]byte
	for i := range be {
		be[i] = byte(i + 1)
	}
	x := U128FromBEBytes(be)
	require.Equal(t, "0102030405060708090A0B0C0D0E0F10", x.String())

	var le [16]byte
	for i := range le {
		le[i] = byte(16 - i)
	}
	y := U128FromLEBytes(le)
	require.Empty(t, cmp.Diff(x, y, cmpU128))
}

func TestMarshalBinaryRoundTrip(t *testing.T) {
	x, err := U256FromHex("AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD00002222444466668888AAAACCCCEEEE")
	require.NoError(t, err)

	data, err := x.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 32)

	var y U256
	require.NoError(t, y.UnmarshalBinary(data))
	require.Equal(t, Choice(1), x.Eq(y))

	require.ErrorIs(t, y.UnmarshalBinary(data[:31]), ErrByteLength)
}

func TestMarshalTextRoundTrip(t *testing.T) {
	x, err := U256FromHex("AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD00002222444466668888AAAACCCCEEEE")
	require.NoError(t, err)

	text, err := x.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "aaaaaaaabbbbbbbbccccccccdddddddd00002222444466668888aaaacccceeee", string(text))

	var y U256
	require.NoError(t, y.UnmarshalText(text))
	require.Equal(t, Choice(1), x.Eq(y))

	require.ErrorIs(t, y.UnmarshalText([]byte("zz")), ErrHexLength)
}
