package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test helpers shared across the package tests: conversions between width
// types and math/big, which serves as the reference implementation.

func bigFromU128(x U128) *big.Int {
	b := x.BytesBE()
	return new(big.Int).SetBytes(b[:])
}

func bigFromU256(x U256) *big.Int {
	b := x.BytesBE()
	return new(big.Int).SetBytes(b[:])
}

func bigFromU512(x U512) *big.Int {
	b := x.BytesBE()
	return new(big.Int).SetBytes(b[:])
}

func u256FromBig(t *testing.T, v *big.Int) U256 {
	t.Helper()
	require.True(t, v.Sign() >= 0 && v.BitLen() <= 256, "value out of range")
	var b [32]byte
	v.FillBytes(b[:])
	return U256FromBEBytes(b)
}

func u128FromBig(t *testing.T, v *big.Int) U128 {
	t.Helper()
	require.True(t, v.Sign() >= 0 && v.BitLen() <= 128, "value out of range")
	var b [16]byte
	v.FillBytes(b[:])
	return U128FromBEBytes(b)
}

// mod2_256 is 2^256, the wrap modulus of U256.
func mod2_256() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), 256)
}

func TestConstants(t *testing.T) {
	require.Equal(t, 256, ZeroU256().Bits())
	require.Equal(t, 32, ZeroU256().Size())
	require.Equal(t, 4, ZeroU256().LimbLen())

	require.Equal(t, Choice(1), ZeroU256().IsZero())
	require.Equal(t, Choice(0), OneU256().IsZero())
	require.Equal(t, Choice(1), OneU256().IsOdd())
	require.Equal(t, Choice(1), MaxU256().IsOdd())
	require.Equal(t, Choice(1), ZeroU256().IsEven())

	// MAX + 1 == 0
	sum, carry := MaxU256().Adc(OneU256(), 0)
	require.Equal(t, Choice(1), sum.IsZero())
	require.Equal(t, Limb(1), carry)
}

func TestFrom64(t *testing.T) {
	x := U256From64(0xDEADBEEF)
	require.Equal(t, "00000000000000000000000000000000000000000000000000000000DEADBEEF", x.String())
	require.Equal(t, Choice(1), x.Eq(u256FromBig(t, big.NewInt(0xDEADBEEF))))
}

func TestFromWords(t *testing.T) {
	x := U256FromWords([4]Word{1, 2, 3, 4})
	y := NewU256([4]Limb{1, 2, 3, 4})
	require.Equal(t, Choice(1), x.Eq(y))
}

func TestIdentities(t *testing.T) {
	a, err := U256FromHex("AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD00002222444466668888AAAACCCCEEEE")
	require.NoError(t, err)

	require.Equal(t, Choice(1), a.Add(ZeroU256()).Eq(a))
	require.Equal(t, Choice(1), a.Mul(OneU256()).Eq(a))
	require.Equal(t, Choice(1), a.Sub(a).IsZero())
	require.Equal(t, Choice(1), a.Neg().Add(a).IsZero())
	require.Equal(t, Choice(1), ZeroU256().Neg().IsZero())
}

func TestComparisons(t *testing.T) {
	small := U256From64(41)
	large := U256From64(43)

	require.Equal(t, Choice(1), small.Lt(large))
	require.Equal(t, Choice(0), large.Lt(small))
	require.Equal(t, Choice(0), small.Lt(small))
	require.Equal(t, Choice(1), small.Le(small))
	require.Equal(t, Choice(1), small.Le(large))
	require.Equal(t, Choice(0), large.Le(small))
	require.Equal(t, Choice(1), small.Eq(small))
	require.Equal(t, Choice(0), small.Eq(large))

	// difference confined to the most significant limb
	top := NewU256([4]Limb{0, 0, 0, 1})
	require.Equal(t, Choice(1), small.Lt(top))
	require.Equal(t, Choice(0), top.Le(small))
}

func TestSelect(t *testing.T) {
	a, err := U256FromHex("00002222444466668888AAAACCCCEEEE00002222444466668888AAAACCCCEEEE")
	require.NoError(t, err)
	b, err := U256FromHex("11113333555577779999BBBBDDDDFFFF11113333555577779999BBBBDDDDFFFF")
	require.NoError(t, err)

	require.Equal(t, Choice(1), SelectU256(a, b, 0).Eq(a))
	require.Equal(t, Choice(1), SelectU256(a, b, 1).Eq(b))
}

func TestResize(t *testing.T) {
	x, err := U256FromHex("AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD00002222444466668888AAAACCCCEEEE")
	require.NoError(t, err)

	// widening zero-extends
	wide := ResizeU512(&x)
	hi, lo := wide.Split()
	require.Equal(t, Choice(1), hi.IsZero())
	require.Equal(t, Choice(1), lo.Eq(x))

	// narrowing keeps the value mod 2^128
	narrow := ResizeU128(&x)
	require.Equal(t, "00002222444466668888AAAACCCCEEEE", narrow.String())

	// checked narrowing flags the dropped bits
	_, ok := ResizeU128Checked(&x)
	require.Equal(t, Choice(0), ok)

	low := U256From64(7)
	n, ok := ResizeU128Checked(&low)
	require.Equal(t, Choice(1), ok)
	require.Equal(t, Choice(1), n.Eq(U128From64(7)))
}

func TestWordsViewAliasesStorage(t *testing.T) {
	x := U256From64(1)
	w := x.Words()
	require.Equal(t, Word(1), w[0])

	w[3] = 0xFFFF
	require.Equal(t, Limb(0xFFFF), x.Limbs()[3])
}

func TestWipe(t *testing.T) {
	x := MaxU256()
	x.Wipe()
	require.Equal(t, Choice(1), x.IsZero())
}

func TestBitSet(t *testing.T) {
	x := U256From64(0b1011)
	bs := x.BitSet()
	require.True(t, bs.Test(0))
	require.True(t, bs.Test(1))
	require.False(t, bs.Test(2))
	require.True(t, bs.Test(3))

	// the set is a copy, not a view
	bs.Set(200)
	require.Equal(t, Limb(0), x.Limbs()[3])
}
