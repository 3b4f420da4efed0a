package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivRemBasics(t *testing.T) {
	a := U256From64(100)
	b := U256From64(7)
	q, r, ok := a.DivRem(b)
	require.Equal(t, Choice(1), ok)
	require.Equal(t, Choice(1), q.Eq(U256From64(14)))
	require.Equal(t, Choice(1), r.Eq(U256From64(2)))
}

func TestDivRemNarrowDivisor(t *testing.T) {
	// divisor with three leading zero limbs
	a, err := U256FromHex("AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD00002222444466668888AAAACCCCEEEE")
	require.NoError(t, err)
	b := U256From64(0x12345679)

	q, r, ok := a.DivRem(b)
	require.Equal(t, Choice(1), ok)

	refQ, refR := new(big.Int).QuoRem(bigFromU256(a), bigFromU256(b), new(big.Int))
	require.Equal(t, 0, bigFromU256(q).Cmp(refQ))
	require.Equal(t, 0, bigFromU256(r).Cmp(refR))
}

func TestDivRemByZero(t *testing.T) {
	a := MaxU256()
	q, r, ok := a.DivRem(ZeroU256())
	require.Equal(t, Choice(0), ok)
	require.Equal(t, Choice(1), q.IsZero())
	require.Equal(t, Choice(1), r.IsZero())
}

func TestDivRemDividendSmallerThanDivisor(t *testing.T) {
	a := U256From64(5)
	b := U256From64(100)
	q, r, ok := a.DivRem(b)
	require.Equal(t, Choice(1), ok)
	require.Equal(t, Choice(1), q.IsZero())
	require.Equal(t, Choice(1), r.Eq(a))
}

func TestDivRemSelf(t *testing.T) {
	a := MaxU256()
	q, r, ok := a.DivRem(a)
	require.Equal(t, Choice(1), ok)
	require.Equal(t, Choice(1), q.Eq(OneU256()))
	require.Equal(t, Choice(1), r.IsZero())
}

func TestDivRemByOne(t *testing.T) {
	a, err := U256FromHex("0000000000000000000000000000000000000000000000010000000000000001")
	require.NoError(t, err)
	q, r, ok := a.DivRem(OneU256())
	require.Equal(t, Choice(1), ok)
	require.Equal(t, Choice(1), q.Eq(a))
	require.Equal(t, Choice(1), r.IsZero())
}
