package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	xt := MustNewTypeDesc(10, 2)
	yt := MustNewTypeDesc(10, 4)
	rt := AddSubResultType(xt, yt)

	x := MustParseString("1.23", xt)
	y := MustParseString("0.0001", yt)

	got, overflow := Add(x, xt, y, yt, rt)
	require.False(t, overflow)
	assert.Equal(t, "1.2301", FormatString(got, rt))
}

func TestSub(t *testing.T) {
	xt := MustNewTypeDesc(10, 2)
	rt := AddSubResultType(xt, xt)

	x := MustParseString("5.00", xt)
	y := MustParseString("1.50", xt)

	got, overflow := Sub(x, xt, y, xt, rt)
	require.False(t, overflow)
	assert.Equal(t, "3.50", FormatString(got, rt))
}

func TestMul(t *testing.T) {
	xt := MustNewTypeDesc(10, 2)
	yt := MustNewTypeDesc(10, 2)
	rt := MulResultType(xt, yt)

	x := MustParseString("2.50", xt)
	y := MustParseString("4.00", yt)

	got, overflow := Mul(x, xt, y, yt, rt)
	require.False(t, overflow)
	assert.Equal(t, "10.0000", FormatString(got, rt))
}

func TestAdd_Overflow(t *testing.T) {
	xt := MustNewTypeDesc(2, 0)
	rt := TypeDesc{Precision: 2, Scale: 0}

	x := MustParseString("90", xt)
	y := MustParseString("90", xt)

	_, overflow := Add(x, xt, y, xt, rt)
	assert.True(t, overflow)
}
