package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiv(t *testing.T) {
	xt := MustNewTypeDesc(10, 2)
	yt := MustNewTypeDesc(10, 2)
	rt := MustNewTypeDesc(10, 4)

	x := MustParseString("10.00", xt)
	y := MustParseString("4.00", yt)

	got, overflow, isNaN := Div(x, xt, y, yt, rt)
	require.False(t, overflow)
	require.False(t, isNaN)
	assert.Equal(t, "2.5000", FormatString(got, rt))
}

func TestDiv_PlannerResultType(t *testing.T) {
	xt := MustNewTypeDesc(10, 2)
	yt := MustNewTypeDesc(10, 2)
	rt := DivResultType(xt, yt)
	assert.Equal(t, 13, rt.Scale)

	x := MustParseString("10.00", xt)
	y := MustParseString("4.00", yt)
	got, overflow, isNaN := Div(x, xt, y, yt, rt)
	require.False(t, overflow)
	require.False(t, isNaN)
	// Narrowing the full-precision result back to 4 digits of scale must
	// agree with the direct computation above.
	narrowed, overflow := ScaleTo(got, rt, MustNewTypeDesc(10, 4), Truncate)
	require.False(t, overflow)
	assert.Equal(t, "2.5000", FormatString(narrowed, MustNewTypeDesc(10, 4)))
}

func TestDiv_ByZero(t *testing.T) {
	xt := MustNewTypeDesc(10, 2)
	rt := DivResultType(xt, xt)

	x := MustParseString("10.00", xt)
	zero := Zero(xt.ByteWidth())

	_, overflow, isNaN := Div(x, xt, zero, xt, rt)
	assert.False(t, overflow)
	assert.True(t, isNaN)
}

func TestMod(t *testing.T) {
	xt := MustNewTypeDesc(10, 2)
	rt := ModResultType(xt, xt)

	x := MustParseString("7.50", xt)
	y := MustParseString("2.00", xt)

	got, overflow, isNaN := Mod(x, xt, y, xt, rt)
	require.False(t, overflow)
	require.False(t, isNaN)
	assert.Equal(t, "1.50", FormatString(got, rt))
}

func TestMod_ByZero(t *testing.T) {
	xt := MustNewTypeDesc(10, 2)
	rt := ModResultType(xt, xt)

	x := MustParseString("7.50", xt)
	zero := Zero(xt.ByteWidth())

	_, overflow, isNaN := Mod(x, xt, zero, xt, rt)
	assert.False(t, overflow)
	assert.True(t, isNaN)
}
