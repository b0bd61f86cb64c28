package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleTo_Widen(t *testing.T) {
	src := MustNewTypeDesc(10, 2)
	dst := MustNewTypeDesc(10, 4)
	d := DecimalFromInt64(src.ByteWidth(), 12345) // 123.45
	got, overflow := ScaleTo(d, src, dst, Truncate)
	require.False(t, overflow)
	assert.Equal(t, int64(1234500), got.Unscaled.Int64())
}

func TestScaleTo_NarrowTruncates(t *testing.T) {
	src := MustNewTypeDesc(10, 4)
	dst := MustNewTypeDesc(10, 2)
	d := DecimalFromInt64(src.ByteWidth(), 1234599) // 123.4599
	got, overflow := ScaleTo(d, src, dst, Truncate)
	require.False(t, overflow)
	assert.Equal(t, int64(12345), got.Unscaled.Int64())
}

func TestScaleTo_NarrowHalfUp(t *testing.T) {
	src := MustNewTypeDesc(10, 4)
	dst := MustNewTypeDesc(10, 2)
	d := DecimalFromInt64(src.ByteWidth(), 1234550) // 123.4550
	got, overflow := ScaleTo(d, src, dst, HalfUp)
	require.False(t, overflow)
	assert.Equal(t, int64(12346), got.Unscaled.Int64())
}

func TestScaleTo_OverflowOnPrecision(t *testing.T) {
	src := MustNewTypeDesc(3, 0)
	dst := MustNewTypeDesc(2, 0)
	d := DecimalFromInt64(src.ByteWidth(), 999)
	_, overflow := ScaleTo(d, src, dst, Truncate)
	assert.True(t, overflow)
}
