package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimal_Sign(t *testing.T) {
	assert.Equal(t, 0, Zero(Width4).Sign())
	assert.Equal(t, 1, DecimalFromInt64(Width4, 5).Sign())
	assert.Equal(t, -1, DecimalFromInt64(Width4, -5).Sign())
}

func TestDecimal_FitsPrecision(t *testing.T) {
	typ := MustNewTypeDesc(2, 0)
	assert.True(t, DecimalFromInt64(Width4, 99).FitsPrecision(typ))
	assert.False(t, DecimalFromInt64(Width4, 100).FitsPrecision(typ))
}

func TestDecimal_WithWidth(t *testing.T) {
	d := DecimalFromInt64(Width4, 7)
	widened := d.WithWidth(Width16)
	assert.Equal(t, Width16, widened.Width)
	assert.Equal(t, d.Unscaled, widened.Unscaled)
}

func TestDecimal_FitsNarrowerWidth(t *testing.T) {
	small := DecimalFromInt64(Width16, 100)
	huge := DecimalFromInt64(Width16, 1<<40)
	assert.True(t, small.FitsNarrowerWidth(Width4))
	assert.False(t, huge.FitsNarrowerWidth(Width4))
	assert.True(t, huge.FitsNarrowerWidth(Width8))
}

func TestDecimal_ZeroValue(t *testing.T) {
	var d Decimal
	assert.True(t, d.Unscaled.Zero())
	assert.Equal(t, 0, d.Sign())
}
