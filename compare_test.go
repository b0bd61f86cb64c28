package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t10_2 := MustNewTypeDesc(10, 2)
	t10_4 := MustNewTypeDesc(10, 4)

	tests := []struct {
		name string
		x    string
		xt   TypeDesc
		y    string
		yt   TypeDesc
		want int
	}{
		{"equal across scales", "1.5000", t10_4, "1.50", t10_2, 0},
		{"x less than y", "1.49", t10_2, "1.5000", t10_4, -1},
		{"x greater than y", "2.00", t10_2, "1.9999", t10_4, 1},
		{"negative vs positive", "-1.00", t10_2, "0.0001", t10_4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := MustParseString(tt.x, tt.xt)
			y := MustParseString(tt.y, tt.yt)
			assert.Equal(t, tt.want, Compare(x, tt.xt, y, tt.yt))
		})
	}
}

func TestEqual(t *testing.T) {
	t10_2 := MustNewTypeDesc(10, 2)
	x := MustParseString("3.00", t10_2)
	y := MustParseString("3.00", t10_2)
	assert.True(t, Equal(x, t10_2, y, t10_2))
}
