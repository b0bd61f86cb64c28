package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		unscaled int64
		p, s     int
		want     string
	}{
		{"negative fraction", -45, 10, 2, "-0.45"},
		{"zero at scale", 0, 10, 2, "0.00"},
		{"zero scale", 1234, 10, 0, "1234"},
		{"shorter than scale", 5, 10, 3, "0.005"},
		{"positive whole", 123400, 10, 2, "1234.00"},
		{"negative whole", -1, 5, 0, "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := MustNewTypeDesc(tt.p, tt.s)
			d := DecimalFromInt64(typ.ByteWidth(), tt.unscaled)
			assert.Equal(t, tt.want, FormatString(d, typ))
		})
	}
}
