package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTypeDesc(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		scale     int
		wantErr   bool
	}{
		{"valid", 10, 2, false},
		{"min precision", 1, 0, false},
		{"max precision", 38, 38, false},
		{"precision too small", 0, 0, true},
		{"precision too large", 39, 0, true},
		{"scale negative", 5, -1, true},
		{"scale exceeds precision", 5, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTypeDesc(tt.precision, tt.scale)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.precision, got.Precision)
			assert.Equal(t, tt.scale, got.Scale)
		})
	}
}

func TestTypeDesc_ByteWidth(t *testing.T) {
	tests := []struct {
		precision int
		want      int
	}{
		{1, Width4},
		{9, Width4},
		{10, Width8},
		{18, Width8},
		{19, Width16},
		{38, Width16},
	}
	for _, tt := range tests {
		td := TypeDesc{Precision: tt.precision}
		assert.Equalf(t, tt.want, td.ByteWidth(), "precision %d", tt.precision)
	}
}

func TestTypeDesc_MaxUnscaledMatchesByteWidth(t *testing.T) {
	assert.Equal(t, int64(9), MaxUnscaledI128(1).Int64())
	assert.Equal(t, int64(999999999), MaxUnscaledI128(9).Int64())
	assert.Equal(t, int64(999999999999999999), MaxUnscaledI128(18).Int64())
}
