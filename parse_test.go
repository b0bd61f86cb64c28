package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		p, s     int
		wantKind ParseResultKind
		want     int64
	}{
		{"simple integer widened", "1234", 10, 2, Success, 123400},
		{"surrounded whitespace", " 12 ", 2, 0, Success, 12},
		{"integer part overflow", "10", 1, 0, Overflow, 0},
		{"leading dot negative", "-.45", 10, 2, Success, -45},
		{"truncating underflow", "-123.456", 10, 2, Underflow, -12345},
		{"exact fit", "99", 2, 0, Success, 99},
		{"plus sign", "+5", 2, 0, Success, 5},
		{"malformed empty", "", 5, 2, Failure, 0},
		{"malformed letters", "12a", 5, 2, Failure, 0},
		{"malformed bare sign", "-", 5, 2, Failure, 0},
		{"zero scale fraction rejected only as underflow", "1.9", 2, 0, Underflow, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := MustNewTypeDesc(tt.p, tt.s)
			got, kind := ParseString(tt.input, typ)
			assert.Equalf(t, tt.wantKind, kind, "Parse(%q)", tt.input)
			if tt.wantKind == Success || tt.wantKind == Underflow {
				assert.Equalf(t, tt.want, got.Unscaled.Int64(), "Parse(%q) unscaled", tt.input)
			}
		})
	}
}

func TestParse_RoundTripsWithFormat(t *testing.T) {
	typ := MustNewTypeDesc(10, 2)
	for _, s := range []string{"0.00", "1.23", "-1.23", "999999.99", "-999999.99"} {
		d, kind := ParseString(s, typ)
		assert.Equal(t, Success, kind)
		assert.Equal(t, s, FormatString(d, typ))
	}
}
