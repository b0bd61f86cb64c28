package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustNewTypeDesc_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustNewTypeDesc(0, 0) })
	assert.NotPanics(t, func() { MustNewTypeDesc(10, 2) })
}

func TestMustParseString_PanicsOnFailure(t *testing.T) {
	typ := MustNewTypeDesc(5, 2)
	assert.Panics(t, func() { MustParseString("not-a-number", typ) })
	assert.NotPanics(t, func() { MustParseString("1.23", typ) })
}

func TestMustAdd_PanicsOnOverflow(t *testing.T) {
	typ := MustNewTypeDesc(2, 0)
	x := MustParseString("90", typ)
	y := MustParseString("90", typ)
	assert.Panics(t, func() { MustAdd(x, typ, y, typ, typ) })
}
