package decimal

import "fmt"

// MustNewTypeDesc is like [NewTypeDesc] but panics on an invalid
// (precision, scale) pair. Intended for package-level var declarations and
// tests, not for validating caller-supplied types at runtime.
func MustNewTypeDesc(precision, scale int) TypeDesc {
	t, err := NewTypeDesc(precision, scale)
	if err != nil {
		panic(fmt.Sprintf("decimal: MustNewTypeDesc(%d, %d): %v", precision, scale, err))
	}
	return t
}

// MustParseString is like [ParseString] but panics unless parsing succeeds
// exactly (kind == Success).
func MustParseString(s string, t TypeDesc) Decimal {
	d, kind := ParseString(s, t)
	if kind != Success {
		panic(fmt.Sprintf("decimal: MustParseString(%q, %v): %v", s, t, kind))
	}
	return d
}

// MustScaleTo is like [ScaleTo] but panics on overflow.
func MustScaleTo(d Decimal, src, dst TypeDesc, mode RoundMode) Decimal {
	r, overflow := ScaleTo(d, src, dst, mode)
	if overflow {
		panic(fmt.Sprintf("decimal: MustScaleTo(%v, %v -> %v): overflow", d, src, dst))
	}
	return r
}

// MustAdd is like [Add] but panics on overflow.
func MustAdd(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc, rt TypeDesc) Decimal {
	r, overflow := Add(x, xt, y, yt, rt)
	if overflow {
		panic("decimal: MustAdd: overflow")
	}
	return r
}

// MustSub is like [Sub] but panics on overflow.
func MustSub(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc, rt TypeDesc) Decimal {
	r, overflow := Sub(x, xt, y, yt, rt)
	if overflow {
		panic("decimal: MustSub: overflow")
	}
	return r
}

// MustMul is like [Mul] but panics on overflow.
func MustMul(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc, rt TypeDesc) Decimal {
	r, overflow := Mul(x, xt, y, yt, rt)
	if overflow {
		panic("decimal: MustMul: overflow")
	}
	return r
}

// MustDiv is like [Div] but panics on overflow or division by zero.
func MustDiv(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc, rt TypeDesc) Decimal {
	r, overflow, isNaN := Div(x, xt, y, yt, rt)
	if overflow || isNaN {
		panic(fmt.Sprintf("decimal: MustDiv: overflow=%v isNaN=%v", overflow, isNaN))
	}
	return r
}
