package decimal

// Compare returns -1, 0 or 1 comparing x (under xt) to y (under yt) as real
// numbers, aligning their scales first. The comparison is done in I256 so
// that widening the smaller-scale operand by up to 10^38 never overflows
// I128, even though both operands individually always fit in MAX_UNSCALED
// (spec §4.7).
func Compare(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc) int {
	xw := I256FromI128(x.Unscaled)
	yw := I256FromI128(y.Unscaled)
	switch {
	case xt.Scale < yt.Scale:
		xw, _ = xw.MulI128(Pow10I128(yt.Scale - xt.Scale))
	case yt.Scale < xt.Scale:
		yw, _ = yw.MulI128(Pow10I128(xt.Scale - yt.Scale))
	}
	return xw.Cmp(yw)
}

// Equal reports whether x and y compare equal.
func Equal(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc) bool {
	return Compare(x, xt, y, yt) == 0
}
