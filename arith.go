package decimal

// Add, Sub and Mul implement spec §4.3/§4.4. Each takes both operands
// together with their own TypeDescs and the result TypeDesc the planner
// already computed via AddSubResultType/MulResultType, and reports overflow
// through a boolean rather than an error (spec §7) so the hot arithmetic
// path never allocates.
//
// Grounded on original_source/be/src/runtime/decimal-value.h's
// BinaryOp/ScaleDecimalValue pattern: operands are aligned to a common
// scale before the integer add/sub, and multiplication is done in a single
// wide product with no intermediate rescale.

// Add returns x+y at rt's scale and width.
func Add(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc, rt TypeDesc) (Decimal, bool) {
	return addSub(x, xt, y, yt, rt, false)
}

// Sub returns x-y at rt's scale and width.
func Sub(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc, rt TypeDesc) (Decimal, bool) {
	return addSub(x, xt, y, yt, rt, true)
}

func addSub(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc, rt TypeDesc, negate bool) (Decimal, bool) {
	xu, ok := alignToScale(x.Unscaled, xt.Scale, rt.Scale)
	if !ok {
		return Decimal{}, true
	}
	yu, ok := alignToScale(y.Unscaled, yt.Scale, rt.Scale)
	if !ok {
		return Decimal{}, true
	}
	if negate {
		yu, _ = yu.not().addCarry(I128{Lo: 1})
	}
	sum, overflow := xu.Add(yu)
	if overflow {
		return Decimal{}, true
	}
	return finishArith(rt, sum)
}

// Mul returns x*y at rt's scale and width.
func Mul(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc, rt TypeDesc) (Decimal, bool) {
	prod := x.Unscaled.Mul(y.Unscaled)
	naturalScale := xt.Scale + yt.Scale
	unscaled, ok := narrowProductToScale(prod, naturalScale, rt.Scale)
	if !ok {
		return Decimal{}, true
	}
	return finishArith(rt, unscaled)
}

// alignToScale rescales an unscaled integer from srcScale to dstScale by
// multiplying by a power of ten, truncating only through the narrow
// overflow check (dstScale is always >= srcScale for Add/Sub operands,
// since rt.Scale = max(xt.Scale, yt.Scale) per AddSubResultType).
func alignToScale(unscaled I128, srcScale, dstScale int) (I128, bool) {
	if dstScale == srcScale {
		return unscaled, true
	}
	if dstScale < srcScale {
		v, overflow := rshMode(unscaled, srcScale-dstScale, Truncate)
		return v, !overflow
	}
	wide, ok := unscaled.Mul(Pow10I128(dstScale - srcScale)).narrowToI128()
	return wide, ok
}

// narrowProductToScale adjusts a wide multiplication product from its
// natural scale (the sum of the operand scales) down to the result scale
// the planner assigned, which can be smaller only when clamping to
// MaxPrecision truncated the natural scale (spec §6).
func narrowProductToScale(prod I256, naturalScale, resultScale int) (I128, bool) {
	if resultScale >= naturalScale {
		return prod.narrowToI128()
	}
	q, _, ok := prod.QuoRemI128(Pow10I128(naturalScale - resultScale))
	return q, ok
}

func finishArith(rt TypeDesc, unscaled I128) (Decimal, bool) {
	mag, _ := unscaled.Abs()
	if mag.Cmp(MaxUnscaledI128(rt.Precision)) > 0 {
		return Decimal{}, true
	}
	return Decimal{Width: rt.ByteWidth(), Unscaled: unscaled}, false
}
