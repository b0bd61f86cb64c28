package decimal

// Div and Mod implement spec §4.5/§4.6. Division by zero is reported
// through the isNaN out-flag rather than a panic or error, matching the
// rest of the package's flag-based overflow reporting (spec §7); the
// original engine's "NaN" terminology for this case is preserved in the
// flag name even though the in-memory representation has no NaN bit
// pattern of its own — it is simply "no value returned".
//
// Grounded on original_source/be/src/runtime/decimal-value.h's divide
// implementation, which widens the numerator by the scale factor needed to
// land the quotient at the target scale before doing a single wide divide,
// rather than computing an unscaled quotient and rescaling afterward.

// Div returns x/y at rt's scale and width. isNaN is true when y is zero, in
// which case the returned Decimal is the zero value and overflow is false.
func Div(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc, rt TypeDesc) (result Decimal, overflow, isNaN bool) {
	if y.Unscaled.Zero() {
		return Decimal{}, false, true
	}
	shift := rt.Scale - xt.Scale + yt.Scale
	if shift < 0 {
		shift = 0
	}
	numerator, ok := I256FromI128(x.Unscaled).MulI128(Pow10I128(shift))
	if !ok {
		return Decimal{}, true, false
	}
	q, _, ok := numerator.QuoRemI128(y.Unscaled)
	if !ok {
		return Decimal{}, true, false
	}
	d, overflowed := finishArith(rt, q)
	return d, overflowed, false
}

// Mod returns x%y at rt's scale and width, with the sign of x (truncated
// division remainder), matching SQL MOD semantics. isNaN is true when y is
// zero.
func Mod(x Decimal, xt TypeDesc, y Decimal, yt TypeDesc, rt TypeDesc) (result Decimal, overflow, isNaN bool) {
	if y.Unscaled.Zero() {
		return Decimal{}, false, true
	}
	commonScale := rt.Scale
	xu, ok := alignToScale(x.Unscaled, xt.Scale, commonScale)
	if !ok {
		return Decimal{}, true, false
	}
	yu, ok := alignToScale(y.Unscaled, yt.Scale, commonScale)
	if !ok {
		return Decimal{}, true, false
	}
	_, r, ok := xu.QuoRem(yu)
	if !ok {
		return Decimal{}, false, true
	}
	d, overflowed := finishArith(rt, r)
	return d, overflowed, false
}
