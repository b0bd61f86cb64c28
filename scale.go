package decimal

// ScaleTo converts d, interpreted under src, into the representation it
// would have under dst, per spec §4.2:
//
//   - If dst.Scale >= src.Scale, the unscaled value is multiplied by
//     10^(dst.Scale-src.Scale); overflow is reported if the product's
//     magnitude would exceed MAX_UNSCALED[dst.Precision].
//   - If dst.Scale < src.Scale, the unscaled value is divided by
//     10^(src.Scale-dst.Scale) using the given rounding mode (truncation
//     toward zero by default), then magnitude-checked the same way.
//
// Width conversion happens together with the multiply/divide above: on a
// narrowing cast (dst narrower than src) the scale reduction is evaluated
// first so the magnitude check runs against the already-narrower
// coefficient; on a widening cast the promotion to dst's width is implicit
// in doing the arithmetic in I128/I256 throughout. This ordering mirrors
// spec §4.2's "width conversion is applied after scale alignment on
// narrowing casts and before scale alignment on widening casts".
func ScaleTo(d Decimal, src, dst TypeDesc, mode RoundMode) (Decimal, bool) {
	delta := dst.Scale - src.Scale
	var unscaled I128
	switch {
	case delta == 0:
		unscaled = d.Unscaled
	case delta > 0:
		wide, ok := d.Unscaled.Mul(Pow10I128(delta)).narrowToI128()
		if !ok {
			return Decimal{}, true
		}
		unscaled = wide
	default:
		var overflow bool
		unscaled, overflow = rshMode(d.Unscaled, -delta, mode)
		if overflow {
			return Decimal{}, true
		}
	}

	mag, _ := unscaled.Abs()
	if mag.Cmp(MaxUnscaledI128(dst.Precision)) > 0 {
		return Decimal{}, true
	}
	return Decimal{Width: dst.ByteWidth(), Unscaled: unscaled}, false
}

// rshMode divides x by 10^shift applying the given rounding mode, reusing
// the away-from-zero derivation shared with round.go. overflow is true only
// in the pathological case where rounding away from zero pushes the
// magnitude past what I128 can hold (possible only when x is already at the
// extreme of the 16-byte range).
func rshMode(x I128, shift int, mode RoundMode) (I128, bool) {
	if shift <= 0 {
		return x, false
	}
	base := Pow10I128(shift)
	neg := x.Neg()
	mag, _ := x.Abs()
	q, r, _ := mag.QuoRem(base)
	if roundAway(neg, r, base, q, mode) {
		var overflow bool
		q, overflow = q.Add(I128FromInt64(1))
		if overflow {
			return I128{}, true
		}
	}
	if neg {
		q, _ = q.not().addCarry(I128{Lo: 1})
	}
	return q, false
}
