package decimal

// Round rounds d — whose current scale is srcScale — to targetScale using
// mode, per spec §4.8. targetScale may be negative (rounding to a multiple
// of 10, 100, ...); it is never a TypeDesc attribute, only a rounding
// target (see GLOSSARY).
//
// Round takes no TypeDesc because its own contract signature (§6:
// "round(Decimal, src_scale, target_scale, mode)") does not carry one: the
// overflow check is against the natural ceiling
// precision of d's own storage width (9/18/38 digits for 4/8/16 bytes),
// not a caller-declared precision — a caller that also wants to enforce a
// narrower declared precision does so with a following ScaleTo.
//
// Two regimes, both grounded on govalues/decimal/coefficient.go's
// rshHalfEven/rshUp/rshDown family generalized to five RoundModes:
//
//   - targetScale >= 0: the usual case. The coefficient is divided by
//     10^(srcScale-targetScale), rounded, and the quotient becomes the new
//     unscaled value — the decimal point has moved.
//   - targetScale < 0: rounding to a multiple of 10^|targetScale|. The low
//     order digits of the unscaled integer are zeroed (or rounded up to
//     the next multiple); the decimal point does not move.
func Round(d Decimal, srcScale, targetScale int, mode RoundMode) (Decimal, bool) {
	if targetScale >= 0 {
		shift := srcScale - targetScale
		if shift <= 0 {
			return d, false
		}
		return roundReplacingScale(d, clampShift(shift), mode)
	}
	return roundToMultiple(d, clampShift(-targetScale), mode)
}

// roundReplacingScale implements the non-negative-target-scale regime: the
// result's unscaled value is the rounded quotient itself (the scale shrinks
// to targetScale in the caller's accounting).
func roundReplacingScale(d Decimal, shift int, mode RoundMode) (Decimal, bool) {
	base := Pow10I128(shift)
	neg := d.Unscaled.Neg()
	mag, _ := d.Unscaled.Abs()
	q, r, ok := mag.QuoRem(base)
	if !ok {
		return d, false
	}
	if roundAway(neg, r, base, q, mode) {
		var overflow bool
		q, overflow = q.Add(I128FromInt64(1))
		if overflow {
			return Decimal{}, true
		}
	}
	result := q
	if neg && !result.Zero() {
		result, _ = result.not().addCarry(I128{Lo: 1})
	}
	return finishRounded(d.Width, result)
}

// roundToMultiple implements the negative-target-scale regime: the result
// keeps d's own scale but its low `shift` decimal digits are zeroed or
// rounded up to the next multiple of 10^shift (spec §4.8 regime 2).
func roundToMultiple(d Decimal, shift int, mode RoundMode) (Decimal, bool) {
	base := Pow10I128(shift)
	neg := d.Unscaled.Neg()
	mag, _ := d.Unscaled.Abs()
	q, r, ok := mag.QuoRem(base)
	if !ok {
		return d, false
	}
	if roundAway(neg, r, base, q, mode) {
		var overflow bool
		q, overflow = q.Add(I128FromInt64(1))
		if overflow {
			return Decimal{}, true
		}
	}
	result, ok := q.Mul(base).narrowToI128()
	if !ok {
		return Decimal{}, true
	}
	if neg && !result.Zero() {
		result, _ = result.not().addCarry(I128{Lo: 1})
	}
	return finishRounded(d.Width, result)
}

func finishRounded(width int, unscaled I128) (Decimal, bool) {
	mag, _ := unscaled.Abs()
	if mag.Cmp(MaxUnscaledI128(maxPrecisionForWidth(width))) > 0 {
		return Decimal{}, true
	}
	return Decimal{Width: width, Unscaled: unscaled}, false
}

// roundAway decides, for a truncated quotient q with dropped remainder r
// out of base, whether the rounded result should have one more unit of
// magnitude than q (i.e. the reconstructed value moves one step further
// from zero). neg is the sign of the original (pre-truncation) value.
//
// Every RoundMode reduces to this single away-from-zero decision: for
// CEILING and FLOOR that is because truncation toward zero already rounds
// a negative value up (toward +inf) and a positive value down (toward
// -inf) for free, so CEILING only ever needs to act on positive values and
// FLOOR only ever on negative ones (spec §4.8).
func roundAway(neg bool, r, base, q I128, mode RoundMode) bool {
	if r.Zero() {
		return false
	}
	switch mode {
	case Truncate:
		return false
	case HalfUp:
		diff, _ := base.Sub(r)
		return r.Cmp(diff) >= 0
	case HalfEven:
		diff, _ := base.Sub(r)
		switch r.Cmp(diff) {
		case 1:
			return true
		case 0:
			return q.Lo&1 != 0 // last decimal digit of q is odd iff q is
		default:
			return false
		}
	case Ceiling:
		return !neg
	case Floor:
		return neg
	default:
		return false
	}
}

func maxPrecisionForWidth(width int) int {
	switch width {
	case Width4:
		return 9
	case Width8:
		return 18
	default:
		return MaxPrecision
	}
}

func clampShift(shift int) int {
	if shift > MaxPrecision {
		return MaxPrecision
	}
	if shift < 0 {
		return 0
	}
	return shift
}
