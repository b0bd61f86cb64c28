package decimal

// Parse converts an ASCII decimal literal into a Decimal of the storage
// width implied by t. The grammar (spec §4.9) is: optional surrounding
// whitespace, optional sign, digits, optional '.' with further digits, at
// least one digit total; no exponent.
//
// The scanning strategy — a single left-to-right pass accumulating the
// coefficient digit by digit — is grounded on govalues/decimal.parseFast's
// scanner (decimal.go), adapted to stop accumulating fractional digits at
// t.Scale (reporting Underflow for the rest) instead of parseFast's
// exponent-aware rescaling, and to bound the integer part against
// MAX_UNSCALED[t.Precision] instead of a single fixed range.
func Parse(s []byte, t TypeDesc) (Decimal, ParseResultKind) {
	pos, end := 0, len(s)

	for pos < end && isSpace(s[pos]) {
		pos++
	}
	for end > pos && isSpace(s[end-1]) {
		end--
	}
	if pos == end {
		return Decimal{}, Failure
	}

	neg := false
	switch s[pos] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}

	var unscaled I128
	sawDigit := false
	maxUnscaledForType := MaxUnscaledI128(t.Precision)

	for pos < end && isDigit(s[pos]) {
		sawDigit = true
		var ok bool
		unscaled, ok = unscaled.Mul(I128FromInt64(10)).narrowToI128()
		if !ok {
			return Decimal{}, Overflow
		}
		var overflow bool
		unscaled, overflow = unscaled.Add(I128FromInt64(int64(s[pos] - '0')))
		if overflow || unscaled.Cmp(maxUnscaledForType) > 0 {
			return Decimal{}, Overflow
		}
		pos++
	}

	kind := Success
	if pos < end && s[pos] == '.' {
		pos++
		fracDigits := 0
		for pos < end && isDigit(s[pos]) {
			sawDigit = true
			d := s[pos] - '0'
			if fracDigits < t.Scale {
				var ok bool
				unscaled, ok = unscaled.Mul(I128FromInt64(10)).narrowToI128()
				if !ok {
					return Decimal{}, Overflow
				}
				var overflow bool
				unscaled, overflow = unscaled.Add(I128FromInt64(int64(d)))
				if overflow || unscaled.Cmp(maxUnscaledForType) > 0 {
					return Decimal{}, Overflow
				}
				fracDigits++
			} else {
				kind = Underflow
			}
			pos++
		}
		if fracDigits < t.Scale {
			shift := t.Scale - fracDigits
			widened, ok := unscaled.Mul(Pow10I128(shift)).narrowToI128()
			if !ok {
				return Decimal{}, Overflow
			}
			unscaled = widened
		}
	} else if t.Scale > 0 {
		widened, ok := unscaled.Mul(Pow10I128(t.Scale)).narrowToI128()
		if !ok {
			return Decimal{}, Overflow
		}
		unscaled = widened
	}

	if pos != end || !sawDigit {
		return Decimal{}, Failure
	}
	if unscaled.Cmp(maxUnscaledForType) > 0 {
		return Decimal{}, Overflow
	}

	if neg {
		unscaled, _ = unscaled.not().addCarry(I128{Lo: 1})
	}

	return Decimal{Width: t.ByteWidth(), Unscaled: unscaled}, kind
}

// ParseString is a convenience wrapper around Parse for callers that hold a
// Go string rather than a byte slice.
func ParseString(s string, t TypeDesc) (Decimal, ParseResultKind) {
	return Parse([]byte(s), t)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// narrowToI128 extracts the I128 result of an I256 product, reporting
// overflow if it doesn't fit in 128 bits. Parse only ever multiplies a
// small accumulator by 10, so a dedicated narrow keeps the hot loop free of
// a full I256 comparison against MaxUnscaled(38).
func (z I256) narrowToI128() (I128, bool) {
	v := I128{Hi: z.limbs[1], Lo: z.limbs[0]}
	ext := uint64(0)
	if v.Neg() {
		ext = ^uint64(0)
	}
	// The value fits only if the upper two limbs are the sign extension of v.
	if z.limbs[2] != ext || z.limbs[3] != ext {
		return I128{}, false
	}
	return v, true
}
