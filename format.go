package decimal

// Format renders d as canonical fixed-point ASCII: a leading '-' if
// negative, the absolute value's digits, a '.' placed so exactly t.Scale
// digits lie to its right (omitted when t.Scale is 0), left-padded with
// '0' so there is always at least one digit before the point. There is no
// trailing-zero stripping and no grouping (spec §4.10); Parse(Format(v, t),
// t) always reproduces v exactly.
//
// The right-to-left digit buffer is grounded on
// govalues/decimal.Decimal.String (decimal.go).
func Format(d Decimal, t TypeDesc) []byte {
	neg := d.Unscaled.Neg()
	mag, _ := d.Unscaled.Abs()

	// A 38-digit coefficient plus sign plus point fits comfortably in 48 bytes.
	var buf [48]byte
	pos := len(buf)

	scale := t.Scale
	digits := 0
	if mag.Zero() {
		buf[pos-1] = '0'
		pos--
		digits = 1
		if digits == scale {
			pos--
			buf[pos] = '.'
		}
	} else {
		rem := mag
		ten := I128FromInt64(10)
		for !rem.Zero() {
			q, r, _ := rem.QuoRem(ten)
			pos--
			buf[pos] = byte(r.Lo) + '0'
			digits++
			rem = q
			if digits == scale {
				pos--
				buf[pos] = '.'
			}
		}
	}
	for digits < scale+1 {
		pos--
		buf[pos] = '0'
		digits++
		if digits == scale {
			pos--
			buf[pos] = '.'
		}
	}
	if neg && !mag.Zero() {
		pos--
		buf[pos] = '-'
	} else if neg && mag.Zero() {
		// A negative zero never occurs since Decimal normalizes sign away
		// for a zero unscaled value (see Decimal.Sign/arithmetic kernels).
	}

	out := make([]byte, len(buf)-pos)
	copy(out, buf[pos:])
	return out
}

// FormatString is Format returning a string instead of a byte slice.
func FormatString(d Decimal, t TypeDesc) string {
	return string(Format(d, t))
}
