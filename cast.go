package decimal

import (
	"math"
	"strconv"
	"time"
)

// This file implements the cast matrix of spec §4.11: conversions between
// Decimal and Go's native integer, float, bool and time.Time types, plus
// decimal-to-decimal rescaling via ScaleTo. Grounded on
// original_source/be/src/exprs/decimal-operators.cc's CastToDecimalVal /
// CastToIntVal / CastToFloatVal family.

// FromInt64 builds a Decimal of type t from a signed integer, reporting
// overflow if the value's magnitude exceeds MAX_UNSCALED[t.Precision].
func FromInt64(v int64, t TypeDesc) (Decimal, bool) {
	unscaled, ok := I128FromInt64(v).Mul(Pow10I128(t.Scale)).narrowToI128()
	if !ok {
		return Decimal{}, true
	}
	return finishArith(t, unscaled)
}

// FromFloat64 builds a Decimal of type t from a float64, reporting overflow
// if f is NaN, infinite, or its magnitude exceeds MAX_UNSCALED[t.Precision]
// once scaled. Rather than multiplying f by 10^Scale and truncating — which
// loses digits whenever that product isn't exactly representable as a
// float64, e.g. 19.99*100 rounds down to 1998.9999999999998 before
// truncation ever sees it — f is first rendered through strconv.FormatFloat
// at exactly t.Scale fractional digits, which correctly rounds against f's
// true binary value, and the resulting literal is parsed like any other
// input. Grounded on matrixorigin-matrixone's own float-to-decimal-adjacent
// casts (pkg/sql/plan/function/func_cast.go), which go through
// strconv.FormatFloat(v, 'f', -1, 64) rather than float arithmetic.
func FromFloat64(f float64, t TypeDesc) (Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, true
	}
	s := strconv.FormatFloat(f, 'f', t.Scale, 64)
	d, kind := Parse([]byte(s), t)
	if kind == Failure || kind == Overflow {
		return Decimal{}, true
	}
	return d, false
}

// ToInt64 truncates d (under t) to its integer part as int64, dropping the
// fractional digits with no range check — an explicitly unchecked
// decimal-to-integer narrowing (§4.11, §9): a value whose integer
// part doesn't fit in int64 produces a meaningless wrapped result, by
// design the caller's responsibility to avoid via FitsPrecision.
func ToInt64(d Decimal, t TypeDesc) int64 {
	whole, _, _ := d.Unscaled.QuoRem(Pow10I128(t.Scale))
	return whole.Int64()
}

// ToFloat64 converts d (under t) to the nearest float64.
func ToFloat64(d Decimal, t TypeDesc) float64 {
	return d.Unscaled.Float64() / pow10Float(t.Scale)
}

// ToBool reports whether d is non-zero, the cast used wherever a decimal
// appears in a boolean context (spec §4.11).
func ToBool(d Decimal) bool {
	return !d.Unscaled.Zero()
}

// FromBool builds the Decimal 0 or 1 of type t.
func FromBool(b bool, t TypeDesc) Decimal {
	if !b {
		return Zero(t.ByteWidth())
	}
	d, _ := FromInt64(1, t)
	return d
}

// WholeAndFraction splits d (under t) into its integer part and a
// fractional remainder still expressed in d's own unscaled units (so
// fraction is in [-(10^t.Scale-1), 10^t.Scale-1]); a helper the original
// decimal-to-timestamp and decimal-to-string paths both need, supplemented
// here as a first-class operation since spec.md's distillation folded it
// into Format/cast without naming it separately.
func (d Decimal) WholeAndFraction(t TypeDesc) (whole int64, fraction I128) {
	q, r, _ := d.Unscaled.QuoRem(Pow10I128(t.Scale))
	return q.Int64(), r
}

// ToTimestamp interprets d (under t) as a count of seconds since the Unix
// epoch, with its fractional part (to t.Scale digits) as nanoseconds,
// matching original_source/be/src/exprs/decimal-operators.cc's
// CastToTimestampVal. ok is false for a negative fractional part (a
// negative timestamp's sub-second component has no sensible Unix mapping
// here). Fractional digits beyond nanosecond resolution (t.Scale > 9) are
// truncated.
func ToTimestamp(d Decimal, t TypeDesc) (ts time.Time, ok bool) {
	whole, frac := d.WholeAndFraction(t)
	if frac.Neg() {
		return time.Time{}, false
	}
	var nanos I128
	switch {
	case t.Scale == 9:
		nanos = frac
	case t.Scale < 9:
		var widened bool
		nanos, widened = frac.Mul(Pow10I128(9 - t.Scale)).narrowToI128()
		if !widened {
			return time.Time{}, false
		}
	default:
		nanos, _, ok = frac.QuoRem(Pow10I128(t.Scale - 9))
		if !ok {
			return time.Time{}, false
		}
	}
	return time.Unix(whole, nanos.Int64()).UTC(), true
}

// FromTimestamp builds a Decimal of type t from ts, as seconds-since-epoch
// with a fractional part carrying ts's nanoseconds, truncated to t.Scale
// digits.
func FromTimestamp(ts time.Time, t TypeDesc) (Decimal, bool) {
	secondsUnscaled, ok := I128FromInt64(ts.Unix()).Mul(Pow10I128(t.Scale)).narrowToI128()
	if !ok {
		return Decimal{}, true
	}
	var nanosUnscaled I128
	switch {
	case t.Scale >= 9:
		nanosUnscaled, ok = I128FromInt64(int64(ts.Nanosecond())).Mul(Pow10I128(t.Scale - 9)).narrowToI128()
	default:
		nanosUnscaled, _, ok = I128FromInt64(int64(ts.Nanosecond())).QuoRem(Pow10I128(9 - t.Scale))
	}
	if !ok {
		return Decimal{}, true
	}
	sum, overflowed := secondsUnscaled.Add(nanosUnscaled)
	if overflowed {
		return Decimal{}, true
	}
	return finishArith(t, sum)
}

func pow10Float(scale int) float64 {
	f := 1.0
	base := 10.0
	for scale > 0 {
		if scale&1 == 1 {
			f *= base
		}
		base *= base
		scale >>= 1
	}
	return f
}
