package decimal

import "math/bits"

// I128 is a signed 128-bit integer held as two's complement across a
// high/low pair of 64-bit limbs. It is the storage type of a 16-byte
// decimal's unscaled value and never allocates on the heap.
type I128 struct {
	Hi uint64 // sign-extended high 64 bits
	Lo uint64 // low 64 bits
}

// I128FromInt64 sign-extends x into an I128.
func I128FromInt64(x int64) I128 {
	hi := uint64(0)
	if x < 0 {
		hi = ^uint64(0)
	}
	return I128{Hi: hi, Lo: uint64(x)}
}

// I128FromUint64 widens an unsigned x into an I128.
func I128FromUint64(x uint64) I128 {
	return I128{Hi: 0, Lo: x}
}

// Zero reports whether x is 0.
func (x I128) Zero() bool { return x.Hi == 0 && x.Lo == 0 }

// Neg reports whether x is negative.
func (x I128) Neg() bool { return x.Hi>>63 != 0 }

// Sign returns -1, 0 or 1.
func (x I128) Sign() int {
	switch {
	case x.Zero():
		return 0
	case x.Neg():
		return -1
	default:
		return 1
	}
}

// not returns the bitwise complement of x.
func (x I128) not() I128 { return I128{Hi: ^x.Hi, Lo: ^x.Lo} }

// Abs returns |x| and whether computing it overflowed (true only for the
// minimum representable I128, which this core never produces since
// MaxUnscaled[38] is far smaller in magnitude).
func (x I128) Abs() (I128, bool) {
	if !x.Neg() {
		return x, false
	}
	z, _ := x.not().addCarry(I128{Lo: 1})
	return z, z.Neg()
}

func (x I128) addCarry(y I128) (z I128, carry uint64) {
	var c0, c1 uint64
	z.Lo, c0 = bits.Add64(x.Lo, y.Lo, 0)
	z.Hi, c1 = bits.Add64(x.Hi, y.Hi, c0)
	return z, c1
}

// Add computes x+y and reports overflow against the signed 128-bit range.
func (x I128) Add(y I128) (z I128, overflow bool) {
	z, _ = x.addCarry(y)
	// Signed overflow: operands share a sign but the result doesn't.
	overflow = (x.Neg() == y.Neg()) && (z.Neg() != x.Neg())
	return z, overflow
}

// Sub computes x-y and reports overflow against the signed 128-bit range.
func (x I128) Sub(y I128) (z I128, overflow bool) {
	yy, _ := y.not().addCarry(I128{Lo: 1}) // yy = -y, two's complement
	z, _ = x.addCarry(yy)
	overflow = (x.Neg() != y.Neg()) && (z.Neg() != x.Neg())
	return z, overflow
}

// Cmp returns -1, 0 or 1 comparing x to y.
func (x I128) Cmp(y I128) int {
	if x.Neg() != y.Neg() {
		if x.Neg() {
			return -1
		}
		return 1
	}
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// mulUint64x128 multiplies two unsigned 128-bit magnitudes (hi:lo) and returns a
// 256-bit unsigned product as four limbs, least-significant first.
func mulUint64x128(x I128, y I128) (w [4]uint64) {
	// Schoolbook 128x128 -> 256 multiply using 64-bit partial products.
	mul := func(a, b uint64) (hi, lo uint64) {
		hi, lo = bits.Mul64(a, b)
		return
	}
	addTo := func(i int, v uint64) {
		for v != 0 && i < len(w) {
			var c uint64
			w[i], c = bits.Add64(w[i], v, 0)
			v = c
			i++
		}
	}

	h0, l0 := mul(x.Lo, y.Lo)
	addTo(0, l0)
	addTo(1, h0)

	h1, l1 := mul(x.Lo, y.Hi)
	addTo(1, l1)
	addTo(2, h1)

	h2, l2 := mul(x.Hi, y.Lo)
	addTo(1, l2)
	addTo(2, h2)

	h3, l3 := mul(x.Hi, y.Hi)
	addTo(2, l3)
	addTo(3, h3)

	return w
}

// Mul computes x*y widened into an I256 (never overflows at 256 bits for
// two 128-bit signed operands).
func (x I128) Mul(y I128) I256 {
	ax, _ := x.Abs()
	ay, _ := y.Abs()
	w := mulUint64x128(ax, ay)
	z := I256{limbs: w}
	if x.Neg() != y.Neg() {
		z = z.negate()
	}
	return z
}

// QuoRem computes truncated-toward-zero quotient and remainder of x/y.
// ok is false when y is zero.
func (x I128) QuoRem(y I128) (q, r I128, ok bool) {
	if y.Zero() {
		return I128{}, I128{}, false
	}
	xneg, yneg := x.Neg(), y.Neg()
	ax, _ := x.Abs()
	ay, _ := y.Abs()
	uq, ur := quoRemUint128(ax, ay)
	q = uq
	r = ur
	if xneg != yneg {
		q, _ = q.not().addCarry(I128{Lo: 1})
	}
	if xneg {
		r, _ = r.not().addCarry(I128{Lo: 1})
	}
	return q, r, true
}

// quoRemUint128 divides two non-negative I128 magnitudes using binary
// long division, one bit per step. It has no power-of-ten shortcut but is
// exact for any divisor.
func quoRemUint128(x, y I128) (q, r I128) {
	if y.Zero() {
		return I128{}, I128{}
	}
	if x.Cmp(y) < 0 {
		return I128{}, x
	}
	for bit := 127; bit >= 0; bit-- {
		r = r.shl1()
		if x.bitAt(bit) {
			r.Lo |= 1
		}
		if r.Cmp(y) >= 0 {
			r, _ = r.Sub(y)
			q = q.setBit(bit)
		}
	}
	return q, r
}

func (x I128) shl1() I128 {
	carry := x.Lo >> 63
	return I128{Hi: x.Hi<<1 | carry, Lo: x.Lo << 1}
}

func (x I128) bitAt(n int) bool {
	if n >= 64 {
		return x.Hi>>(n-64)&1 != 0
	}
	return x.Lo>>n&1 != 0
}

func (x I128) setBit(n int) I128 {
	if n >= 64 {
		x.Hi |= 1 << (n - 64)
	} else {
		x.Lo |= 1 << n
	}
	return x
}

// Int64 truncates x to int64 using a C-style truncating cast: the low 64
// bits are reinterpreted as signed with no range check. This matches the
// original engine's unchecked decimal-to-integer narrowing (spec §4.11, §9).
func (x I128) Int64() int64 { return int64(x.Lo) }

// Float64 converts x to the nearest float64.
func (x I128) Float64() float64 {
	neg := x.Neg()
	ax, _ := x.Abs()
	f := float64(ax.Hi)*18446744073709551616.0 + float64(ax.Lo)
	if neg {
		f = -f
	}
	return f
}

// I128FromFloat64 truncates f toward zero into an I128. Returns ok=false for
// NaN, ±Inf, or magnitudes that don't fit in 128 bits.
func I128FromFloat64(f float64) (I128, bool) {
	if f != f || f > 1.7e38 || f < -1.7e38 { // NaN or out of range check
		return I128{}, false
	}
	neg := f < 0
	if neg {
		f = -f
	}
	const two64 = 18446744073709551616.0
	hi := uint64(f / two64)
	lo := uint64(f - float64(hi)*two64)
	z := I128{Hi: hi, Lo: lo}
	if z.Neg() { // would be misread as negative in two's complement
		return I128{}, false
	}
	if neg {
		z, _ = z.not().addCarry(I128{Lo: 1})
	}
	return z, true
}
