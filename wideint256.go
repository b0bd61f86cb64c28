package decimal

import "math/bits"

// I256 is a signed 256-bit integer used only as an intermediate: every
// I128 product (I128.Mul), the numerator widened by 10^k before a divide,
// and the scale-aligned operands of Compare. limbs are little-endian 64-bit
// words, two's
// complement. Like I128 it never touches the heap.
type I256 struct {
	limbs [4]uint64
}

// I256FromI128 sign-extends x into an I256.
func I256FromI128(x I128) I256 {
	hi := uint64(0)
	if x.Neg() {
		hi = ^uint64(0)
	}
	return I256{limbs: [4]uint64{x.Lo, x.Hi, hi, hi}}
}

func (z I256) neg() bool { return z.limbs[3]>>63 != 0 }

func (z I256) zero() bool {
	return z.limbs[0] == 0 && z.limbs[1] == 0 && z.limbs[2] == 0 && z.limbs[3] == 0
}

func (z I256) not() I256 {
	var r I256
	for i := range z.limbs {
		r.limbs[i] = ^z.limbs[i]
	}
	return r
}

func (z I256) addCarry(y I256) (r I256, carry uint64) {
	var c uint64
	for i := 0; i < 4; i++ {
		r.limbs[i], c = bits.Add64(z.limbs[i], y.limbs[i], c)
	}
	return r, c
}

func (z I256) negate() I256 {
	r, _ := z.not().addCarry(I256{limbs: [4]uint64{1, 0, 0, 0}})
	return r
}

// abs returns the unsigned magnitude of z and whether z was negative.
func (z I256) abs() (I256, bool) {
	if !z.neg() {
		return z, false
	}
	return z.negate(), true
}

// Cmp returns -1, 0 or 1 comparing z to y as signed 256-bit integers.
func (z I256) Cmp(y I256) int {
	if z.neg() != y.neg() {
		if z.neg() {
			return -1
		}
		return 1
	}
	for i := 3; i >= 0; i-- {
		if z.limbs[i] != y.limbs[i] {
			if z.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// MulI128 multiplies z (treated as an exact I256 value, typically produced
// by I256FromI128) by a small non-negative I128 multiplier — used to widen
// a numerator by 10^k before a divide. Overflow is reported if the true
// product needs a 5th limb (never happens for the multipliers this core
// uses, since 10^38 fits comfortably in two limbs).
func (z I256) MulI128(m I128) (I256, bool) {
	az, zneg := z.abs()
	if m.Neg() {
		return I256{}, false
	}
	// Schoolbook multiply of a 4-limb magnitude by a 2-limb magnitude.
	var prod [6]uint64
	mul := func(a, b uint64) (hi, lo uint64) { return bits.Mul64(a, b) }
	addTo := func(i int, v uint64) {
		for v != 0 && i < len(prod) {
			var c uint64
			prod[i], c = bits.Add64(prod[i], v, 0)
			v = c
			i++
		}
	}
	mlimbs := [2]uint64{m.Lo, m.Hi}
	for i, a := range az.limbs {
		for j, b := range mlimbs {
			hi, lo := mul(a, b)
			addTo(i+j, lo)
			addTo(i+j+1, hi)
		}
	}
	if prod[4] != 0 || prod[5] != 0 {
		return I256{}, false
	}
	r := I256{limbs: [4]uint64{prod[0], prod[1], prod[2], prod[3]}}
	if r.neg() { // top bit collides with sign bit though value is non-negative
		return I256{}, false
	}
	if zneg {
		r = r.negate()
	}
	return r, true
}

// QuoRemI128 divides z by non-zero divisor y (an I128 widened to I256's
// range) using truncation toward zero. ok is false when y is zero or the
// quotient does not fit in I128.
func (z I256) QuoRemI128(y I128) (q, r I128, ok bool) {
	if y.Zero() {
		return I128{}, I128{}, false
	}
	az, zneg := z.abs()
	yneg := y.Neg()
	ay, _ := y.Abs()
	ayW := I256FromI128(ay)
	uq, ur := quoRemUint256(az, ayW)
	if uq.limbs[2] != 0 || uq.limbs[3] != 0 || uq.Cmp(I256FromI128(maxI128)) > 0 {
		return I128{}, I128{}, false
	}
	q = I128{Hi: uq.limbs[1], Lo: uq.limbs[0]}
	r = I128{Hi: ur.limbs[1], Lo: ur.limbs[0]}
	if zneg != yneg {
		q, _ = q.not().addCarry(I128{Lo: 1})
	}
	if zneg {
		r, _ = r.not().addCarry(I128{Lo: 1})
	}
	return q, r, true
}

// maxI128 is the largest representable positive I128 (2^127 - 1), used only
// as a range fence in QuoRemI128.
var maxI128 = I128{Hi: 1<<63 - 1, Lo: ^uint64(0)}

func (z I256) shl1() I256 {
	var r I256
	carry := uint64(0)
	for i := 0; i < 4; i++ {
		r.limbs[i] = z.limbs[i]<<1 | carry
		carry = z.limbs[i] >> 63
	}
	return r
}

func (z I256) bitAt(n int) bool {
	return z.limbs[n/64]>>(uint(n)%64)&1 != 0
}

func (z I256) setBit(n int) I256 {
	z.limbs[n/64] |= 1 << (uint(n) % 64)
	return z
}

// quoRemUint256 divides two non-negative magnitudes by restoring binary long
// division over 256 bits.
func quoRemUint256(x, y I256) (q, r I256) {
	if y.zero() {
		return I256{}, I256{}
	}
	if x.Cmp(y) < 0 {
		return I256{}, x
	}
	for bit := 255; bit >= 0; bit-- {
		r = r.shl1()
		if x.bitAt(bit) {
			r.limbs[0] |= 1
		}
		if r.Cmp(y) >= 0 {
			r, _ = r.addCarry(y.negate())
			q = q.setBit(bit)
		}
	}
	return q, r
}
