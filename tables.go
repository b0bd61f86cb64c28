package decimal

// pow10_64 is a precomputed 10^k cache used only to seed pow10_128 at init,
// grounded on govalues/decimal's fint pow10 cache (coefficient.go) and
// extended with the 128-bit variant below — since every Decimal's unscaled
// value is carried as I128 regardless of storage width (decimal_value.go),
// the 4- and 8-byte widths never need their own narrower pow10 table.
var pow10_64 = [...]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// pow10_128 holds 10^k for k in [0,38] as I128 values, built once at
// package init: copied from pow10_64 up to 10^18, then extended by repeated
// multiplication by ten.
var pow10_128 [39]I128

// maxUnscaled holds MAX_UNSCALED[p] = 10^p - 1 for p in [0,38] as I128,
// which is always enough range to also read off the 4- and 8-byte maxima.
var maxUnscaled [39]I128

func init() {
	for k := 0; k <= MaxPrecision; k++ {
		if k < len(pow10_64) {
			pow10_128[k] = I128FromInt64(pow10_64[k])
			continue
		}
		prod := pow10_128[k-1].Mul(I128FromInt64(10))
		// 10^38 fits in 127 bits so this never overflows I128.
		pow10_128[k] = I128{Hi: prod.limbs[1], Lo: prod.limbs[0]}
	}
	for p := 0; p <= MaxPrecision; p++ {
		m, _ := pow10_128[p].Sub(I128FromInt64(1))
		maxUnscaled[p] = m
	}
}

// Pow10I128 returns 10^k as an I128 for k in [0,38].
func Pow10I128(k int) I128 {
	if k < 0 || k > MaxPrecision {
		return I128{}
	}
	return pow10_128[k]
}

// MaxUnscaledI128 returns MAX_UNSCALED[precision] as an I128.
func MaxUnscaledI128(precision int) I128 {
	if precision < 0 {
		return I128{}
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}
	return maxUnscaled[precision]
}
