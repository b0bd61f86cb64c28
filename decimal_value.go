package decimal

// Decimal is a tagged triple of (width, unscaled integer, implicit type
// descriptor). It never stores its own TypeDesc at rest (spec §3); every
// operation that reads a Decimal takes the relevant TypeDesc as a separate
// argument.
//
// Internally the unscaled integer is always carried widened to I128 —
// which comfortably holds every width this core supports — and Width
// records which of the three storage widths it was produced for, so that
// byte-level encode/decode (owned by the caller's columnar storage layer,
// spec §6) narrows it correctly. This mirrors design note §9: "the only
// polymorphism is which of three integer widths stores this value", here
// implemented as one tagged struct rather than three monomorphized types,
// matching the naming scheme (Decimal64/Decimal128) that
// matrixorigin-matrixone/pkg/container/types uses for the same idea.
type Decimal struct {
	Width    int  // 4, 8 or 16
	Unscaled I128 // magnitude + sign, widened regardless of Width
}

// Width4/Width8/Width16 are the only valid Decimal.Width values.
const (
	Width4  = 4
	Width8  = 8
	Width16 = 16
)

// NewDecimal builds a Decimal of the given width from a signed I128
// unscaled value. It does not validate the value against any TypeDesc;
// callers that need that check should use Decimal.FitsPrecision.
func NewDecimal(width int, unscaled I128) Decimal {
	return Decimal{Width: width, Unscaled: unscaled}
}

// DecimalFromInt64 builds a Decimal directly from a signed 64-bit unscaled
// value at the given width.
func DecimalFromInt64(width int, unscaled int64) Decimal {
	return Decimal{Width: width, Unscaled: I128FromInt64(unscaled)}
}

// Zero returns the zero value at the given width.
func Zero(width int) Decimal {
	return Decimal{Width: width}
}

// Sign returns -1, 0 or 1.
func (d Decimal) Sign() int { return d.Unscaled.Sign() }

// FitsPrecision reports whether |d.Unscaled| <= MAX_UNSCALED[t.Precision].
func (d Decimal) FitsPrecision(t TypeDesc) bool {
	mag, _ := d.Unscaled.Abs()
	return mag.Cmp(MaxUnscaledI128(t.Precision)) <= 0
}

// WithWidth returns a copy of d tagged with a different storage width,
// without touching the unscaled value. Use ScaleTo when the destination
// type also has a different scale.
//
// Narrowing to a smaller width without checking FitsNarrowerWidth first
// produces a Decimal whose Unscaled no longer fits the Go integer type that
// width nominally corresponds to — the value itself is untouched, only the
// tag changes, so the caller is responsible for having verified the
// narrowing is safe.
func (d Decimal) WithWidth(width int) Decimal {
	return Decimal{Width: width, Unscaled: d.Unscaled}
}

// FitsNarrowerWidth reports whether d.Unscaled fits within the signed Go
// integer range that width nominally corresponds to (int32 for Width4,
// int64 for Width8) — a checked companion to WithWidth and to the caller's
// own columnar narrowing, distinct from the explicitly unchecked
// decimal-to-integer cast ToInt64 performs (see cast.go).
func (d Decimal) FitsNarrowerWidth(width int) bool {
	return narrowChecked(width, d.Unscaled)
}

// narrowChecked reports whether v fits within the signed range of the Go
// integer type matching width — a checked cast, as opposed to the
// explicitly unchecked truncating cast ToInt64 performs (see cast.go).
func narrowChecked(width int, v I128) bool {
	switch width {
	case Width4:
		return v.Cmp(I128FromInt64(-1<<31)) >= 0 && v.Cmp(I128FromInt64(1<<31-1)) <= 0
	case Width8:
		return v.Cmp(I128FromInt64(-1<<63)) >= 0 && v.Cmp(I128FromInt64(1<<63-1)) <= 0
	default:
		return true
	}
}
