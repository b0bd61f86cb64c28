/*
Package decimal implements the fixed-point decimal arithmetic core of an
analytical query engine: exact, allocation-free arithmetic over signed
integers interpreted through an externally supplied (precision, scale)
[TypeDesc].

# Representation

Unlike a self-describing decimal type, a [Decimal] in this package never
carries its own precision or scale. It is a tagged pair:

  - Width: which of three storage widths (4, 8 or 16 bytes) the value was
    produced for.
  - Unscaled: the signed integer coefficient, always held widened to
    [I128] regardless of Width.

The numeric value is Unscaled / 10^Scale, where Scale comes from the
[TypeDesc] the caller passes to every operation. The same bit pattern means
different things depending on which TypeDesc accompanies it — this mirrors
how a query planner carries column types separately from column values.

# Storage widths

A [TypeDesc]'s precision determines its storage width via [TypeDesc.ByteWidth]:

	| Precision | Width (bytes) | Max magnitude      |
	| --------- | ------------- | ------------------ |
	| 1-9       | 4             | 999,999,999        |
	| 10-18     | 8             | 18 nines           |
	| 19-38     | 16            | 38 nines           |

[I128] and [I256] are the wide-integer primitives backing this: I128 is the
storage type for a 16-byte decimal's unscaled value and never allocates;
I256 exists solely as an intermediate for multiplication, for the
scale-widened numerator of a divide and for scale alignment in [Compare],
so that none of these loses precision.

# Operations

Parsing ([Parse], [ParseString]) and formatting ([Format], [FormatString])
convert between ASCII decimal literals and Decimal values without ever
going through a floating-point intermediate. Scale conversion ([ScaleTo])
and rounding ([Round]) move a value between scales, optionally applying one
of five [RoundMode] variants. Arithmetic ([Add], [Sub], [Mul], [Div],
[Mod]) and comparison ([Compare]) operate on operand pairs each carrying
their own TypeDesc, with the result TypeDesc supplied by the caller — see
[AddSubResultType], [MulResultType], [DivResultType] and [ModResultType]
for the precision/scale inference a query planner is expected to run
before invoking the kernels themselves. The cast matrix in cast.go converts
to and from Go's native int64, float64, bool and time.Time.

# Error reporting

Every operation that can fail reports this through an explicit boolean (or
small enum) result rather than an error value or a panic: [ParseResultKind]
for Parse, an overflow bool for the arithmetic and scaling kernels, and an
additional isNaN bool for division and modulo to signal division by zero.
This keeps the hot path allocation-free. The Must* family (MustParseString,
MustAdd, and so on) wraps these into panics for callers, such as tests and
fixed program-level constants, that would rather not check every flag.

The package holds no mutable state beyond the package-level power-of-ten
tables computed once in init; every exported function is pure and safe for
concurrent use by any number of goroutines.
*/
package decimal
