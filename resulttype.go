package decimal

// This file implements the planner-contract result-type table (spec §6):
// given the operand TypeDescs, what TypeDesc the *result* of each
// arithmetic operation should carry. A query planner calls these before
// ever touching a value, to decide the output column's type; the
// arithmetic kernels in arith.go/divmod.go take the resulting TypeDesc as
// an explicit argument rather than recomputing it, keeping the value-level
// code free of precision-inference policy.
//
// Grounded on the matching precision/scale-inference table in
// original_source/be/src/runtime/decimal-value.h (AluBinaryOperation
// result-type derivations for INSERT/ADD/SUBTRACT/MULTIPLY/DIVIDE/MOD),
// reexpressed against this repo's TypeDesc instead of ColumnType.

// AddSubResultType returns the TypeDesc of x+y or x-y.
func AddSubResultType(x, y TypeDesc) TypeDesc {
	scale := maxInt(x.Scale, y.Scale)
	intDigits := maxInt(x.Precision-x.Scale, y.Precision-y.Scale)
	precision := clampPrecision(intDigits + scale + 1)
	return TypeDesc{Precision: precision, Scale: scale}
}

// MulResultType returns the TypeDesc of x*y.
func MulResultType(x, y TypeDesc) TypeDesc {
	scale := x.Scale + y.Scale
	precision := clampPrecision(x.Precision + y.Precision + 1)
	return TypeDesc{Precision: precision, Scale: minInt(scale, precision)}
}

// DivResultType returns the TypeDesc of x/y.
func DivResultType(x, y TypeDesc) TypeDesc {
	scale := maxInt(4, x.Scale+y.Precision+1)
	precision := clampPrecision(x.Precision - x.Scale + y.Scale + scale)
	return TypeDesc{Precision: precision, Scale: minInt(scale, precision)}
}

// ModResultType returns the TypeDesc of x%y.
func ModResultType(x, y TypeDesc) TypeDesc {
	scale := maxInt(x.Scale, y.Scale)
	intDigits := minInt(x.Precision-x.Scale, y.Precision-y.Scale)
	precision := clampPrecision(intDigits + scale)
	return TypeDesc{Precision: precision, Scale: minInt(scale, precision)}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
