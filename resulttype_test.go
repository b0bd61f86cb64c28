package decimal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddSubResultType(t *testing.T) {
	x := TypeDesc{Precision: 10, Scale: 2}
	y := TypeDesc{Precision: 8, Scale: 4}
	got := AddSubResultType(x, y)
	// intDigits = max(10-2, 8-4) = max(8,4) = 8; scale = max(2,4) = 4
	// precision = 8+4+1 = 13
	want := TypeDesc{Precision: 13, Scale: 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AddSubResultType mismatch (-want +got):\n%s", diff)
	}
}

func TestMulResultType(t *testing.T) {
	x := TypeDesc{Precision: 10, Scale: 2}
	y := TypeDesc{Precision: 8, Scale: 4}
	got := MulResultType(x, y)
	want := TypeDesc{Precision: 19, Scale: 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MulResultType mismatch (-want +got):\n%s", diff)
	}
}

func TestMulResultType_ClampsToMaxPrecision(t *testing.T) {
	x := TypeDesc{Precision: 38, Scale: 20}
	y := TypeDesc{Precision: 38, Scale: 20}
	got := MulResultType(x, y)
	if got.Precision != MaxPrecision {
		t.Errorf("MulResultType precision = %d, want %d", got.Precision, MaxPrecision)
	}
}

func TestDivResultType(t *testing.T) {
	x := TypeDesc{Precision: 10, Scale: 2}
	y := TypeDesc{Precision: 8, Scale: 4}
	got := DivResultType(x, y)
	// scale = max(4, 2+8+1) = 11; precision = (10-2)+4+11 = 23
	want := TypeDesc{Precision: 23, Scale: 11}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DivResultType mismatch (-want +got):\n%s", diff)
	}
}

func TestModResultType(t *testing.T) {
	x := TypeDesc{Precision: 10, Scale: 2}
	y := TypeDesc{Precision: 8, Scale: 4}
	got := ModResultType(x, y)
	// intDigits = min(8,4) = 4; scale = max(2,4) = 4; precision = 8
	want := TypeDesc{Precision: 8, Scale: 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ModResultType mismatch (-want +got):\n%s", diff)
	}
}
