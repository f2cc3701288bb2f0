package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if got, ok := MulOverflowSafe(7, 8); !ok || got != 56 {
		t.Fatalf("MulOverflowSafe(7,8)=%d,%v want 56,true", got, ok)
	}
	if got, ok := MulOverflowSafe(0, math.MaxInt); !ok || got != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt)=%d,%v want 0,true", got, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow for MaxInt/2+1 * 2")
	}
	if _, ok := MulOverflowSafe(-1, 8); ok {
		t.Fatalf("negative operand should be rejected")
	}
}

func TestSlotBytes(t *testing.T) {
	n, err := SlotBytes(3, 16, 8)
	if err != nil || n != 56 {
		t.Fatalf("SlotBytes(3,16,8)=%d,%v want 56,nil", n, err)
	}
	if _, err := SlotBytes(-1, 8, 8); err == nil {
		t.Fatalf("expected error for negative count")
	}
	if _, err := SlotBytes(math.MaxInt, 2, 0); err == nil {
		t.Fatalf("expected multiplication overflow")
	}
	if _, err := SlotBytes(1, math.MaxInt, 1); err == nil {
		t.Fatalf("expected addition overflow")
	}
}
