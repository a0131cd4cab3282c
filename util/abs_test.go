package util

import "testing"

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(int32(-100)) != 100 {
		t.Error("Abs(int32(-100)) should be 100")
	}
	if Abs(float32(-3.14)) != float32(3.14) {
		t.Error("Abs(float32(-3.14)) should be 3.14")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want int32
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
		{-40000, -32767, 32767, -32767},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := Clamp(float32(1.5), -1, 1); got != 1 {
		t.Errorf("Clamp(1.5, -1, 1) = %v, want 1", got)
	}
}
