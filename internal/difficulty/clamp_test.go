package difficulty

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max float64
		want            float64
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{11, 1, 10, 10},
		{1, 1, 10, 1},
		{10, 1, 10, 10},
		{-3.5, -5, 5, -3.5},
		{7, 7, 7, 7},
		{2.25, 1.5, 2, 2},
	}

	for _, tt := range tests {
		got := Clamp(tt.value, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClamp_AlwaysInRange(t *testing.T) {
	for min := -20.0; min <= 20; min += 5 {
		for max := min; max <= min+40; max += 7 {
			for v := -50.0; v <= 50; v += 3 {
				got := Clamp(v, min, max)
				if got < min || got > max {
					t.Fatalf("Clamp(%v, %v, %v) = %v, out of range", v, min, max, got)
				}
				if v >= min && v <= max && got != v {
					t.Fatalf("Clamp(%v, %v, %v) = %v, want unchanged", v, min, max, got)
				}
			}
		}
	}
}
