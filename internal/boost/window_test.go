package boost

import (
	"testing"
	"time"
)

func TestMinedTimeFrom(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		hours float64
		want  int64
	}{
		{24, now.Unix() - 86400},
		{1, now.Unix() - 3600},
		{0.5, now.Unix() - 1800},
		{0, now.Unix()},
	}

	for _, tt := range tests {
		got := MinedTimeFrom(now, tt.hours)
		if got != tt.want {
			t.Errorf("MinedTimeFrom(%v) = %d, want %d", tt.hours, got, tt.want)
		}
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Unix(1_700_000_000, 0)
	c := FixedClock(at)
	if !c.Now().Equal(at) {
		t.Fatalf("expected %v, got %v", at, c.Now())
	}
}
