package components

import (
	"errors"
	"testing"
)

func TestDifficultyInputFloatValue(t *testing.T) {
	tests := []struct {
		text    string
		want    float64
		wantErr bool
	}{
		{"12.5", 12.5, false},
		{" 3 ", 3, false},
		{"", 0, true},
		{"..", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-Infinity", 0, true},
	}
	for _, tt := range tests {
		in := NewDifficultyInput("")
		in.Model.SetValue(tt.text)
		got, err := in.FloatValue()
		if (err != nil) != tt.wantErr {
			t.Fatalf("FloatValue(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("FloatValue(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDifficultyInputRejectsNaN(t *testing.T) {
	in := NewDifficultyInput("")
	in.Model.SetValue("nan")
	if _, err := in.FloatValue(); !errors.Is(err, ErrNotFinite) {
		t.Fatalf("got %v, want ErrNotFinite", err)
	}
}
