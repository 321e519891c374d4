package difficulty

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		step     int
		want     error
	}{
		{"small", 0, 100, 1, nil},
		{"at limit", 0, MaxMarks + 1, 1, nil},
		{"over limit", 0, MaxMarks + 2, 1, ErrTooManyMarks},
		{"huge", 0, 1e9, 1, ErrTooManyMarks},
		{"wide step", 0, 1e9, 1e6, nil},
		{"zero step", 0, 1e9, 0, nil},
		{"inverted", 1e9, 0, 1, nil},
		{"nan", math.NaN(), 10, 1, ErrNonFinite},
		{"inf", 0, math.Inf(1), 1, ErrNonFinite},
		{"neg inf", math.Inf(-1), 0, 1, ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRange(tt.min, tt.max, tt.step)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFitStep(t *testing.T) {
	assert.Equal(t, 5, FitStep(0, 100, 5, 100), "already within limit")
	assert.Equal(t, 0, FitStep(0, 100, 0, 100), "zero step unchanged")

	step := FitStep(0, 1e9, 1, 100)
	assert.GreaterOrEqual(t, step, int(1e7))
	assert.LessOrEqual(t, len(SliderMarks(0, 1e9, step, DefaultMarginRate)), 102)

	step = FitStep(-5e8, 5e8, 3, 50)
	assert.LessOrEqual(t, len(Options(-5e8, 5e8, step)), 52)
}

func TestMultiplesBetween_LargeMagnitude(t *testing.T) {
	got := multiplesBetween(1e17, 1e17+64, 16)
	assert.Equal(t, []float64{1e17 + 16, 1e17 + 32, 1e17 + 48}, got)
	assert.Empty(t, multiplesBetween(math.NaN(), 10, 1))
	assert.Empty(t, multiplesBetween(0, math.Inf(1), 1))
}

func TestSliderMarks_LargeCheckedRange(t *testing.T) {
	require.NoError(t, CheckRange(0, 1e6, 1000))
	marks := SliderMarks(0, 1e6, 1000, DefaultMarginRate)
	assert.Equal(t, 0.0, marks[0].Value)
	assert.Equal(t, 1e6, marks[len(marks)-1].Value)
}
