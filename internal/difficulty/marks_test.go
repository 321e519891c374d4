package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markValues(marks []Mark) []float64 {
	out := make([]float64, len(marks))
	for i, m := range marks {
		out[i] = m.Value
	}
	return out
}

func TestSliderMarks_EvenSpacing(t *testing.T) {
	marks := SliderMarks(0, 100, 25, 0.035)
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, markValues(marks))
	assert.Equal(t, "0", marks[0].Label)
	assert.Equal(t, "100", marks[4].Label)
}

func TestSliderMarks_StepOneDropsEdges(t *testing.T) {
	marks := SliderMarks(0, 100, 1, 0.035)
	values := markValues(marks)

	require.GreaterOrEqual(t, len(values), 3)
	assert.Equal(t, 0.0, values[0])
	assert.Equal(t, 4.0, values[1], "marks within the margin of min are skipped")
	assert.NotContains(t, values, 1.0)
	assert.NotContains(t, values, 99.0)
	assert.Equal(t, 98.0, values[len(values)-2])
	assert.Equal(t, 100.0, values[len(values)-1])
}

func TestSliderMarks_ZeroStep(t *testing.T) {
	assert.Empty(t, SliderMarks(0, 100, 0, 0.035))
	assert.Empty(t, SliderMarks(0, 100, -5, 0.035))
}

func TestSliderMarks_InvalidMarginFallsBack(t *testing.T) {
	want := markValues(SliderMarks(0, 100, 1, DefaultMarginRate))
	for _, margin := range []float64{0, -1, 1, 2.5} {
		assert.Equal(t, want, markValues(SliderMarks(0, 100, 1, margin)), "margin %v", margin)
	}
}

func TestSliderMarks_CustomMargin(t *testing.T) {
	marks := SliderMarks(0, 100, 10, 0.15)
	assert.Equal(t, []float64{0, 20, 30, 40, 50, 60, 70, 80, 100}, markValues(marks))
}

func TestSliderMarks_LastMarkTooCloseToMax(t *testing.T) {
	marks := SliderMarks(0, 101, 25, 0.035)
	assert.Equal(t, []float64{0, 25, 50, 75, 101}, markValues(marks))

	marks = SliderMarks(0, 102, 50, 0.035)
	assert.Equal(t, []float64{0, 50, 102}, markValues(marks))
}

func TestSliderMarks_StepLargerThanRange(t *testing.T) {
	marks := SliderMarks(10, 20, 50, 0.035)
	assert.Equal(t, []float64{10, 20}, markValues(marks))
}

func TestSliderMarks_EqualBounds(t *testing.T) {
	marks := SliderMarks(7, 7, 1, 0.035)
	assert.Equal(t, []float64{7}, markValues(marks))
}

func TestSliderMarks_StartsAtMinEndsAtMax(t *testing.T) {
	cases := []struct {
		min, max float64
		step     int
	}{
		{0, 100, 1},
		{1, 10, 3},
		{3, 1000, 7},
		{12, 625, 25},
		{0.5, 9.5, 2},
		{100, 101, 1},
	}

	for _, c := range cases {
		marks := SliderMarks(c.min, c.max, c.step, 0.035)
		require.NotEmpty(t, marks)
		assert.Equal(t, c.min, marks[0].Value)
		assert.Equal(t, c.max, marks[len(marks)-1].Value)
		for i := 1; i < len(marks); i++ {
			assert.Less(t, marks[i-1].Value, marks[i].Value, "marks must be strictly ascending: %v", markValues(marks))
		}
	}
}

func TestSliderMarks_NegativeRange(t *testing.T) {
	marks := SliderMarks(-10, 10, 5, 0.035)
	assert.Equal(t, []float64{-10, -5, 0, 5, 10}, markValues(marks))
}
