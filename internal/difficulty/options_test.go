package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func optionValues(opts []Option) []float64 {
	out := make([]float64, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		step     int
		want     []float64
	}{
		{"multiples plus bounds", 1, 10, 3, []float64{1, 3, 6, 9, 10}},
		{"max is a multiple", 1, 9, 3, []float64{1, 3, 6, 9}},
		{"min is a multiple", 3, 12, 3, []float64{3, 6, 9, 12}},
		{"step one", 1, 4, 1, []float64{1, 2, 3, 4}},
		{"step larger than range", 2, 5, 10, []float64{2, 5}},
		{"zero step", 2, 5, 0, []float64{2, 5}},
		{"equal bounds", 4, 4, 1, []float64{4}},
		{"fractional bounds", 0.5, 4.5, 2, []float64{0.5, 2, 4, 4.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, optionValues(Options(tt.min, tt.max, tt.step)))
		})
	}
}

func TestOptions_LabelsDefaultToValue(t *testing.T) {
	opts := Options(1, 10, 3)
	for _, o := range opts {
		assert.Equal(t, FormatValue(o.Value), o.Label)
	}

	bare := Option{Value: 2.5}
	assert.Equal(t, "2.5", bare.Text())

	labelled := Option{Value: 3, Label: "three"}
	assert.Equal(t, "three", labelled.Text())
}
