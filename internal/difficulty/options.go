package difficulty

// Option is one entry of the difficulty select box.
type Option struct {
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// NewOption returns an option labelled with its own value.
func NewOption(value float64) Option {
	return Option{Value: value, Label: FormatValue(value)}
}

// Text returns the label, or the formatted value when no label is set.
func (o Option) Text() string {
	if o.Label != "" {
		return o.Label
	}
	return FormatValue(o.Value)
}

// Options enumerates the selectable difficulties: minDiff first, every
// multiple of step strictly between the bounds, and maxDiff last.
// Both bounds are always present; equal bounds produce a single option.
func Options(minDiff, maxDiff float64, step int) []Option {
	opts := []Option{NewOption(minDiff)}
	if maxDiff == minDiff {
		return opts
	}
	for _, v := range multiplesBetween(minDiff, maxDiff, step) {
		opts = append(opts, NewOption(v))
	}
	return append(opts, NewOption(maxDiff))
}
