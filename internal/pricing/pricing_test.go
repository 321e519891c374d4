package pricing

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name       string
		difficulty float64
		rate       string
		want       int64
	}{
		{"whole", 5, "1000", 5000},
		{"fraction rounds up", 0.0015, "1000", 2},
		{"exact fraction", 0.1, "30", 3},
		{"zero", 0, "1000", 0},
		{"negative", -3, "1000", 0},
		{"sub-sat rate", 7, "0.25", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuote(tt.difficulty, decimal.RequireFromString(tt.rate))
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Sats)
		})
	}
}

func TestQuoteJSON(t *testing.T) {
	q, err := NewQuote(1.5, decimal.NewFromInt(3))
	require.NoError(t, err)
	b, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"difficulty":"1.5","satsPerDifficulty":"3","sats":5}`, string(b))
	assert.Equal(t, "1.5 difficulty × 3 sats = 5 sats", q.String())
}

func TestNewQuoteRejectsNonFinite(t *testing.T) {
	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewQuote(d, DefaultSatsPerDifficulty)
		assert.ErrorIs(t, err, ErrInvalidDifficulty, "difficulty %v", d)
	}
}

func TestNewQuoteOverflow(t *testing.T) {
	_, err := NewQuote(1e16, DefaultSatsPerDifficulty)
	assert.ErrorIs(t, err, ErrQuoteOverflow)

	q, err := NewQuote(9e15, DefaultSatsPerDifficulty)
	require.NoError(t, err)
	assert.Equal(t, int64(9e18), q.Sats)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("BOOSTPUB_SATS_PER_DIFFICULTY", "12.5")
	cfg := ConfigFromEnv()
	assert.True(t, cfg.SatsPerDifficulty.Equal(decimal.RequireFromString("12.5")))
	q, err := cfg.Quote(2)
	require.NoError(t, err)
	assert.Equal(t, int64(25), q.Sats)

	t.Setenv("BOOSTPUB_SATS_PER_DIFFICULTY", "lots")
	assert.True(t, ConfigFromEnv().SatsPerDifficulty.Equal(DefaultSatsPerDifficulty))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{SatsPerDifficulty: decimal.Zero}.Validate())
	assert.Error(t, Config{SatsPerDifficulty: decimal.NewFromInt(-1)}.Validate())
}
