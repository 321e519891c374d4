// Package pricing converts a Boost difficulty into the satoshis a publisher
// pays for it.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/shopspring/decimal"
)

// DefaultSatsPerDifficulty is the rate used when none is configured.
var DefaultSatsPerDifficulty = decimal.NewFromInt(1000)

var (
	// ErrInvalidDifficulty is returned for NaN or infinite difficulties.
	ErrInvalidDifficulty = errors.New("difficulty must be a finite number")
	// ErrQuoteOverflow is returned when the total does not fit in int64 sats.
	ErrQuoteOverflow = errors.New("quote exceeds the largest payable amount")
)

var maxSats = decimal.NewFromInt(math.MaxInt64)

// Quote is the price of one boost.
type Quote struct {
	Difficulty        decimal.Decimal `json:"difficulty"`
	SatsPerDifficulty decimal.Decimal `json:"satsPerDifficulty"`
	// Sats is the total, rounded up to a whole satoshi.
	Sats int64 `json:"sats"`
}

// Config holds the pricing rate.
type Config struct {
	SatsPerDifficulty decimal.Decimal
}

// DefaultConfig returns a Config using DefaultSatsPerDifficulty.
func DefaultConfig() Config {
	return Config{SatsPerDifficulty: DefaultSatsPerDifficulty}
}

// ConfigFromEnv reads BOOSTPUB_SATS_PER_DIFFICULTY, falling back to the
// default for unset or unparsable values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("BOOSTPUB_SATS_PER_DIFFICULTY"); v != "" {
		if rate, err := decimal.NewFromString(v); err == nil {
			cfg.SatsPerDifficulty = rate
		}
	}
	return cfg
}

// Validate rejects rates that are not positive.
func (c Config) Validate() error {
	if !c.SatsPerDifficulty.IsPositive() {
		return fmt.Errorf("sats per difficulty must be positive, got %s", c.SatsPerDifficulty)
	}
	return nil
}

// Quote prices difficulty at the configured rate.
func (c Config) Quote(difficulty float64) (Quote, error) {
	return NewQuote(difficulty, c.SatsPerDifficulty)
}

// NewQuote prices difficulty at rate. Negative difficulties price at zero.
func NewQuote(difficulty float64, rate decimal.Decimal) (Quote, error) {
	if math.IsNaN(difficulty) || math.IsInf(difficulty, 0) {
		return Quote{}, fmt.Errorf("%w: %v", ErrInvalidDifficulty, difficulty)
	}
	d := decimal.NewFromFloat(difficulty)
	if d.IsNegative() {
		d = decimal.Zero
	}
	total := d.Mul(rate).Ceil()
	if total.GreaterThan(maxSats) {
		return Quote{}, fmt.Errorf("%w: %s sats", ErrQuoteOverflow, total)
	}
	return Quote{
		Difficulty:        d,
		SatsPerDifficulty: rate,
		Sats:              total.IntPart(),
	}, nil
}

// String formats the quote for terminal output.
func (q Quote) String() string {
	return fmt.Sprintf("%s difficulty × %s sats = %d sats", q.Difficulty, q.SatsPerDifficulty, q.Sats)
}
