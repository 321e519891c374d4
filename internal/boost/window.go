package boost

import (
	"math"
	"time"
)

// DefaultHours is the leaderboard lookback used when none is configured.
const DefaultHours = 24

// Clock supplies the current time so lookback windows can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// MinedTimeFrom returns the Unix time, in seconds, that lies the given
// number of hours before now.
func MinedTimeFrom(now time.Time, hours float64) int64 {
	return now.Unix() - int64(math.Round(hours*3600))
}
