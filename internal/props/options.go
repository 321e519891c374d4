package props

import (
	"time"

	"github.com/boostpow/boostpub/internal/boost"
	"github.com/boostpow/boostpub/internal/search"
)

// SearchOptions builds the leaderboard query for a window of hours ending at
// now, narrowed by the filters in b.
func SearchOptions(b BoostRankProps, now time.Time, hours float64) search.Options {
	return search.Options{
		MinedTimeFrom: boost.MinedTimeFrom(now, hours),
		Tag:           b.Tag,
		Category:      b.Category,
		Content:       b.Content,
		Limit:         b.Limit,
	}
}
