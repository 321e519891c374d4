// Package search fetches the ranked Boost leaderboard from a graph search
// backend.
package search

import (
	"context"
	"net/url"
	"strconv"

	"github.com/boostpow/boostpub/internal/boost"
)

// Provider is the core abstraction over the ranked-search backend.
type Provider interface {
	// Search returns the boosts matching opts, ordered from the highest
	// total difficulty to the lowest. An empty list is not an error.
	Search(ctx context.Context, opts Options) (*Result, error)

	// Name identifies the backend for logging.
	Name() string
}

// Options narrows a leaderboard search.
type Options struct {
	// MinedTimeFrom is the Unix time, in seconds, of the oldest boost to
	// include.
	MinedTimeFrom int64 `json:"minedTimeFrom"`

	// Optional filters. Empty values are not sent.
	Tag      string `json:"tag,omitempty"`
	Category string `json:"category,omitempty"`
	Content  string `json:"content,omitempty"`

	// Limit caps the number of returned entries. Zero leaves it to the
	// backend.
	Limit int `json:"limit,omitempty"`
}

// Values encodes the options as query parameters.
func (o Options) Values() url.Values {
	v := url.Values{}
	v.Set("minedTimeFrom", strconv.FormatInt(o.MinedTimeFrom, 10))
	if o.Tag != "" {
		v.Set("tag", o.Tag)
	}
	if o.Category != "" {
		v.Set("category", o.Category)
	}
	if o.Content != "" {
		v.Set("content", o.Content)
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	return v
}

// Result holds one search response.
type Result struct {
	List boost.RankedList `json:"list"`
}
