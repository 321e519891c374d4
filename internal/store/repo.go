package store

import (
	"context"
	"time"

	"github.com/boostpow/boostpub/internal/boost"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact match when set
}

// SnapshotData is the leaderboard captured by one props assembly.
type SnapshotData struct {
	Version       int              `json:"version"`
	Hours         float64          `json:"hours"`
	MinedTimeFrom int64            `json:"minedTimeFrom"`
	Signals       boost.RankedList `json:"signals"`
}

// Snapshot represents a point-in-time capture of the leaderboard.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages leaderboard snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. A zero Sequence is assigned from the
	// shared counter.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SearchEventData captures a single leaderboard search.
type SearchEventData struct {
	RequestID     string
	Provider      string
	Purpose       string
	MinedTimeFrom int64
	Query         string
	ResultCount   int
	LatencyMs     int64
	Success       bool
	ErrorMessage  string
	ResponseBody  string
}

// SearchEventRecord is a stored search event.
type SearchEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SearchEventData
}

// PurposeStats aggregates search events sharing a purpose.
type PurposeStats struct {
	Purpose        string
	Calls          int
	Failures       int
	AvgLatencyMs   int64
	AvgResultCount float64
}

// EventRepo provides append and query access to search events.
type EventRepo interface {
	// AppendSearch records a search call.
	AppendSearch(ctx context.Context, data SearchEventData) error

	// QuerySearchEvents returns events newest first.
	QuerySearchEvents(ctx context.Context, opts QueryOpts) ([]SearchEventRecord, error)

	// GetSearchEvent returns the event with the given ID, or nil if absent.
	GetSearchEvent(ctx context.Context, id int) (*SearchEventRecord, error)

	// SearchStatsByPurpose aggregates events per purpose.
	SearchStatsByPurpose(ctx context.Context) ([]PurposeStats, error)
}
