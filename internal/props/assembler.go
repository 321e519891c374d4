package props

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/boostpow/boostpub/internal/boost"
	"github.com/boostpow/boostpub/internal/search"
	"github.com/boostpow/boostpub/internal/store"
)

// Assembler fetches the current leaderboard and folds it into a base
// configuration.
type Assembler struct {
	provider    search.Provider
	clock       boost.Clock
	logger      *zap.Logger
	snapshots   store.SnapshotRepo
	sortSignals bool
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock sets the clock used to anchor the lookback window.
func WithClock(c boost.Clock) Option {
	return func(a *Assembler) { a.clock = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *Assembler) { a.logger = l }
}

// WithSnapshots records every fetched leaderboard in repo.
func WithSnapshots(repo store.SnapshotRepo) Option {
	return func(a *Assembler) { a.snapshots = repo }
}

// WithSortedSignals sorts the leaderboard by difficulty before use instead of
// trusting the provider's order.
func WithSortedSignals() Option {
	return func(a *Assembler) { a.sortSignals = true }
}

// NewAssembler returns an Assembler that searches through p.
func NewAssembler(p search.Provider, opts ...Option) *Assembler {
	a := &Assembler{
		provider: p,
		clock:    boost.SystemClock{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Prepare searches the leaderboard window described by base.BoostRank and
// returns base with bounds, rank markers and signals filled in. Search
// failures are returned unchanged in the error chain.
func (a *Assembler) Prepare(ctx context.Context, base Props) (Props, error) {
	list, err := a.Signals(ctx, base.BoostRank)
	if err != nil {
		return Props{}, err
	}

	out := Apply(base, list)
	a.logger.Debug("props assembled",
		zap.Int("signals", len(list)),
		zap.Float64("min", out.Diff.Min),
		zap.Float64("max", out.Diff.Max),
		zap.Int("rank_markers", len(out.Slider.SliderRankMarkers)),
	)
	return out, nil
}

// Signals fetches the leaderboard for the window described by b. The list
// is never nil.
func (a *Assembler) Signals(ctx context.Context, b BoostRankProps) (boost.RankedList, error) {
	hours := b.HoursOrDefault()
	opts := SearchOptions(b, a.clock.Now(), hours)

	ctx = search.WithDefaultPurpose(ctx, "props")
	res, err := a.provider.Search(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("search boosts: %w", err)
	}

	list := res.List
	if list == nil {
		list = boost.RankedList{}
	}
	if a.sortSignals {
		list = list.SortedDescending()
	}

	if a.snapshots != nil {
		a.recordSnapshot(ctx, hours, opts.MinedTimeFrom, list)
	}
	return list, nil
}

func (a *Assembler) recordSnapshot(ctx context.Context, hours float64, from int64, list boost.RankedList) {
	snap := &store.Snapshot{Data: store.SnapshotData{
		Hours:         hours,
		MinedTimeFrom: from,
		Signals:       list,
	}}
	if err := a.snapshots.Save(ctx, snap); err != nil {
		a.logger.Warn("saving leaderboard snapshot", zap.Error(err))
	}
}
