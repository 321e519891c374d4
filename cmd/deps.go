package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/boostpow/boostpub/internal/logging"
	"github.com/boostpow/boostpub/internal/pricing"
	"github.com/boostpow/boostpub/internal/props"
	"github.com/boostpow/boostpub/internal/search"
	"github.com/boostpow/boostpub/internal/store"
)

// keepSnapshots bounds the leaderboard history kept for offline use.
const keepSnapshots = 50

var errNoSnapshot = errors.New("no saved leaderboard; run `boostpub props` while online first")

// deps are the components a command needs, built from flags and env.
type deps struct {
	logger    *zap.Logger
	store     *store.Store
	base      props.Props
	pricing   pricing.Config
	assembler *props.Assembler
}

// openDeps opens the store, loads the base props and wires the search
// provider into an assembler.
func openDeps(cmd *cobra.Command) (*deps, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.New(logging.Options{Verbose: verbose})
	if err != nil {
		return nil, err
	}

	base, err := loadBase(cmd)
	if err != nil {
		return nil, err
	}

	pc := pricing.ConfigFromEnv()
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := search.NewProviderFromEnv(logger, st.EventRepo())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("search provider: %w", err)
	}

	return &deps{
		logger:  logger,
		store:   st,
		base:    base,
		pricing: pc,
		assembler: props.NewAssembler(provider,
			props.WithLogger(logger),
			props.WithSnapshots(st.SnapshotRepo()),
		),
	}, nil
}

func (d *deps) Close() {
	if err := d.store.SnapshotRepo().Prune(context.Background(), keepSnapshots); err != nil {
		d.logger.Warn("pruning snapshots", zap.Error(err))
	}
	_ = d.store.Close()
	_ = d.logger.Sync()
}

func loadBase(cmd *cobra.Command) (props.Props, error) {
	path, _ := cmd.Flags().GetString("props")
	if path == "" {
		return props.Default(), nil
	}
	return props.LoadFile(path)
}

// assemble returns props for base, fetched live or rebuilt from the last
// saved leaderboard when offline is set.
func (d *deps) assemble(ctx context.Context, base props.Props, offline bool) (props.Props, error) {
	if !offline {
		return d.assembler.Prepare(ctx, base)
	}

	snap, err := d.store.SnapshotRepo().Latest(ctx)
	if err != nil {
		return props.Props{}, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return props.Props{}, errNoSnapshot
	}
	d.logger.Debug("using saved leaderboard",
		zap.Int64("sequence", snap.Sequence),
		zap.Time("saved_at", snap.Timestamp),
		zap.Int("signals", len(snap.Data.Signals)),
	)
	return props.Apply(base, snap.Data.Signals), nil
}

// applyWindowFlags overlays --hours, --tag and --rank-markers on base.
func applyWindowFlags(cmd *cobra.Command, base props.Props) (props.Props, error) {
	p := base.Clone()
	if cmd.Flags().Changed("hours") {
		p.BoostRank.Hours, _ = cmd.Flags().GetFloat64("hours")
	}
	if cmd.Flags().Changed("tag") {
		p.BoostRank.Tag, _ = cmd.Flags().GetString("tag")
	}
	if cmd.Flags().Changed("rank-markers") {
		v, _ := cmd.Flags().GetString("rank-markers")
		req, err := props.ParseRankMarkers(v)
		if err != nil {
			return p, err
		}
		p.Slider.RankMarkers = req
	}
	return p, nil
}

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("hours", 0, "Leaderboard lookback window in hours (default from props, else 24)")
	cmd.Flags().String("tag", "", "Only rank boosts with this tag")
	cmd.Flags().String("rank-markers", "", `Rank markers: "true", "false" or a list like "1,5,10"`)
}
