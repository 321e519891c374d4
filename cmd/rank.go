package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/boostpow/boostpub/internal/boost"
	"github.com/boostpow/boostpub/internal/difficulty"
	"github.com/boostpow/boostpub/internal/pricing"
	"github.com/boostpow/boostpub/internal/search"
)

var rankCmd = &cobra.Command{
	Use:   "rank <difficulty>",
	Short: "Show where a difficulty would rank on the leaderboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseDifficulty(args[0])
		if err != nil {
			return err
		}
		offline, _ := cmd.Flags().GetBool("offline")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		base, err := applyWindowFlags(cmd, d.base)
		if err != nil {
			return err
		}

		var list boost.RankedList
		if offline {
			p, err := d.assemble(cmd.Context(), base, true)
			if err != nil {
				return err
			}
			list = p.Signals
		} else {
			ctx := search.WithPurpose(cmd.Context(), "rank")
			if list, err = d.assembler.Signals(ctx, base.BoostRank); err != nil {
				return err
			}
		}

		if !boost.HasRankData(list) {
			fmt.Printf("No boosts in the last %s hours; difficulty %s ranks #1.\n",
				difficulty.FormatValue(base.BoostRank.HoursOrDefault()), difficulty.FormatValue(value))
			return nil
		}

		rank := boost.RankOf(list, value)
		fmt.Printf("Difficulty %s ranks #%d of %d\n", difficulty.FormatValue(value), rank, len(list)+1)
		q, err := d.pricing.Quote(value)
		if err != nil {
			return err
		}
		fmt.Println(q)
		return nil
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote <difficulty>",
	Short: "Price a difficulty in satoshis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseDifficulty(args[0])
		if err != nil {
			return err
		}
		pc := pricing.ConfigFromEnv()
		if err := pc.Validate(); err != nil {
			return err
		}
		q, err := pc.Quote(value)
		if err != nil {
			return err
		}
		fmt.Println(q)
		return nil
	},
}

func parseDifficulty(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid difficulty %q: %w", s, err)
	}
	if !difficulty.IsFinite(v) {
		return 0, fmt.Errorf("invalid difficulty %q: %w", s, difficulty.ErrNonFinite)
	}
	return v, nil
}

func init() {
	addWindowFlags(rankCmd)
	rankCmd.Flags().Bool("offline", false, "Rank against the last saved leaderboard")
}
