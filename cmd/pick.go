package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boostpow/boostpub/internal/difficulty"
	"github.com/boostpow/boostpub/internal/picker"
)

var errNoChoice = errors.New("no difficulty chosen")

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a difficulty interactively",
	Long: "Open a terminal slider over the current leaderboard. The chosen " +
		"difficulty is printed to stdout.",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		p, err := d.assemble(cmd.Context(), base, offline)
		if err != nil {
			return err
		}

		value, ok, err := picker.Run(p, d.pricing)
		if err != nil {
			return err
		}
		if !ok {
			return errNoChoice
		}
		fmt.Println(difficulty.FormatValue(value))
		return nil
	},
}

func init() {
	addWindowFlags(pickCmd)
	pickCmd.Flags().Bool("offline", false, "Use the last saved leaderboard instead of searching")
}
