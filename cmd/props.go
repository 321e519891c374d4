package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var propsCmd = &cobra.Command{
	Use:   "props",
	Short: "Assemble widget props from the current leaderboard",
	Long: "Fetch the recent leaderboard, compute difficulty bounds and rank markers, " +
		"and print the resulting props as JSON. The leaderboard is saved for --offline use.",
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
		out, err := d.assemble(cmd.Context(), base, offline)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode props: %w", err)
		}
		return nil
	},
}

func init() {
	addWindowFlags(propsCmd)
	propsCmd.Flags().Bool("offline", false, "Use the last saved leaderboard instead of searching")
}
