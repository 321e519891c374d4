package cmd

import (
	"github.com/spf13/cobra"

	"github.com/boostpow/boostpub/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "boostpub",
	Short: "Boost POW difficulty and rank engine for the payment widget",
	Long: "boostpub reads the recent Boost POW leaderboard and turns it into the " +
		"difficulty bounds, slider marks and rank markers the payment widget renders.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BOOSTPUB_DB env var)")
	rootCmd.PersistentFlags().String("props", "", "Base widget props file (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(propsCmd)
	rootCmd.AddCommand(marksCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BOOSTPUB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
