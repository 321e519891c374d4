package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boostpow/boostpub/internal/difficulty"
)

var marksCmd = &cobra.Command{
	Use:   "marks",
	Short: "Print slider marks for a difficulty range",
	RunE: func(cmd *cobra.Command, args []string) error {
		lo, _ := cmd.Flags().GetFloat64("min")
		hi, _ := cmd.Flags().GetFloat64("max")
		step, _ := cmd.Flags().GetInt("step")
		margin, _ := cmd.Flags().GetFloat64("margin")
		asJSON, _ := cmd.Flags().GetBool("json")

		if err := difficulty.CheckRange(lo, hi, step); err != nil {
			return err
		}
		marks := difficulty.SliderMarks(lo, hi, step, margin)
		if asJSON {
			return json.NewEncoder(os.Stdout).Encode(marks)
		}
		for _, m := range marks {
			fmt.Printf("%-12s %s\n", difficulty.FormatValue(m.Value), m.Label)
		}
		return nil
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print select options for a difficulty range",
	RunE: func(cmd *cobra.Command, args []string) error {
		lo, _ := cmd.Flags().GetFloat64("min")
		hi, _ := cmd.Flags().GetFloat64("max")
		step, _ := cmd.Flags().GetInt("step")
		asJSON, _ := cmd.Flags().GetBool("json")

		if err := difficulty.CheckRange(lo, hi, step); err != nil {
			return err
		}
		opts := difficulty.Options(lo, hi, step)
		if asJSON {
			return json.NewEncoder(os.Stdout).Encode(opts)
		}
		for _, o := range opts {
			fmt.Println(o.Text())
		}
		return nil
	},
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("min", 0, "Lowest difficulty")
	cmd.Flags().Float64("max", 0, "Highest difficulty")
	cmd.Flags().Int("step", 1, "Spacing between generated values")
	cmd.Flags().Bool("json", false, "Print JSON instead of one value per line")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")
}

func init() {
	addRangeFlags(marksCmd)
	marksCmd.Flags().Float64("margin", difficulty.DefaultMarginRate, "Drop marks closer than this fraction of the range to either end")
	addRangeFlags(optionsCmd)
}
