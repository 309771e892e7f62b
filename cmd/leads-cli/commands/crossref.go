package commands

import (
	"fmt"

	"capstone-leads/lib/serviceutil"
	"capstone-leads/lib/telemetry"
	"capstone-leads/services/crossref"

	"github.com/spf13/cobra"
)

var (
	crossrefOutput    *string
	crossrefThreshold *float64
)

func init() {
	crossrefOutput = crossrefCmd.Flags().String("output", crossref.DefaultOutput, "Where to write the matches.")
	crossrefThreshold = crossrefCmd.Flags().Float64("threshold", crossref.DefaultThreshold, "Lowest name similarity accepted as a match (0-1).")
	rootCmd.AddCommand(crossrefCmd)
}

var crossrefCmd = &cobra.Command{
	Use:   "crossref [--output <path/to/matches.csv>] [--threshold <0-1>]",
	Short: "Matches the latest archived licenses to the latest archived places by business name.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, done := openArchive(cmd.Context())
		defer done()

		service := crossref.NewService(
			telemetry.NewScopedAPI("crossref", telemetry.SlogAPI{}),
			store,
		)
		result, err := service.Run(cmd.Context(), crossref.Options{
			Output:    *crossrefOutput,
			Threshold: *crossrefThreshold,
		})
		if err != nil {
			serviceutil.Fatal("cross reference failed", err)
		}

		fmt.Printf(
			"Matched %d of %d licenses against %d places.\nSaved to %s\n",
			len(result.Matches), result.Licenses, result.Places, result.Output,
		)
	},
}
