package cli

import (
	"github.com/mosegrant/capkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "capkit",
	Short: "Caption timing and rendering toolkit for video",
	Long: `Capkit renders time-synchronized, word-highlighted captions from a
timestamped transcript.

It can preview caption presets, batch-render caption frames for burn-in,
and run word-level search and replace over a transcript.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output path")
}
