package cli

import (
	"fmt"

	"github.com/mosegrant/capkit/internal/transcript"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [transcript.json] [pattern]",
	Short: "Search caption text, optionally replacing matches",
	Long: `Search every segment's caption text for a pattern.

Patterns are regular expressions; an invalid pattern falls back to a
literal-string search. With --replace, a case-insensitive global
substitution is applied and the updated transcript written out.

Examples:
  capkit search transcript.json "the" --whole-word
  capkit search transcript.json "colou?r" --case-sensitive
  capkit search transcript.json teh --replace the -o fixed.json`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().Bool("case-sensitive", false, "Match case exactly")
	searchCmd.Flags().Bool("whole-word", false, "Match whole words only")
	searchCmd.Flags().String("replace", "", "Replacement text; rewrites the transcript")
}

func runSearch(cmd *cobra.Command, args []string) error {
	transcriptPath := args[0]
	pattern := args[1]

	caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")
	wholeWord, _ := cmd.Flags().GetBool("whole-word")
	replaceTerm, _ := cmd.Flags().GetString("replace")
	outputPath, _ := cmd.Flags().GetString("output")

	tr, err := transcript.Read(transcriptPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("replace") {
		tr.Segments = transcript.ReplaceAll(tr.Segments, pattern, replaceTerm)
		if outputPath == "" {
			outputPath = transcriptPath
		}
		if err := transcript.Write(outputPath, tr); err != nil {
			return err
		}
		logger.Infow("replacement written", "path", outputPath)
		return nil
	}

	matches := transcript.Search(tr.Segments, pattern, transcript.SearchOptions{
		CaseSensitive: caseSensitive,
		WholeWord:     wholeWord,
	})
	for _, m := range matches {
		fmt.Printf("segment %d [%s] %d-%d: %s\n",
			m.SegmentIndex, m.SegmentID, m.MatchStart, m.MatchEnd, m.Context)
	}
	logger.Infow("search complete", "matches", len(matches))
	return nil
}
