package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mosegrant/capkit/internal/transcript"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [transcript.json]",
	Short: "Export caption text as an SRT or VTT file",
	Long: `Export the transcript's caption text in a plain subtitle format for
players that cannot consume the styled render path.

Examples:
  capkit export transcript.json -o captions.srt
  capkit export transcript.json --format vtt -o captions.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "srt", "Output subtitle format (srt, vtt)")
}

func runExport(cmd *cobra.Command, args []string) error {
	transcriptPath := args[0]
	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	tr, err := transcript.Read(transcriptPath)
	if err != nil {
		return err
	}

	ext := "." + strings.ToLower(formatStr)
	if outputPath == "" {
		base := strings.TrimSuffix(transcriptPath, filepath.Ext(transcriptPath))
		outputPath = base + ext
	}

	switch strings.ToLower(formatStr) {
	case "srt":
		err = transcript.ExportSRT(outputPath, tr)
	case "vtt":
		err = transcript.ExportVTT(outputPath, tr)
	default:
		return fmt.Errorf("unsupported format %q: use srt or vtt", formatStr)
	}
	if err != nil {
		return err
	}

	logger.Infow("export complete", "path", outputPath, "segments", len(tr.Segments))
	return nil
}
