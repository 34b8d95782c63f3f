package transcript

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ExportSRT writes the transcript's caption text as a SubRip file, for
// hand-off to players that cannot consume the styled render path.
func ExportSRT(path string, tr *Transcript) error {
	var sb strings.Builder
	index := 1
	for _, seg := range tr.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}

		sb.WriteString(fmt.Sprintf("%d\n", index))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(seg.Start),
			formatSRTTime(seg.End)))
		sb.WriteString(text)
		sb.WriteString("\n\n")
		index++
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// ExportVTT writes the transcript's caption text as a WebVTT file.
func ExportVTT(path string, tr *Transcript) error {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	index := 1
	for _, seg := range tr.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}

		sb.WriteString(fmt.Sprintf("%d\n", index))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(seg.Start),
			formatVTTTime(seg.End)))
		sb.WriteString(text)
		sb.WriteString("\n\n")
		index++
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func formatSRTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

func formatVTTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
