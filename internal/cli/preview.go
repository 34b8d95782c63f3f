package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/mosegrant/capkit/internal/canvas"
	"github.com/mosegrant/capkit/internal/engine"
	"github.com/mosegrant/capkit/internal/style"
	"github.com/mosegrant/capkit/internal/transcript"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render one demo loop of a caption preset to PNG frames",
	Long: `Run the looping preset demo and write each tick's frame as a PNG.

The demo animates a sample segment through one full loop of the preset's
local timeline, exactly as a preview card would show it.

Examples:
  capkit preview --preset bold -o frames/
  capkit preview --preset karaoke --fps 30 --width 1280 --height 720`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("preset", "p", "classic", "Preset name to demo")
	previewCmd.Flags().Int("fps", 30, "Demo frame rate")
	previewCmd.Flags().Int("width", 1280, "Frame width in pixels")
	previewCmd.Flags().Int("height", 720, "Frame height in pixels")
}

// demoSegment is the sample caption every preset demo animates.
func demoSegment() transcript.Segment {
	return transcript.Segment{
		ID:    "demo",
		Start: 0,
		End:   engine.DemoLoopDuration,
		Words: []transcript.WordTimestamp{
			{Word: "Preview", Start: 0, End: 600 * time.Millisecond},
			{Word: "your", Start: 600 * time.Millisecond, End: 1200 * time.Millisecond},
			{Word: "captions", Start: 1200 * time.Millisecond, End: 2000 * time.Millisecond},
			{Word: "here", Start: 2000 * time.Millisecond, End: 3000 * time.Millisecond},
		},
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	presetName, _ := cmd.Flags().GetString("preset")
	fps, _ := cmd.Flags().GetInt("fps")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	outDir, _ := cmd.Flags().GetString("output")

	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	if outDir == "" {
		outDir = "frames"
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	preset, err := style.LookupPreset(presetName)
	if err != nil {
		return err
	}

	surface, err := canvas.NewImage(width, height)
	if err != nil {
		return fmt.Errorf("failed to create canvas: %w", err)
	}

	seg := demoSegment()
	seg.Text = transcript.JoinWords(seg.Words)
	st := preset.Apply()

	interval := time.Second / time.Duration(fps)
	cursor := engine.NewCursor(interval, nil)
	preview := engine.NewPreview(
		cursor,
		engine.NewEngine(surface),
		engine.NewRenderer(),
		surface,
		seg,
		st,
		float64(width), float64(height),
	)

	logger.Infow("starting preset demo",
		"preset", preset.Name,
		"fps", fps,
		"loop", engine.DemoLoopDuration)

	var frame atomic.Int64
	var saveErr error
	done := make(chan struct{})
	preview.Mount(func(t time.Duration) {
		n := frame.Add(1)
		path := filepath.Join(outDir, fmt.Sprintf("demo_%04d.png", n))
		if err := surface.SavePNG(path); err != nil && saveErr == nil {
			saveErr = err
		}
		if time.Duration(n)*interval >= engine.DemoLoopDuration {
			select {
			case <-done:
			default:
				close(done)
			}
		}
	})

	<-done
	preview.Unmount()
	if saveErr != nil {
		return fmt.Errorf("failed to save frame: %w", saveErr)
	}

	logger.Infow("demo loop complete", "frames", frame.Load(), "dir", outDir)
	return nil
}
