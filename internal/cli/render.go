package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mosegrant/capkit/internal/canvas"
	"github.com/mosegrant/capkit/internal/engine"
	"github.com/mosegrant/capkit/internal/transcript"
	"github.com/mosegrant/capkit/internal/video"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var renderCmd = &cobra.Command{
	Use:   "render [transcript.json]",
	Short: "Batch-render caption frames for a transcript",
	Long: `Render the caption overlay for every output frame as a PNG sequence.

Each frame is a pure function of the transcript, its styles and the frame
time, so frames render in parallel and the burn-in exporter can composite
them deterministically.

Examples:
  capkit render transcript.json -o frames/
  capkit render transcript.json --video input.mp4 --fps 30
  capkit render transcript.json --width 1080 --height 1920 --concurrency 8`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("video", "", "Source video to take frame size, rate and duration from")
	renderCmd.Flags().Int("fps", 30, "Output frame rate")
	renderCmd.Flags().Int("width", 1920, "Frame width in pixels")
	renderCmd.Flags().Int("height", 1080, "Frame height in pixels")
	renderCmd.Flags().Int("concurrency", 4, "Number of parallel render workers")
}

func runRender(cmd *cobra.Command, args []string) error {
	transcriptPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	videoPath, _ := cmd.Flags().GetString("video")
	fps, _ := cmd.Flags().GetInt("fps")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	outDir, _ := cmd.Flags().GetString("output")

	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if outDir == "" {
		outDir = "frames"
	}

	tr, err := transcript.Read(transcriptPath)
	if err != nil {
		return err
	}
	if len(tr.Segments) == 0 {
		return fmt.Errorf("transcript has no segments: %s", transcriptPath)
	}

	total := tr.Segments[len(tr.Segments)-1].End
	if videoPath != "" {
		info, err := video.Probe(ctx, videoPath)
		if err != nil {
			return err
		}
		width, height = info.Width, info.Height
		if info.FrameRate > 0 {
			fps = int(info.FrameRate + 0.5)
		}
		if info.Duration > 0 {
			total = info.Duration
		}
		logger.Infow("probed source video",
			"width", width, "height", height, "fps", fps, "duration", info.Duration)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	frameInterval := time.Second / time.Duration(fps)
	frameCount := int(total/frameInterval) + 1

	logger.Infow("rendering caption frames",
		"frames", frameCount, "fps", fps, "workers", concurrency)

	renderer := engine.NewRenderer()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for worker := 0; worker < concurrency; worker++ {
		worker := worker
		g.Go(func() error {
			// each worker owns its own canvas; layout state is never shared
			surface, err := canvas.NewImage(width, height)
			if err != nil {
				return err
			}
			eng := engine.NewEngine(surface)

			for frame := worker; frame < frameCount; frame += concurrency {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				t := time.Duration(frame) * frameInterval
				surface.Clear("")
				for _, seg := range tr.Segments {
					if t < seg.Start || t >= seg.End {
						continue
					}
					res := eng.Layout(seg, seg.Style, t, float64(width), float64(height))
					renderer.Render(surface, res, seg.Style)
				}

				path := filepath.Join(outDir, fmt.Sprintf("caption_%06d.png", frame))
				if err := surface.SavePNG(path); err != nil {
					return fmt.Errorf("failed to save frame %d: %w", frame, err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Infow("render complete", "frames", frameCount, "dir", outDir)
	return nil
}
