package render

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"shorts-pipeline/config"
	"shorts-pipeline/faults"
)

// ZoomStep is the per-frame zoom increment that reaches zoomMax at (never
// before) the segment's final frame.
func ZoomStep(zoomMax float64, frames int) float64 {
	return (zoomMax - 1.0) / float64(frames)
}

// SegmentFrames is the exact frame count a segment must carry.
func SegmentFrames(durationSec, fps int) int {
	return durationSec * fps
}

// SegmentArgs builds the encoder invocation that turns one still into a
// silent fixed-length segment with a continuous zoom. The still is upscaled
// 2x before zoompan so the zoom samples above canvas resolution.
func SegmentArgs(image, out string, durationSec int, cfg *config.Config) []string {
	w, h := cfg.Video.Width, cfg.Video.Height
	fps := cfg.Video.FPS
	frames := SegmentFrames(durationSec, fps)
	step := ZoomStep(cfg.Video.ZoomMax, frames)

	filter := fmt.Sprintf(
		"scale=%d:%d,zoompan=z='min(zoom+%.6f,%.3f)':x='iw/2-(iw/zoom/2)':y='ih/2-(ih/zoom/2)':d=%d:fps=%d:s=%dx%d",
		w*2, h*2, step, cfg.Video.ZoomMax, frames, fps, w, h,
	)

	return []string{
		"-y",
		"-loop", "1",
		"-i", image,
		"-vf", filter,
		"-frames:v", fmt.Sprintf("%d", frames),
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		"-pix_fmt", "yuv420p",
		"-an",
		out,
	}
}

// RenderSegments encodes every scene still into its segment. Missing source
// images abort before any encoding starts, naming the offending file.
// Segments have no cross-scene dependency, so they render in parallel; the
// group wait is the join barrier before concatenation.
func (r *Renderer) RenderSegments(ctx context.Context, sceneFiles []string, durations []int, outputDir string) ([]string, error) {
	log.Printf("[render] Rendering %d scene segments...", len(sceneFiles))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	// fail-fast: every source must exist before the first encode
	for _, f := range sceneFiles {
		if _, err := os.Stat(f); err != nil {
			return nil, faults.Validation("scene image missing: %s", f)
		}
	}

	segments := make([]string, len(sceneFiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, image := range sceneFiles {
		i, image := i, image
		segments[i] = filepath.Join(outputDir, fmt.Sprintf("segment_%02d.mp4", i+1))
		g.Go(func() error {
			args := SegmentArgs(image, segments[i], durations[i], r.cfg)
			if err := runFFmpeg(gctx, args); err != nil {
				return fmt.Errorf("segment %d: %w", i+1, err)
			}
			log.Printf("[render] ✅ Segment %d/%d done", i+1, len(sceneFiles))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return segments, nil
}
