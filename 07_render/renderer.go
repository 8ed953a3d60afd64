// Package render drives the external encoder through the fixed stage
// sequence: stills to segments, segments to one silent track, caption burn,
// audio mix. Each stage reads the previous stage's files and writes new
// ones; nothing is mutated in place and nothing is retried.
package render

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"shorts-pipeline/config"
	"shorts-pipeline/types"
)

type Renderer struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Run takes the ordered scene stills through the full render sequence and
// returns the final muxed output path. On failure the stage's partial
// artifacts stay on disk for inspection.
func (r *Renderer) Run(ctx context.Context, rctx *types.RenderContext, sceneFiles []string) (string, error) {
	if rctx.DryRun {
		return r.dryRun(rctx, sceneFiles)
	}

	durations := make([]int, len(sceneFiles))
	for i := range durations {
		durations[i] = rctx.PerScene
	}

	segDir := filepath.Join(rctx.RunDir, "segments")
	segments, err := r.RenderSegments(ctx, sceneFiles, durations, segDir)
	if err != nil {
		return "", fmt.Errorf("segment render: %w", err)
	}

	silent, err := r.Concat(ctx, segments, rctx.RunDir)
	if err != nil {
		return "", fmt.Errorf("concatenate: %w", err)
	}

	captioned, err := r.BurnCaptions(ctx, silent, rctx.CaptionPath, rctx.RunDir)
	if err != nil {
		return "", fmt.Errorf("caption burn: %w", err)
	}

	final, err := r.Mix(ctx, captioned, rctx)
	if err != nil {
		return "", fmt.Errorf("audio mix: %w", err)
	}
	return final, nil
}

// dryRun produces the full file layout without a single encoder call.
func (r *Renderer) dryRun(rctx *types.RenderContext, sceneFiles []string) (string, error) {
	log.Println("[render] Dry run — writing placeholder render artifacts")

	segDir := filepath.Join(rctx.RunDir, "segments")
	if err := os.MkdirAll(segDir, 0755); err != nil {
		return "", err
	}
	for i := range sceneFiles {
		seg := filepath.Join(segDir, fmt.Sprintf("segment_%02d.mp4", i+1))
		if err := os.WriteFile(seg, []byte("placeholder segment\n"), 0644); err != nil {
			return "", err
		}
	}

	outputs := []string{filepath.Join(rctx.RunDir, "video_silent.mp4")}
	if rctx.CaptionPath != "" {
		outputs = append(outputs, filepath.Join(rctx.RunDir, "video_captioned.mp4"))
	}
	final := filepath.Join(rctx.RunDir, "final_video.mp4")
	outputs = append(outputs, final)

	for _, out := range outputs {
		if err := os.WriteFile(out, []byte("placeholder video\n"), 0644); err != nil {
			return "", err
		}
	}
	return final, nil
}
