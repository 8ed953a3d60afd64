package render

import (
	"context"
	"log"
	"path/filepath"
	"strings"
)

// BurnArgs overlays the caption track onto every frame. Video timing is
// untouched; there is no audio yet at this stage.
func BurnArgs(video, assPath, out string) []string {
	return []string{
		"-y",
		"-i", video,
		"-vf", "ass=" + escapeFilterPath(assPath),
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "20",
		"-an",
		out,
	}
}

// BurnCaptions burns the track in, or passes the video through untouched
// when the run has no caption track. Captions are optional, never required.
func (r *Renderer) BurnCaptions(ctx context.Context, video, assPath, runDir string) (string, error) {
	if assPath == "" {
		log.Println("[render] No caption track — skipping burn")
		return video, nil
	}

	log.Println("[render] Burning captions into video...")
	outFile := filepath.Join(runDir, "video_captioned.mp4")
	if err := runFFmpeg(ctx, BurnArgs(video, assPath, outFile)); err != nil {
		return "", err
	}
	return outFile, nil
}

// escapeFilterPath escapes the characters the ass filter treats specially.
func escapeFilterPath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	path = strings.ReplaceAll(path, ":", "\\:")
	return path
}
