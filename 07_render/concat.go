package render

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"shorts-pipeline/faults"
)

// ConcatListFile writes the concat-demuxer manifest. Segment order must
// match storyboard order; callers guarantee that with zero-padded naming.
func ConcatListFile(path string, segments []string) error {
	var lines []string
	for _, s := range segments {
		abs, err := filepath.Abs(s)
		if err != nil {
			abs = s
		}
		lines = append(lines, fmt.Sprintf("file '%s'", abs))
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

// ConcatArgs joins segments by stream copy — no re-encode.
func ConcatArgs(listFile, out string) []string {
	return []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listFile,
		"-c", "copy",
		out,
	}
}

// Concat joins the ordered segments into one silent video track.
func (r *Renderer) Concat(ctx context.Context, segments []string, runDir string) (string, error) {
	log.Println("[render] Concatenating segments...")

	if len(segments) == 0 {
		return "", faults.Validation("no segments to concatenate")
	}
	for _, s := range segments {
		if _, err := os.Stat(s); err != nil {
			return "", faults.Validation("segment missing: %s", s)
		}
	}

	listFile := filepath.Join(runDir, "segments_concat.txt")
	if err := ConcatListFile(listFile, segments); err != nil {
		return "", err
	}

	outFile := filepath.Join(runDir, "video_silent.mp4")
	if err := runFFmpeg(ctx, ConcatArgs(listFile, outFile)); err != nil {
		return "", err
	}
	return outFile, nil
}
