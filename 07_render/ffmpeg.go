package render

import (
	"context"
	"os"
	"os/exec"

	"shorts-pipeline/faults"
)

// runFFmpeg spawns one encoder invocation and waits for it. The encoder's
// own output goes straight to our stdout/stderr so failed runs can be read
// back. A non-zero exit fails the whole run; nothing retries.
func runFFmpeg(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return faults.ExternalTool("ffmpeg %s: %v", args[len(args)-1], err)
	}
	return nil
}
