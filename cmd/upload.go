package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	upload "shorts-pipeline/08_upload"
	"shorts-pipeline/config"
	"shorts-pipeline/faults"
	"shorts-pipeline/pipeline"
	"shorts-pipeline/types"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <run-dir>",
	Short: "Publish a finished run's final video to YouTube",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	runDir := args[0]

	cfg, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(runDir, "run_state.json"))
	if err != nil {
		return faults.Validation("no run state in %s: %v", runDir, err)
	}
	var state types.RunState
	if err := json.Unmarshal(data, &state); err != nil {
		return faults.Validation("unparsable run state: %v", err)
	}
	if state.VideoFile == "" || state.Plan == nil {
		return faults.Validation("run %s has no finished video", state.RunID)
	}
	if state.DryRun {
		return faults.Validation("run %s is a dry run; nothing real to upload", state.RunID)
	}

	meta := pipeline.BuildMetadata(state.Plan, cfg.Upload.Visibility, cfg.Upload.CategoryID)
	videoID, videoURL, err := upload.New(cfg).Run(cmd.Context(), state.VideoFile, meta)
	if err != nil {
		return err
	}

	state.YouTubeID = videoID
	state.YouTubeURL = videoURL
	if out, err := json.MarshalIndent(&state, "", "  "); err == nil {
		_ = os.WriteFile(filepath.Join(runDir, "run_state.json"), out, 0644)
	}
	_ = upload.LogUpload(videoID, videoURL, state.VideoFile, cfg.Paths.Logs, meta)

	fmt.Println("Uploaded:", videoURL)
	return nil
}
