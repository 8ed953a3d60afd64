package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shorts-pipeline/config"
	"shorts-pipeline/faults"
	"shorts-pipeline/pipeline"
)

var (
	voiceGender string
	imageStyle  string
	dryRun      bool
)

var createCmd = &cobra.Command{
	Use:   "create <topic>",
	Short: "Generate a full video kit for a topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&voiceGender, "voice-gender", "male", "voiceover voice: male | female")
	createCmd.Flags().StringVar(&imageStyle, "image-style", "photo", "image style: photo | flat | cinematic | sketch")
	createCmd.Flags().BoolVar(&dryRun, "dry-run", false, "produce the full file layout with placeholder content, calling no backends")
}

func runCreate(cmd *cobra.Command, args []string) error {
	topic := args[0]
	if topic == "" {
		return faults.Configuration("topic must not be empty")
	}

	cfg, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	_, err = pipeline.Run(cmd.Context(), cfg, pipeline.Request{
		Topic:       topic,
		VoiceGender: voiceGender,
		ImageStyle:  imageStyle,
		DryRun:      dryRun,
	})
	return err
}
