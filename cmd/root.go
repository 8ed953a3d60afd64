package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "shorts-pipeline",
	Short: "Generate short-form vertical video kits from a single topic",
	Long: `shorts-pipeline turns one topic string into a complete video asset kit:
script plan, scene images, voiceover, captions, storyboard and a rendered
vertical video. Generation backends and ffmpeg do the heavy lifting; this
tool orchestrates them.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the config file")
	rootCmd.AddCommand(createCmd, suggestCmd, uploadCmd)
}

// Execute is the CLI entry point.
func Execute() {
	// .env is local-dev convenience; CI injects real env vars
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
