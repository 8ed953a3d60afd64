package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	research "shorts-pipeline/01_research"
	"shorts-pipeline/config"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "List trending topic candidates from the configured subreddits",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(configPath)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}

		s, err := research.New(cfg)
		if err != nil {
			return err
		}
		topics, err := s.Run(cmd.Context())
		if err != nil {
			return err
		}

		for i, t := range topics {
			fmt.Printf("%2d. [%d] r/%s — %s\n", i+1, t.Score, t.Subreddit, t.Title)
		}
		return nil
	},
}
