// Package research suggests video topics from Reddit so the pipeline can be
// pointed at something people are already asking about. It never feeds the
// render pipeline directly; a human picks a topic from the list.
package research

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/vartanbeno/go-reddit/v2/reddit"

	"shorts-pipeline/config"
	"shorts-pipeline/faults"
)

// Topic is one suggestion with its source post score.
type Topic struct {
	Title     string
	Subreddit string
	Score     int
}

type Suggester struct {
	cfg    *config.Config
	client *reddit.Client
}

func New(cfg *config.Config) (*Suggester, error) {
	client, err := reddit.NewReadonlyClient()
	if err != nil {
		return nil, fmt.Errorf("reddit client: %w", err)
	}
	return &Suggester{cfg: cfg, client: client}, nil
}

// Run pulls this week's top posts from the configured subreddits and returns
// the highest-scoring question-shaped titles as topic candidates.
func (s *Suggester) Run(ctx context.Context) ([]Topic, error) {
	log.Printf("[research] Fetching topics from %d subreddits...", len(s.cfg.Research.Subreddits))

	var topics []Topic
	for _, sub := range s.cfg.Research.Subreddits {
		posts, _, err := s.client.Subreddit.TopPosts(ctx, sub, &reddit.ListPostOptions{
			ListOptions: reddit.ListOptions{Limit: 25},
			Time:        "week",
		})
		if err != nil {
			log.Printf("[research] Warning: r/%s fetch failed: %v", sub, err)
			continue
		}
		for _, p := range posts {
			if p.Score < s.cfg.Research.MinScore {
				continue
			}
			topics = append(topics, Topic{
				Title:     cleanTitle(p.Title),
				Subreddit: sub,
				Score:     p.Score,
			})
		}
	}

	if len(topics) == 0 {
		return nil, faults.Transport("no topics found from any subreddit")
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].Score > topics[j].Score })
	if len(topics) > s.cfg.Research.MaxTopics {
		topics = topics[:s.cfg.Research.MaxTopics]
	}

	log.Printf("[research] ✅ %d topic suggestions", len(topics))
	return topics, nil
}

// cleanTitle strips common Reddit title furniture.
func cleanTitle(t string) string {
	t = strings.TrimSpace(t)
	for _, prefix := range []string{"ELI5:", "ELI5 -", "LPT:", "[Serious]"} {
		if strings.HasPrefix(t, prefix) {
			t = strings.TrimSpace(t[len(prefix):])
		}
	}
	return t
}
