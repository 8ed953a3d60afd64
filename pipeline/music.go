package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"shorts-pipeline/config"
)

var musicExts = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// PickMusic resolves the background track for a run: the explicitly
// configured file if set, otherwise the first audio file (by name) in the
// music assets directory. Returns false when music is disabled or nothing
// usable exists — that is not an error, just the MusicOnly/Both cases
// falling away.
func PickMusic(cfg *config.Config) (string, bool) {
	if !cfg.Music.Enabled {
		return "", false
	}

	if cfg.Music.Track != "" {
		if _, err := os.Stat(cfg.Music.Track); err == nil {
			return cfg.Music.Track, true
		}
		return "", false
	}

	entries, err := os.ReadDir(cfg.Paths.AssetsMusic)
	if err != nil {
		return "", false
	}

	var tracks []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if musicExts[strings.ToLower(filepath.Ext(e.Name()))] {
			tracks = append(tracks, e.Name())
		}
	}
	if len(tracks) == 0 {
		return "", false
	}
	sort.Strings(tracks)
	return filepath.Join(cfg.Paths.AssetsMusic, tracks[0]), true
}
