package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Video    VideoConfig    `yaml:"video"`
	Script   ScriptConfig   `yaml:"script"`
	Voice    VoiceConfig    `yaml:"voice"`
	Captions CaptionsConfig `yaml:"captions"`
	Music    MusicConfig    `yaml:"music"`
	Research ResearchConfig `yaml:"research"`
	Upload   UploadConfig   `yaml:"upload"`
	Paths    PathsConfig    `yaml:"paths"`
}

type VideoConfig struct {
	Orientation string  `yaml:"orientation"` // vertical | horizontal
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FPS         int     `yaml:"fps"`
	ZoomMax     float64 `yaml:"zoom_max"`
}

type ScriptConfig struct {
	TotalDurationSec int     `yaml:"total_duration_sec"`
	SceneCount       int     `yaml:"scene_count"`
	GroqModel        string  `yaml:"groq_model"`
	Temperature      float64 `yaml:"temperature"`
}

type VoiceConfig struct {
	Enabled     bool   `yaml:"enabled"`
	MaleVoice   string `yaml:"male_voice"`
	FemaleVoice string `yaml:"female_voice"`
}

type CaptionsConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Font         string `yaml:"font"`
	FontSize     int    `yaml:"font_size"`
	MarginBottom int    `yaml:"margin_bottom"`
}

type MusicConfig struct {
	Enabled bool   `yaml:"enabled"`
	Track   string `yaml:"track"` // explicit file; empty -> first track in assets dir
}

type ResearchConfig struct {
	Subreddits []string `yaml:"subreddits"`
	MaxTopics  int      `yaml:"max_topics"`
	MinScore   int      `yaml:"min_score"`
}

type UploadConfig struct {
	Visibility        string `yaml:"visibility"`
	CategoryID        string `yaml:"category_id"`
	DefaultLanguage   string `yaml:"default_language"`
	NotifySubscribers bool   `yaml:"notify_subscribers"`
	MadeForKids       bool   `yaml:"made_for_kids"`
}

type PathsConfig struct {
	Output      string `yaml:"output"`
	AssetsMusic string `yaml:"assets_music"`
	Logs        string `yaml:"logs"`
}

// Default returns the built-in configuration, lowest layer of the stack.
func Default() *Config {
	return &Config{
		Video: VideoConfig{
			Orientation: "vertical",
			Width:       1080,
			Height:      1920,
			FPS:         30,
			ZoomMax:     1.06,
		},
		Script: ScriptConfig{
			TotalDurationSec: 60,
			SceneCount:       6,
			GroqModel:        "llama-3.3-70b-versatile",
			Temperature:      0.7,
		},
		Voice: VoiceConfig{
			Enabled:     true,
			MaleVoice:   "en-US-GuyNeural",
			FemaleVoice: "en-US-JennyNeural",
		},
		Captions: CaptionsConfig{
			Enabled:      true,
			Font:         "Arial",
			FontSize:     64,
			MarginBottom: 180,
		},
		Music: MusicConfig{Enabled: true},
		Research: ResearchConfig{
			Subreddits: []string{"personalfinance", "explainlikeimfive"},
			MaxTopics:  10,
			MinScore:   50,
		},
		Upload: UploadConfig{
			Visibility:      "private",
			CategoryID:      "27", // Education
			DefaultLanguage: "en",
		},
		Paths: PathsConfig{
			Output:      "output",
			AssetsMusic: "assets/music",
			Logs:        "logs",
		},
	}
}

// Resolve builds the effective configuration: defaults, then the user file
// (if it exists), then environment overrides. Called once per run and
// threaded explicitly through the pipeline.
func Resolve(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// no user file, defaults + env only
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg, os.LookupEnv)

	if cfg.Video.Orientation == "horizontal" && cfg.Video.Width < cfg.Video.Height {
		cfg.Video.Width, cfg.Video.Height = cfg.Video.Height, cfg.Video.Width
	}

	return cfg, cfg.validate()
}

// applyEnv is the top config layer. lookup is injected so tests can drive it
// without touching the process environment.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("SHORTS_OUTPUT_DIR"); ok && v != "" {
		cfg.Paths.Output = v
	}
	if v, ok := lookup("SHORTS_MUSIC_DIR"); ok && v != "" {
		cfg.Paths.AssetsMusic = v
	}
	if v, ok := lookup("SHORTS_DURATION_SEC"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Script.TotalDurationSec = n
		}
	}
	if v, ok := lookup("SHORTS_SCENE_COUNT"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Script.SceneCount = n
		}
	}
	if v, ok := lookup("SHORTS_FPS"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Video.FPS = n
		}
	}
	if v, ok := lookup("SHORTS_GROQ_MODEL"); ok && v != "" {
		cfg.Script.GroqModel = v
	}
}

func (c *Config) validate() error {
	if c.Script.TotalDurationSec <= 0 {
		return fmt.Errorf("total_duration_sec must be positive, got %d", c.Script.TotalDurationSec)
	}
	if c.Script.SceneCount <= 0 {
		return fmt.Errorf("scene_count must be positive, got %d", c.Script.SceneCount)
	}
	if c.Video.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Video.FPS)
	}
	if c.Video.ZoomMax <= 1.0 {
		return fmt.Errorf("zoom_max must exceed 1.0, got %.3f", c.Video.ZoomMax)
	}
	return nil
}
