package types

// PlanSection is one narrative beat of the script with its allotted time.
type PlanSection struct {
	Label   string `json:"label"`
	Seconds int    `json:"seconds"`
	Body    string `json:"body"`
}

// PlanScene is one still image slot in the final video.
type PlanScene struct {
	Index   int    `json:"index"`
	Seconds int    `json:"seconds"`
	Excerpt string `json:"excerpt"`
}

// Plan is the full structured plan for one video, as returned by the
// script backend (or built from placeholders on a dry run).
type Plan struct {
	Title        string        `json:"title"`
	Hook         string        `json:"hook"`
	Sections     []PlanSection `json:"sections"`
	Scenes       []PlanScene   `json:"scenes"`
	ImagePrompts []string      `json:"image_prompts"`
	Style        string        `json:"style"`
	Disclaimer   string        `json:"disclaimer"`
}

// Narration joins hook, section bodies and disclaimer into the text that
// gets spoken and captioned.
func (p *Plan) Narration() string {
	out := p.Hook
	for _, s := range p.Sections {
		if s.Body == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += s.Body
	}
	if p.Disclaimer != "" {
		if out != "" {
			out += " "
		}
		out += p.Disclaimer
	}
	return out
}

// CaptionCue is one timed caption span. End is exclusive; the last cue of a
// track ends exactly at the total duration.
type CaptionCue struct {
	StartSec int    `json:"start_sec"`
	EndSec   int    `json:"end_sec"`
	Text     string `json:"text"`
}

// StoryboardRow is one row of the authoritative per-scene timing table.
type StoryboardRow struct {
	Filename string `json:"filename"`
	StartSec int    `json:"start_sec"`
	Duration int    `json:"duration"`
	Cue      int    `json:"cue"`
}

// AudioMode is the closed set of optional-track combinations the mixer
// branches on. Computed once per run, never re-derived from file checks.
type AudioMode int

const (
	AudioNone AudioMode = iota
	AudioVoiceOnly
	AudioMusicOnly
	AudioBoth
)

func (m AudioMode) String() string {
	switch m {
	case AudioVoiceOnly:
		return "voice-only"
	case AudioMusicOnly:
		return "music-only"
	case AudioBoth:
		return "voice+music"
	default:
		return "silent"
	}
}

// SelectAudioMode maps track presence to the mixer branch.
func SelectAudioMode(hasVoice, hasMusic bool) AudioMode {
	switch {
	case hasVoice && hasMusic:
		return AudioBoth
	case hasVoice:
		return AudioVoiceOnly
	case hasMusic:
		return AudioMusicOnly
	default:
		return AudioNone
	}
}

// RenderContext is the working state threaded through the render stages.
// One per run; never shared across runs.
type RenderContext struct {
	RunDir      string
	PerScene    int // uniform per-scene duration, seconds
	TotalSec    int
	Mode        AudioMode
	VoicePath   string // empty when Mode excludes voice
	MusicPath   string // empty when Mode excludes music
	CaptionPath string // empty when captions are disabled
	DryRun      bool
}

// VideoMetadata holds upload metadata for a finished run.
type VideoMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CategoryID  string   `json:"category_id"`
	Visibility  string   `json:"visibility"`
}

// RunState tracks one pipeline run end to end; saved as run_state.json at
// every stage boundary so failed runs can be inspected.
type RunState struct {
	RunID       string `json:"run_id"`
	Topic       string `json:"topic"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	DryRun      bool   `json:"dry_run"`
	Plan        *Plan  `json:"plan,omitempty"`
	VoiceFile   string `json:"voice_file,omitempty"`
	VideoFile   string `json:"video_file,omitempty"`
	AudioMode   string `json:"audio_mode,omitempty"`
	YouTubeID   string `json:"youtube_id,omitempty"`
	YouTubeURL  string `json:"youtube_url,omitempty"`
	Error       string `json:"error,omitempty"`
}
