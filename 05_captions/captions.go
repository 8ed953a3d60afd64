package captions

import (
	"strings"

	"shorts-pipeline/types"
)

// maxCues caps the caption track at 10 cues. Narration past the 10th
// sentence is dropped from captions (not from the voiceover); this is part
// of the caption contract, not a limitation to work around.
const maxCues = 10

// Compile splits narration into timed cues covering [0, totalSec). Cues are
// contiguous; every cue but the last spans max(2, floor(T/n)) seconds and
// the last cue always ends exactly at totalSec. Empty narration yields a
// single full-length cue.
func Compile(text string, totalSec int) []types.CaptionCue {
	fragments := SplitSentences(text)
	if len(fragments) > maxCues {
		fragments = fragments[:maxCues]
	}
	if len(fragments) == 0 {
		return []types.CaptionCue{{StartSec: 0, EndSec: totalSec, Text: text}}
	}

	span := totalSec / len(fragments)
	if span < 2 {
		span = 2
	}

	cues := make([]types.CaptionCue, len(fragments))
	for i, frag := range fragments {
		cues[i] = types.CaptionCue{
			StartSec: i * span,
			EndSec:   (i + 1) * span,
			Text:     frag,
		}
	}
	cues[len(cues)-1].EndSec = totalSec
	return cues
}

// SplitSentences breaks text on sentence-terminal punctuation, keeping the
// terminator with its sentence. Whitespace-only fragments are discarded.
func SplitSentences(text string) []string {
	var out []string
	var sb strings.Builder

	flush := func() {
		if frag := strings.TrimSpace(sb.String()); frag != "" {
			out = append(out, frag)
		}
		sb.Reset()
	}

	for _, r := range text {
		sb.WriteRune(r)
		switch r {
		case '.', '!', '?':
			flush()
		}
	}
	flush()
	return out
}
