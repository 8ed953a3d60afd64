package captions

import (
	"fmt"
	"os"
	"strings"

	"shorts-pipeline/config"
	"shorts-pipeline/types"
)

// RenderASS serializes cues as an ASS subtitle track: script header with the
// canvas resolution, one bottom-anchored style, one Dialogue line per cue.
func RenderASS(cues []types.CaptionCue, cfg *config.Config) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[Script Info]\n")
	fmt.Fprintf(&sb, "ScriptType: v4.00+\n")
	fmt.Fprintf(&sb, "PlayResX: %d\n", cfg.Video.Width)
	fmt.Fprintf(&sb, "PlayResY: %d\n", cfg.Video.Height)
	fmt.Fprintf(&sb, "WrapStyle: 0\n\n")

	fmt.Fprintf(&sb, "[V4+ Styles]\n")
	fmt.Fprintf(&sb, "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	fmt.Fprintf(&sb, "Style: Caption,%s,%d,&H00FFFFFF,&H00FFFFFF,&H00000000,&H80000000,-1,0,0,0,100,100,0,0,1,3,0,2,40,40,%d,1\n\n",
		cfg.Captions.Font, cfg.Captions.FontSize, cfg.Captions.MarginBottom)

	fmt.Fprintf(&sb, "[Events]\n")
	fmt.Fprintf(&sb, "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, c := range cues {
		fmt.Fprintf(&sb, "Dialogue: 0,%s,%s,Caption,,0,0,0,,%s\n",
			Timestamp(c.StartSec), Timestamp(c.EndSec), escapeText(c.Text))
	}

	return sb.String()
}

// WriteASS renders the track and persists it.
func WriteASS(path string, cues []types.CaptionCue, cfg *config.Config) error {
	return os.WriteFile(path, []byte(RenderASS(cues, cfg)), 0644)
}

// Timestamp formats whole seconds as HH:MM:SS.cc (centisecond precision).
func Timestamp(sec int) string {
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	return fmt.Sprintf("%02d:%02d:%02d.00", h, m, s)
}

// escapeText swaps literal newlines for the ASS line-break marker.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\\N")
	s = strings.ReplaceAll(s, "\n", "\\N")
	return s
}
