package captions

import (
	"strings"
	"testing"

	"shorts-pipeline/config"
	"shorts-pipeline/types"
)

func TestCompileScenario(t *testing.T) {
	// Three sentences over 12 seconds: three 4-second cues ending at 12.
	cues := Compile("Hello there. This works great. Goodbye now.", 12)
	if len(cues) != 3 {
		t.Fatalf("got %d cues, want 3", len(cues))
	}
	want := []types.CaptionCue{
		{StartSec: 0, EndSec: 4, Text: "Hello there."},
		{StartSec: 4, EndSec: 8, Text: "This works great."},
		{StartSec: 8, EndSec: 12, Text: "Goodbye now."},
	}
	for i, c := range cues {
		if c != want[i] {
			t.Errorf("cue %d = %+v, want %+v", i, c, want[i])
		}
	}
}

func TestCompileContiguity(t *testing.T) {
	texts := []string{
		"One.",
		"One. Two.",
		"One. Two! Three? Four. Five.",
		"A very long sentence without any terminal punctuation at all",
		"First. Second. Third. Fourth. Fifth. Sixth. Seventh. Eighth. Ninth. Tenth. Eleventh. Twelfth.",
	}
	for _, text := range texts {
		for _, total := range []int{20, 33, 60, 90} {
			cues := Compile(text, total)
			if len(cues) == 0 || len(cues) > 10 {
				t.Fatalf("%q T=%d: %d cues, want 1..10", text, total, len(cues))
			}
			if cues[0].StartSec != 0 {
				t.Errorf("%q T=%d: first cue starts at %d", text, total, cues[0].StartSec)
			}
			if last := cues[len(cues)-1]; last.EndSec != total {
				t.Errorf("%q T=%d: last cue ends at %d, want %d", text, total, last.EndSec, total)
			}
			for i := 1; i < len(cues); i++ {
				if cues[i].StartSec != cues[i-1].EndSec {
					t.Errorf("%q T=%d: gap between cue %d and %d", text, total, i-1, i)
				}
			}
		}
	}
}

func TestCompileEmptyText(t *testing.T) {
	cues := Compile("", 30)
	if len(cues) != 1 {
		t.Fatalf("got %d cues for empty text, want 1", len(cues))
	}
	if cues[0].StartSec != 0 || cues[0].EndSec != 30 || cues[0].Text != "" {
		t.Errorf("empty-text cue = %+v", cues[0])
	}
}

func TestCompileDropsPastTenth(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		sb.WriteString("Sentence number here. ")
	}
	cues := Compile(sb.String(), 60)
	if len(cues) != 10 {
		t.Errorf("got %d cues, want the 10-cue cap", len(cues))
	}
}

func TestSplitSentences(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Hello. World.", []string{"Hello.", "World."}},
		{"No terminator", []string{"No terminator"}},
		{"Mixed! Punctuation? Here.", []string{"Mixed!", "Punctuation?", "Here."}},
		{"  Trailing text after. loose end", []string{"Trailing text after.", "loose end"}},
		{"", nil},
		{"   ", nil},
	}
	for _, c := range cases {
		got := SplitSentences(c.in)
		if len(got) != len(c.want) {
			t.Errorf("SplitSentences(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("SplitSentences(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestTimestamp(t *testing.T) {
	cases := []struct {
		sec  int
		want string
	}{
		{0, "00:00:00.00"},
		{59, "00:00:59.00"},
		{60, "00:01:00.00"},
		{3725, "01:02:05.00"},
	}
	for _, c := range cases {
		if got := Timestamp(c.sec); got != c.want {
			t.Errorf("Timestamp(%d) = %q, want %q", c.sec, got, c.want)
		}
	}
}

func TestRenderASS(t *testing.T) {
	cfg := config.Default()
	cues := []types.CaptionCue{
		{StartSec: 0, EndSec: 5, Text: "First line"},
		{StartSec: 5, EndSec: 12, Text: "Second\nwith break"},
	}
	out := RenderASS(cues, cfg)

	for _, want := range []string{
		"PlayResX: 1080",
		"PlayResY: 1920",
		"Style: Caption,Arial,64",
		"Dialogue: 0,00:00:00.00,00:00:05.00,Caption,,0,0,0,,First line",
		"Dialogue: 0,00:00:05.00,00:00:12.00,Caption,,0,0,0,,Second\\Nwith break",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ASS output missing %q\n%s", want, out)
		}
	}
	if n := strings.Count(out, "Dialogue:"); n != 2 {
		t.Errorf("got %d dialogue lines, want 2", n)
	}
}
