package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shorts-pipeline/config"
	"shorts-pipeline/types"
)

func TestSegmentFrames(t *testing.T) {
	cases := []struct {
		dur, fps, want int
	}{
		{2, 30, 60},   // minimum renderable duration
		{10, 30, 300},
		{20, 30, 600}, // long scene
		{10, 24, 240},
	}
	for _, c := range cases {
		if got := SegmentFrames(c.dur, c.fps); got != c.want {
			t.Errorf("SegmentFrames(%d, %d) = %d, want %d", c.dur, c.fps, got, c.want)
		}
	}
}

func TestZoomStepNeverOvershoots(t *testing.T) {
	const zoomMax = 1.06
	for _, dur := range []int{2, 5, 10, 20} {
		frames := SegmentFrames(dur, 30)
		step := ZoomStep(zoomMax, frames)
		// zoom at the last generated frame must still be at or under the cap
		atLast := 1.0 + step*float64(frames-1)
		if atLast > zoomMax {
			t.Errorf("dur=%ds: zoom %f at last frame exceeds cap %f", dur, atLast, zoomMax)
		}
		// and the cap must be reached by the frame after the segment ends
		atEnd := 1.0 + step*float64(frames)
		if atEnd < zoomMax-1e-9 {
			t.Errorf("dur=%ds: zoom never reaches the cap (%f)", dur, atEnd)
		}
	}
}

func TestSegmentArgs(t *testing.T) {
	cfg := config.Default()
	args := SegmentArgs("scene_01.png", "segment_01.mp4", 10, cfg)
	joined := strings.Join(args, " ")

	frames := fmt.Sprintf("%d", 10*cfg.Video.FPS)
	for _, want := range []string{
		"-loop 1",
		"-i scene_01.png",
		"-frames:v " + frames,
		"d=" + frames,
		"s=1080x1920",
		"-pix_fmt yuv420p",
		"-an",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("segment args missing %q:\n%s", want, joined)
		}
	}
	if args[len(args)-1] != "segment_01.mp4" {
		t.Errorf("output file must be last arg, got %q", args[len(args)-1])
	}
}

func TestConcatArgsStreamCopy(t *testing.T) {
	args := ConcatArgs("list.txt", "out.mp4")
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-f concat") || !strings.Contains(joined, "-c copy") {
		t.Errorf("concat must be a manifest-driven stream copy:\n%s", joined)
	}
	if strings.Contains(joined, "libx264") {
		t.Error("concat must not re-encode")
	}
}

func TestConcatListFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "list.txt")
	if err := ConcatListFile(list, []string{"/a/seg_01.mp4", "/a/seg_02.mp4"}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(list)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d manifest lines, want 2", len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "file '") {
			t.Errorf("manifest line %d malformed: %q", i, line)
		}
	}
}

func TestBurnArgs(t *testing.T) {
	args := BurnArgs("silent.mp4", "/runs/x/captions.ass", "captioned.mp4")
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "ass=/runs/x/captions.ass") {
		t.Errorf("burn args missing ass filter:\n%s", joined)
	}
	if !strings.Contains(joined, "-an") {
		t.Error("caption burn stage has no audio yet; -an expected")
	}
}

func TestMixArgsBranches(t *testing.T) {
	const fps = 30
	cases := []struct {
		name       string
		mode       types.AudioMode
		wantDuck   bool
		wantVoice  bool
		wantMusic  bool
		wantNoAud  bool
	}{
		{"both", types.AudioBoth, true, true, true, false},
		{"voice only", types.AudioVoiceOnly, false, true, false, false},
		{"music only", types.AudioMusicOnly, false, false, true, false},
		{"neither", types.AudioNone, false, false, false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			args := MixArgs("video.mp4", "voice.mp3", "music.m4a", "final.mp4", c.mode, fps)
			joined := strings.Join(args, " ")

			if got := strings.Contains(joined, "sidechaincompress"); got != c.wantDuck {
				t.Errorf("ducking chain present=%v, want %v:\n%s", got, c.wantDuck, joined)
			}
			if got := strings.Contains(joined, "voice.mp3"); got != c.wantVoice {
				t.Errorf("voice input present=%v, want %v", got, c.wantVoice)
			}
			if got := strings.Contains(joined, "music.m4a"); got != c.wantMusic {
				t.Errorf("music input present=%v, want %v", got, c.wantMusic)
			}
			if c.wantNoAud {
				if !strings.Contains(joined, "-an") {
					t.Error("silent case must strip the audio track")
				}
				if !strings.Contains(joined, "-c:v copy") {
					t.Error("silent case is a passthrough copy")
				}
			} else {
				if !strings.Contains(joined, "-shortest") {
					t.Error("output must be trimmed to the shortest input")
				}
				if !strings.Contains(joined, "-c:a aac") || !strings.Contains(joined, "-b:a 192k") {
					t.Error("audio contract is aac 192k")
				}
				if !strings.Contains(joined, "-r 30") {
					t.Error("constant frame rate at pipeline FPS expected")
				}
			}
		})
	}
}

func TestDuckFilterParameters(t *testing.T) {
	f := DuckFilter()
	for _, want := range []string{
		"threshold=0.05",
		"ratio=8",
		"attack=5",
		"release=300",
		"volume=0.5",
		"amix=inputs=2",
	} {
		if !strings.Contains(f, want) {
			t.Errorf("duck filter missing %q:\n%s", want, f)
		}
	}
}

func TestDryRunLayout(t *testing.T) {
	cfg := config.Default()
	r := New(cfg)
	dir := t.TempDir()

	rctx := &types.RenderContext{
		RunDir:      dir,
		PerScene:    10,
		TotalSec:    60,
		Mode:        types.AudioBoth,
		CaptionPath: filepath.Join(dir, "captions.ass"),
		DryRun:      true,
	}
	scenes := []string{"scene_01.png", "scene_02.png", "scene_03.png"}

	final, err := r.Run(nil, rctx, scenes)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if final != filepath.Join(dir, "final_video.mp4") {
		t.Errorf("final path = %q", final)
	}

	for _, want := range []string{
		"segments/segment_01.mp4",
		"segments/segment_02.mp4",
		"segments/segment_03.mp4",
		"video_silent.mp4",
		"video_captioned.mp4",
		"final_video.mp4",
	} {
		if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
			t.Errorf("dry run missing %s: %v", want, err)
		}
	}
}
