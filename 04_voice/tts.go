package voice

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"shorts-pipeline/config"
	"shorts-pipeline/faults"
)

// Generator synthesizes the voiceover through the edge-tts CLI. The TTS
// engine is a black box: text and voice in, audio bytes out.
type Generator struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// VoiceFor maps the --voice-gender selector to a configured voice id.
func (g *Generator) VoiceFor(gender string) string {
	if strings.EqualFold(gender, "female") {
		return g.cfg.Voice.FemaleVoice
	}
	return g.cfg.Voice.MaleVoice
}

// Run synthesizes narration into outFile. On a dry run a placeholder file is
// written instead and no external process is started.
func (g *Generator) Run(ctx context.Context, narration, gender, outFile string, dryRun bool) error {
	if dryRun {
		log.Println("[voice] Dry run — writing placeholder voiceover")
		return os.WriteFile(outFile, []byte("placeholder voiceover\n"), 0644)
	}

	voiceID := g.VoiceFor(gender)
	log.Printf("[voice] Synthesizing narration with voice %s...", voiceID)

	if _, err := exec.LookPath("edge-tts"); err != nil {
		return faults.Configuration("edge-tts not found in PATH (pip install edge-tts)")
	}

	// Backend hiccups are common enough that synthesis gets 3 attempts;
	// render-pipeline stages downstream are never retried.
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		cmd := exec.CommandContext(ctx,
			"edge-tts",
			"--voice", voiceID,
			"--text", narration,
			"--write-media", outFile,
		)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		err = cmd.Run()
		if err == nil {
			break
		}
		log.Printf("[voice] TTS attempt %d failed: %v — retrying...", attempt, err)
		time.Sleep(time.Duration(attempt) * 2 * time.Second)
	}
	if err != nil {
		return faults.Transport("tts synthesis failed: %v", err)
	}

	if _, err := os.Stat(outFile); err != nil {
		return faults.Validation("tts produced no output at %s", outFile)
	}

	dur, err := ProbeDuration(outFile)
	if err != nil {
		log.Printf("[voice] Warning: could not measure voiceover duration: %v", err)
	} else {
		log.Printf("[voice] ✅ Voiceover ready: %s (%.1fs)", outFile, dur)
	}
	return nil
}

// ProbeDuration measures a media file's duration in seconds via ffprobe.
func ProbeDuration(path string) (float64, error) {
	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, err
	}
	s := strings.TrimSpace(string(out))
	dur, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return dur, nil
}
