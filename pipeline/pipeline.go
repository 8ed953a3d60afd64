// Package pipeline sequences the stages that turn one topic string into a
// rendered video kit. Stages run strictly in order; the first fatal failure
// aborts the run with the stage name, and everything already written stays
// on disk for diagnosis.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	plan "shorts-pipeline/02_plan"
	images "shorts-pipeline/03_images"
	voice "shorts-pipeline/04_voice"
	captions "shorts-pipeline/05_captions"
	storyboard "shorts-pipeline/06_storyboard"
	render "shorts-pipeline/07_render"
	"shorts-pipeline/config"
	"shorts-pipeline/types"
)

// Request is one create invocation.
type Request struct {
	Topic       string
	VoiceGender string // male | female
	ImageStyle  string
	DryRun      bool
}

// Run drives the full pipeline and returns the final run state. The state is
// also persisted as run_state.json at every stage boundary.
func Run(ctx context.Context, cfg *config.Config, req Request) (*types.RunState, error) {
	for _, dir := range []string{cfg.Paths.Output, cfg.Paths.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	runID := uuid.NewString()[:8]
	runDir := filepath.Join(cfg.Paths.Output, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}

	log.Printf("🎬 Shorts pipeline starting — Run ID: %s", runID)
	log.Printf("📁 Output dir: %s", runDir)

	state := &types.RunState{
		RunID:     runID,
		Topic:     req.Topic,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
		DryRun:    req.DryRun,
	}
	fail := func(stage string, err error) (*types.RunState, error) {
		state.Error = fmt.Sprintf("%s: %v", stage, err)
		state.CompletedAt = time.Now().UTC().Format(time.RFC3339)
		saveState(state, runDir)
		return state, fmt.Errorf("%s: %w", stage, err)
	}

	// ━━━ Plan ━━━
	log.Println("\n━━━ STAGE 1: Plan ━━━")
	var p *types.Plan
	var err error
	if req.DryRun {
		p, err = plan.Placeholder(req.Topic, cfg.Script.TotalDurationSec, cfg.Script.SceneCount)
	} else {
		p, err = plan.NewWriter(cfg).Run(ctx, req.Topic)
	}
	if err != nil {
		return fail("plan", err)
	}
	state.Plan = p
	saveState(state, runDir)

	narration := p.Narration()
	if err := writePlanArtifacts(runDir, req, p, narration); err != nil {
		return fail("plan artifacts", err)
	}

	// ━━━ Scene stills ━━━
	log.Println("\n━━━ STAGE 2: Scene Images ━━━")
	sceneDir := filepath.Join(runDir, "scenes")
	sceneFiles, err := images.NewFetcher(cfg, req.ImageStyle).Run(ctx, p, sceneDir, req.DryRun)
	if err != nil {
		return fail("images", err)
	}
	saveState(state, runDir)

	// ━━━ Voiceover ━━━
	voicePath := ""
	if cfg.Voice.Enabled {
		log.Println("\n━━━ STAGE 3: Voiceover ━━━")
		voicePath = filepath.Join(runDir, "voiceover.mp3")
		if err := voice.New(cfg).Run(ctx, narration, req.VoiceGender, voicePath, req.DryRun); err != nil {
			return fail("voice", err)
		}
		state.VoiceFile = voicePath
		saveState(state, runDir)
	} else {
		log.Println("\n━━━ STAGE 3: Voiceover (disabled) ━━━")
	}

	// ━━━ Music selection ━━━
	musicPath, hasMusic := PickMusic(cfg)
	if hasMusic {
		log.Printf("[pipeline] Music track: %s", musicPath)
	} else {
		log.Println("[pipeline] No music track available")
	}

	// The audio-source combination is decided exactly once; render stages
	// never re-check file presence.
	mode := types.SelectAudioMode(voicePath != "", hasMusic)
	state.AudioMode = mode.String()

	// ━━━ Captions ━━━
	captionPath := ""
	if cfg.Captions.Enabled {
		log.Println("\n━━━ STAGE 4: Captions ━━━")
		cues := captions.Compile(narration, cfg.Script.TotalDurationSec)
		captionPath = filepath.Join(runDir, "captions.ass")
		if err := captions.WriteASS(captionPath, cues, cfg); err != nil {
			return fail("captions", err)
		}
		log.Printf("[pipeline] ✅ %d caption cues written", len(cues))
	} else {
		log.Println("\n━━━ STAGE 4: Captions (disabled) ━━━")
	}

	// ━━━ Storyboard ━━━
	log.Println("\n━━━ STAGE 5: Storyboard ━━━")
	perScene := plan.PerSceneSeconds(cfg.Script.TotalDurationSec, cfg.Script.SceneCount)
	rows := storyboard.Compile(sceneFiles, perScene)
	if err := storyboard.WriteCSV(filepath.Join(runDir, "storyboard.csv"), rows); err != nil {
		return fail("storyboard", err)
	}
	saveState(state, runDir)

	// ━━━ Render ━━━
	log.Println("\n━━━ STAGE 6: Render ━━━")
	rctx := &types.RenderContext{
		RunDir:      runDir,
		PerScene:    perScene,
		TotalSec:    cfg.Script.TotalDurationSec,
		Mode:        mode,
		VoicePath:   voicePath,
		MusicPath:   musicPath,
		CaptionPath: captionPath,
		DryRun:      req.DryRun,
	}
	final, err := render.New(cfg).Run(ctx, rctx, sceneFiles)
	if err != nil {
		return fail("render", err)
	}
	state.VideoFile = final
	state.CompletedAt = time.Now().UTC().Format(time.RFC3339)
	saveState(state, runDir)

	log.Printf("✅ Pipeline complete! Video: %s", final)
	return state, nil
}

func saveState(state *types.RunState, runDir string) {
	saveJSON(filepath.Join(runDir, "run_state.json"), state)
}

func saveJSON(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Warning: could not marshal JSON for %s: %v", path, err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("Warning: could not save %s: %v", path, err)
	}
}
