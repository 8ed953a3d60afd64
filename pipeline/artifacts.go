package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shorts-pipeline/types"
)

// writePlanArtifacts persists the human-readable run files: the structured
// plan description, the narration text and the instructions sheet.
func writePlanArtifacts(runDir string, req Request, p *types.Plan, narration string) error {
	if err := os.WriteFile(filepath.Join(runDir, "plan.txt"), []byte(RenderPlanText(p)), 0644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(runDir, "narration.txt"), []byte(narration+"\n"), 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(runDir, "instructions.txt"), []byte(RenderInstructions(req, p)), 0644)
}

// RenderPlanText serializes the plan as the persisted structured-text
// description.
func RenderPlanText(p *types.Plan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "TITLE: %s\n", p.Title)
	fmt.Fprintf(&sb, "STYLE: %s\n", p.Style)
	fmt.Fprintf(&sb, "HOOK: %s\n\n", p.Hook)

	fmt.Fprintf(&sb, "SECTIONS:\n")
	for _, s := range p.Sections {
		fmt.Fprintf(&sb, "  [%s] %ds — %s\n", s.Label, s.Seconds, s.Body)
	}

	fmt.Fprintf(&sb, "\nSCENES:\n")
	for _, sc := range p.Scenes {
		fmt.Fprintf(&sb, "  %d. %ds — %s\n", sc.Index+1, sc.Seconds, sc.Excerpt)
	}

	fmt.Fprintf(&sb, "\nIMAGE PROMPTS:\n")
	for i, prompt := range p.ImagePrompts {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, prompt)
	}

	if p.Disclaimer != "" {
		fmt.Fprintf(&sb, "\nDISCLAIMER: %s\n", p.Disclaimer)
	}
	return sb.String()
}

// RenderInstructions writes the per-run sheet that tells a human what was
// produced and how to use it.
func RenderInstructions(req Request, p *types.Plan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Video kit for topic: %s\n\n", req.Topic)
	fmt.Fprintf(&sb, "Files in this directory:\n")
	fmt.Fprintf(&sb, "  plan.txt        — the structured script plan\n")
	fmt.Fprintf(&sb, "  narration.txt   — the spoken narration text\n")
	fmt.Fprintf(&sb, "  storyboard.csv  — per-scene timing table (filename,start,duration,cue)\n")
	fmt.Fprintf(&sb, "  captions.ass    — the caption track (if captions are enabled)\n")
	fmt.Fprintf(&sb, "  scenes/         — one still per scene\n")
	fmt.Fprintf(&sb, "  segments/       — one rendered segment per scene\n")
	fmt.Fprintf(&sb, "  final_video.mp4 — the muxed output\n\n")
	fmt.Fprintf(&sb, "Suggested title: %s\n", p.Title)
	if req.DryRun {
		fmt.Fprintf(&sb, "\nThis was a DRY RUN: all media files are placeholders.\n")
	}
	return sb.String()
}

// BuildMetadata derives upload metadata from a finished plan.
func BuildMetadata(p *types.Plan, visibility, categoryID string) *types.VideoMetadata {
	desc := p.Hook
	if p.Disclaimer != "" {
		desc += "\n\n" + p.Disclaimer
	}
	return &types.VideoMetadata{
		Title:       p.Title,
		Description: desc,
		Tags:        tagWords(p.Title),
		CategoryID:  categoryID,
		Visibility:  visibility,
	}
}

// tagWords pulls the plain words out of a title for use as upload tags.
func tagWords(title string) []string {
	var tags []string
	for _, w := range strings.Fields(strings.ToLower(title)) {
		w = strings.Trim(w, ".,!?:;\"'()")
		if len(w) > 3 {
			tags = append(tags, w)
		}
	}
	if len(tags) > 10 {
		tags = tags[:10]
	}
	return tags
}
