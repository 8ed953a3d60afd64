package plan

import (
	"errors"
	"strings"
	"testing"

	"shorts-pipeline/faults"
)

const samplePlanJSON = `{
  "title": "Dollar-Cost Averaging in 60 Seconds",
  "hook": "What if timing the market didn't matter?",
  "sections": [
    {"label": "intro", "seconds": 10, "body": "Dollar-cost averaging means investing a fixed amount on a schedule."},
    {"label": "body", "seconds": 40, "body": "You buy more shares when prices are low and fewer when they are high."},
    {"label": "outro", "seconds": 10, "body": "Consistency beats timing."}
  ],
  "image_prompts": ["calendar with coins", "stock chart going up and down", "piggy bank"],
  "style": "calm",
  "disclaimer": "Not financial advice."
}`

func TestParseAcceptsFencedJSON(t *testing.T) {
	for _, wrap := range []string{samplePlanJSON, "```json\n" + samplePlanJSON + "\n```", "```\n" + samplePlanJSON + "\n```"} {
		p, err := Parse(wrap)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if p.Title == "" || len(p.Sections) != 3 {
			t.Errorf("parsed plan incomplete: title=%q sections=%d", p.Title, len(p.Sections))
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("Sure! Here's your plan: it has three parts.")
	if err == nil {
		t.Fatal("expected error for non-JSON content")
	}
	if !errors.Is(err, faults.ErrValidation) {
		t.Errorf("unparsable plan should be a validation error, got %v", err)
	}
}

func TestFinalizeScenario(t *testing.T) {
	// Scenario from the storyboard contract: 6 scenes over 60s.
	p, err := Parse(samplePlanJSON)
	if err != nil {
		t.Fatal(err)
	}
	if err := Finalize(p, 60, 6); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	sum := 0
	for _, s := range p.Sections {
		sum += s.Seconds
	}
	if sum != 60 {
		t.Errorf("section durations sum to %d, want 60", sum)
	}

	if len(p.Scenes) != 6 {
		t.Fatalf("got %d scenes, want 6", len(p.Scenes))
	}
	for i, sc := range p.Scenes {
		if sc.Seconds != 10 {
			t.Errorf("scene %d duration %d, want 10", i, sc.Seconds)
		}
		if sc.Excerpt == "" {
			t.Errorf("scene %d has no narration excerpt", i)
		}
	}

	if len(p.ImagePrompts) != 6 {
		t.Errorf("image prompts padded to %d, want 6 (one per scene)", len(p.ImagePrompts))
	}
}

func TestFinalizeTrimsExcessPrompts(t *testing.T) {
	p, _ := Parse(samplePlanJSON)
	p.ImagePrompts = append(p.ImagePrompts, "extra one", "extra two")
	if err := Finalize(p, 30, 2); err != nil {
		t.Fatal(err)
	}
	if len(p.ImagePrompts) != 2 {
		t.Errorf("got %d prompts, want 2", len(p.ImagePrompts))
	}
}

func TestPlaceholderSameShapeAsRealPlan(t *testing.T) {
	p, err := Placeholder("compound interest", 60, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Scenes) != 6 || len(p.ImagePrompts) != 6 {
		t.Errorf("placeholder shape: %d scenes, %d prompts", len(p.Scenes), len(p.ImagePrompts))
	}
	sum := 0
	for _, s := range p.Sections {
		sum += s.Seconds
	}
	if sum != 60 {
		t.Errorf("placeholder sections sum to %d, want 60", sum)
	}
	if !strings.Contains(p.Narration(), "compound interest") {
		t.Error("placeholder narration should mention the topic")
	}
}
