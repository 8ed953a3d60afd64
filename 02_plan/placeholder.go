package plan

import (
	"fmt"

	"shorts-pipeline/types"
)

// Placeholder builds a deterministic plan for dry runs: same shape and the
// same reconciliation path as a real plan, no backend call.
func Placeholder(topic string, totalSec, sceneCount int) (*types.Plan, error) {
	p := &types.Plan{
		Title: fmt.Sprintf("Placeholder: %s", topic),
		Hook:  fmt.Sprintf("Here is everything you need to know about %s.", topic),
		Sections: []types.PlanSection{
			{Label: "intro", Seconds: 10, Body: fmt.Sprintf("Let's talk about %s.", topic)},
			{Label: "body", Seconds: 40, Body: "This is placeholder narration for the main body of the video."},
			{Label: "outro", Seconds: 10, Body: "That's the whole story. See you in the next one."},
		},
		Style:      "calm",
		Disclaimer: "This is placeholder content.",
	}
	for i := 0; i < sceneCount; i++ {
		p.ImagePrompts = append(p.ImagePrompts, fmt.Sprintf("placeholder scene %d for %s", i+1, topic))
	}
	if err := Finalize(p, totalSec, sceneCount); err != nil {
		return nil, err
	}
	return p, nil
}
