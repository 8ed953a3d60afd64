package plan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"shorts-pipeline/config"
	"shorts-pipeline/faults"
	"shorts-pipeline/types"
)

const systemPrompt = `You are a scriptwriter for short-form vertical videos (YouTube Shorts / Reels).
Given a topic, you write a tight script plan for a single video.

You MUST respond with ONLY valid JSON — no preamble, no markdown, no explanation.

The JSON object must have:
- "title": punchy video title (under 80 chars)
- "hook": one or two opening sentences that grab attention immediately
- "sections": array of {"label": string, "seconds": number, "body": string} — the narration, in order
- "image_prompts": array of detailed image generation prompts, one per scene
- "style": a one-word narration style tag ("energetic" | "calm" | "serious")
- "disclaimer": a short closing disclaimer sentence, or "" if none is needed

Keep the narration conversational and dense. No emojis, no hashtags.`

// Writer generates plans through a Groq-hosted chat completions endpoint.
type Writer struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewWriter(cfg *config.Config) *Writer {
	return &Writer{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Run generates a finalized plan for the topic: backend call, JSON parse,
// duration reconciliation, scene derivation.
func (w *Writer) Run(ctx context.Context, topic string) (*types.Plan, error) {
	log.Printf("[plan] Generating plan for topic %q...", topic)

	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, faults.Configuration("GROQ_API_KEY not set")
	}

	userPrompt := fmt.Sprintf(
		"Topic: %s\n\nWrite a plan for a %d second video with exactly %d scenes. Respond ONLY with valid JSON.",
		topic, w.cfg.Script.TotalDurationSec, w.cfg.Script.SceneCount,
	)

	reqBody := chatRequest{
		Model: w.cfg.Script.GroqModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: w.cfg.Script.Temperature,
		MaxTokens:   4096,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.groq.com/openai/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, faults.Transport("plan backend request: %v", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, faults.Transport("read plan response: %v", err)
	}

	var chat chatResponse
	if err := json.Unmarshal(respBytes, &chat); err != nil {
		return nil, faults.Transport("parse backend envelope: %v", err)
	}
	if chat.Error != nil {
		return nil, faults.Transport("plan backend: %s", chat.Error.Message)
	}
	if len(chat.Choices) == 0 {
		return nil, faults.Transport("plan backend returned no choices")
	}

	p, err := Parse(chat.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	if err := Finalize(p, w.cfg.Script.TotalDurationSec, w.cfg.Script.SceneCount); err != nil {
		return nil, err
	}

	log.Printf("[plan] ✅ Plan ready: %q, %d sections, %d scenes", p.Title, len(p.Sections), len(p.Scenes))
	return p, nil
}

// Parse decodes the model's JSON output, tolerating markdown fences.
func Parse(content string) (*types.Plan, error) {
	content = cleanJSON(content)

	var p types.Plan
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return nil, faults.Validation("unparsable plan JSON: %v (content starts %q)", err, head(content, 120))
	}
	if p.Title == "" || len(p.Sections) == 0 {
		return nil, faults.Validation("plan missing title or sections")
	}
	return &p, nil
}

// Finalize reconciles section durations onto totalSec and derives the scene
// list with uniform per-scene durations. Image prompts are padded or trimmed
// to exactly one per scene.
func Finalize(p *types.Plan, totalSec, sceneCount int) error {
	raw := make([]float64, len(p.Sections))
	for i, s := range p.Sections {
		raw[i] = float64(s.Seconds)
	}
	durs, err := AllocateSections(raw, totalSec)
	if err != nil {
		return err
	}
	for i := range p.Sections {
		p.Sections[i].Seconds = durs[i]
	}

	perScene := PerSceneSeconds(totalSec, sceneCount)
	p.Scenes = make([]types.PlanScene, sceneCount)
	for i := range p.Scenes {
		p.Scenes[i] = types.PlanScene{
			Index:   i,
			Seconds: perScene,
			Excerpt: excerptAt(p.Sections, i*perScene),
		}
	}

	for len(p.ImagePrompts) < sceneCount {
		p.ImagePrompts = append(p.ImagePrompts, fmt.Sprintf("%s, illustrative scene %d", p.Title, len(p.ImagePrompts)+1))
	}
	p.ImagePrompts = p.ImagePrompts[:sceneCount]
	return nil
}

// excerptAt returns the body of the section whose reconciled time window
// contains the given offset; the last section absorbs any tail.
func excerptAt(sections []types.PlanSection, offsetSec int) string {
	elapsed := 0
	for _, s := range sections {
		elapsed += s.Seconds
		if offsetSec < elapsed {
			return s.Body
		}
	}
	return sections[len(sections)-1].Body
}

// cleanJSON strips markdown fences if the model wraps its response.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
