package images

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"shorts-pipeline/config"
	"shorts-pipeline/faults"
	"shorts-pipeline/types"
)

// styleModifiers augments the plan's image prompts per the --image-style
// selector. Unknown styles fall back to the default modifier.
var styleModifiers = map[string]string{
	"photo":     "photorealistic, natural lighting, shallow depth of field, 4K",
	"flat":      "flat vector illustration, bold shapes, minimal palette",
	"cinematic": "cinematic lighting, dramatic contrast, film grain",
	"sketch":    "hand-drawn pencil sketch, crosshatching, paper texture",
}

const defaultModifier = "clean composition, vivid colors, high detail"

// Fetcher generates scene stills via Pollinations (free, keyless).
type Fetcher struct {
	cfg        *config.Config
	style      string
	httpClient *http.Client
}

func NewFetcher(cfg *config.Config, style string) *Fetcher {
	return &Fetcher{
		cfg:        cfg,
		style:      style,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

// Run generates one still per scene and returns the ordered file list.
// Filenames are zero-padded so their sort order is the scene order — the
// concatenator depends on that.
func (f *Fetcher) Run(ctx context.Context, p *types.Plan, outputDir string, dryRun bool) ([]string, error) {
	log.Printf("[images] Preparing %d scene stills...", len(p.Scenes))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	files := make([]string, len(p.Scenes))
	for i := range p.Scenes {
		outFile := filepath.Join(outputDir, fmt.Sprintf("scene_%02d.png", i+1))
		files[i] = outFile

		if dryRun {
			if err := writePlaceholder(outFile, p.ImagePrompts[i]); err != nil {
				return nil, err
			}
			continue
		}

		if err := f.fetchScene(ctx, p.ImagePrompts[i], i, outFile); err != nil {
			return nil, err
		}
		log.Printf("[images] ✅ Scene %d/%d still saved: %s", i+1, len(p.Scenes), outFile)
	}

	return files, nil
}

func (f *Fetcher) fetchScene(ctx context.Context, prompt string, index int, outFile string) error {
	full := fmt.Sprintf("%s, %s, no text, no watermark", prompt, f.modifier())
	imageURL := fmt.Sprintf(
		"https://image.pollinations.ai/prompt/%s?width=%d&height=%d&nologo=true&model=flux&seed=%d",
		url.PathEscape(full),
		f.cfg.Video.Width, f.cfg.Video.Height,
		index*42+7, // deterministic seed per scene for reproducibility
	)

	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		err = f.download(ctx, imageURL, outFile)
		if err == nil {
			return nil
		}
		log.Printf("[images] Attempt %d failed for scene %d: %v", attempt, index+1, err)
		time.Sleep(time.Duration(attempt) * 3 * time.Second)
	}
	return faults.Transport("image backend failed for scene %d after 3 attempts: %v", index+1, err)
}

func (f *Fetcher) download(ctx context.Context, imageURL, outFile string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ShortsPipeline/1.0)")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from image backend", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	// An error page is always tiny; a real still never is.
	if len(data) < 100 {
		return fmt.Errorf("response too small (%d bytes)", len(data))
	}

	return os.WriteFile(outFile, data, 0644)
}

func (f *Fetcher) modifier() string {
	if m, ok := styleModifiers[f.style]; ok {
		return m
	}
	return defaultModifier
}

// writePlaceholder stands in for a generated still on dry runs: same path,
// same layout, throwaway content.
func writePlaceholder(outFile, prompt string) error {
	return os.WriteFile(outFile, []byte("placeholder image: "+prompt+"\n"), 0644)
}
