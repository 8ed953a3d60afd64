package images

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shorts-pipeline/config"
	"shorts-pipeline/types"
)

func TestStyleModifier(t *testing.T) {
	cfg := config.Default()
	cases := []struct {
		style string
		known bool
	}{
		{"photo", true},
		{"cinematic", true},
		{"", false},
		{"made-up-style", false},
	}
	for _, c := range cases {
		f := NewFetcher(cfg, c.style)
		got := f.modifier()
		if c.known && got == defaultModifier {
			t.Errorf("style %q should have its own modifier", c.style)
		}
		if !c.known && got != defaultModifier {
			t.Errorf("style %q should fall back to the default modifier, got %q", c.style, got)
		}
	}
}

func TestDryRunLayout(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()

	p := plan6()
	f := NewFetcher(cfg, "photo")
	files, err := f.Run(context.Background(), p, dir, true)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if len(files) != 6 {
		t.Fatalf("got %d files, want 6", len(files))
	}
	for i, path := range files {
		want := filepath.Join(dir, filepath.Base(path))
		if path != want {
			t.Errorf("file %d outside output dir: %s", i, path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("placeholder %d missing: %v", i, err)
		}
	}
	// zero-padded names sort in scene order
	if filepath.Base(files[0]) != "scene_01.png" || filepath.Base(files[5]) != "scene_06.png" {
		t.Errorf("unexpected naming: %s .. %s", filepath.Base(files[0]), filepath.Base(files[5]))
	}
}

func plan6() *types.Plan {
	p := &types.Plan{Title: "t"}
	for i := 0; i < 6; i++ {
		p.Scenes = append(p.Scenes, types.PlanScene{Index: i, Seconds: 10})
		p.ImagePrompts = append(p.ImagePrompts, "prompt")
	}
	return p
}
