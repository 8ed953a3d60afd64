// Package storyboard builds the authoritative per-scene timing table the
// renderer consumes. The table is derivable from the plan alone; nothing in
// it depends on render state.
package storyboard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shorts-pipeline/types"
)

// Compile produces one row per scene file with cumulative start offsets and
// the uniform per-scene duration. Cue indexes are 1-based.
func Compile(sceneFiles []string, perSceneSec int) []types.StoryboardRow {
	rows := make([]types.StoryboardRow, len(sceneFiles))
	offset := 0
	for i, f := range sceneFiles {
		rows[i] = types.StoryboardRow{
			Filename: filepath.Base(f),
			StartSec: offset,
			Duration: perSceneSec,
			Cue:      i + 1,
		}
		offset += perSceneSec
	}
	return rows
}

// RenderCSV serializes rows as the persisted storyboard table:
// a header line, then filename,start,duration,cue per row.
func RenderCSV(rows []types.StoryboardRow) string {
	var sb strings.Builder
	sb.WriteString("filename,start,duration,cue\n")
	for _, r := range rows {
		fmt.Fprintf(&sb, "%s,%d,%d,%d\n", r.Filename, r.StartSec, r.Duration, r.Cue)
	}
	return sb.String()
}

// WriteCSV persists the table next to the run's other artifacts.
func WriteCSV(path string, rows []types.StoryboardRow) error {
	return os.WriteFile(path, []byte(RenderCSV(rows)), 0644)
}
