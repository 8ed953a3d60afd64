package plan

import (
	"math"

	"shorts-pipeline/faults"
)

// minSectionSec keeps every section long enough to render a segment from.
const minSectionSec = 2

// AllocateSections rescales raw section lengths onto the target duration.
// Each section becomes max(2, round(raw*scale)); the last section is then
// nudged one second at a time until the sum lands exactly on totalSec. The
// sum is conserved exactly even though individual roundings are approximate.
func AllocateSections(raw []float64, totalSec int) ([]int, error) {
	if len(raw) == 0 {
		return nil, faults.Validation("no sections to allocate")
	}
	var sum float64
	for _, s := range raw {
		sum += s
	}
	if sum <= 0 {
		return nil, faults.Configuration("section seconds sum to %.1f, cannot scale", sum)
	}

	scale := float64(totalSec) / sum
	out := make([]int, len(raw))
	got := 0
	for i, s := range raw {
		d := int(math.Round(s * scale))
		if d < minSectionSec {
			d = minSectionSec
		}
		out[i] = d
		got += d
	}

	last := len(out) - 1
	for got > totalSec {
		out[last]--
		got--
	}
	for got < totalSec {
		out[last]++
		got++
	}
	return out, nil
}

// PerSceneSeconds is the uniform scene duration, round(T/N). It is computed
// independently of the section reconciliation and N*PerSceneSeconds may miss
// T by up to N-1 seconds; the storyboard carries that drift as-is.
func PerSceneSeconds(totalSec, sceneCount int) int {
	return int(math.Round(float64(totalSec) / float64(sceneCount)))
}
