package layout

import (
	"sort"
)

// SortRuns returns the runs in visual reading order: descending y, and within
// a line band ascending x. A band starts at the top-most remaining run and
// takes every following run whose y is within tol of that first run's y.
// Comparing against the band anchor, rather than the previous run, keeps a
// slowly drifting baseline on one line from splitting it.
//
// The input slice is not modified. An empty input yields an empty slice.
func SortRuns(runs []GlyphRun, tol float64) []GlyphRun {
	sorted := make([]GlyphRun, len(runs))
	copy(sorted, runs)

	// Strict order first so the band split does not depend on input order
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Y() != b.Y() {
			return a.Y() > b.Y()
		}
		if a.X() != b.X() {
			return a.X() < b.X()
		}
		return a.Text < b.Text
	})

	for start := 0; start < len(sorted); {
		anchor := sorted[start].Y()
		end := start + 1
		for end < len(sorted) && sameLine(anchor, sorted[end].Y(), tol) {
			end++
		}
		band := sorted[start:end]
		sort.SliceStable(band, func(i, j int) bool {
			return band[i].X() < band[j].X()
		})
		start = end
	}

	return sorted
}
