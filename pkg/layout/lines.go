package layout

import (
	"strings"
)

// ReconstructLines groups runs, already in reading order, into text lines.
//
// A line's anchor is the highest baseline seen on it so far. Each run either
// joins the current line or, when its y is more than tol away from the anchor,
// flushes the current line and starts a new one. For SortRuns output the
// anchor reaches the band's top-most run before the band ends, so lines match
// the sorter's bands exactly. Runs of a line are joined with a single space.
func ReconstructLines(sorted []GlyphRun, tol float64) []string {
	var lines []string
	var current []string
	var anchor float64

	for _, run := range sorted {
		y := run.Y()
		if len(current) > 0 && !sameLine(anchor, y, tol) {
			lines = append(lines, strings.Join(current, " "))
			current = current[:0]
		}
		if len(current) == 0 || y > anchor {
			anchor = y
		}
		current = append(current, run.Text)
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// NativeText returns a page's native-layer text: the runs sorted into reading
// order, grouped into lines and joined with newlines. It returns "" when the
// page has no runs, which callers treat as a hint that OCR is needed.
func NativeText(runs []GlyphRun, tol float64) string {
	if len(runs) == 0 {
		return ""
	}
	return strings.Join(ReconstructLines(SortRuns(runs, tol), tol), "\n")
}
