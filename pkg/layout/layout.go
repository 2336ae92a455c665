// Package layout rebuilds reading order from the positioned glyph runs of a
// PDF page's native text layer.
//
// The package is pure: it takes runs as reported by a text-layer reader and
// returns ordered runs, text lines, or the page's native text. Nothing here
// touches a file or an OCR engine.
//
// Reading order is top-to-bottom, left-to-right. PDF user space grows upwards,
// so a larger y is nearer the top of the page. Two runs belong to the same line
// when their baselines lie within a tolerance of the line's anchor, which is the
// baseline of the line's top-most run.
//
// Main Functions:
//
// - SortRuns: orders runs into visual reading order
// - ReconstructLines: groups sorted runs into space-joined lines
// - NativeText: SortRuns + ReconstructLines, joined with newlines
package layout

// DefaultLineTolerance is the vertical distance, in PDF layout units, within
// which two baselines are considered to be on the same line.
const DefaultLineTolerance = 5.0
