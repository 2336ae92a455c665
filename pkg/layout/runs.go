package layout

// Matrix is a 2D affine transform in PDF order [a b c d e f].
// The translation components e and f carry the run's baseline origin.
type Matrix [6]float64

// Translate returns a pure translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// GlyphRun is a fragment of text from a page's native text layer together
// with its position on the page.
type GlyphRun struct {
	Text      string  // Decoded text of the run
	Transform Matrix  // Text rendering matrix at the start of the run
	Width     float64 // Advance width in layout units (0 when unknown)
	FontSize  float64 // Effective font size (0 when unknown)
}

// NewRun creates a run positioned at (x, y) with an identity scale.
func NewRun(text string, x, y float64) GlyphRun {
	return GlyphRun{Text: text, Transform: Translate(x, y)}
}

// X returns the horizontal origin of the run.
func (r GlyphRun) X() float64 { return r.Transform[4] }

// Y returns the baseline of the run.
func (r GlyphRun) Y() float64 { return r.Transform[5] }

// sameLine reports whether y lies within tol of the line anchor.
func sameLine(anchor, y, tol float64) bool {
	d := anchor - y
	if d < 0 {
		d = -d
	}
	return d <= tol
}
