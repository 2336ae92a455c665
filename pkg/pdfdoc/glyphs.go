package pdfdoc

import (
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/gardar/studytext/pkg/layout"
)

const (
	// Glyphs further apart than this fraction of the font size start a new run.
	maxGlyphGap = 0.25
	// Glyphs may overlap by this fraction of the font size (kerning) and still
	// belong to the same run.
	maxGlyphOverlap = 0.5
	// Baselines closer than this fraction of the font size count as equal.
	baselineSlack = 0.1
)

// Coalesce merges the per-character glyphs produced by the PDF reader into
// word-sized runs. A glyph joins the current run when it sits on the same
// baseline and starts where the run ends, give or take a small gap. Space
// glyphs end the current run and are dropped, as are empty glyphs.
func Coalesce(glyphs []pdf.Text) []layout.GlyphRun {
	var runs []layout.GlyphRun
	var b runBuilder

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		if strings.TrimSpace(g.S) == "" {
			if b.active() {
				runs = append(runs, b.run())
				b.reset()
			}
			continue
		}
		if b.active() && !b.accepts(g) {
			runs = append(runs, b.run())
			b.reset()
		}
		b.add(g)
	}
	if b.active() {
		runs = append(runs, b.run())
	}
	return runs
}

type runBuilder struct {
	text     strings.Builder
	x, y     float64
	end      float64
	fontSize float64
}

func (b *runBuilder) active() bool { return b.text.Len() > 0 }

func (b *runBuilder) reset() {
	b.text.Reset()
	b.x, b.y, b.end, b.fontSize = 0, 0, 0, 0
}

func (b *runBuilder) accepts(g pdf.Text) bool {
	size := b.fontSize
	if size <= 0 {
		size = g.FontSize
	}
	if size <= 0 {
		size = 1
	}
	if math.Abs(g.Y-b.y) > baselineSlack*size {
		return false
	}
	gap := g.X - b.end
	return gap <= maxGlyphGap*size && gap >= -maxGlyphOverlap*size
}

func (b *runBuilder) add(g pdf.Text) {
	if !b.active() {
		b.x, b.y = g.X, g.Y
		b.fontSize = g.FontSize
	}
	b.text.WriteString(g.S)
	b.end = g.X + g.W
}

func (b *runBuilder) run() layout.GlyphRun {
	return layout.GlyphRun{
		Text:      strings.TrimSpace(b.text.String()),
		Transform: layout.Matrix{b.fontSize, 0, 0, b.fontSize, b.x, b.y},
		Width:     b.end - b.x,
		FontSize:  b.fontSize,
	}
}
