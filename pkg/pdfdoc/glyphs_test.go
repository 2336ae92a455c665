package pdfdoc

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
)

func glyphs(s string, x, y, advance float64) []pdf.Text {
	var out []pdf.Text
	for _, r := range s {
		out = append(out, pdf.Text{FontSize: 10, X: x, Y: y, W: advance, S: string(r)})
		x += advance
	}
	return out
}

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name   string
		glyphs []pdf.Text
		want   []string
	}{
		{
			name:   "empty",
			glyphs: nil,
			want:   nil,
		},
		{
			name:   "adjacent glyphs form one run",
			glyphs: glyphs("word", 10, 100, 5),
			want:   []string{"word"},
		},
		{
			name:   "space glyph splits runs",
			glyphs: glyphs("two words", 10, 100, 5),
			want:   []string{"two", "words"},
		},
		{
			name: "gap splits runs",
			glyphs: append(glyphs("left", 10, 100, 5),
				glyphs("right", 60, 100, 5)...),
			want: []string{"left", "right"},
		},
		{
			name: "baseline change splits runs",
			glyphs: append(glyphs("up", 10, 100, 5),
				glyphs("down", 20, 80, 5)...),
			want: []string{"up", "down"},
		},
		{
			name:   "zero width glyphs at one origin",
			glyphs: glyphs("stacked", 10, 100, 0),
			want:   []string{"stacked"},
		},
		{
			name: "empty glyphs skipped",
			glyphs: []pdf.Text{
				{FontSize: 10, X: 10, Y: 100, W: 5, S: "a"},
				{FontSize: 10, X: 15, Y: 100, W: 0, S: ""},
				{FontSize: 10, X: 15, Y: 100, W: 5, S: "b"},
			},
			want: []string{"ab"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := Coalesce(tt.glyphs)
			var got []string
			for _, r := range runs {
				got = append(got, r.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoalesceGeometry(t *testing.T) {
	runs := Coalesce(glyphs("abc", 12, 700, 4))
	if assert.Len(t, runs, 1) {
		r := runs[0]
		assert.Equal(t, 12.0, r.X())
		assert.Equal(t, 700.0, r.Y())
		assert.Equal(t, 12.0, r.Width)
		assert.Equal(t, 10.0, r.FontSize)
	}
}
