// Package testpdf builds small PDF documents for tests.
//
// Words are placed one Text call at a time. The standard PDF fonts carry no
// width table, so a text reader sees every glyph of a word at the word's
// origin; spacing words explicitly keeps them apart.
package testpdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"codeberg.org/go-pdf/fpdf"
)

const (
	pageWidth  = 595.28 // A4 in points
	pageHeight = 841.89
	margin     = 50.0
	lineHeight = 16.0
	fontSize   = 11.0
	// Horizontal advance per character. Generous so words never touch.
	charAdvance = fontSize * 0.75
)

// Builder accumulates pages.
type Builder struct {
	pdf    *fpdf.Fpdf
	images int
}

// New returns an empty builder.
func New() *Builder {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(false)
	pdf.SetFont("Helvetica", "", fontSize)
	return &Builder{pdf: pdf}
}

// TextPage adds a page with lines of text starting at the top margin.
func (b *Builder) TextPage(lines ...string) *Builder {
	b.pdf.AddPage()
	b.pdf.SetFont("Helvetica", "", fontSize)
	y := margin
	for _, line := range lines {
		b.writeLine(line, margin, y)
		y += lineHeight
	}
	return b
}

// WordsPage adds a page with n distinct words wrapped over several lines.
func (b *Builder) WordsPage(prefix string, n int) *Builder {
	var lines []string
	var line []string
	for i := 1; i <= n; i++ {
		line = append(line, fmt.Sprintf("%s%d", prefix, i))
		if len(line) == 8 {
			lines = append(lines, strings.Join(line, " "))
			line = nil
		}
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return b.TextPage(lines...)
}

// BlankPage adds a page with no content.
func (b *Builder) BlankPage() *Builder {
	b.pdf.AddPage()
	return b
}

// ImagePage adds a page covered by img and no text layer, like a scan.
func (b *Builder) ImagePage(img image.Image) *Builder {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		b.pdf.SetError(fmt.Errorf("failed to encode image: %w", err))
		return b
	}

	b.images++
	name := fmt.Sprintf("img%d", b.images)
	opts := fpdf.ImageOptions{ReadDpi: false, ImageType: "PNG"}
	b.pdf.AddPage()
	b.pdf.RegisterImageOptionsReader(name, opts, &buf)
	b.pdf.ImageOptions(name, 0, 0, pageWidth, pageHeight, false, opts, 0, "")
	return b
}

func (b *Builder) writeLine(line string, x, y float64) {
	for _, word := range strings.Fields(line) {
		b.pdf.Text(x, y, word)
		x += float64(len(word)+1) * charAdvance
	}
}

// Bytes renders the document.
func (b *Builder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
