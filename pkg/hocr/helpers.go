package hocr

import (
	"strings"
)

// Text rebuilds the page text: one line per hOCR line, words joined by a
// single space. Words whose confidence is known and below minConfidence are
// left out; lines left without words are dropped.
func (p Page) Text(minConfidence float64) string {
	var lines []string
	for _, line := range p.Lines {
		var words []string
		for _, w := range line.Words {
			if w.Text == "" {
				continue
			}
			if w.Confidence >= 0 && w.Confidence < minConfidence {
				continue
			}
			words = append(words, w.Text)
		}
		if len(words) > 0 {
			lines = append(lines, strings.Join(words, " "))
		}
	}
	return strings.Join(lines, "\n")
}

// MeanConfidence returns the average word confidence on the page (0-100),
// ignoring words without a confidence value. It returns 0 for a page with no
// scored words.
func (p Page) MeanConfidence() float64 {
	var sum float64
	var n int
	for _, line := range p.Lines {
		for _, w := range line.Words {
			if w.Confidence < 0 {
				continue
			}
			sum += w.Confidence
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
