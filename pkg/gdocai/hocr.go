package gdocai

import (
	"fmt"
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"

	"github.com/gardar/studytext/pkg/hocr"
)

// PageFromProto converts a Document AI page to an hocr.Page. Each Document AI
// line becomes one hOCR line holding the tokens whose text lies inside it.
// Coordinates are scaled from normalised vertices to the page dimension.
func PageFromProto(page *documentaipb.Document_Page, fullText string, pageNumber int) hocr.Page {
	out := hocr.Page{
		ID:         fmt.Sprintf("page_%d", pageNumber),
		PageNumber: pageNumber,
	}
	if page == nil {
		return out
	}
	if bbox, ok := boundingBox(page.Layout, page.Dimension); ok {
		out.BBox = bbox
	}

	for lidx, line := range page.Lines {
		out.Lines = append(out.Lines, convertLine(line, page, fullText, pageNumber, lidx))
	}
	return out
}

func convertLine(line *documentaipb.Document_Page_Line, page *documentaipb.Document_Page,
	fullText string, pageNum, lineIdx int) hocr.Line {

	out := hocr.Line{
		ID:    fmt.Sprintf("line_%d_%d", pageNum, lineIdx),
		Class: "ocr_line",
	}
	if bbox, ok := boundingBox(line.Layout, page.Dimension); ok {
		out.BBox = bbox
	}

	for tidx, token := range page.Tokens {
		if !isElementInParent(token.Layout, line.Layout) {
			continue
		}

		text := strings.TrimSpace(textFromLayout(token.Layout, fullText))
		text = strings.ReplaceAll(text, "\r", "")
		text = strings.ReplaceAll(text, "\n", " ")
		if text == "" {
			continue
		}

		word := hocr.Word{
			ID:         fmt.Sprintf("word_%d_%d_%d", pageNum, lineIdx, tidx),
			Text:       text,
			Confidence: -1,
		}
		if bbox, ok := boundingBox(token.Layout, page.Dimension); ok {
			word.BBox = bbox
		}
		if token.Layout != nil {
			word.Confidence = float64(token.Layout.Confidence * 100)
		}
		out.Words = append(out.Words, word)
	}
	return out
}

// textFromLayout concatenates the document text covered by the layout's text
// anchor. Segment indexes are rune offsets into fullText; indexes outside the
// text are clamped and inverted segments yield nothing.
func textFromLayout(layout *documentaipb.Document_Page_Layout, fullText string) string {
	if layout == nil || layout.TextAnchor == nil {
		return ""
	}
	runes := []rune(fullText)
	var b strings.Builder
	for _, seg := range layout.TextAnchor.TextSegments {
		start := clamp(seg.StartIndex, len(runes))
		end := clamp(seg.EndIndex, len(runes))
		if start < end {
			b.WriteString(string(runes[start:end]))
		}
	}
	return b.String()
}

func clamp(i int64, n int) int {
	switch {
	case i < 0:
		return 0
	case i > int64(n):
		return n
	}
	return int(i)
}

// boundingBox converts normalised vertices (0-1) to page coordinates.
func boundingBox(layout *documentaipb.Document_Page_Layout, dim *documentaipb.Document_Page_Dimension) (hocr.BoundingBox, bool) {
	if layout == nil || layout.BoundingPoly == nil || dim == nil || len(layout.BoundingPoly.NormalizedVertices) < 4 {
		return hocr.BoundingBox{}, false
	}
	v := layout.BoundingPoly.NormalizedVertices
	return hocr.BoundingBox{
		X1: float64(int(float64(v[0].X)*float64(dim.Width) + 0.5)),
		Y1: float64(int(float64(v[0].Y)*float64(dim.Height) + 0.5)),
		X2: float64(int(float64(v[2].X)*float64(dim.Width) + 0.5)),
		Y2: float64(int(float64(v[2].Y)*float64(dim.Height) + 0.5)),
	}, true
}

// isElementInParent reports whether the element's first text segment lies
// inside the parent's.
func isElementInParent(element, parent *documentaipb.Document_Page_Layout) bool {
	if element == nil || parent == nil ||
		element.TextAnchor == nil || parent.TextAnchor == nil ||
		len(element.TextAnchor.TextSegments) == 0 || len(parent.TextAnchor.TextSegments) == 0 {
		return false
	}

	e := element.TextAnchor.TextSegments[0]
	p := parent.TextAnchor.TextSegments[0]
	return e.StartIndex >= p.StartIndex && e.EndIndex <= p.EndIndex
}
