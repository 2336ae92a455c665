package extract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNothingExtractable is returned when no page in the range yielded text.
var ErrNothingExtractable = errors.New("no text could be extracted from the selected pages")

// Origin tells where a page's final text came from.
type Origin string

const (
	OriginNative Origin = "native"
	OriginOCR    Origin = "ocr"
	OriginMerged Origin = "merged"
	OriginNone   Origin = "none"
)

// Stage names the step of page processing a warning came from.
type Stage string

const (
	StageNative  Stage = "native"   // Reading the text layer
	StageRender  Stage = "render"   // Rasterising the page
	StageOCR     Stage = "ocr"      // Recognition
	StageOCRInit Stage = "ocr-init" // Creating the OCR engine, reported once per run
)

// Warning is a non-fatal problem met during extraction. Page is 0 for
// problems that concern the whole run.
type Warning struct {
	Page  int
	Stage Stage
	Err   error
}

func (w Warning) Error() string {
	if w.Page == 0 {
		return fmt.Sprintf("%s: %v", w.Stage, w.Err)
	}
	return fmt.Sprintf("page %d %s: %v", w.Page, w.Stage, w.Err)
}

func (w Warning) Unwrap() error { return w.Err }

// PageText is the final text of one page.
type PageText struct {
	Number        int
	Text          string // Never empty; a placeholder line when nothing was found
	Origin        Origin
	Placeholder   bool    // Text is a placeholder line
	Degraded      bool    // OCR was wanted but failed; Text is native only
	NativeTokens  int     // Token count of the native text
	OCRConfidence float64 // Mean OCR word confidence, 0 when OCR did not run
}

// Result is the outcome of one extraction run.
type Result struct {
	RunID    string
	Start    int
	End      int
	Pages    []PageText
	Warnings []Warning
}

// Text renders the extraction document: each page as a "=== Page N ===" header
// followed by its text, placeholder pages as their placeholder line, all
// separated by blank lines.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	sections := make([]string, 0, len(r.Pages))
	for _, p := range r.Pages {
		if p.Placeholder {
			sections = append(sections, p.Text)
			continue
		}
		sections = append(sections, fmt.Sprintf("=== Page %d ===\n\n%s", p.Number, p.Text))
	}
	return strings.Join(sections, "\n\n")
}

// Extracted reports how many pages carry real text.
func (r *Result) Extracted() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, p := range r.Pages {
		if !p.Placeholder {
			n++
		}
	}
	return n
}

// Degraded returns the numbers of pages whose OCR fallback failed.
func (r *Result) Degraded() []int {
	if r == nil {
		return nil
	}
	var pages []int
	for _, p := range r.Pages {
		if p.Degraded {
			pages = append(pages, p.Number)
		}
	}
	return pages
}
