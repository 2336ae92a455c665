// Package extract turns a contiguous page range of a PDF into one labelled
// text document.
//
// For every page the extractor:
//
//  1. reads the native text layer and rebuilds its lines (package layout),
//  2. decides whether that text is too sparse to trust (ocr.NeedsOCR),
//  3. if so, renders the page and runs it through the shared OCR worker,
//  4. merges both texts and removes duplicate lines (package merge).
//
// Pages are processed one after another with a single OCR worker, which the
// caller owns and closes. Problems on a single page never abort the run: they
// are logged, recorded as a Warning on the Result, and the page keeps whatever
// text could be recovered, or a placeholder line.
//
// Example:
//
//	worker := ocr.StartWorker(ctx, ocr.TesseractFactory(ocr.DefaultOptions()))
//	defer worker.Close()
//
//	ex := extract.New(extract.DefaultConfig(), worker, logger)
//	res, err := ex.Extract(ctx, doc, 3, 7)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Text())
package extract

import (
	"context"
	"image"

	"github.com/gardar/studytext/pkg/layout"
)

// DefaultRenderScale is the rasterisation scale used for OCR. Lower scales
// lose too much detail for reliable recognition.
const DefaultRenderScale = 2.0

// MinRenderScale is the smallest accepted render scale.
const MinRenderScale = 1.5

// Document is the PDF collaborator the extractor reads pages from.
// Page numbers are 1-based.
type Document interface {
	PageCount() int
	TextRuns(ctx context.Context, page int) ([]layout.GlyphRun, error)
	Render(ctx context.Context, page int, scale float64) (image.Image, error)
}
