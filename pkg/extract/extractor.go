package extract

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gardar/studytext/pkg/layout"
	"github.com/gardar/studytext/pkg/merge"
	"github.com/gardar/studytext/pkg/ocr"
)

// Extractor extracts page ranges. It holds no per-run state, so one Extractor
// can serve any number of sequential runs with the same worker.
type Extractor struct {
	cfg    Config
	worker *ocr.Worker
	log    logrus.FieldLogger
}

// New creates an extractor. A nil worker disables OCR; a nil logger discards
// log output. The worker stays owned by the caller.
func New(cfg Config, worker *ocr.Worker, log logrus.FieldLogger) *Extractor {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Extractor{cfg: cfg, worker: worker, log: log}
}

// Extract processes pages start..end of doc, inclusive and 1-based.
//
// The range is validated before any page is touched. On cancellation the
// pages finished so far are returned along with the context error. When every
// page ends up as a placeholder the full Result is returned together with
// ErrNothingExtractable.
func (e *Extractor) Extract(ctx context.Context, doc Document, start, end int) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("no document to extract from")
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extraction config: %w", err)
	}
	if err := ValidateRange(start, end, doc.PageCount()); err != nil {
		return nil, err
	}

	res := &Result{
		RunID: uuid.NewString(),
		Start: start,
		End:   end,
		Pages: make([]PageText, 0, end-start+1),
	}
	r := &run{
		cfg:    e.cfg,
		doc:    doc,
		worker: e.worker,
		result: res,
		log: e.log.WithFields(logrus.Fields{
			"run_id": res.RunID,
		}),
	}

	r.log.WithFields(logrus.Fields{
		"start": start,
		"end":   end,
		"ocr":   e.worker != nil,
	}).Info("Starting extraction")

	for page := start; page <= end; page++ {
		if err := ctx.Err(); err != nil {
			r.log.WithField("page", page).Warn("Extraction cancelled")
			return res, fmt.Errorf("extraction cancelled before page %d: %w", page, err)
		}
		res.Pages = append(res.Pages, r.page(ctx, page))
	}

	r.log.WithFields(logrus.Fields{
		"pages":     len(res.Pages),
		"extracted": res.Extracted(),
		"warnings":  len(res.Warnings),
	}).Info("Extraction finished")

	if res.Extracted() == 0 {
		return res, ErrNothingExtractable
	}
	return res, nil
}

// run carries the state of one Extract call.
type run struct {
	cfg    Config
	doc    Document
	worker *ocr.Worker
	result *Result
	log    logrus.FieldLogger

	ocrDisabled bool
}

func (r *run) warn(page int, stage Stage, err error) {
	r.result.Warnings = append(r.result.Warnings, Warning{Page: page, Stage: stage, Err: err})
	entry := r.log.WithField("stage", stage).WithError(err)
	if page > 0 {
		entry = entry.WithField("page", page)
	}
	entry.Warn("Page processing degraded")
}

func (r *run) page(ctx context.Context, n int) PageText {
	log := r.log.WithField("page", n)
	pt := PageText{Number: n}

	runs, err := r.doc.TextRuns(ctx, n)
	nativeFailed := err != nil
	if nativeFailed {
		r.warn(n, StageNative, err)
		runs = nil
	}
	native := layout.NativeText(runs, r.cfg.LineTolerance)
	pt.NativeTokens = ocr.WordCount(native)

	var ocrText string
	if ocr.NeedsOCR(native, r.cfg.WordThreshold) && r.worker != nil {
		log.WithField("tokens", pt.NativeTokens).Debug("Native text below threshold, trying OCR")
		res, err := r.recognize(ctx, n)
		if err != nil {
			pt.Degraded = true
		} else {
			ocrText = res.Text
			pt.OCRConfidence = res.Confidence
		}
	}

	pt.Placeholder = merge.Texts(native, ocrText) == ""
	switch {
	case pt.Placeholder && nativeFailed:
		pt.Text = merge.ErrorPlaceholder(n)
	case pt.Degraded && !pt.Placeholder:
		// OCR failed: the text layer is kept exactly as read.
		pt.Text = native
	default:
		pt.Text = merge.Page(n, native, ocrText)
	}
	pt.Origin = origin(native, ocrText, pt.Placeholder)

	log.WithFields(logrus.Fields{
		"origin":   pt.Origin,
		"degraded": pt.Degraded,
	}).Debug("Page done")
	return pt
}

func origin(native, ocrText string, placeholder bool) Origin {
	hasNative := merge.Texts(native) != ""
	hasOCR := merge.Texts(ocrText) != ""
	switch {
	case placeholder:
		return OriginNone
	case hasNative && hasOCR:
		return OriginMerged
	case hasOCR:
		return OriginOCR
	case hasNative:
		return OriginNative
	}
	return OriginNone
}
