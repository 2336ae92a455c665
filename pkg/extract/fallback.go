package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gardar/studytext/pkg/ocr"
)

var errOCRDisabled = errors.New("OCR disabled for this run")

// recognize renders page and runs it through the worker.
//
// Rendering and recognition run on a context that ignores cancellation: a
// page that has started OCR is allowed to finish, and cancellation is seen
// before the next page instead. Errors are recorded as warnings by the time
// this returns.
func (r *run) recognize(ctx context.Context, page int) (ocr.Result, error) {
	if r.ocrDisabled {
		return ocr.Result{}, errOCRDisabled
	}
	ctx = context.WithoutCancel(ctx)

	if err := r.worker.Ready(ctx); err != nil {
		// One warning for the whole run; later pages go straight to native.
		r.ocrDisabled = true
		r.warn(0, StageOCRInit, err)
		return ocr.Result{}, err
	}

	img, err := r.doc.Render(ctx, page, r.cfg.RenderScale)
	if err != nil {
		err = fmt.Errorf("failed to render page: %w", err)
		r.warn(page, StageRender, err)
		return ocr.Result{}, err
	}

	res, err := r.worker.Recognize(ctx, img)
	if err != nil {
		err = fmt.Errorf("failed to recognise page: %w", err)
		r.warn(page, StageOCR, err)
		return ocr.Result{}, err
	}

	r.log.WithFields(logrus.Fields{
		"page":       page,
		"engine":     res.Engine,
		"confidence": res.Confidence,
		"words":      ocr.WordCount(res.Text),
	}).Debug("OCR complete")
	return res, nil
}
