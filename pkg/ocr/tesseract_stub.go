//go:build !ocr

package ocr

import (
	"context"
	"errors"
	"image"
)

// ErrOCRNotEnabled is returned when the Tesseract engine is requested but was
// not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("tesseract support not enabled; rebuild with -tags ocr")

// Tesseract is a stub engine that fails every operation.
type Tesseract struct{}

// NewTesseract returns ErrOCRNotEnabled.
func NewTesseract(opts Options) (*Tesseract, error) {
	return nil, ErrOCRNotEnabled
}

// Recognize returns ErrOCRNotEnabled.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (Result, error) {
	return Result{}, ErrOCRNotEnabled
}

// Close is a no-op for the stub engine.
// It is safe to call on a nil engine.
func (t *Tesseract) Close() error {
	return nil
}
