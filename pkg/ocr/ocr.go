// Package ocr provides the OCR side of page extraction: the engine interface,
// the shared worker handle that owns an engine for a whole extraction run, and
// the policy deciding when a page's native text is too sparse.
//
// The bundled Tesseract engine wraps gosseract and requires Tesseract to be
// installed. It is only compiled with the "ocr" build tag:
//
//	go build -tags ocr ./...
//
// Without the tag, NewTesseract returns ErrOCRNotEnabled and extraction runs
// on native text only.
package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
)

var (
	// ErrUnavailable is returned by a Worker whose engine could not be created.
	ErrUnavailable = errors.New("OCR engine unavailable")

	// ErrClosed is returned by a Worker after Close.
	ErrClosed = errors.New("OCR worker closed")
)

// Result is the text recognised on one page image.
type Result struct {
	Text       string  // Recognised text, one line per text line
	Confidence float64 // Mean word confidence 0-100, 0 when the engine gives none
	Engine     string  // Name of the engine that produced the result
}

// Engine recognises text in a page image. Implementations are not required
// to support concurrent Recognize calls.
type Engine interface {
	Recognize(ctx context.Context, img image.Image) (Result, error)
	Close() error
}

// Factory creates an engine. It may be slow (model loading, remote clients).
type Factory func(ctx context.Context) (Engine, error)

// EncodePNG encodes an image for engines that take encoded bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("no image to encode")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
