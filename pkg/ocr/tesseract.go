//go:build ocr

package ocr

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/gardar/studytext/pkg/hocr"
)

// Tesseract is an Engine backed by a single gosseract client. The client keeps
// its loaded language model between pages, which is why one Tesseract should
// live for a whole extraction run.
type Tesseract struct {
	client *gosseract.Client
	opts   Options
}

// NewTesseract creates and initialises a Tesseract engine. Initialisation is
// forced here, so a missing language pack fails now rather than on the first
// page.
func NewTesseract(opts Options) (*Tesseract, error) {
	client := gosseract.NewClient()
	t := &Tesseract{client: client, opts: opts}

	if err := t.configure(); err != nil {
		client.Close()
		return nil, err
	}
	if err := t.warmUp(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to initialise tesseract: %w", err)
	}
	return t, nil
}

func (t *Tesseract) configure() error {
	if len(t.opts.Languages) > 0 {
		if err := t.client.SetLanguage(t.opts.Languages...); err != nil {
			return fmt.Errorf("failed to set languages: %w", err)
		}
	}
	if err := t.client.SetPageSegMode(gosseract.PageSegMode(t.opts.PageSegMode)); err != nil {
		return fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if t.opts.PreserveInterwordSpaces {
		if err := t.client.SetVariable("preserve_interword_spaces", "1"); err != nil {
			return fmt.Errorf("failed to set preserve_interword_spaces: %w", err)
		}
	}
	for k, v := range t.opts.Variables {
		if err := t.client.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return fmt.Errorf("failed to set variable %s: %w", k, err)
		}
	}
	return nil
}

// warmUp runs one recognition on a blank image; gosseract only loads the
// model when it first has an image.
func (t *Tesseract) warmUp() error {
	blank := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range blank.Pix {
		blank.Pix[i] = color.White.Y
	}
	data, err := EncodePNG(blank)
	if err != nil {
		return err
	}
	if err := t.client.SetImageFromBytes(data); err != nil {
		return err
	}
	_, err = t.client.Text()
	return err
}

// Recognize performs OCR on a page image.
// Text is rebuilt from Tesseract's hOCR output so that word confidences are
// available; plain text is used if the hOCR cannot be parsed.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	data, err := EncodePNG(img)
	if err != nil {
		return Result{}, err
	}
	if err := t.client.SetImageFromBytes(data); err != nil {
		return Result{}, fmt.Errorf("failed to set image: %w", err)
	}

	out, err := t.client.HOCRText()
	if err != nil {
		return Result{}, fmt.Errorf("OCR failed: %w", err)
	}

	doc, err := hocr.Parse([]byte(out))
	if err != nil || len(doc.Pages) == 0 {
		text, err := t.client.Text()
		if err != nil {
			return Result{}, fmt.Errorf("OCR failed: %w", err)
		}
		return Result{Text: strings.TrimSpace(text), Engine: "tesseract"}, nil
	}

	page := doc.Pages[0]
	return Result{
		Text:       page.Text(t.opts.MinConfidence),
		Confidence: page.MeanConfidence(),
		Engine:     "tesseract",
	}, nil
}

// Close releases the Tesseract client.
func (t *Tesseract) Close() error {
	if t == nil || t.client == nil {
		return nil
	}
	err := t.client.Close()
	t.client = nil
	return err
}
