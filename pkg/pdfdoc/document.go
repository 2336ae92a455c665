package pdfdoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/gardar/studytext/pkg/layout"
)

var (
	// ErrInvalidPDF is returned when the input is empty, unreadable or fails
	// structural validation.
	ErrInvalidPDF = errors.New("invalid PDF")

	// ErrPageOutOfRange is returned for page numbers outside 1..PageCount.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("document closed")
)

func init() {
	// pdfcpu would otherwise create a config directory under the user's home.
	api.DisableConfigDir()
}

// Document is an opened PDF. Its methods are safe for concurrent use, although
// the extractor only ever uses one page at a time.
type Document struct {
	data   []byte
	reader *pdf.Reader
	pages  int

	mu     sync.Mutex
	raster *fitz.Document // opened on first Render
	closed bool
}

// OpenFile reads and opens the PDF at path.
func OpenFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF file: %w", err)
	}
	return Open(data)
}

// Open validates data and opens it as a PDF document. The slice must not be
// modified while the document is in use.
func Open(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidPDF)
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	reader, err := newReader(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	pages := reader.NumPage()
	if pages < 1 {
		return nil, fmt.Errorf("%w: document has no pages", ErrInvalidPDF)
	}

	return &Document{data: data, reader: reader, pages: pages}, nil
}

func validate(data []byte) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return fmt.Errorf("failed to validate PDF: %w", err)
	}
	return nil
}

// newReader opens the text reader. ledongthuc/pdf panics on some malformed
// cross-reference tables, so panics are turned into errors here.
func newReader(data []byte) (r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("failed to open PDF: %v", p)
		}
	}()
	r, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return r, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.pages
}

func (d *Document) checkPage(page int) error {
	if page < 1 || page > d.pages {
		return fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, page, d.pages)
	}
	return nil
}

// TextRuns returns the runs of page's native text layer in content-stream
// order. A page without a text layer yields no runs and no error.
func (d *Document) TextRuns(ctx context.Context, page int) ([]layout.GlyphRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := d.checkPage(page); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrClosed
	}

	glyphs, err := d.readGlyphs(page)
	if err != nil {
		return nil, fmt.Errorf("failed to read text of page %d: %w", page, err)
	}
	return Coalesce(glyphs), nil
}

func (d *Document) readGlyphs(page int) (glyphs []pdf.Text, err error) {
	defer func() {
		if p := recover(); p != nil {
			glyphs, err = nil, fmt.Errorf("malformed content stream: %v", p)
		}
	}()

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page object missing")
	}
	return p.Content().Text, nil
}

// Close releases the rasteriser. It is safe to call more than once.
func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	if d.raster != nil {
		if err := d.raster.Close(); err != nil {
			return fmt.Errorf("failed to close rasteriser: %w", err)
		}
		d.raster = nil
	}
	return nil
}
