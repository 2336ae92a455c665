package ocr

import "context"

// Page segmentation modes understood by Tesseract.
const (
	PSMAuto        = 3 // Fully automatic page segmentation, no orientation detection
	PSMAutoOSD     = 1 // Automatic page segmentation with orientation and script detection
	PSMSingleBlock = 6 // Assume a single uniform block of text
	PSMSparseText  = 11
)

// Options configures the Tesseract engine.
type Options struct {
	Languages               []string          // Tesseract language codes, e.g. "eng", "eng+deu"
	PageSegMode             int               // One of the PSM constants
	PreserveInterwordSpaces bool              // Keep runs of spaces between words
	MinConfidence           float64           // Drop words scored below this (0-100)
	Variables               map[string]string // Extra Tesseract variables
}

// DefaultOptions returns options tuned for general document pages: English,
// automatic segmentation with orientation detection, preserved spacing and
// Tesseract's default engine mode, which combines the LSTM and legacy engines
// where both are installed.
func DefaultOptions() Options {
	return Options{
		Languages:               []string{"eng"},
		PageSegMode:             PSMAutoOSD,
		PreserveInterwordSpaces: true,
	}
}

// TesseractFactory returns a Factory creating a Tesseract engine with opts.
func TesseractFactory(opts Options) Factory {
	return func(ctx context.Context) (Engine, error) {
		t, err := NewTesseract(opts)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}
