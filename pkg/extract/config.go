package extract

import (
	"fmt"

	"github.com/gardar/studytext/pkg/layout"
	"github.com/gardar/studytext/pkg/ocr"
)

// Config holds the tunables of an extraction run.
type Config struct {
	WordThreshold int     // Native pages with fewer tokens are sent to OCR
	LineTolerance float64 // Max baseline distance of runs on one line
	RenderScale   float64 // Page rasterisation scale for OCR
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		WordThreshold: ocr.DefaultWordThreshold,
		LineTolerance: layout.DefaultLineTolerance,
		RenderScale:   DefaultRenderScale,
	}
}

// Validate checks that the config can drive an extraction.
func (c Config) Validate() error {
	if c.WordThreshold < 1 {
		return fmt.Errorf("word threshold must be at least 1, got %d", c.WordThreshold)
	}
	if c.LineTolerance <= 0 {
		return fmt.Errorf("line tolerance must be positive, got %.2f", c.LineTolerance)
	}
	if c.RenderScale < MinRenderScale {
		return fmt.Errorf("render scale must be at least %.1f, got %.2f", MinRenderScale, c.RenderScale)
	}
	return nil
}
