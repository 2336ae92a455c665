//go:build ocr

package ocr

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTesseractBlankPage(t *testing.T) {
	engine, err := NewTesseract(DefaultOptions())
	require.NoError(t, err)
	defer engine.Close()

	img := image.NewGray(image.Rect(0, 0, 200, 100))
	for i := range img.Pix {
		img.Pix[i] = color.White.Y
	}

	res, err := engine.Recognize(context.Background(), img)
	require.NoError(t, err)
	assert.Empty(t, res.Text)
	assert.Equal(t, "tesseract", res.Engine)
}

func TestTesseractUnknownLanguage(t *testing.T) {
	opts := DefaultOptions()
	opts.Languages = []string{"xx_not_installed"}

	_, err := NewTesseract(opts)
	assert.Error(t, err)
}
