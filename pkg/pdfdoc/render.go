package pdfdoc

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/image/draw"
)

// BaseDPI is the resolution of a page rendered at scale 1.
const BaseDPI = 72.0

// Render rasterises page at scale times its natural size and composites it
// onto an opaque white background, so transparent regions never reach an OCR
// engine as black.
func (d *Document) Render(ctx context.Context, page int, scale float64) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := d.checkPage(page); err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, fmt.Errorf("invalid render scale %.2f", scale)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrClosed
	}

	if d.raster == nil {
		raster, err := fitz.NewFromMemory(d.data)
		if err != nil {
			return nil, fmt.Errorf("failed to open PDF for rendering: %w", err)
		}
		d.raster = raster
	}

	src, err := d.raster.ImageDPI(page-1, BaseDPI*scale)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", page, err)
	}
	return flatten(src), nil
}

// flatten draws src over white.
func flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}
