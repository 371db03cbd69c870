package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/pricesheet/backend/internal/domain/shared"
	"github.com/pricesheet/backend/internal/domain/sheet"
)

// GridCompositor stitches rendered cards into a single raster in strict
// row-major order. Trailing cells of the last row stay white.
type GridCompositor struct {
	layout sheet.Layout
}

// NewGridCompositor creates a compositor for the given layout
func NewGridCompositor(layout sheet.Layout) *GridCompositor {
	return &GridCompositor{layout: layout}
}

// Compose places card i at the pixel offset of grid cell
// (i mod columns, i div columns). Cards must arrive in original row order.
func (g *GridCompositor) Compose(cards []image.Image) (image.Image, error) {
	if len(cards) == 0 {
		return nil, shared.NewDomainError(shared.CodeRenderFailed, "no cards to compose")
	}

	width, height := g.layout.GridSize(len(cards))
	canvas := imaging.New(width, height, color.White)

	for i, card := range cards {
		x, y := g.layout.CellOrigin(i)
		canvas = imaging.Paste(canvas, card, image.Pt(x, y))
	}

	return canvas, nil
}
