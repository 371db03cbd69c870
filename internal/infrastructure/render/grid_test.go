package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricesheet/backend/internal/domain/sheet"
)

func solidCards(n int) ([]image.Image, []color.NRGBA) {
	cards := make([]image.Image, n)
	colors := make([]color.NRGBA, n)
	for i := range cards {
		c := color.NRGBA{R: uint8(20 * (i + 1)), G: uint8(10 * i), B: uint8(255 - 20*i), A: 255}
		colors[i] = c
		cards[i] = imaging.New(800, 200, c)
	}
	return cards, colors
}

func TestComposeDimensions(t *testing.T) {
	g := NewGridCompositor(sheet.DefaultLayout())

	tests := []struct {
		n             int
		width, height int
	}{
		{n: 1, width: 2400, height: 200},
		{n: 3, width: 2400, height: 200},
		{n: 4, width: 2400, height: 400},
		{n: 7, width: 2400, height: 600},
	}

	for _, tt := range tests {
		cards, _ := solidCards(tt.n)
		grid, err := g.Compose(cards)
		require.NoError(t, err)
		assert.Equal(t, tt.width, grid.Bounds().Dx(), "width for n=%d", tt.n)
		assert.Equal(t, tt.height, grid.Bounds().Dy(), "height for n=%d", tt.n)
	}
}

func TestComposeRowMajorPlacement(t *testing.T) {
	layout := sheet.DefaultLayout()
	g := NewGridCompositor(layout)

	cards, colors := solidCards(7)
	grid, err := g.Compose(cards)
	require.NoError(t, err)

	for i, c := range colors {
		x, y := layout.CellOrigin(i)
		got := grid.At(x+5, y+5)
		er, eg, eb, ea := c.RGBA()
		ar, ag, ab, aa := got.RGBA()
		assert.Equal(t, []uint32{er, eg, eb, ea}, []uint32{ar, ag, ab, aa}, "card %d", i)
	}
}

func TestComposeTrailingCellsStayWhite(t *testing.T) {
	g := NewGridCompositor(sheet.DefaultLayout())

	cards, _ := solidCards(4)
	grid, err := g.Compose(cards)
	require.NoError(t, err)

	// cells 5 and 6 of the 2x3 grid carry no card
	wr, wg, wb, wa := color.White.RGBA()
	for _, pt := range []image.Point{{X: 805, Y: 205}, {X: 1605, Y: 205}} {
		ar, ag, ab, aa := grid.At(pt.X, pt.Y).RGBA()
		assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{ar, ag, ab, aa}, "cell at %v", pt)
	}
}

func TestComposeRejectsEmptyInput(t *testing.T) {
	g := NewGridCompositor(sheet.DefaultLayout())
	_, err := g.Compose(nil)
	assert.Error(t, err)
}
