package sheet

// TextAnchor positions one text element on a card. X and Y are the text
// baseline origin in card pixels, Size is the font size in points.
type TextAnchor struct {
	X    float64
	Y    float64
	Size float64
}

// Layout is the immutable geometry of a price sheet: card dimensions, grid
// column count, the product photo slot, and the five text anchors. It is
// constructed once and passed explicitly into the renderer and compositor
// so tests can override geometry without touching pipeline logic.
type Layout struct {
	CardWidth  int
	CardHeight int
	Columns    int

	// Product photo slot: the photo is scaled to fit PhotoSize x PhotoSize
	// (aspect preserved, never upscaled) and pasted at (PhotoX, PhotoY).
	PhotoSize int
	PhotoX    int
	PhotoY    int

	Name        TextAnchor
	Description TextAnchor
	Discount    TextAnchor
	Price       TextAnchor
	OldPrice    TextAnchor
}

// DefaultLayout returns the fixed production template: 800x200 cards in
// three columns, photo in a 150x150 box at (400,20).
func DefaultLayout() Layout {
	return Layout{
		CardWidth:  800,
		CardHeight: 200,
		Columns:    3,

		PhotoSize: 150,
		PhotoX:    400,
		PhotoY:    20,

		Name:        TextAnchor{X: 20, Y: 50, Size: 40},
		Description: TextAnchor{X: 20, Y: 90, Size: 20},
		Discount:    TextAnchor{X: 600, Y: 50, Size: 30},
		Price:       TextAnchor{X: 600, Y: 100, Size: 40},
		OldPrice:    TextAnchor{X: 600, Y: 140, Size: 20},
	}
}

// WithColumns returns a copy of the layout with the grid column count
// replaced. Values below one are ignored.
func (l Layout) WithColumns(columns int) Layout {
	if columns >= 1 {
		l.Columns = columns
	}
	return l
}

// Rows returns the number of grid rows needed for n cards.
func (l Layout) Rows(n int) int {
	return (n + l.Columns - 1) / l.Columns
}

// GridSize returns the pixel dimensions of the stitched grid for n cards.
func (l Layout) GridSize(n int) (width, height int) {
	return l.Columns * l.CardWidth, l.Rows(n) * l.CardHeight
}

// CellOrigin returns the pixel offset of card i in row-major order.
func (l Layout) CellOrigin(i int) (x, y int) {
	return (i % l.Columns) * l.CardWidth, (i / l.Columns) * l.CardHeight
}
