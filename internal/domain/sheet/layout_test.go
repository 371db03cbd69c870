package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridSize(t *testing.T) {
	layout := DefaultLayout()

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
		w, h := layout.GridSize(tt.n)
		assert.Equal(t, tt.width, w, "width for n=%d", tt.n)
		assert.Equal(t, tt.height, h, "height for n=%d", tt.n)
	}
}

func TestCellOrigin(t *testing.T) {
	layout := DefaultLayout()

	tests := []struct {
		i    int
		x, y int
	}{
		{i: 0, x: 0, y: 0},
		{i: 1, x: 800, y: 0},
		{i: 2, x: 1600, y: 0},
		{i: 3, x: 0, y: 200},
		{i: 4, x: 800, y: 200},
		{i: 6, x: 0, y: 400},
	}

	for _, tt := range tests {
		x, y := layout.CellOrigin(tt.i)
		assert.Equal(t, tt.x, x, "x for i=%d", tt.i)
		assert.Equal(t, tt.y, y, "y for i=%d", tt.i)
	}
}

func TestWithColumns(t *testing.T) {
	layout := DefaultLayout().WithColumns(4)
	assert.Equal(t, 4, layout.Columns)

	w, _ := layout.GridSize(4)
	assert.Equal(t, 3200, w)

	// invalid column counts keep the current value
	assert.Equal(t, 4, layout.WithColumns(0).Columns)
	assert.Equal(t, 4, layout.WithColumns(-1).Columns)
}
