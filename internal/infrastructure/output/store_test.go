package output

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	img := imaging.New(2400, 400, color.White)
	data, url, err := store.WritePNG(img)
	require.NoError(t, err)
	assert.Equal(t, "/price-sheet.png", url)
	assert.NotEmpty(t, data)

	f, err := os.Open(store.PNGPath())
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2400, decoded.Bounds().Dx())
	assert.Equal(t, 400, decoded.Bounds().Dy())
}

func TestWritePNGOverwrites(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, _, err = store.WritePNG(imaging.New(2400, 400, color.White))
	require.NoError(t, err)
	_, _, err = store.WritePNG(imaging.New(2400, 200, color.White))
	require.NoError(t, err)

	f, err := os.Open(store.PNGPath())
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, decoded.Bounds().Dy())
}

func TestWritePDF(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	url, err := store.WritePDF([]byte("%PDF-1.7 fake"))
	require.NoError(t, err)
	assert.Equal(t, "/price-sheet.pdf", url)

	data, err := os.ReadFile(store.PDFPath())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), data)
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "generated")
	_, err := NewStore(dir, nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
