package printing

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperSize(t *testing.T) {
	req := &RenderRequest{WidthPx: 2400, HeightPx: 400}
	w, h := paperSize(req)
	assert.InDelta(t, 25.0, w, 0.001)
	assert.InDelta(t, 4.1667, h, 0.001)
}

func TestBuildImageHTML(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	req := &RenderRequest{PNG: png, WidthPx: 2400, HeightPx: 400}

	html := buildImageHTML(req)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "margin:0")
	assert.Contains(t, html, `width="2400" height="400"`)
	assert.Contains(t, html, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(png))
}

func TestRenderRejectsNilRequest(t *testing.T) {
	r := &ChromedpRenderer{config: &ChromedpConfig{}}

	_, err := r.Render(context.Background(), nil)
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidImage, renderErr.Code)
}

func TestRenderRejectsEmptyPNG(t *testing.T) {
	r := &ChromedpRenderer{config: &ChromedpConfig{}}

	_, err := r.Render(context.Background(), &RenderRequest{WidthPx: 100, HeightPx: 100})
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidImage, renderErr.Code)
}

func TestRenderRejectsInvalidDimensions(t *testing.T) {
	r := &ChromedpRenderer{config: &ChromedpConfig{}}

	for _, req := range []*RenderRequest{
		{PNG: []byte{1}, WidthPx: 0, HeightPx: 100},
		{PNG: []byte{1}, WidthPx: 100, HeightPx: -1},
	} {
		_, err := r.Render(context.Background(), req)
		assert.Error(t, err)
	}
}

func TestNewChromedpRendererDefaults(t *testing.T) {
	r, err := NewChromedpRenderer(nil)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	assert.Equal(t, defaultChromeTimeout, r.config.DefaultTimeout)
	assert.NotNil(t, r.logger)
	assert.NotNil(t, r.allocCtx)
}

func TestRenderErrorUnwrap(t *testing.T) {
	cause := context.DeadlineExceeded
	err := NewRenderError(ErrCodeRenderTimeout, "timed out after "+time.Second.String(), cause)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "timed out")
}
