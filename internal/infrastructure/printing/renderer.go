package printing

import (
	"context"
	"time"
)

// Error codes for PDF rendering failures
const (
	ErrCodeInvalidImage  = "INVALID_IMAGE"
	ErrCodeRenderTimeout = "RENDER_TIMEOUT"
	ErrCodeRenderFailed  = "RENDER_FAILED"
)

// RenderError represents a PDF rendering error
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}

// RenderRequest describes one PNG-to-PDF conversion: the encoded PNG and
// its pixel dimensions, which become the single page's paper size at 96 DPI.
type RenderRequest struct {
	PNG      []byte
	WidthPx  int
	HeightPx int
	// Timeout overrides the renderer default when non-zero
	Timeout time.Duration
}

// RenderResult is the outcome of a successful render
type RenderResult struct {
	PDFData        []byte
	RenderDuration time.Duration
}

// PDFRenderer converts an encoded PNG into a single-page PDF
type PDFRenderer interface {
	Render(ctx context.Context, req *RenderRequest) (*RenderResult, error)
	Close() error
}
