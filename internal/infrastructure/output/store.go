package output

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pricesheet/backend/internal/domain/shared"
)

// Fixed artifact names. Every pipeline run overwrites both files; there is
// no versioning and no per-request isolation (last write wins).
const (
	PNGFile = "price-sheet.png"
	PDFFile = "price-sheet.pdf"
)

// Store persists the two generated artifacts under a fixed output directory
// and knows their public URLs (served at the HTTP root).
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates the output directory if needed and returns a store
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, shared.WrapDomainError(shared.CodeExportFailed, "failed to create output directory", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// WritePNG encodes the grid raster and writes it to the fixed PNG path,
// overwriting any prior file. The encoded bytes are returned so the PDF
// exporter can embed them without re-encoding.
func (s *Store) WritePNG(img image.Image) (data []byte, url string, err error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", shared.WrapDomainError(shared.CodeExportFailed, "failed to encode PNG", err)
	}
	if err := os.WriteFile(s.PNGPath(), buf.Bytes(), 0o644); err != nil {
		return nil, "", shared.WrapDomainError(shared.CodeExportFailed, "failed to write PNG artifact", err)
	}
	s.logger.Debug("PNG artifact written",
		zap.String("path", s.PNGPath()),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), "/" + PNGFile, nil
}

// WritePDF writes the rendered PDF to the fixed PDF path, overwriting any
// prior file.
func (s *Store) WritePDF(data []byte) (url string, err error) {
	if err := os.WriteFile(s.PDFPath(), data, 0o644); err != nil {
		return "", shared.WrapDomainError(shared.CodeExportFailed, "failed to write PDF artifact", err)
	}
	s.logger.Debug("PDF artifact written",
		zap.String("path", s.PDFPath()),
		zap.Int("bytes", len(data)))
	return "/" + PDFFile, nil
}

// PNGPath returns the filesystem path of the PNG artifact
func (s *Store) PNGPath() string {
	return filepath.Join(s.dir, PNGFile)
}

// PDFPath returns the filesystem path of the PDF artifact
func (s *Store) PDFPath() string {
	return filepath.Join(s.dir, PDFFile)
}
