package sheet

import (
	"context"
	"errors"
	"image"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pricesheet/backend/internal/domain/shared"
	"github.com/pricesheet/backend/internal/domain/sheet"
)

// RecordLoader reads product records from an uploaded spreadsheet file
type RecordLoader interface {
	Load(ctx context.Context, path string) ([]sheet.ProductRecord, error)
}

// AssetSource resolves the shared background and per-product photos.
// Both return (nil, nil) when the asset does not exist.
type AssetSource interface {
	Photo(name string) (image.Image, error)
	Background() (image.Image, error)
}

// CardRenderer composites one card raster per record
type CardRenderer interface {
	RenderCard(rec sheet.ProductRecord, photo, background image.Image) image.Image
}

// GridCompositor stitches cards into the final grid raster
type GridCompositor interface {
	Compose(cards []image.Image) (image.Image, error)
}

// PDFExporter renders the encoded PNG into a single-page PDF sized to the
// grid's pixel dimensions
type PDFExporter interface {
	Export(ctx context.Context, pngData []byte, widthPx, heightPx int) ([]byte, error)
}

// ArtifactStore persists the two output files and returns their public URLs
type ArtifactStore interface {
	WritePNG(img image.Image) (data []byte, url string, err error)
	WritePDF(data []byte) (url string, err error)
}

// Artifacts describes the outcome of one pipeline run
type Artifacts struct {
	ImageURL string
	PDFURL   string
	Records  int
}

// Service runs the price sheet pipeline end to end: load records, resolve
// assets, render cards, compose the grid, export PNG and PDF. One upload is
// one sequential run; concurrent runs race on the fixed output paths and
// the last write wins.
type Service struct {
	loader     RecordLoader
	assets     AssetSource
	renderer   CardRenderer
	compositor GridCompositor
	exporter   PDFExporter
	store      ArtifactStore
	logger     *zap.Logger
}

// NewService creates the pipeline service
func NewService(
	loader RecordLoader,
	assets AssetSource,
	renderer CardRenderer,
	compositor GridCompositor,
	exporter PDFExporter,
	store ArtifactStore,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		loader:     loader,
		assets:     assets,
		renderer:   renderer,
		compositor: compositor,
		exporter:   exporter,
		store:      store,
		logger:     logger,
	}
}

// Generate runs the pipeline on the uploaded spreadsheet at path. The
// service owns the transient upload: the file is removed as soon as the
// loader has read it, whether loading succeeded or not. A removal failure
// is logged, never surfaced.
func (s *Service) Generate(ctx context.Context, path string) (*Artifacts, error) {
	start := time.Now()

	records, err := s.loader.Load(ctx, path)
	s.removeUpload(path)
	if err != nil {
		return nil, err
	}

	background, err := s.assets.Background()
	if err != nil {
		return nil, err
	}

	cards := make([]image.Image, 0, len(records))
	for _, rec := range records {
		photo, err := s.assets.Photo(rec.Product)
		if err != nil {
			return nil, err
		}
		cards = append(cards, s.renderer.RenderCard(rec, photo, background))
	}

	grid, err := s.compositor.Compose(cards)
	if err != nil {
		return nil, err
	}

	pngData, imageURL, err := s.store.WritePNG(grid)
	if err != nil {
		return nil, err
	}

	bounds := grid.Bounds()
	pdfData, err := s.exporter.Export(ctx, pngData, bounds.Dx(), bounds.Dy())
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, shared.WrapDomainError(shared.CodeExportFailed, "PDF export failed", err)
	}

	pdfURL, err := s.store.WritePDF(pdfData)
	if err != nil {
		return nil, err
	}

	s.logger.Info("price sheet generated",
		zap.Int("records", len(records)),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Duration("duration", time.Since(start)))

	return &Artifacts{
		ImageURL: imageURL,
		PDFURL:   pdfURL,
		Records:  len(records),
	}, nil
}

// removeUpload deletes the transient spreadsheet file, best effort
func (s *Service) removeUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove uploaded file",
			zap.String("path", path),
			zap.Error(err))
	}
}
