package assets

import (
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	// webp is probed alongside the formats imaging registers itself
	_ "golang.org/x/image/webp"

	"github.com/pricesheet/backend/internal/domain/shared"
	"github.com/pricesheet/backend/internal/domain/sheet"
)

// extensions is the fixed probe order for product photos.
var extensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// backgroundFile is the shared card background, optional.
const backgroundFile = "background.png"

// Resolver locates and decodes card assets in a fixed image directory.
// Lookups probe the filesystem on every call; the pipeline is a rare batch
// job, so negative lookups are not cached.
type Resolver struct {
	dir    string
	logger *zap.Logger
}

// NewResolver creates a resolver over the given image directory
func NewResolver(dir string, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{dir: dir, logger: logger}
}

// Photo resolves a product display name to a decoded image. A missing photo
// is the expected common case and returns (nil, nil); a photo that exists
// but cannot be decoded is an error.
func (r *Resolver) Photo(name string) (image.Image, error) {
	slug := sheet.Slug(name)
	if slug == "" {
		return nil, nil
	}
	for _, ext := range extensions {
		path := filepath.Join(r.dir, slug+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return r.open(path)
	}
	r.logger.Debug("no photo for product", zap.String("slug", slug))
	return nil, nil
}

// Background returns the shared background image, or (nil, nil) when the
// directory has no background.png.
func (r *Resolver) Background() (image.Image, error) {
	path := filepath.Join(r.dir, backgroundFile)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return r.open(path)
}

func (r *Resolver) open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeRenderFailed, "failed to decode image asset: "+filepath.Base(path), err)
	}
	return img, nil
}
