package render

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pricesheet/backend/internal/domain/shared"
)

// fontSet holds the two embedded Go typefaces used by the card template.
// Parsing happens once at renderer construction; faces are derived per size.
type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
}

func loadFonts() (*fontSet, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeRenderFailed, "failed to parse regular font", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeRenderFailed, "failed to parse bold font", err)
	}
	return &fontSet{regular: regular, bold: bold}, nil
}

func (f *fontSet) face(bold bool, size float64) font.Face {
	fnt := f.regular
	if bold {
		fnt = f.bold
	}
	return truetype.NewFace(fnt, &truetype.Options{Size: size})
}
