package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/pricesheet/backend/internal/domain/sheet"
)

// Card template colors. The template is fixed; only geometry comes from
// the Layout.
var (
	cardWhite   = color.White
	textBlack   = color.Black
	discountRed = color.RGBA{R: 255, A: 255}
	oldGray     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// CardRenderer composites one price-tag card per product record: an
// optional shared background, an optional product photo, and five
// fixed-position text elements on a white canvas.
type CardRenderer struct {
	layout sheet.Layout
	fonts  *fontSet
	logger *zap.Logger
}

// NewCardRenderer creates a card renderer for the given layout
func NewCardRenderer(layout sheet.Layout, logger *zap.Logger) (*CardRenderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &CardRenderer{layout: layout, fonts: fonts, logger: logger}, nil
}

// RenderCard draws one card. Both photo and background may be nil; the card
// then renders on a blank white canvas. Rendering is a pure function of the
// record and the two assets; no state carries between cards. Long strings
// may overflow the canvas, which is accepted template behavior.
func (r *CardRenderer) RenderCard(rec sheet.ProductRecord, photo, background image.Image) image.Image {
	l := r.layout

	dc := gg.NewContext(l.CardWidth, l.CardHeight)
	dc.SetColor(cardWhite)
	dc.Clear()

	if background != nil {
		dc.DrawImage(background, 0, 0)
	}

	if photo != nil {
		fitted := imaging.Fit(photo, l.PhotoSize, l.PhotoSize, imaging.Lanczos)
		dc.DrawImage(fitted, l.PhotoX, l.PhotoY)
	}

	r.drawText(dc, rec.Product, l.Name, textBlack, true, false)
	r.drawText(dc, rec.Description, l.Description, textBlack, false, false)
	r.drawText(dc, rec.DiscountLabel(), l.Discount, discountRed, false, false)
	r.drawText(dc, rec.Price, l.Price, textBlack, true, false)
	r.drawText(dc, rec.OldPrice, l.OldPrice, oldGray, false, true)

	return dc.Image()
}

// drawText renders one text element at its baseline anchor. Empty strings
// draw nothing. strike adds a horizontal line across the measured width.
func (r *CardRenderer) drawText(dc *gg.Context, text string, anchor sheet.TextAnchor, c color.Color, bold, strike bool) {
	if text == "" {
		return
	}
	dc.SetFontFace(r.fonts.face(bold, anchor.Size))
	dc.SetColor(c)
	dc.DrawString(text, anchor.X, anchor.Y)

	if strike {
		width, _ := dc.MeasureString(text)
		y := anchor.Y - anchor.Size*0.3
		dc.SetLineWidth(1.5)
		dc.DrawLine(anchor.X, y, anchor.X+width, y)
		dc.Stroke()
	}
}
