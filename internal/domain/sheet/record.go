package sheet

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholder text rendered when a row omits the corresponding column.
const (
	DefaultProductName = "No Product"
	DefaultPriceText   = "No Price"
)

// Column names consumed from the spreadsheet, matched case-sensitively
// after trimming.
const (
	ColumnProduct      = "Product"
	ColumnPrice        = "Price"
	ColumnOldPrice     = "Old Price"
	ColumnDiscountInfo = "Discount Info"
	ColumnDescription  = "Description"
	ColumnCategory     = "Category"
)

// ProductRecord is one spreadsheet row, ready for rendering. Records carry
// no identity: duplicate products render as separate cards.
type ProductRecord struct {
	Product      string
	Price        string
	OldPrice     string
	DiscountInfo string
	Description  string
	Category     string // loaded for completeness, not rendered
}

// NewProductRecord builds a record from a header-keyed row, applying the
// placeholder defaults for the two required columns. Values arrive already
// trimmed by the loader.
func NewProductRecord(row map[string]string) ProductRecord {
	rec := ProductRecord{
		Product:      row[ColumnProduct],
		Price:        row[ColumnPrice],
		OldPrice:     row[ColumnOldPrice],
		DiscountInfo: row[ColumnDiscountInfo],
		Description:  row[ColumnDescription],
		Category:     row[ColumnCategory],
	}
	if rec.Product == "" {
		rec.Product = DefaultProductName
	}
	if rec.Price == "" {
		rec.Price = DefaultPriceText
	}
	return rec
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug derives the image lookup key from a product display name: trim,
// lowercase, and collapse every whitespace run to a single hyphen. Trimming
// happens before slug derivation, so "  Eggs  " resolves the same files
// as "Eggs".
func Slug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

var oneHundred = decimal.NewFromInt(100)

// DiscountLabel returns the text for the card's discount slot. Explicit
// discount info always wins. When absent, a "-NN%" label is derived from
// the two price columns, provided both parse as decimals and the old price
// is strictly greater than the current positive price.
func (r ProductRecord) DiscountLabel() string {
	if r.DiscountInfo != "" {
		return r.DiscountInfo
	}
	oldPrice, err := decimal.NewFromString(r.OldPrice)
	if err != nil {
		return ""
	}
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return ""
	}
	if !price.IsPositive() || !oldPrice.GreaterThan(price) {
		return ""
	}
	percent := oldPrice.Sub(price).Div(oldPrice).Mul(oneHundred).Round(0)
	return "-" + percent.String() + "%"
}
