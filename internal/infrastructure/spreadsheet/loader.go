package spreadsheet

import (
	"context"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pricesheet/backend/internal/domain/shared"
	"github.com/pricesheet/backend/internal/domain/sheet"
)

// Loader reads product records from a spreadsheet file via excelize.
// Only the first sheet is consumed; later sheets are ignored.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new spreadsheet loader
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load opens the spreadsheet at path and converts its first sheet into an
// ordered slice of product records. Row 1 is the header row; headers and
// cell values are whitespace-trimmed before use. Blank rows are skipped.
func (l *Loader) Load(ctx context.Context, path string) ([]sheet.ProductRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, shared.WrapDomainError(shared.CodeLoadFailed, "load cancelled", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeLoadFailed, "spreadsheet is unreadable", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn("failed to close spreadsheet", zap.String("path", path), zap.Error(cerr))
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, shared.NewDomainError(shared.CodeLoadFailed, "spreadsheet contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeLoadFailed, "failed to read sheet rows", err)
	}
	if len(rows) == 0 {
		return nil, shared.NewDomainError(shared.CodeLoadFailed, "spreadsheet contains no rows")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]sheet.ProductRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fields, empty := rowFields(headers, row)
		if empty {
			continue
		}
		records = append(records, sheet.NewProductRecord(fields))
	}

	if len(records) == 0 {
		return nil, shared.NewDomainError(shared.CodeLoadFailed, "spreadsheet contains no product rows")
	}

	l.logger.Debug("spreadsheet loaded",
		zap.String("path", path),
		zap.String("sheet", sheets[0]),
		zap.Int("records", len(records)))

	return records, nil
}

// rowFields maps one data row onto the trimmed headers. Rows shorter than
// the header row are tolerated; excess cells beyond the headers are dropped.
func rowFields(headers []string, row []string) (fields map[string]string, empty bool) {
	fields = make(map[string]string, len(headers))
	empty = true
	for i, header := range headers {
		if header == "" || i >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[i])
		if value != "" {
			empty = false
		}
		fields[header] = value
	}
	return fields, empty
}
