package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/themelink/internal/model"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// FormatReport writes the report as a JSON object.
func (f *JSONFormatter) FormatReport(w io.Writer, report *model.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(report)
}

// FormatCatalog writes the catalog listing as a JSON array.
func (f *JSONFormatter) FormatCatalog(w io.Writer, rows []model.CatalogRow) error {
	if rows == nil {
		rows = []model.CatalogRow{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}
