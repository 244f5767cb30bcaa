package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themelink/internal/model"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// FormatReport writes the report as a YAML document.
func (f *YAMLFormatter) FormatReport(w io.Writer, report *model.Report) error {
	return f.encode(w, report)
}

// FormatCatalog writes the catalog listing as a YAML sequence.
func (f *YAMLFormatter) FormatCatalog(w io.Writer, rows []model.CatalogRow) error {
	if rows == nil {
		rows = []model.CatalogRow{}
	}
	return f.encode(w, rows)
}

func (f *YAMLFormatter) encode(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
