// Package output provides output formatters for link reports and catalog
// listings.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/themelink/internal/model"
)

// Formatter formats link reports and catalog listings.
type Formatter interface {
	// FormatReport writes the summary of a link pass.
	FormatReport(w io.Writer, report *model.Report) error

	// FormatCatalog writes a catalog listing.
	FormatCatalog(w io.Writer, rows []model.CatalogRow) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (FormatType, error) {
	switch FormatType(name) {
	case FormatPlain, FormatJSON, FormatYAML:
		return FormatType(name), nil
	case "":
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unknown format %q (want plain, json or yaml)", name)
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	ImagesDir string // Directory named in the missing images hint
	ShowAll   bool   // Plain: list pages with no links added too
}

// DefaultFormatterOptions returns sensible defaults.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ImagesDir: "images",
	}
}
