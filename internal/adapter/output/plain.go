package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/themelink/internal/model"
)

// PlainFormatter formats reports as human-readable text.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// FormatReport writes per-page counts, the total and any missing images.
func (f *PlainFormatter) FormatReport(w io.Writer, report *model.Report) error {
	var sb strings.Builder

	for _, fr := range report.Files {
		if fr.Links == 0 && !f.opts.ShowAll {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %d links added\n", fr.Name, fr.Links))
	}

	verb := "linked"
	if report.DryRun {
		verb = "would be linked"
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d theme items %s to library\n", report.Total, verb))

	if len(report.Missing) > 0 {
		dir := strings.TrimSuffix(f.opts.ImagesDir, "/")
		if dir == "" {
			dir = "images"
		}
		sb.WriteString(fmt.Sprintf("\nMissing images (%d): add these to %s/\n", len(report.Missing), dir))
		for _, name := range report.Missing {
			sb.WriteString("  " + name + "\n")
		}
	}

	if len(report.Failures) > 0 {
		sb.WriteString(fmt.Sprintf("\nFailed pages (%d):\n", len(report.Failures)))
		for _, fl := range report.Failures {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", fl.Path, fl.Error))
		}
	}

	if report.DryRun {
		sb.WriteString("\n(dry run: no files were written)\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatCatalog writes one line per entry with its image and page status.
func (f *PlainFormatter) FormatCatalog(w io.Writer, rows []model.CatalogRow) error {
	idWidth := 0
	for _, r := range rows {
		idWidth = max(idWidth, len(r.ID))
	}

	for _, r := range rows {
		image := "missing image"
		if r.HasImage {
			image = fmt.Sprintf("%s (%s)", r.Image, humanize.Bytes(uint64(r.ImageSize)))
		}
		page := ""
		if !r.HasPage {
			page = "  [no library page]"
		}
		if _, err := fmt.Fprintf(w, "%-*s  %s  %s%s\n", idWidth, r.ID, r.Name, image, page); err != nil {
			return err
		}
	}
	return nil
}
