// Package linker runs a linking pass over every theme page.
package linker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jmylchreest/themelink/internal/model"
	"github.com/jmylchreest/themelink/internal/theme"
)

// Transformer rewrites a single theme page.
type Transformer interface {
	TransformFile(path string, dryRun bool) (theme.Result, error)
}

// Options configures a Runner.
type Options struct {
	ThemesDir string // Directory holding the theme pages
	DryRun    bool   // Report without writing
}

// Runner processes theme pages one at a time, in name order.
type Runner struct {
	transformer Transformer
	opts        Options
	logger      *slog.Logger
}

// NewRunner creates a runner.
func NewRunner(transformer Transformer, opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		transformer: transformer,
		opts:        opts,
		logger:      logger,
	}
}

// Run links every page in the themes directory.
//
// A page that cannot be read or written is recorded as a failure and the run
// moves on to the next page. Missing images never fail a page. The returned
// error is non-nil only when the run could not start, or when ctx is
// cancelled between pages; the partial report is returned in that case.
func (r *Runner) Run(ctx context.Context) (*model.Report, error) {
	report, err := model.NewReport(r.opts.DryRun)
	if err != nil {
		return nil, err
	}
	defer report.Finish()

	logger := r.logger.With("run_id", report.RunID)

	pages, err := theme.ListPages(r.opts.ThemesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list theme pages in %s: %w", r.opts.ThemesDir, err)
	}
	logger.Debug("starting link pass", "themes_dir", r.opts.ThemesDir, "pages", len(pages), "dry_run", r.opts.DryRun)

	for _, path := range pages {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := r.transformer.TransformFile(path, r.opts.DryRun)
		if err != nil {
			logger.Warn("failed to process theme page", "path", path, "error", err)
			report.AddFailure(path, err)
			continue
		}

		report.AddFile(model.FileReport{
			Path:    path,
			Name:    filepath.Base(path),
			Links:   res.Count,
			Missing: res.Missing,
		})
		if res.Count > 0 {
			logger.Debug("linked theme page", "path", path, "links", res.Count, "missing", len(res.Missing))
		}
	}

	logger.Debug("link pass complete", "total", report.Total, "missing", len(report.Missing), "failures", len(report.Failures))
	return report, nil
}
