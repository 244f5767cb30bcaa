package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themelink/internal/adapter/output"
	"github.com/jmylchreest/themelink/internal/config"
	"github.com/jmylchreest/themelink/internal/linker"
	"github.com/jmylchreest/themelink/internal/model"
)

var linkOpts struct {
	dryRun  bool
	format  string
	showAll bool
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link theme page boxes to library pages",
	Long: `Scan every themes/*.html page and replace each plain-text box whose label
names a library set with a link to library/<id>.html showing images/<id>.<ext>.

Pages are only rewritten when at least one box was linked. Box images that do
not exist yet are listed at the end; the link still points at the default
extension so the image shows up once it is added.

Examples:
  # Link all theme pages in the current project
  themelink link

  # Preview without writing
  themelink link --dry-run

  # Machine-readable summary
  themelink link --format json`,
	RunE: runLink,
}

func init() {
	rootCmd.AddCommand(linkCmd)
	addLinkFlags(linkCmd)
}

func addLinkFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&linkOpts.dryRun, "dry-run", false,
		"Report what would be linked without writing any page")
	cmd.Flags().StringVarP(&linkOpts.format, "format", "f", "",
		"Output format: plain, json, yaml (default from config)")
	cmd.Flags().BoolVar(&linkOpts.showAll, "all", false,
		"List pages with no links added in plain output")
}

func runLink(cmd *cobra.Command, args []string) error {
	formatter, err := reportFormatter(cfg, linkOpts.format, linkOpts.showAll)
	if err != nil {
		return err
	}

	report, err := linkOnce(cmd.Context(), cfg, linkOpts.dryRun)
	if report != nil {
		if ferr := formatter.FormatReport(cmd.OutOrStdout(), report); ferr != nil {
			return ferr
		}
	}
	if err != nil {
		return err
	}

	if report.Failed() {
		return fmt.Errorf("%d theme page(s) could not be processed", len(report.Failures))
	}
	return nil
}

// linkOnce builds the pipeline from cfg and runs a single link pass.
func linkOnce(ctx context.Context, cfg *config.Config, dryRun bool) (*model.Report, error) {
	p, err := newPipeline(cfg, logger)
	if err != nil {
		return nil, err
	}

	runner := linker.NewRunner(p.transformer, linker.Options{
		ThemesDir: cfg.ThemesDir(),
		DryRun:    dryRun,
	}, logger)

	return runner.Run(ctx)
}

// reportFormatter picks the formatter from the flag, falling back to config.
func reportFormatter(cfg *config.Config, flagFormat string, showAll bool) (output.Formatter, error) {
	name := flagFormat
	if name == "" {
		name = cfg.Output.Format
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	opts := output.DefaultFormatterOptions()
	opts.ImagesDir = cfg.ImagesDir()
	opts.ShowAll = showAll
	return output.NewFormatter(format, opts), nil
}

// writeReport is used by watch mode, which keeps running after a failed pass.
func writeReport(w io.Writer, formatter output.Formatter, report *model.Report) {
	if err := formatter.FormatReport(w, report); err != nil {
		logger.Warn("failed to write report", "error", err)
	}
}
