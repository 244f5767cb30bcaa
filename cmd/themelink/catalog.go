package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themelink/internal/assets"
	"github.com/jmylchreest/themelink/internal/catalog"
	"github.com/jmylchreest/themelink/internal/model"
)

var catalogOpts struct {
	format  string
	missing bool
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List library sets and the state of their images and pages",
	Long: `List every library set known to themelink together with the box image
that links will reference and whether the set's library page exists.

Examples:
  # List all sets
  themelink catalog

  # Only sets that still need a box image
  themelink catalog --missing`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogOpts.format, "format", "f", "",
		"Output format: plain, json, yaml (default from config)")
	catalogCmd.Flags().BoolVar(&catalogOpts.missing, "missing", false,
		"Only list sets without a box image")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	formatter, err := reportFormatter(cfg, catalogOpts.format, false)
	if err != nil {
		return err
	}

	p, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	rows := catalogRows(p.catalog, p.resolver, cfg.LibraryDir(), catalogOpts.missing)
	return formatter.FormatCatalog(cmd.OutOrStdout(), rows)
}

// catalogRows probes the image and library page of every entry.
func catalogRows(c *catalog.Catalog, resolver *assets.Resolver, libraryDir string, missingOnly bool) []model.CatalogRow {
	var rows []model.CatalogRow

	for _, e := range c.Entries() {
		if e.ID == catalog.SentinelID {
			continue
		}

		ext, found := resolver.Resolve(e.ID)
		row := model.CatalogRow{
			ID:       e.ID,
			Name:     e.Name,
			Image:    e.ID + ext,
			HasImage: found,
		}
		if found && missingOnly {
			continue
		}
		if found {
			if info, err := resolver.Stat(row.Image); err == nil {
				row.ImageSize = info.Size()
			}
		}
		if _, err := os.Stat(filepath.Join(libraryDir, e.ID+".html")); err == nil {
			row.HasPage = true
		}

		rows = append(rows, row)
	}

	return rows
}
