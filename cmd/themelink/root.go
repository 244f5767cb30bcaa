// Package main provides the CLI entrypoint for themelink.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themelink/internal/assets"
	"github.com/jmylchreest/themelink/internal/catalog"
	"github.com/jmylchreest/themelink/internal/config"
	"github.com/jmylchreest/themelink/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		root       string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "themelink",
	Short: "Link theme page boxes to their library pages",
	Long: `themelink rewrites the theme pages of the site so that every plain-text
box naming a known library set becomes a link to that set's library page,
showing the set's box image.

Running themelink without a subcommand performs a link pass (same as
"themelink link"). Already linked boxes are left alone, so running it again
is always safe.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		configPath := globalOpts.configPath
		if configPath == "" {
			configPath = config.ConfigPath(globalOpts.root)
		}

		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if globalOpts.root != "" {
			cfg.Paths.Root = globalOpts.root
		}

		logger.Debug("configuration loaded", "path", configPath, "root", cfg.Paths.Root)
		return nil
	},
	RunE: runLink,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: <root>/themelink.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.root, "root", "",
		"Project root containing library/, themes/ and images/ (default: .)")

	addLinkFlags(rootCmd)
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// pipeline holds the components shared by the commands, built once from cfg.
type pipeline struct {
	catalog     *catalog.Catalog
	resolver    *assets.Resolver
	transformer *theme.Transformer
}

// newPipeline loads the catalog and wires the resolver and transformer.
func newPipeline(cfg *config.Config, logger *slog.Logger) (*pipeline, error) {
	c, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	resolver := assets.NewResolver(cfg.ImagesDir(), cfg.Assets.Extensions, cfg.Assets.Default)
	transformer := theme.NewTransformer(catalog.NewIndex(c), resolver, theme.Markup{
		BoxClass:   cfg.Markup.BoxClass,
		LinkClass:  cfg.Markup.LinkClass,
		LibraryURL: cfg.Links.LibraryURL,
		ImagesURL:  cfg.Links.ImagesURL,
	}, logger)

	return &pipeline{
		catalog:     c,
		resolver:    resolver,
		transformer: transformer,
	}, nil
}
