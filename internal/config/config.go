// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is looked up in the project root when no --config is given.
const DefaultConfigFile = "themelink.toml"

// Default configuration values.
const (
	DefaultRoot       = "."
	DefaultLibraryDir = "library"
	DefaultThemesDir  = "themes"
	DefaultImagesDir  = "images"
	DefaultLibraryURL = "../library"
	DefaultImagesURL  = "../images"
	DefaultBoxClass   = "theme-box2"
	DefaultLinkClass  = "hidden-box-link"
	DefaultImageExt   = ".jpg"
	DefaultDebounce   = "500ms"
	DefaultFormat     = "plain"
)

// Config represents the themelink configuration.
type Config struct {
	Paths  PathsConfig  `toml:"paths"`
	Links  LinksConfig  `toml:"links"`
	Markup MarkupConfig `toml:"markup"`
	Assets AssetsConfig `toml:"assets"`
	Watch  WatchConfig  `toml:"watch"`
	Output OutputConfig `toml:"output"`
}

// PathsConfig holds the project layout. Directories are relative to Root
// unless absolute.
type PathsConfig struct {
	Root    string `toml:"root"`
	Library string `toml:"library"` // Library pages, one per set
	Themes  string `toml:"themes"`  // Theme pages rewritten in place
	Images  string `toml:"images"`  // Box images
}

// LinksConfig holds the URL prefixes written into theme pages.
type LinksConfig struct {
	LibraryURL string `toml:"library_url"`
	ImagesURL  string `toml:"images_url"`
}

// MarkupConfig holds the class names used to find and wrap boxes.
type MarkupConfig struct {
	BoxClass  string `toml:"box_class"`
	LinkClass string `toml:"link_class"`
}

// AssetsConfig holds box image lookup settings.
type AssetsConfig struct {
	Extensions []string `toml:"extensions"` // Probe order
	Default    string   `toml:"default"`    // Referenced when no image exists
}

// WatchConfig holds settings for watch mode.
type WatchConfig struct {
	Debounce string `toml:"debounce"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	Format string `toml:"format"` // plain, json, yaml
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Root:    DefaultRoot,
			Library: DefaultLibraryDir,
			Themes:  DefaultThemesDir,
			Images:  DefaultImagesDir,
		},
		Links: LinksConfig{
			LibraryURL: DefaultLibraryURL,
			ImagesURL:  DefaultImagesURL,
		},
		Markup: MarkupConfig{
			BoxClass:  DefaultBoxClass,
			LinkClass: DefaultLinkClass,
		},
		Assets: AssetsConfig{
			Extensions: []string{".jpg", ".jpeg", ".png"},
			Default:    DefaultImageExt,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
	}
}

// ConfigPath returns the default config file path for a project root.
func ConfigPath(root string) string {
	if root == "" {
		root = DefaultRoot
	}
	return filepath.Join(root, DefaultConfigFile)
}

// LoadConfig loads configuration from the specified path.
// Returns default config if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "plain", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}

	for _, ext := range c.Assets.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("image extension %q must start with a dot", ext)
		}
	}
	if c.Assets.Default != "" && !strings.HasPrefix(c.Assets.Default, ".") {
		return fmt.Errorf("default image extension %q must start with a dot", c.Assets.Default)
	}

	if _, err := c.DebounceDuration(); err != nil {
		return err
	}

	return nil
}

// DebounceDuration parses the watch debounce interval.
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return time.ParseDuration(DefaultDebounce)
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("watch debounce %q must not be negative", c.Watch.Debounce)
	}
	return d, nil
}

// LibraryDir returns the resolved library directory.
func (c *Config) LibraryDir() string {
	return c.resolve(c.Paths.Library)
}

// ThemesDir returns the resolved themes directory.
func (c *Config) ThemesDir() string {
	return c.resolve(c.Paths.Themes)
}

// ImagesDir returns the resolved images directory.
func (c *Config) ImagesDir() string {
	return c.resolve(c.Paths.Images)
}

func (c *Config) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	root := c.Paths.Root
	if root == "" {
		root = DefaultRoot
	}
	return filepath.Join(root, dir)
}
