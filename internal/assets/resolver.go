// Package assets resolves box images for catalog entries.
package assets

import (
	"os"
	"path/filepath"
)

// DefaultExtensions is the probe order for box images.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png"}

// DefaultExtension is referenced when no image exists yet.
const DefaultExtension = ".jpg"

// Resolver probes an images directory for a catalog entry's box image.
type Resolver struct {
	dir        string
	extensions []string
	fallback   string
}

// NewResolver creates a resolver for dir. Empty extensions or fallback use
// the defaults.
func NewResolver(dir string, extensions []string, fallback string) *Resolver {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if fallback == "" {
		fallback = DefaultExtension
	}
	return &Resolver{
		dir:        dir,
		extensions: extensions,
		fallback:   fallback,
	}
}

// Resolve returns the extension of the first image found for id, in probe
// order. When nothing exists it returns the fallback extension and false;
// the caller still references that path and reports it as missing.
func (r *Resolver) Resolve(id string) (string, bool) {
	for _, ext := range r.extensions {
		if r.exists(id + ext) {
			return ext, true
		}
	}
	return r.fallback, false
}

// Path returns the filesystem path of an image file name.
func (r *Resolver) Path(name string) string {
	return filepath.Join(r.dir, name)
}

// Stat returns file info for an image file name, such as the id plus the
// extension returned by Resolve.
func (r *Resolver) Stat(name string) (os.FileInfo, error) {
	return os.Stat(r.Path(name))
}

func (r *Resolver) exists(name string) bool {
	info, err := os.Stat(r.Path(name))
	return err == nil && !info.IsDir()
}
