package theme

import (
	"os"
	"path/filepath"
	"sort"
)

// ListPages returns the .html files directly inside dir, sorted by name.
// A missing directory yields no pages and no error.
func ListPages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var pages []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".html" {
			pages = append(pages, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(pages)
	return pages, nil
}
