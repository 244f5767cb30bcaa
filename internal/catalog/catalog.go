// Package catalog holds the static table of library sets and the name index
// used to match theme labels against it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// SentinelID is a placeholder library page that never corresponds to a set.
const SentinelID = "no-review"

//go:embed catalog.toml
var embeddedCatalog []byte

// Entry is a single library set.
type Entry struct {
	ID   string `toml:"id" json:"id" yaml:"id"`       // Slug used for library pages and images
	Name string `toml:"name" json:"name" yaml:"name"` // Display name as printed on the box
}

// Catalog is an immutable, ordered set of entries.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

type catalogFile struct {
	Sets []Entry `toml:"set"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Parse decodes a TOML catalog made of [[set]] tables.
// Entry order is preserved.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Sets)
}

// New builds a catalog from entries. IDs must be unique and non-empty.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: %w", i, errors.New("empty id"))
		}
		if e.Name == "" {
			return nil, fmt.Errorf("catalog entry %q: %w", e.ID, errors.New("empty name"))
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate id", e.ID)
		}
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds an entry by its ID.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
