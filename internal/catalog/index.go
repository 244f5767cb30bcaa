package catalog

import "strings"

// Index maps lower-cased display names to catalog entries.
// It is built once and never mutated.
type Index struct {
	keys    []string // insertion order, used for prefix tie-breaks
	entries map[string]Entry
}

// NewIndex builds the name index for a catalog, skipping the sentinel entry.
// If two names fold to the same key the later entry replaces the earlier one
// but the key keeps its original position.
func NewIndex(c *Catalog) *Index {
	idx := &Index{
		entries: make(map[string]Entry, c.Len()),
	}

	for _, e := range c.entries {
		if e.ID == SentinelID {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if _, exists := idx.entries[key]; !exists {
			idx.keys = append(idx.keys, key)
		}
		idx.entries[key] = e
	}

	return idx
}

// Len returns the number of distinct keys.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Match resolves a theme label to a catalog entry.
//
// An exact (case-insensitive, normalized) match always wins. Otherwise the
// longest key that is a literal string prefix of the label is used, so
// "Vespa 125" resolves to "Vespa". Two distinct keys of equal length cannot
// both prefix the same label, so the only collisions are names that fold to
// the same key, and those are settled when the index is built.
func (idx *Index) Match(label string) (Entry, bool) {
	norm := strings.ToLower(Normalize(label))

	if e, ok := idx.entries[norm]; ok {
		return e, true
	}

	var best string
	found := false
	for _, key := range idx.keys {
		if strings.HasPrefix(norm, key) && len(key) > len(best) {
			best = key
			found = true
		}
	}
	if !found {
		return Entry{}, false
	}
	return idx.entries[best], true
}
