package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 65, c.Len())

	e, ok := c.Lookup("tokyo")
	require.True(t, ok)
	assert.Equal(t, "Tokyo", e.Name)

	e, ok = c.Lookup("santa's-workshop")
	require.True(t, ok)
	assert.Equal(t, "Santa's Workshop", e.Name)

	entries := c.Entries()
	assert.Equal(t, "titanic", entries[0].ID)
	assert.Equal(t, "the-going-merry-pirate-ship", entries[len(entries)-1].ID)
}

func TestParse(t *testing.T) {
	data := `
[[set]]
id = "vespa"
name = "Vespa"

[[set]]
id = "roses"
name = "Roses"
`
	c, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{ID: "vespa", Name: "Vespa"}, {ID: "roses", Name: "Roses"}}, c.Entries())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", `[[set]`},
		{"empty id", "[[set]]\nname = \"Vespa\"\n"},
		{"empty name", "[[set]]\nid = \"vespa\"\n"},
		{"duplicate id", "[[set]]\nid = \"vespa\"\nname = \"Vespa\"\n[[set]]\nid = \"vespa\"\nname = \"Vespa 2\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c, err := New([]Entry{{ID: "vespa", Name: "Vespa"}})
	require.NoError(t, err)

	entries := c.Entries()
	entries[0].Name = "changed"

	e, _ := c.Lookup("vespa")
	assert.Equal(t, "Vespa", e.Name)
}

func TestLookup_NotFound(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	_, ok := c.Lookup("tokyo")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}
