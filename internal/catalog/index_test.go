package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIndex(t *testing.T, entries ...Entry) *Index {
	t.Helper()
	c, err := New(entries)
	require.NoError(t, err)
	return NewIndex(c)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Tokyo  ", "Tokyo"},
		{"Bouquet\n  of\tRoses", "Bouquet of Roses"},
		{"Santa&#39;s Workshop", "Santa's Workshop"},
		{"Rock &amp; Roll", "Rock & Roll"},
		{"&amp;#39;", "'"},
		{"", ""},
		{"Statue\u00a0of Liberty", "Statue of Liberty"},
		{"\u2003Tokyo\u3000 Tower\u0085", "Tokyo Tower"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNewIndex_SkipsSentinel(t *testing.T) {
	idx := mustIndex(t,
		Entry{ID: SentinelID, Name: "No Review"},
		Entry{ID: "tokyo", Name: "Tokyo"},
	)

	assert.Equal(t, 1, idx.Len())
	_, ok := idx.Match("No Review")
	assert.False(t, ok)
}

func TestMatch_Exact(t *testing.T) {
	idx := mustIndex(t, Entry{ID: "vespa", Name: "Vespa"})

	e, ok := idx.Match("Vespa")
	require.True(t, ok)
	assert.Equal(t, "vespa", e.ID)

	e, ok = idx.Match("  vESPA ")
	require.True(t, ok)
	assert.Equal(t, "vespa", e.ID)
}

func TestMatch_ExactBeatsPrefix(t *testing.T) {
	idx := mustIndex(t,
		Entry{ID: "roses", Name: "Roses"},
		Entry{ID: "roses-deluxe", Name: "Roses Deluxe"},
	)

	e, ok := idx.Match("Roses")
	require.True(t, ok)
	assert.Equal(t, "roses", e.ID)
}

func TestMatch_Prefix(t *testing.T) {
	idx := mustIndex(t, Entry{ID: "vespa", Name: "Vespa"})

	e, ok := idx.Match("Vespa 125")
	require.True(t, ok)
	assert.Equal(t, "vespa", e.ID)
}

func TestMatch_LongestPrefixWins(t *testing.T) {
	idx := mustIndex(t,
		Entry{ID: "vespa", Name: "Vespa"},
		Entry{ID: "vespa-125", Name: "Vespa 125"},
	)

	e, ok := idx.Match("Vespa 125 Primavera")
	require.True(t, ok)
	assert.Equal(t, "vespa-125", e.ID)
}

func TestMatch_PrefixIsNotTokenAware(t *testing.T) {
	idx := mustIndex(t, Entry{ID: "love", Name: "LOVE"})

	e, ok := idx.Match("Lovebirds")
	require.True(t, ok)
	assert.Equal(t, "love", e.ID)
}

func TestNewIndex_FoldedDuplicateLaterEntryWins(t *testing.T) {
	idx := mustIndex(t,
		Entry{ID: "first", Name: "Abc"},
		Entry{ID: "second", Name: "ABC"},
		Entry{ID: "other", Name: "Abd"},
	)

	assert.Equal(t, 2, idx.Len())
	e, ok := idx.Match("abc xyz")
	require.True(t, ok)
	assert.Equal(t, "second", e.ID)
}

func TestMatch_Entities(t *testing.T) {
	idx := mustIndex(t, Entry{ID: "santa's-workshop", Name: "Santa's Workshop"})

	e, ok := idx.Match("Santa&#39;s   Workshop")
	require.True(t, ok)
	assert.Equal(t, "santa's-workshop", e.ID)
}

func TestMatch_NoMatch(t *testing.T) {
	idx := mustIndex(t, Entry{ID: "vespa", Name: "Vespa"})

	_, ok := idx.Match("Unknown Thing")
	assert.False(t, ok)

	_, ok = idx.Match("")
	assert.False(t, ok)

	_, ok = idx.Match("Ves")
	assert.False(t, ok)
}

func TestMatch_DefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	idx := NewIndex(c)

	tests := []struct {
		label string
		want  string
	}{
		{"Tokyo", "tokyo"},
		{"Vincent Van Gogh - Sunflowers", "vincent-van-gogh-sunflowers"},
		{"Sunflowers", "sunflowers"},
		{"Mini Orchid", "mini-orchid"},
		{"Orchid", "orchid"},
		{"Flower Bouquet", "flower-bouquet"},
		{"Christmas Tree Ornaments", "christmas-tree"},
		{"Andy Warhol&#39;s Marilyn Monroe", "andy-warhol's-marilyn-monroe"},
		{"Statue\u00a0of Liberty", "statue-of-liberty"},
		{"Great\u2003Pyramid of Giza", "great-pyramid-of-giza"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			e, ok := idx.Match(tt.label)
			require.True(t, ok)
			assert.Equal(t, tt.want, e.ID)
		})
	}
}
