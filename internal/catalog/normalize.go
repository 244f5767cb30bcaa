package catalog

import (
	"strings"
	"unicode"
)

// Normalize prepares a raw label for lookup: trims it, collapses runs of
// whitespace (including no-break and other Unicode spaces) to a single space
// and decodes &amp; and &#39;. Case is left untouched.
func Normalize(text string) string {
	t := strings.Join(strings.FieldsFunc(text, isSpace), " ")
	// Applied in sequence, so "&amp;#39;" decodes all the way to "'".
	t = strings.ReplaceAll(t, "&amp;", "&")
	return strings.ReplaceAll(t, "&#39;", "'")
}

// isSpace also accepts the ASCII separators U+001C..U+001F, which
// unicode.IsSpace leaves out but label text treats as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
