package theme

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/jmylchreest/themelink/internal/assets"
	"github.com/jmylchreest/themelink/internal/catalog"
)

// Default markup conventions used by the theme pages.
const (
	DefaultBoxClass   = "theme-box2"
	DefaultLinkClass  = "hidden-box-link"
	DefaultLibraryURL = "../library"
	DefaultImagesURL  = "../images"
)

// Markup describes how boxes are found and how links are written.
type Markup struct {
	BoxClass   string // Class of the label box
	LinkClass  string // Class of the wrapping anchor
	LibraryURL string // URL prefix for library pages
	ImagesURL  string // URL prefix for box images
}

// DefaultMarkup returns the markup used by the site.
func DefaultMarkup() Markup {
	return Markup{
		BoxClass:   DefaultBoxClass,
		LinkClass:  DefaultLinkClass,
		LibraryURL: DefaultLibraryURL,
		ImagesURL:  DefaultImagesURL,
	}
}

// Result is the outcome of transforming one page.
type Result struct {
	Content string   // Rewritten content (unchanged if Count is 0)
	Count   int      // Number of boxes linked
	Missing []string // Sorted, unique image file names that do not exist
}

// Changed reports whether any box was linked.
func (r Result) Changed() bool {
	return r.Count > 0
}

// Transformer links plain-text boxes to library pages.
type Transformer struct {
	index    *catalog.Index
	resolver *assets.Resolver
	markup   Markup
	boxRegex *regexp.Regexp
	logger   *slog.Logger
}

// NewTransformer creates a transformer. Empty markup fields use the defaults.
func NewTransformer(index *catalog.Index, resolver *assets.Resolver, markup Markup, logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}

	def := DefaultMarkup()
	if markup.BoxClass == "" {
		markup.BoxClass = def.BoxClass
	}
	if markup.LinkClass == "" {
		markup.LinkClass = def.LinkClass
	}
	if markup.LibraryURL == "" {
		markup.LibraryURL = def.LibraryURL
	}
	if markup.ImagesURL == "" {
		markup.ImagesURL = def.ImagesURL
	}
	markup.LibraryURL = strings.TrimSuffix(markup.LibraryURL, "/")
	markup.ImagesURL = strings.TrimSuffix(markup.ImagesURL, "/")

	// A box whose whole content is text: [^<] rules out nested img/a tags.
	pattern := `(?s)<div class="` + regexp.QuoteMeta(markup.BoxClass) + `">([^<]+?)</div>`

	return &Transformer{
		index:    index,
		resolver: resolver,
		markup:   markup,
		boxRegex: regexp.MustCompile(pattern),
		logger:   logger,
	}
}

// Transform rewrites content and returns the result. It does not touch the
// filesystem apart from probing for images.
func (t *Transformer) Transform(content string) Result {
	var res Result
	missing := make(map[string]bool)

	res.Content = t.boxRegex.ReplaceAllStringFunc(content, func(match string) string {
		sub := t.boxRegex.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}

		label := strings.TrimSpace(sub[1])
		if strings.Contains(label, "<img") || strings.Contains(label, "<a") {
			return match
		}

		entry, ok := t.index.Match(label)
		if !ok {
			t.logger.Debug("no catalog match", "label", label)
			return match
		}

		ext, found := t.resolver.Resolve(entry.ID)
		if !found {
			missing[entry.ID+ext] = true
		}
		res.Count++

		return t.link(entry.ID, ext, label)
	})

	for name := range missing {
		res.Missing = append(res.Missing, name)
	}
	sort.Strings(res.Missing)

	return res
}

// link builds the replacement markup for one box.
func (t *Transformer) link(id, ext, label string) string {
	return fmt.Sprintf(`<a href="%s/%s.html" class="%s"><div class="%s"><img src="%s/%s%s" alt="%s"></div></a>`,
		t.markup.LibraryURL, id, t.markup.LinkClass,
		t.markup.BoxClass,
		t.markup.ImagesURL, id, ext, label)
}

// TransformFile transforms the page at path. The file is rewritten only when
// at least one box was linked and dryRun is false; its mode is preserved.
func (t *Transformer) TransformFile(path string, dryRun bool) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	res := t.Transform(string(data))
	if !res.Changed() || dryRun {
		return res, nil
	}

	if err := os.WriteFile(path, []byte(res.Content), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", path, err)
	}
	t.logger.Debug("rewrote theme page", "path", path, "links", res.Count)

	return res, nil
}
