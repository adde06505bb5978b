// Package inject synthesizes toctree navigation directives and embeds them
// into document sources. Injection is format-aware: markup sources get the
// directive appended as text, notebook sources get it appended as a markdown
// cell. Any other format is rejected.
package inject

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/tocbuilder/internal/toc"
)

// ErrUnsupportedFormat indicates injection was requested for a document
// format other than markup or notebook.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// markupSuffixes are the plain-text formats the append strategy handles.
var markupSuffixes = map[string]bool{
	".md":       true,
	".markdown": true,
	".myst":     true,
}

// Apply embeds a navigation directive for page's children into source and
// returns the replacement source. A page with no children is a no-op: the
// source comes back unchanged.
//
// Each child path is rewritten relative to the parent document's own
// containing directory, so the embedded links resolve no matter where in
// the tree the parent sits.
func Apply(page *toc.Node, docPath string, source []byte) ([]byte, error) {
	entries := page.Children()
	if len(entries) == 0 {
		return source, nil
	}

	directive := Directive(page, entries)

	suffix := path.Ext(docPath)
	switch {
	case markupSuffixes[suffix]:
		return append(source, []byte(directive+"\n")...), nil
	case suffix == ".ipynb":
		out, err := appendNotebookCell(source, directive)
		if err != nil {
			return nil, fmt.Errorf("failed to inject into notebook %s: %w", docPath, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s (only markdown and notebook files are supported)", ErrUnsupportedFormat, docPath)
	}
}

// Directive builds the fenced toctree block for a page and its resolved
// child entries. The block always carries the hidden and titlesonly display
// flags; per-node options follow, one per line.
func Directive(page *toc.Node, entries []toc.Entry) string {
	parentDir := filepath.Dir(page.File)

	sections := make([]string, 0, len(entries))
	for _, entry := range entries {
		rel, err := filepath.Rel(parentDir, entry.File)
		if err != nil {
			// Non-relatable paths keep their stored form.
			rel = entry.File
		}
		section := filepath.ToSlash(rel)
		if entry.Name != "" {
			section = fmt.Sprintf("%s <%s>", entry.Name, section)
		}
		sections = append(sections, section)
	}

	options := make([]string, 0, 1)
	if page.Numbered {
		options = append(options, "numbered")
	}
	for i, opt := range options {
		options[i] = fmt.Sprintf(":%s:", opt)
	}

	lines := []string{
		"",
		"```{toctree}",
		":hidden:",
		":titlesonly:",
		strings.Join(options, "\n"),
		"",
		strings.Join(sections, "\n"),
		"```",
		"",
	}
	return strings.Join(lines, "\n")
}
