// Package tocgen infers a navigation tree from a directory of content
// files, using file and folder naming conventions alone. The result is the
// same tree shape the loader produces from a persisted TOC file, so a
// generated tree can be serialized, hand-edited, and loaded back.
package tocgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/tocbuilder/internal/markdown"
	"git.home.luguber.info/inful/tocbuilder/internal/toc"
)

// SupportedSuffixes is the fixed allow-list of content document formats
// considered during generation. Everything else is ignored.
var SupportedSuffixes = []string{".md", ".markdown", ".myst", ".ipynb"}

// checkpointMarker excludes Jupyter checkpoint artifacts from every run,
// regardless of caller-supplied skip markers.
const checkpointMarker = ".ipynb_checkpoints"

// ErrNoContent indicates generation found zero content files anywhere under
// the target directory.
var ErrNoContent = errors.New("no content files found")

// Option adjusts tree generation behavior.
type Option func(*builder)

// WithSplitChar sets the character used to infer word boundaries in page
// titles derived from filenames. Default is "_".
func WithSplitChar(c string) Option {
	return func(b *builder) { b.splitChar = c }
}

// WithSkipText adds skip markers: any file or folder whose path contains one
// of these substrings is excluded from the tree.
func WithSkipText(markers ...string) Option {
	return func(b *builder) { b.skipText = append(b.skipText, markers...) }
}

// WithTitlesFromHeadings derives page titles from the first Markdown heading
// of each content file, falling back to the filename rule when a file has
// no heading or cannot be read.
func WithTitlesFromHeadings() Option {
	return func(b *builder) { b.titlesFromHeadings = true }
}

type builder struct {
	root               string
	splitChar          string
	skipText           []string
	titlesFromHeadings bool
}

// Build infers a navigation tree from the contents of dir. Node file paths
// are slash-separated, suffix-stripped, and relative to dir.
//
// Per directory: content files are listed lexicographically; a file stemmed
// "index" (else the first file) becomes the directory's parent node, the
// remaining files become its leaf children, and each subdirectory that
// yields a tree of its own is appended as a further child. A directory with
// no direct content files contributes nothing, including its
// subdirectories.
func Build(dir string, opts ...Option) (*toc.Node, error) {
	b := &builder{
		root:      dir,
		splitChar: "_",
		skipText:  []string{checkpointMarker},
	}
	for _, opt := range opts {
		opt(b)
	}

	root, err := b.walk(dir)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoContent, dir)
	}
	return root, nil
}

// BuildYAML runs Build and serializes the result to the persisted TOC
// format.
func BuildYAML(dir string, opts ...Option) ([]byte, error) {
	root, err := Build(dir, opts...)
	if err != nil {
		return nil, err
	}
	return toc.Marshal(root)
}

func (b *builder) walk(dir string) (*toc.Node, error) {
	// os.ReadDir returns entries sorted by filename, which keeps generated
	// trees identical across platforms.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var files, dirs []fs.DirEntry
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry)
			continue
		}
		if supportedSuffix(filepath.Ext(entry.Name())) {
			files = append(files, entry)
		}
	}

	// No direct content means this directory contributes nothing; barren
	// subtrees are pruned here rather than yielding childless folders.
	if len(files) == 0 {
		return nil, nil
	}

	parentIdx := 0
	for i, file := range files {
		if stem(file.Name()) == "index" {
			parentIdx = i
			break
		}
	}
	parent := b.pageFor(dir, files[parentIdx].Name())
	files = append(files[:parentIdx], files[parentIdx+1:]...)

	for _, file := range files {
		if b.skipped(dir, file.Name()) {
			continue
		}
		parent.Pages = append(parent.Pages, b.pageFor(dir, file.Name()))
	}

	for _, sub := range dirs {
		if b.skipped(dir, sub.Name()) {
			continue
		}
		child, err := b.walk(filepath.Join(dir, sub.Name()))
		if err != nil {
			return nil, err
		}
		if child != nil {
			parent.Pages = append(parent.Pages, child)
		}
	}

	return parent, nil
}

// pageFor converts one content file into a tree node with a derived title.
func (b *builder) pageFor(dir, name string) *toc.Node {
	full := filepath.Join(dir, name)
	rel, err := filepath.Rel(b.root, full)
	if err != nil {
		rel = full
	}

	fileStem := stem(name)
	title := ""
	if b.titlesFromHeadings {
		title = b.headingTitle(full)
	}
	if title == "" {
		if fileStem == "index" {
			// An index page is labeled after its folder, never the literal
			// word "index".
			title = FilenameToTitle(dirBase(dir), b.splitChar)
		} else {
			title = FilenameToTitle(fileStem, b.splitChar)
		}
	}

	return &toc.Node{
		File:  toc.NoSuffix(filepath.ToSlash(rel)),
		Title: title,
	}
}

// headingTitle extracts the first Markdown heading of a markup file, or ""
// when none applies.
func (b *builder) headingTitle(path string) string {
	if filepath.Ext(path) == ".ipynb" {
		return ""
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	title, ok := markdown.ExtractTitle(body)
	if !ok {
		return ""
	}
	return title
}

// skipped reports whether a file or folder path contains a skip marker. The
// match is a plain substring test against the root-relative path.
func (b *builder) skipped(dir, name string) bool {
	full := filepath.Join(dir, name)
	rel, err := filepath.Rel(b.root, full)
	if err != nil {
		rel = full
	}
	rel = filepath.ToSlash(rel)
	for _, marker := range b.skipText {
		if strings.Contains(rel, marker) {
			return true
		}
	}
	return false
}

func supportedSuffix(ext string) bool {
	for _, suffix := range SupportedSuffixes {
		if ext == suffix {
			return true
		}
	}
	return false
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// dirBase resolves a directory's plain folder name, even for "." or
// trailing-slash forms.
func dirBase(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}
	return filepath.Base(abs)
}
