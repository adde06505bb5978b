// Package build holds the per-run TOC context: the loaded navigation tree,
// the designated entry document, and the per-document injection entry point
// host build systems call for each page they process.
package build

import (
	"fmt"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/tocbuilder/internal/inject"
	"git.home.luguber.info/inful/tocbuilder/internal/toc"
)

// Run is the navigation state for one build run. It is constructed once,
// treated as read-only afterwards, and passed explicitly to every
// per-document call; concurrent readers are safe.
type Run struct {
	// ID identifies this run in log output.
	ID string

	// Root is the normalized navigation tree.
	Root *toc.Node

	// MasterDoc is the suffix-stripped path of the build's entry document,
	// taken from the root node.
	MasterDoc string
}

// NewRun wraps an already-loaded tree as a build run context.
func NewRun(root *toc.Node) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Root:      root,
		MasterDoc: toc.NoSuffix(root.File),
	}
}

// LoadRun reads a persisted TOC description and constructs the run context.
func LoadRun(path string) (*Run, error) {
	root, err := toc.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewRun(root), nil
}

// InjectDoc resolves docPath in the run's tree and returns source with that
// document's navigation directive embedded.
//
// A nil receiver means no TOC is configured for the run; the source is
// returned unchanged (deliberate opt-out). A document absent from the tree
// is a configuration mismatch and fails with toc.ErrPathNotFound naming the
// document. A resolved document without children is a no-op.
func (r *Run) InjectDoc(docPath string, source []byte) ([]byte, error) {
	if r == nil {
		return source, nil
	}

	page := toc.Find(r.Root, toc.NoSuffix(docPath))
	if page == nil {
		return nil, fmt.Errorf("%w: %s (check that the TOC file matches the content tree)", toc.ErrPathNotFound, docPath)
	}

	return inject.Apply(page, docPath, source)
}
