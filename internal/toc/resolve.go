package toc

// Searchable is a search root: either a single node or an ordered list of
// sibling nodes. One Find works over both shapes.
type Searchable interface {
	searchRoots() []*Node
}

// List adapts an ordered sibling sequence into a search root.
type List []*Node

func (l List) searchRoots() []*Node  { return l }
func (n *Node) searchRoots() []*Node { return []*Node{n} }

// Find locates the first node whose suffix-stripped File equals name, using
// a pre-order depth-first search: each node at the current level is checked
// before descending into its children, children before the next sibling.
// Returns nil when the whole subtree is exhausted without a match.
//
// The tree is acyclic by construction (built from a directory walk or a
// parsed YAML document), so no cycle detection is performed.
func Find(root Searchable, name string) *Node {
	if root == nil {
		return nil
	}
	for _, n := range root.searchRoots() {
		if n == nil {
			continue
		}
		if NoSuffix(n.File) == name {
			return n
		}
		if found := Find(List(n.Pages), name); found != nil {
			return found
		}
	}
	return nil
}

// Entry is one render-ready child link: a suffix-stripped content path and
// an optional label override.
type Entry struct {
	File string
	Name string
}

// Children returns the node's directly listed pages as link entries. The
// result is empty (not an error) for a node without children; callers treat
// that as "no navigation needed".
func (n *Node) Children() []Entry {
	entries := make([]Entry, 0, len(n.Pages))
	for _, page := range n.Pages {
		entries = append(entries, Entry{File: page.File, Name: page.Name})
	}
	return entries
}
