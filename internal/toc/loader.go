package toc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses a persisted TOC description into a single root node.
//
// Two top-level shapes are accepted: the canonical single mapping, and an
// author-friendly flat sequence. For the sequence shape the first element
// becomes the root and the remaining elements are reassigned as the root's
// pages.
func Load(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse table of contents: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, ErrEmptyToc
	}

	top := doc.Content[0]
	var root *Node
	switch top.Kind {
	case yaml.SequenceNode:
		var nodes []*Node
		if err := top.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("failed to decode table of contents list: %w", err)
		}
		if len(nodes) == 0 {
			return nil, ErrEmptyToc
		}
		root = nodes[0]
		if len(nodes) > 1 {
			root.Pages = nodes[1:]
		}
	default:
		root = &Node{}
		if err := top.Decode(root); err != nil {
			return nil, fmt.Errorf("failed to decode table of contents: %w", err)
		}
	}

	if root.File == "" {
		return nil, ErrMissingRootFile
	}
	return root, nil
}

// LoadFile reads and parses a persisted TOC description from disk.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table of contents %s: %w", path, err)
	}
	root, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
