package toc

import (
	"bytes"
	"path"

	"gopkg.in/yaml.v3"
)

// Node is one entry in the navigation hierarchy: a content page plus its
// ordered children. The same shape is used for auto-generated trees and for
// trees loaded from a persisted TOC file.
type Node struct {
	File     string  `yaml:"file"`
	Title    string  `yaml:"title,omitempty"`
	Name     string  `yaml:"name,omitempty"`
	Numbered bool    `yaml:"numbered,omitempty"`
	Pages    []*Node `yaml:"pages,omitempty"`
}

// NoSuffix strips the format extension from a content path. Lookups always
// compare suffix-stripped values, so "chapter1.md" and "chapter1" refer to
// the same node.
func NoSuffix(p string) string {
	ext := path.Ext(p)
	return p[:len(p)-len(ext)]
}

// Marshal serializes a tree to the persisted TOC format. Output is the
// canonical single-mapping root shape with 2-space indentation; a node with
// no children carries no pages key at all.
func Marshal(root *Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
