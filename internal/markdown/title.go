// Package markdown provides minimal Markdown analysis used during TOC
// generation. It parses with Goldmark and never re-renders source.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractTitle returns the text of the first heading in a Markdown body,
// and whether one was found. Inline markup inside the heading is flattened
// to its plain text.
func ExtractTitle(body []byte) (string, bool) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var title string
	found := false
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || found {
			return gmast.WalkContinue, nil
		}
		if heading, ok := n.(*gmast.Heading); ok {
			title = flattenText(heading, body)
			found = true
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})

	if !found || title == "" {
		return "", false
	}
	return title, true
}

// flattenText concatenates the raw text segments beneath a node.
func flattenText(node gmast.Node, body []byte) string {
	var buf bytes.Buffer
	_ = gmast.Walk(node, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if t, ok := n.(*gmast.Text); ok {
			buf.Write(t.Segment.Value(body))
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}
