package toc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoSuffix_StripsKnownExtensions(t *testing.T) {
	require.Equal(t, "chapter1", NoSuffix("chapter1.md"))
	require.Equal(t, "sub/ch1", NoSuffix("sub/ch1.ipynb"))
	require.Equal(t, "chapter1", NoSuffix("chapter1"))
	require.Equal(t, "a.b/c", NoSuffix("a.b/c"))
}

func TestMarshal_ChildlessNode_OmitsPagesKey(t *testing.T) {
	data, err := Marshal(&Node{File: "index", Title: "Book"})
	require.NoError(t, err)
	require.NotContains(t, string(data), "pages")
}

func TestMarshal_EmptyPagesSlice_OmitsPagesKey(t *testing.T) {
	data, err := Marshal(&Node{File: "index", Pages: []*Node{}})
	require.NoError(t, err)
	require.NotContains(t, string(data), "pages")
}

func TestMarshal_RoundTrip_PreservesTree(t *testing.T) {
	root := &Node{
		File:     "index",
		Title:    "Book",
		Numbered: true,
		Pages: []*Node{
			{File: "ch1", Title: "Ch1"},
			{File: "appendix/a1", Title: "A1", Name: "Appendix A"},
		},
	}

	data, err := Marshal(root)
	require.NoError(t, err)

	loaded, err := Load(data)
	require.NoError(t, err)
	require.Equal(t, root, loaded)
}

func TestMarshal_OptionalFields_AbsentWhenUnset(t *testing.T) {
	data, err := Marshal(&Node{File: "ch1"})
	require.NoError(t, err)
	require.Equal(t, "file: ch1\n", string(data))
}
