package tocgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/tocbuilder/internal/toc"
)

// writeFiles creates a content tree under a fresh temp directory and returns
// the named root folder inside it.
func writeFiles(t *testing.T, rootName string, files map[string]string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), rootName)
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestBuild_BookExample(t *testing.T) {
	root := writeFiles(t, "book", map[string]string{
		"index.md":       "# Welcome\n",
		"ch1.md":         "content\n",
		"appendix/a1.md": "content\n",
	})

	tree, err := Build(root)
	require.NoError(t, err)

	require.Equal(t, &toc.Node{
		File:  "index",
		Title: "Book",
		Pages: []*toc.Node{
			{File: "ch1", Title: "Ch1"},
			{File: "appendix/a1", Title: "A1"},
		},
	}, tree)
}

func TestBuild_IndexFile_AlwaysBecomesDirectoryParent(t *testing.T) {
	root := writeFiles(t, "docs", map[string]string{
		"a_page.md": "",
		"index.md":  "",
		"z_page.md": "",
	})

	tree, err := Build(root)
	require.NoError(t, err)
	require.Equal(t, "index", tree.File)
	require.Equal(t, "Docs", tree.Title)
	require.Len(t, tree.Pages, 2)
	require.Equal(t, "a_page", tree.Pages[0].File)
	require.Equal(t, "z_page", tree.Pages[1].File)
}

func TestBuild_NoIndex_FirstSortedFileIsParent(t *testing.T) {
	root := writeFiles(t, "docs", map[string]string{
		"beta.md":  "",
		"alpha.md": "",
	})

	tree, err := Build(root)
	require.NoError(t, err)
	require.Equal(t, "alpha", tree.File)
	require.Len(t, tree.Pages, 1)
	require.Equal(t, "beta", tree.Pages[0].File)
}

func TestBuild_EveryContentFileAppearsExactlyOnce(t *testing.T) {
	root := writeFiles(t, "docs", map[string]string{
		"index.md":          "",
		"one.md":            "",
		"two.ipynb":         "{}",
		"guide/index.md":    "",
		"guide/setup.md":    "",
		"guide/deep/end.md": "",
		"notes.txt":         "ignored",
	})

	tree, err := Build(root)
	require.NoError(t, err)

	seen := map[string]int{}
	var collect func(*toc.Node)
	collect = func(n *toc.Node) {
		seen[n.File]++
		for _, p := range n.Pages {
			collect(p)
		}
	}
	collect(tree)

	want := []string{"index", "one", "two", "guide/index", "guide/setup", "guide/deep/end"}
	require.Len(t, seen, len(want))
	for _, file := range want {
		require.Equal(t, 1, seen[file], "file %s", file)
	}
}

func TestBuild_EmptyDirectory_ReturnsErrNoContent(t *testing.T) {
	root := writeFiles(t, "docs", map[string]string{
		"readme.txt": "not a content file",
	})

	_, err := Build(root)
	require.True(t, errors.Is(err, ErrNoContent))
	require.Contains(t, err.Error(), root)
}

func TestBuild_BarrenSubtreesArePruned(t *testing.T) {
	root := writeFiles(t, "docs", map[string]string{
		"index.md":           "",
		"assets/logo.txt":    "",
		"empty/nested/ch.md": "",
	})

	// "empty" has no direct content files, so its whole subtree is pruned
	// even though a deeper folder holds content.
	tree, err := Build(root)
	require.NoError(t, err)
	require.Empty(t, tree.Pages)
}

func TestBuild_SkipMarkers_ExcludeFilesAndFolders(t *testing.T) {
	root := writeFiles(t, "docs", map[string]string{
		"index.md":         "",
		"draft_notes.md":   "",
		"drafts/wip.md":    "",
		"published/ch1.md": "",
		"published/ch2.md": "",
	})

	tree, err := Build(root, WithSkipText("draft"))
	require.NoError(t, err)

	require.Len(t, tree.Pages, 1)
	require.Equal(t, "published/ch1", tree.Pages[0].File)
}

func TestBuild_CheckpointArtifacts_AlwaysSkipped(t *testing.T) {
	root := writeFiles(t, "docs", map[string]string{
		"index.md":                     "",
		".ipynb_checkpoints/old.ipynb": "{}",
		"nb.ipynb":                     "{}",
	})

	tree, err := Build(root)
	require.NoError(t, err)
	require.Len(t, tree.Pages, 1)
	require.Equal(t, "nb", tree.Pages[0].File)
}

func TestBuild_SplitChar_DrivesTitleDerivation(t *testing.T) {
	root := writeFiles(t, "my-book", map[string]string{
		"index.md":           "",
		"getting-started.md": "",
	})

	tree, err := Build(root, WithSplitChar("-"))
	require.NoError(t, err)
	require.Equal(t, "My Book", tree.Title)
	require.Equal(t, "Getting Started", tree.Pages[0].Title)
}

func TestBuild_TitlesFromHeadings_PrefersFirstHeading(t *testing.T) {
	root := writeFiles(t, "docs", map[string]string{
		"index.md":      "# The Real Book Title\n\ntext\n",
		"no_heading.md": "plain text only\n",
	})

	tree, err := Build(root, WithTitlesFromHeadings())
	require.NoError(t, err)
	require.Equal(t, "The Real Book Title", tree.Title)
	// Fallback to the filename rule when a file has no heading.
	require.Equal(t, "No Heading", tree.Pages[0].Title)
}

func TestBuildYAML_Deterministic(t *testing.T) {
	root := writeFiles(t, "book", map[string]string{
		"index.md":       "",
		"ch1.md":         "",
		"ch2.md":         "",
		"appendix/a1.md": "",
		"appendix/a2.md": "",
	})

	first, err := BuildYAML(root)
	require.NoError(t, err)
	second, err := BuildYAML(root)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestBuildYAML_ChildlessTree_HasNoPagesKey(t *testing.T) {
	root := writeFiles(t, "book", map[string]string{
		"index.md": "",
	})

	data, err := BuildYAML(root)
	require.NoError(t, err)
	require.NotContains(t, string(data), "pages")
}
