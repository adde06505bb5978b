package inject

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/tocbuilder/internal/toc"
)

const sampleNotebook = `{
 "cells": [
  {
   "cell_type": "code",
   "execution_count": null,
   "metadata": {},
   "outputs": [],
   "source": ["print(1)"]
  }
 ],
 "metadata": {"language_info": {"name": "python"}},
 "nbformat": 4,
 "nbformat_minor": 5
}`

func TestApply_Notebook_AppendsMarkdownCell(t *testing.T) {
	page := &toc.Node{
		File:  "nb",
		Pages: []*toc.Node{{File: "sub/ch1", Name: "Chapter One"}},
	}

	out, err := Apply(page, "nb.ipynb", []byte(sampleNotebook))
	require.NoError(t, err)

	var doc struct {
		Cells []struct {
			CellType string `json:"cell_type"`
			Source   any    `json:"source"`
		} `json:"cells"`
		Nbformat      int `json:"nbformat"`
		NbformatMinor int `json:"nbformat_minor"`
		Metadata      struct {
			LanguageInfo struct {
				Name string `json:"name"`
			} `json:"language_info"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	require.Len(t, doc.Cells, 2)
	require.Equal(t, "code", doc.Cells[0].CellType)
	require.Equal(t, "markdown", doc.Cells[1].CellType)
	require.Contains(t, doc.Cells[1].Source, "Chapter One <sub/ch1>")

	// Untouched notebook fields survive the rewrite.
	require.Equal(t, 4, doc.Nbformat)
	require.Equal(t, 5, doc.NbformatMinor)
	require.Equal(t, "python", doc.Metadata.LanguageInfo.Name)
}

func TestApply_MalformedNotebook_ReturnsError(t *testing.T) {
	page := &toc.Node{File: "nb", Pages: []*toc.Node{{File: "ch1"}}}

	_, err := Apply(page, "nb.ipynb", []byte("not json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "nb.ipynb")
}

func TestAppendNotebookCell_NotebookWithoutCells_GainsCellsArray(t *testing.T) {
	out, err := appendNotebookCell([]byte(`{"nbformat": 4}`), "directive text")
	require.NoError(t, err)

	var doc struct {
		Cells []struct {
			CellType string `json:"cell_type"`
		} `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc.Cells, 1)
	require.Equal(t, "markdown", doc.Cells[0].CellType)
}
