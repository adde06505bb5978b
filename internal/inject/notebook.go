package inject

import (
	"encoding/json"
	"fmt"
)

// markdownCell is the minimal nbformat v4 markdown cell shape.
type markdownCell struct {
	CellType string         `json:"cell_type"`
	Metadata map[string]any `json:"metadata"`
	Source   string         `json:"source"`
}

// appendNotebookCell parses source as a Jupyter notebook, appends a markdown
// cell containing content, and re-serializes the whole notebook.
//
// Cells are kept as raw JSON and every unrecognized top-level field is
// carried through untouched; only the cells array is rewritten.
func appendNotebookCell(source []byte, content string) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(source, &doc); err != nil {
		return nil, fmt.Errorf("not a valid notebook document: %w", err)
	}

	var cells []json.RawMessage
	if raw, ok := doc["cells"]; ok {
		if err := json.Unmarshal(raw, &cells); err != nil {
			return nil, fmt.Errorf("notebook cells are malformed: %w", err)
		}
	}

	cell, err := json.Marshal(markdownCell{
		CellType: "markdown",
		Metadata: map[string]any{},
		Source:   content,
	})
	if err != nil {
		return nil, err
	}
	cells = append(cells, cell)

	rawCells, err := json.Marshal(cells)
	if err != nil {
		return nil, err
	}
	doc["cells"] = rawCells

	return json.MarshalIndent(doc, "", " ")
}
