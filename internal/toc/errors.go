package toc

// Package-level sentinel errors for TOC loading and resolution. These enable
// consistent classification with errors.Is at the CLI boundary.

import "errors"

var (
	// ErrPathNotFound indicates a document being processed has no
	// corresponding node in the loaded table of contents.
	ErrPathNotFound = errors.New("path not found in table of contents")

	// ErrEmptyToc indicates a persisted TOC file parsed to no nodes at all.
	ErrEmptyToc = errors.New("table of contents is empty")

	// ErrMissingRootFile indicates the TOC root node has no file entry, so
	// no entry document can be designated.
	ErrMissingRootFile = errors.New("table of contents root has no file entry")
)
