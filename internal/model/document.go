package model

import (
	"fmt"
	"strings"
)

// Document holds the OCR output for one source file. RawText is immutable
// once OCR completes; a failed extraction carries the error description as
// its RawText so downstream stages can process it like ordinary content.
type Document struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	RawText     string `json:"raw_text"`
}

// DocumentMarker is the segment delimiter used when documents are combined
// into one corpus. The content budgeter splits on it.
const DocumentMarker = "=== DOCUMENT"

// CombineDocuments renders a document collection as one corpus string, each
// document introduced by a numbered marker header.
func CombineDocuments(docs []Document) string {
	var b strings.Builder
	for i, d := range docs {
		fmt.Fprintf(&b, "\n\n%s %d: %s ===\n\n%s\n\n", DocumentMarker, i+1, d.DisplayName, d.RawText)
	}
	return b.String()
}
