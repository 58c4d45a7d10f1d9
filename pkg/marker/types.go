package marker

import "fmt"

// Record represents one genotyped marker row from a parent strain file
type Record struct {
	MarkerID        string `json:"marker_id"`
	Chromosome      string `json:"chromosome"`
	Position        int    `json:"position"`
	ReferenceAllele string `json:"reference_allele"`
	AlternateAllele string `json:"alternate_allele"`
	Genotype        string `json:"genotype"`
}

// DiagnosticKind identifies a non-fatal data-quality condition
type DiagnosticKind string

const (
	// RowSkipped means a malformed row was dropped during parsing
	RowSkipped DiagnosticKind = "row_skipped"
	// DuplicateMarkerID means a marker id repeated within one file
	DuplicateMarkerID DiagnosticKind = "duplicate_marker_id"
	// ChromosomeMismatch means the two parents disagree on a matched marker's chromosome
	ChromosomeMismatch DiagnosticKind = "chromosome_mismatch"
)

// Diagnostic records a non-fatal condition encountered while processing
type Diagnostic struct {
	Kind     DiagnosticKind `json:"kind"`
	Row      int            `json:"row,omitempty"` // 1-based data row index, 0 if not row-scoped
	MarkerID string         `json:"marker_id,omitempty"`
	Detail   string         `json:"detail"`
}

func (d Diagnostic) String() string {
	switch {
	case d.Row > 0 && d.MarkerID != "":
		return fmt.Sprintf("[%s] row %d (%s): %s", d.Kind, d.Row, d.MarkerID, d.Detail)
	case d.Row > 0:
		return fmt.Sprintf("[%s] row %d: %s", d.Kind, d.Row, d.Detail)
	case d.MarkerID != "":
		return fmt.Sprintf("[%s] %s: %s", d.Kind, d.MarkerID, d.Detail)
	default:
		return fmt.Sprintf("[%s] %s", d.Kind, d.Detail)
	}
}

// ParseResult holds the valid records and row diagnostics for one parent file
type ParseResult struct {
	Records     []Record     `json:"records"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// SchemaError indicates a required column is missing from a file header.
// It is fatal for that file; no rows are parsed.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	if len(e.Missing) == 1 {
		return fmt.Sprintf("missing required column %q", e.Missing[0])
	}
	return fmt.Sprintf("missing required columns: %v", e.Missing)
}
