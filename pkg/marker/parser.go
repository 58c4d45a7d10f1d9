package marker

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Required column names, exactly as they must appear in the header row.
const (
	ColMarkerID        = "Marker ID"
	ColChromosome      = "Chromosome"
	ColPosition        = "Position"
	ColReferenceAllele = "Reference Allele"
	ColAlternateAllele = "Alternate Allele"
	ColGenotype        = "Genotype"
)

var requiredColumns = []string{
	ColMarkerID,
	ColChromosome,
	ColPosition,
	ColReferenceAllele,
	ColAlternateAllele,
	ColGenotype,
}

// Parse reads one parent strain's marker table from r.
//
// The header must contain every required column (extra columns are ignored).
// A missing column returns a *SchemaError and no records. Malformed data rows
// are skipped individually and reported as diagnostics; parsing continues.
// Record order matches input row order.
func Parse(r io.Reader) (*ParseResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: requiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, missing := indexColumns(header)
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	result := &ParseResult{}
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Kind:   RowSkipped,
				Row:    row,
				Detail: err.Error(),
			})
			continue
		}

		rec, reason := buildRecord(fields, cols)
		if reason != "" {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Kind:     RowSkipped,
				Row:      row,
				MarkerID: fieldAt(fields, cols[ColMarkerID]),
				Detail:   reason,
			})
			continue
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

// indexColumns maps required column names to their header positions.
// Header cells are compared after trimming surrounding whitespace.
func indexColumns(header []string) (map[string]int, []string) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := pos[name]; !seen {
			pos[name] = i
		}
	}

	cols := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, name := range requiredColumns {
		i, ok := pos[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols[name] = i
	}
	return cols, missing
}

// buildRecord validates one data row. A non-empty reason means the row is
// skipped.
func buildRecord(fields []string, cols map[string]int) (Record, string) {
	get := func(col string) string {
		return strings.TrimSpace(fieldAt(fields, cols[col]))
	}

	for _, col := range requiredColumns {
		if cols[col] >= len(fields) {
			return Record{}, fmt.Sprintf("field %q missing", col)
		}
		if get(col) == "" {
			return Record{}, fmt.Sprintf("field %q is empty", col)
		}
	}

	position, err := strconv.Atoi(get(ColPosition))
	if err != nil {
		return Record{}, fmt.Sprintf("position %q is not an integer", get(ColPosition))
	}

	return Record{
		MarkerID:        get(ColMarkerID),
		Chromosome:      get(ColChromosome),
		Position:        position,
		ReferenceAllele: get(ColReferenceAllele),
		AlternateAllele: get(ColAlternateAllele),
		Genotype:        get(ColGenotype),
	}, ""
}

func fieldAt(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}
