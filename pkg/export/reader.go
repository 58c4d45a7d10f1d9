package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/andydoubleu/cannabis-heterosis/pkg/heterosis"
)

// Summary is what can be recovered from an exported report: the metadata
// block plus counts recomputed from the detail rows
type Summary struct {
	StrainA     string
	StrainB     string
	GeneratedAt time.Time
	Totals      heterosis.Totals
	Counts      heterosis.Counts
	VigorScore  heterosis.VigorScore

	// RowTotals and RowCounts are recounted from the detail table; they must
	// agree with the metadata block for a well-formed report.
	RowTotals heterosis.Totals
	RowCounts heterosis.Counts
}

// Consistent reports whether the recounted detail rows agree with the
// metadata block
func (s *Summary) Consistent() bool {
	return s.Totals == s.RowTotals && s.Counts == s.RowCounts
}

// ReadReport parses an exported report CSV back into its summary
func ReadReport(r io.Reader) (*Summary, error) {
	br := bufio.NewReader(r)
	summary := &Summary{}

	// Metadata block: '#'-prefixed lines before the detail header
	for {
		peek, err := br.Peek(1)
		if err == io.EOF {
			return nil, fmt.Errorf("report has no detail table")
		}
		if err != nil {
			return nil, err
		}
		if peek[0] != '#' {
			break
		}

		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if err := summary.applyMeta(line); err != nil {
			return nil, err
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = len(detailHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read detail header: %w", err)
	}
	statusCol := -1
	for i, name := range header {
		if name == "Status" {
			statusCol = i
		}
	}
	if statusCol < 0 {
		return nil, fmt.Errorf("detail table has no Status column")
	}

	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read detail row: %w", err)
		}

		switch status := fields[statusCol]; status {
		case StatusUnmatchedA:
			summary.RowTotals.UnmatchedA++
		case StatusUnmatchedB:
			summary.RowTotals.UnmatchedB++
		case string(heterosis.HeterozygousPotential):
			summary.RowTotals.Matched++
			summary.RowCounts.Heterozygous++
		case string(heterosis.HomozygousStable):
			summary.RowTotals.Matched++
			summary.RowCounts.Homozygous++
		case string(heterosis.Unresolved):
			summary.RowTotals.Matched++
			summary.RowCounts.Unresolved++
		default:
			return nil, fmt.Errorf("unknown status %q in detail table", status)
		}
	}

	return summary, nil
}

// applyMeta parses one '# key: value' metadata line
func (s *Summary) applyMeta(line string) error {
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#"))
	key, value, found := strings.Cut(line, ":")
	if !found {
		return nil
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	var err error
	switch key {
	case "Strain A":
		s.StrainA = value
	case "Strain B":
		s.StrainB = value
	case "Generated":
		s.GeneratedAt, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return fmt.Errorf("invalid Generated timestamp %q: %w", value, err)
		}
	case "Matched":
		s.Totals.Matched, err = parseCount(key, value)
	case "Unmatched A":
		s.Totals.UnmatchedA, err = parseCount(key, value)
	case "Unmatched B":
		s.Totals.UnmatchedB, err = parseCount(key, value)
	case "Heterozygous Potential":
		s.Counts.Heterozygous, err = parseCount(key, value)
	case "Homozygous Stable":
		s.Counts.Homozygous, err = parseCount(key, value)
	case "Unresolved":
		s.Counts.Unresolved, err = parseCount(key, value)
	case "Hybrid Vigor":
		s.VigorScore = heterosis.VigorScore(value)
	}
	return err
}

func parseCount(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s count %q: %w", key, value, err)
	}
	return n, nil
}
