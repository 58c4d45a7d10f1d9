package marker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validHeader = "Marker ID,Chromosome,Position,Reference Allele,Alternate Allele,Genotype"

func TestParse_ValidFile(t *testing.T) {
	input := validHeader + "\n" +
		"M1,chr1,100,A,T,AA\n" +
		"M2,chr2,200,C,G,CG\n"

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Empty(t, result.Diagnostics)

	assert.Equal(t, Record{
		MarkerID:        "M1",
		Chromosome:      "chr1",
		Position:        100,
		ReferenceAllele: "A",
		AlternateAllele: "T",
		Genotype:        "AA",
	}, result.Records[0])
	assert.Equal(t, "M2", result.Records[1].MarkerID)
}

func TestParse_MissingColumn(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		missing []string
	}{
		{
			name:    "no genotype column",
			header:  "Marker ID,Chromosome,Position,Reference Allele,Alternate Allele",
			missing: []string{"Genotype"},
		},
		{
			name:    "no marker id column",
			header:  "Chromosome,Position,Reference Allele,Alternate Allele,Genotype",
			missing: []string{"Marker ID"},
		},
		{
			name:    "empty file",
			header:  "",
			missing: requiredColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(strings.NewReader(tt.header))
			assert.Nil(t, result)

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.missing, schemaErr.Missing)
		})
	}
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	input := validHeader + "\n" +
		"M1,chr1,100,A,T,AA\n" +
		"M2,chr1,200,A,T,\n" + // empty genotype
		"M3,chr1,abc,A,T,AT\n" + // non-integer position
		"M4,chr1,300\n" + // short row
		"M5,chr2,400,C,G,CC\n"

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "M1", result.Records[0].MarkerID)
	assert.Equal(t, "M5", result.Records[1].MarkerID)

	require.Len(t, result.Diagnostics, 3)
	for _, d := range result.Diagnostics {
		assert.Equal(t, RowSkipped, d.Kind)
	}
	assert.Equal(t, 2, result.Diagnostics[0].Row)
	assert.Equal(t, "M2", result.Diagnostics[0].MarkerID)
	assert.Equal(t, 3, result.Diagnostics[1].Row)
	assert.Equal(t, 4, result.Diagnostics[2].Row)
}

func TestParse_ColumnOrderAndExtras(t *testing.T) {
	// Columns rearranged, with an extra column that must be ignored
	input := "Genotype,Marker ID,Notes,Position,Chromosome,Alternate Allele,Reference Allele\n" +
		"TT,M9,whatever,900,chr3,T,A\n"

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.Equal(t, "M9", rec.MarkerID)
	assert.Equal(t, "chr3", rec.Chromosome)
	assert.Equal(t, 900, rec.Position)
	assert.Equal(t, "A", rec.ReferenceAllele)
	assert.Equal(t, "T", rec.AlternateAllele)
	assert.Equal(t, "TT", rec.Genotype)
}

func TestParse_PreservesRowOrder(t *testing.T) {
	input := validHeader + "\n" +
		"M3,chr1,300,A,T,AT\n" +
		"M1,chr1,100,A,T,AA\n" +
		"M2,chr1,200,A,T,TT\n"

	result, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	var ids []string
	for _, rec := range result.Records {
		ids = append(ids, rec.MarkerID)
	}
	assert.Equal(t, []string{"M3", "M1", "M2"}, ids)
}

func TestSchemaError_Message(t *testing.T) {
	err := &SchemaError{Missing: []string{"Genotype"}}
	assert.Equal(t, `missing required column "Genotype"`, err.Error())

	err = &SchemaError{Missing: []string{"Genotype", "Position"}}
	assert.Contains(t, err.Error(), "missing required columns")
}
