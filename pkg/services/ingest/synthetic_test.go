package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bi-tools/campaign-costs/pkg/services/pricing"
)

func parseSynthetic(t *testing.T, content string) *Table {
	t.Helper()
	table, err := ParseDelimited(strings.NewReader(content), "relatorio_sintetico.tsv", '\t')
	require.NoError(t, err)
	return table
}

func TestAccumulator_Add(t *testing.T) {
	table := parseSynthetic(t, strings.Join([]string{
		"Conta\tTotal De Msg Tarifadas",
		"\t100",
		"12345\t999", // assigned account, excluded
		"\t1.500",
		"\t50",
	}, "\n"))

	acc := NewAccumulator(pricing.NewStore())
	require.NoError(t, acc.Add(context.Background(), table))

	delta := acc.Delta()
	assert.Equal(t, int64(1650), delta.Quantity)
	assert.InDelta(t, 77.55, delta.Cost, 1e-9)
}

func TestAccumulator_AccumulatesAcrossSources(t *testing.T) {
	acc := NewAccumulator(pricing.NewStore())

	first := parseSynthetic(t, "Conta\tTotal De Msg Tarifadas\n\t100\n")
	second := parseSynthetic(t, "Conta\tTotal De Msg Tarifadas\n\t200\n")

	require.NoError(t, acc.Add(context.Background(), first))
	require.NoError(t, acc.Add(context.Background(), second))

	delta := acc.Delta()
	assert.Equal(t, int64(300), delta.Quantity)
	// Cost is linear in quantity: 300 * 0.047, not a cumulative
	// re-multiplication per file.
	assert.InDelta(t, 14.1, delta.Cost, 1e-9)
}

func TestAccumulator_SkipsUnparseableRows(t *testing.T) {
	table := parseSynthetic(t, strings.Join([]string{
		"Conta\tTotal De Msg Tarifadas",
		"\t100",
		"\tabc",
		"\t",
		"\t50",
	}, "\n"))

	acc := NewAccumulator(pricing.NewStore())
	require.NoError(t, acc.Add(context.Background(), table))

	assert.Equal(t, int64(150), acc.Delta().Quantity)
}

func TestAccumulator_MissingColumn(t *testing.T) {
	table := parseSynthetic(t, "Conta\tOutra Coluna\n\t100\n")

	acc := NewAccumulator(pricing.NewStore())
	err := acc.Add(context.Background(), table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Total De Msg Tarifadas")
}

func TestAccumulator_Empty(t *testing.T) {
	acc := NewAccumulator(pricing.NewStore())
	delta := acc.Delta()
	assert.Zero(t, delta.Quantity)
	assert.Zero(t, delta.Cost)
}

func TestParseLocaleNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		fails    bool
	}{
		{name: "plain", input: "100", expected: 100},
		{name: "thousands", input: "1.500", expected: 1500},
		{name: "millions", input: "2.345.678", expected: 2345678},
		{name: "decimal comma", input: "12,5", expected: 12.5},
		{name: "thousands and decimal", input: "1.234,56", expected: 1234.56},
		{name: "padded", input: " 42 ", expected: 42},
		{name: "empty", input: "", fails: true},
		{name: "garbage", input: "abc", fails: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ParseLocaleNumber(tc.input)
			if tc.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}
