package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bi-tools/campaign-costs/pkg/models/domain"
)

func sampleReport() *domain.CostReport {
	return &domain.CostReport{
		RunID:   "test-run",
		Columns: domain.ReportColumns,
		Rows: []domain.ReportRow{
			{
				Team:          domain.TeamCLT,
				RCSQuantity:   1,
				RCSCost:       0.11,
				SMSQuantity:   1,
				SMSCost:       0.05,
				TotalQuantity: 2,
				TotalCost:     0.16,
			},
			{
				Team:          domain.TeamOutbound,
				RCSQuantity:   0,
				RCSCost:       0,
				SMSQuantity:   1650,
				SMSCost:       77.55,
				TotalQuantity: 1650,
				TotalCost:     77.55,
			},
		},
	}
}

func TestFormatter_Write(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).Write(sampleReport()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "EQUIPE;RCS QUANTIDADE;RCS CUSTO;SMS QUANTIDADE;SMS CUSTO;Quantidade Total;Custo Total", lines[0])
	assert.Equal(t, "CLT;1;0,11;1;0,05;2;0,16", lines[1])
	assert.Equal(t, "OUTBOUND;0;0,00;1650;77,55;1650;77,55", lines[2])
}

func TestFormatter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.CostReport{Columns: domain.ReportColumns}

	require.NoError(t, NewFormatter(&buf).Write(report))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Join(domain.ReportColumns, ";"), lines[0])
}

// The stated delimiter and decimal convention must survive a
// round-trip: re-parsing the stream reproduces the numeric values.
func TestFormatter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	report := sampleReport()
	require.NoError(t, NewFormatter(&buf).Write(report))

	r := csv.NewReader(&buf)
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(report.Rows)+1)

	for i, row := range report.Rows {
		record := records[i+1]
		assert.Equal(t, row.Team.String(), record[0])

		costBack, err := strconv.ParseFloat(strings.Replace(record[6], ",", ".", 1), 64)
		require.NoError(t, err)
		assert.InDelta(t, row.TotalCost, costBack, 0.01)

		qtyBack, err := strconv.ParseInt(record[5], 10, 64)
		require.NoError(t, err)
		assert.Equal(t, row.TotalQuantity, qtyBack)
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "0,05", Money(0.05))
	assert.Equal(t, "77,55", Money(77.55))
	assert.Equal(t, "0,00", Money(0))
	assert.Equal(t, "1234,50", Money(1234.5))
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "test-run")
	assert.Contains(t, out, "CLT")
	assert.Contains(t, out, "77,55")
	assert.Contains(t, out, "EQUIPE")
}
