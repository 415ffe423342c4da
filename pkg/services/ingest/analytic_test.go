package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bi-tools/campaign-costs/pkg/models/domain"
	"github.com/bi-tools/campaign-costs/pkg/services/pricing"
)

func parseAnalytic(t *testing.T, content string) *Table {
	t.Helper()
	table, err := ParseCSV(strings.NewReader(content), "analytic.csv")
	require.NoError(t, err)
	return table
}

func TestEnrich_SimpleMode(t *testing.T) {
	table := parseAnalytic(t, strings.Join([]string{
		"STATUS;CANAL;NOME CAMPANHA",
		"ENTREGUE;sms;Outbound Q1",
		"entregue;SMS;Outbound Q1", // canonicalized before filtering
		"LIDO;rcs;Campanha CLT",
		"ENVIADO;whatsapp;App push", // unknown channel kept, priced at zero
		"NÃO ENTREGUE;sms;Outbound Q1",
		"BLOQUEADO;rcs;Outbound Q1",
	}, "\n"))

	records, err := Enrich(context.Background(), table, ModeSimple, pricing.NewStore())
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "ENTREGUE", records[0].Status)
	assert.Equal(t, "sms", records[0].Channel)
	assert.Equal(t, domain.TeamOutbound, records[0].Team)
	assert.Equal(t, 0.047, records[0].UnitCost)

	assert.Equal(t, domain.TeamCLT, records[2].Team)
	assert.Equal(t, 0.105, records[2].UnitCost)

	assert.Equal(t, "whatsapp", records[3].Channel)
	assert.Equal(t, domain.TeamCSApp, records[3].Team)
	assert.Equal(t, 0.0, records[3].UnitCost)
}

func TestEnrich_MultiMode(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		channel  string
		eligible bool
	}{
		{name: "sms delivered", status: "ENTREGUE", channel: "sms", eligible: true},
		{name: "sms sent", status: "ENVIADO", channel: "sms", eligible: true},
		{name: "sms undelivered billed", status: "NÃO ENTREGUE", channel: "sms", eligible: true},
		{name: "sms read not billed", status: "LIDO", channel: "sms", eligible: false},
		{name: "rcs delivered", status: "ENTREGUE", channel: "rcs", eligible: true},
		{name: "rcs read billed", status: "LIDO", channel: "rcs", eligible: true},
		{name: "rcs undelivered not billed", status: "NÃO ENTREGUE", channel: "rcs", eligible: false},
		{name: "unknown channel excluded", status: "ENTREGUE", channel: "whatsapp", eligible: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := parseAnalytic(t, "STATUS;CANAL;NOME CAMPANHA\n"+tc.status+";"+tc.channel+";Outbound Q1\n")

			records, err := Enrich(context.Background(), table, ModeMulti, pricing.NewStore())
			require.NoError(t, err)

			if tc.eligible {
				assert.Len(t, records, 1)
			} else {
				assert.Empty(t, records)
			}
		})
	}
}

func TestEnrich_MissingColumn(t *testing.T) {
	table := parseAnalytic(t, "STATUS;CANAL\nENTREGUE;sms\n")

	_, err := Enrich(context.Background(), table, ModeSimple, pricing.NewStore())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOME CAMPANHA")
	assert.Contains(t, err.Error(), "analytic.csv")
}

func TestEnrich_NoEligibleRows(t *testing.T) {
	table := parseAnalytic(t, "STATUS;CANAL;NOME CAMPANHA\nBLOQUEADO;sms;Outbound Q1\n")

	records, err := Enrich(context.Background(), table, ModeSimple, pricing.NewStore())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("simple")
	require.NoError(t, err)
	assert.Equal(t, ModeSimple, mode)

	mode, err = ParseMode("multi")
	require.NoError(t, err)
	assert.Equal(t, ModeMulti, mode)

	_, err = ParseMode("strict")
	require.Error(t, err)
}
