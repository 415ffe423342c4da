package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bi-tools/campaign-costs/pkg/models/domain"
	"github.com/bi-tools/campaign-costs/pkg/services/classify"
	"github.com/bi-tools/campaign-costs/pkg/services/pricing"
)

// Required analytic feed columns. Extra columns are ignored.
const (
	columnStatus   = "STATUS"
	columnChannel  = "CANAL"
	columnCampaign = "NOME CAMPANHA"
)

// Mode selects the eligibility filter applied to analytic rows.
type Mode int

const (
	// ModeSimple keeps delivered/sent/read rows on any channel. This
	// is the single-file workflow.
	ModeSimple Mode = iota
	// ModeMulti applies the channel-dependent status sets of the
	// multi-source workflow. SMS bills undelivered attempts, RCS bills
	// read receipts instead; the two sets must stay separate.
	ModeMulti
)

// ParseMode maps a settings string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "simple":
		return ModeSimple, nil
	case "multi":
		return ModeMulti, nil
	default:
		return ModeSimple, fmt.Errorf("unknown eligibility mode %q", s)
	}
}

var simpleStatuses = statusSet("ENTREGUE", "ENVIADO", "LIDO")

var multiStatuses = map[string]map[string]struct{}{
	domain.ChannelSMS: statusSet("ENTREGUE", "ENVIADO", "NÃO ENTREGUE"),
	domain.ChannelRCS: statusSet("ENTREGUE", "ENVIADO", "LIDO"),
}

func statusSet(statuses ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}

func eligible(mode Mode, channel, status string) bool {
	if mode == ModeSimple {
		_, ok := simpleStatuses[status]
		return ok
	}
	set, ok := multiStatuses[channel]
	if !ok {
		return false
	}
	_, ok = set[status]
	return ok
}

// Enrich filters an analytic table down to billable rows and attaches
// team and unit cost to each survivor. A table with zero eligible rows
// contributes an empty slice, not an error.
func Enrich(ctx context.Context, t *Table, mode Mode, prices pricing.Store) ([]domain.EnrichedRecord, error) {
	logger := zerolog.Ctx(ctx)

	statusIdx, err := t.RequireColumn(columnStatus)
	if err != nil {
		return nil, err
	}
	channelIdx, err := t.RequireColumn(columnChannel)
	if err != nil {
		return nil, err
	}
	campaignIdx, err := t.RequireColumn(columnCampaign)
	if err != nil {
		return nil, err
	}

	records := make([]domain.EnrichedRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		status := strings.ToUpper(strings.TrimSpace(t.Value(row, statusIdx)))
		channel := strings.ToLower(strings.TrimSpace(t.Value(row, channelIdx)))
		if !eligible(mode, channel, status) {
			continue
		}

		campaign := t.Value(row, campaignIdx)
		records = append(records, domain.EnrichedRecord{
			DeliveryRecord: domain.DeliveryRecord{
				Status:   status,
				Channel:  channel,
				Campaign: campaign,
			},
			Team:     classify.Team(campaign),
			UnitCost: prices.ChannelPrice(channel).PerMessage,
		})
	}

	if len(records) == 0 {
		logger.Warn().
			Str("source", t.Source).
			Msg("no eligible rows after status filter")
	}

	return records, nil
}
