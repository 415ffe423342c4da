// Package report aggregates enriched delivery records into the final
// per-team cost report.
package report

import (
	"math"
	"sort"

	"github.com/bi-tools/campaign-costs/pkg/models/domain"
)

type metrics struct {
	quantity int64
	cost     float64
}

// Aggregate groups records by (team, channel), merges the synthetic
// delta into OUTBOUND's SMS metrics, and projects each team onto the
// canonical report columns. Channels other than SMS and RCS are
// grouped (so their teams still get a row) but carry no column of
// their own and do not enter the totals.
//
// Monetary columns round half-away-from-zero to two decimals; totals
// are computed from the rounded channel costs so the printed columns
// always add up.
func Aggregate(records []domain.EnrichedRecord, delta domain.SyntheticDelta) []domain.ReportRow {
	byTeam := make(map[domain.TeamTag]map[string]*metrics)

	add := func(team domain.TeamTag, channel string, quantity int64, cost float64) {
		channels, ok := byTeam[team]
		if !ok {
			channels = make(map[string]*metrics)
			byTeam[team] = channels
		}
		m, ok := channels[channel]
		if !ok {
			m = &metrics{}
			channels[channel] = m
		}
		m.quantity += quantity
		m.cost += cost
	}

	for _, r := range records {
		add(r.Team, r.Channel, 1, r.UnitCost)
	}

	if delta.Quantity > 0 {
		add(domain.TeamOutbound, domain.ChannelSMS, delta.Quantity, delta.Cost)
	}

	rows := make([]domain.ReportRow, 0, len(byTeam))
	for team, channels := range byTeam {
		rcs := channelMetrics(channels, domain.ChannelRCS)
		sms := channelMetrics(channels, domain.ChannelSMS)

		row := domain.ReportRow{
			Team:        team,
			RCSQuantity: rcs.quantity,
			RCSCost:     round2(rcs.cost),
			SMSQuantity: sms.quantity,
			SMSCost:     round2(sms.cost),
		}
		row.TotalQuantity = row.RCSQuantity + row.SMSQuantity
		row.TotalCost = round2(row.RCSCost + row.SMSCost)
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })
	return rows
}

func channelMetrics(channels map[string]*metrics, channel string) metrics {
	if m, ok := channels[channel]; ok {
		return *m
	}
	return metrics{}
}

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
