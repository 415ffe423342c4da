package ingest

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bi-tools/campaign-costs/pkg/models/domain"
	"github.com/bi-tools/campaign-costs/pkg/services/pricing"
)

// Required synthetic feed columns.
const (
	columnAccount      = "Conta"
	columnBilledTotals = "Total De Msg Tarifadas"
)

// Accumulator folds synthetic sources into a single outbound SMS
// delta. One accumulator lives for exactly one pipeline run; it is
// never shared across runs.
type Accumulator struct {
	quantity int64
	cost     float64
	smsRate  float64
}

// NewAccumulator creates an empty accumulator billing at the store's
// SMS rate. Synthetic feeds are SMS-exclusive by construction.
func NewAccumulator(prices pricing.Store) *Accumulator {
	return &Accumulator{smsRate: prices.ChannelPrice(domain.ChannelSMS).PerMessage}
}

// Add folds one tab-delimited synthetic table into the accumulator.
// Only rows with an empty account column count; those are the bulk
// sends not attributable to an individual account. Rows whose count
// fails locale-numeric parsing are skipped with a warning rather than
// failing the source.
func (a *Accumulator) Add(ctx context.Context, t *Table) error {
	logger := zerolog.Ctx(ctx)

	accountIdx, err := t.RequireColumn(columnAccount)
	if err != nil {
		return err
	}
	totalIdx, err := t.RequireColumn(columnBilledTotals)
	if err != nil {
		return err
	}

	var quantity int64
	for _, row := range t.Rows {
		if strings.TrimSpace(t.Value(row, accountIdx)) != "" {
			continue
		}

		raw := t.Value(row, totalIdx)
		count, err := ParseLocaleNumber(raw)
		if err != nil {
			logger.Warn().
				Str("source", t.Source).
				Str("column", columnBilledTotals).
				Str("value", raw).
				Msg("skipping row with unparseable message count")
			continue
		}
		quantity += int64(count)
	}

	a.quantity += quantity
	a.cost += float64(quantity) * a.smsRate
	return nil
}

// Delta returns the accumulated outbound contribution.
func (a *Accumulator) Delta() domain.SyntheticDelta {
	return domain.SyntheticDelta{Quantity: a.quantity, Cost: a.cost}
}

// ParseLocaleNumber parses a pt-BR formatted number: "." as thousands
// separator, "," as decimal separator.
func ParseLocaleNumber(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	cleaned := strings.ReplaceAll(trimmed, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid locale number %q: %w", s, err)
	}
	return v, nil
}
