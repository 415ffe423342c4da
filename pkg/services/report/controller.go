package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bi-tools/campaign-costs/pkg/models/domain"
	"github.com/bi-tools/campaign-costs/pkg/services/ingest"
	"github.com/bi-tools/campaign-costs/pkg/services/pricing"
)

// Controller runs the full pipeline for one batch of uploaded sources.
type Controller interface {
	Run(ctx context.Context, sources []ingest.Source) (*domain.CostReport, error)
}

type controller struct {
	mode   ingest.Mode
	prices pricing.Store
}

// NewController wires a pipeline controller. Every Run owns its own
// accumulator and record set; nothing is shared between runs.
func NewController(mode ingest.Mode, prices pricing.Store) Controller {
	return &controller{mode: mode, prices: prices}
}

func (c *controller) Run(ctx context.Context, sources []ingest.Source) (*domain.CostReport, error) {
	runID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	var records []domain.EnrichedRecord
	acc := ingest.NewAccumulator(c.prices)

	for _, src := range sources {
		kind := ingest.DetectKind(src.Name)
		switch kind {
		case ingest.KindAnalytic:
			table, err := c.parseAnalytic(src)
			if err != nil {
				return nil, err
			}
			enriched, err := ingest.Enrich(ctx, table, c.mode, c.prices)
			if err != nil {
				return nil, err
			}
			logger.Info().
				Str("source", src.Name).
				Int("rows", len(table.Rows)).
				Int("eligible", len(enriched)).
				Msg("analytic source ingested")
			records = append(records, enriched...)

		case ingest.KindSynthetic:
			table, err := c.parseSynthetic(src)
			if err != nil {
				return nil, err
			}
			if err := acc.Add(ctx, table); err != nil {
				return nil, err
			}
			logger.Info().
				Str("source", src.Name).
				Int("rows", len(table.Rows)).
				Msg("synthetic source ingested")

		default:
			logger.Warn().
				Str("source", src.Name).
				Msg("source matches no known feed, ignoring")
		}
	}

	delta := acc.Delta()
	rows := Aggregate(records, delta)

	logger.Info().
		Int("teams", len(rows)).
		Int64("synthetic_quantity", delta.Quantity).
		Msg("report aggregated")

	return &domain.CostReport{
		RunID:   runID,
		Columns: domain.ReportColumns,
		Rows:    rows,
	}, nil
}

func (c *controller) parseAnalytic(src ingest.Source) (*ingest.Table, error) {
	if ingest.IsXLSX(src.Name) {
		return ingest.ParseXLSX(src.Reader, src.Name)
	}
	return ingest.ParseCSV(src.Reader, src.Name)
}

func (c *controller) parseSynthetic(src ingest.Source) (*ingest.Table, error) {
	if ingest.IsXLSX(src.Name) {
		return ingest.ParseXLSX(src.Reader, src.Name)
	}
	table, err := ingest.ParseDelimited(src.Reader, src.Name, '\t')
	if err != nil {
		return nil, fmt.Errorf("synthetic feed must be tab-delimited: %w", err)
	}
	return table, nil
}
