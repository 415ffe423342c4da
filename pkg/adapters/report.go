package adapters

import (
	"slices"

	"github.com/bi-tools/campaign-costs/pkg/models/api"
	"github.com/bi-tools/campaign-costs/pkg/models/domain"
)

func MapCostReportDomainToApi(report *domain.CostReport) api.CostReport {
	apiReport := api.CostReport{
		RunID:   report.RunID,
		Columns: slices.Clone(report.Columns),
		Rows:    make([]api.ReportRow, 0, len(report.Rows)),
	}

	for _, row := range report.Rows {
		apiReport.Rows = append(apiReport.Rows, MapReportRowDomainToApi(row))
	}

	return apiReport
}

func MapReportRowDomainToApi(row domain.ReportRow) api.ReportRow {
	return api.ReportRow{
		Team:          row.Team.String(),
		RCSQuantity:   row.RCSQuantity,
		RCSCost:       row.RCSCost,
		SMSQuantity:   row.SMSQuantity,
		SMSCost:       row.SMSCost,
		TotalQuantity: row.TotalQuantity,
		TotalCost:     row.TotalCost,
	}
}
