package domain

// ReportColumns is the fixed header order of the final report. The
// names are emitted verbatim; downstream consumers re-import the CSV
// into locale-aware spreadsheet tools and key on these exact labels.
var ReportColumns = []string{
	"EQUIPE",
	"RCS QUANTIDADE",
	"RCS CUSTO",
	"SMS QUANTIDADE",
	"SMS CUSTO",
	"Quantidade Total",
	"Custo Total",
}

// ReportRow is one team's aggregated volume and cost. All metric
// fields are always populated; a team with no activity on a channel
// carries zeros, never an absent value.
type ReportRow struct {
	Team          TeamTag
	RCSQuantity   int64
	RCSCost       float64
	SMSQuantity   int64
	SMSCost       float64
	TotalQuantity int64
	TotalCost     float64
}

// CostReport is the final output of one pipeline run. Rows hold one
// entry per team present in the data, sorted by team tag. An empty
// run produces a report with zero rows and the canonical columns.
type CostReport struct {
	RunID   string
	Columns []string
	Rows    []ReportRow
}
