package api

type ReportRow struct {
	Team          string  `json:"equipe"`
	RCSQuantity   int64   `json:"rcs_quantidade"`
	RCSCost       float64 `json:"rcs_custo"`
	SMSQuantity   int64   `json:"sms_quantidade"`
	SMSCost       float64 `json:"sms_custo"`
	TotalQuantity int64   `json:"quantidade_total"`
	TotalCost     float64 `json:"custo_total"`
}

type CostReport struct {
	RunID   string      `json:"run_id"`
	Columns []string    `json:"columns"`
	Rows    []ReportRow `json:"rows"`
}
