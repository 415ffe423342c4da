// Package export serializes cost reports for their two consumers: the
// pt-BR CSV download and a console preview.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bi-tools/campaign-costs/pkg/models/domain"
)

// Formatter writes a report as semicolon-separated, comma-decimal CSV,
// the convention pt-BR spreadsheet tools expect on re-import.
type Formatter struct {
	writer io.Writer
}

func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{writer: writer}
}

func (f *Formatter) Write(report *domain.CostReport) error {
	w := csv.NewWriter(f.writer)
	w.Comma = ';'

	if err := w.Write(report.Columns); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.Team.String(),
			strconv.FormatInt(row.RCSQuantity, 10),
			Money(row.RCSCost),
			strconv.FormatInt(row.SMSQuantity, 10),
			Money(row.SMSCost),
			strconv.FormatInt(row.TotalQuantity, 10),
			Money(row.TotalCost),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row for team %s: %w", row.Team, err)
		}
	}

	w.Flush()
	return w.Error()
}

// Money renders a monetary value with two decimals and a comma
// decimal separator.
func Money(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}
