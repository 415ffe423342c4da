package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/bi-tools/campaign-costs/pkg/models/domain"
)

type TableConfig struct {
	TeamWidth   int
	MetricWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		TeamWidth:   10,
		MetricWidth: 16,
	}
}

// Reporter renders a report as a fixed-width console table, used for
// the CLI preview.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.CostReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(team string, metrics ...string) string {
			cells := make([]string, 0, len(metrics)+1)
			cells = append(cells, fmt.Sprintf("| %-*s ", c.config.TeamWidth, team))
			for _, m := range metrics {
				cells = append(cells, fmt.Sprintf("| %*s ", c.config.MetricWidth, m))
			}
			return strings.Join(cells, "") + "|"
		},
		"separator": func() string {
			var b strings.Builder
			b.WriteString("+" + strings.Repeat("-", c.config.TeamWidth+2))
			for i := 0; i < len(domain.ReportColumns)-1; i++ {
				b.WriteString("+" + strings.Repeat("-", c.config.MetricWidth+2))
			}
			b.WriteString("+")
			return b.String()
		},
		"money": Money,
		"itoa": func(v int64) string {
			return fmt.Sprintf("%d", v)
		},
	}

	tmpl := `
Relatório de Custos por Equipe (run {{.RunID}})

{{separator}}
{{formatRow "EQUIPE" "RCS QUANTIDADE" "RCS CUSTO" "SMS QUANTIDADE" "SMS CUSTO" "Quantidade Total" "Custo Total"}}
{{separator}}
{{range .Rows}}{{formatRow .Team.String (itoa .RCSQuantity) (money .RCSCost) (itoa .SMSQuantity) (money .SMSCost) (itoa .TotalQuantity) (money .TotalCost)}}
{{end}}{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
