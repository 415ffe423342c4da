package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bi-tools/campaign-costs/pkg/export"
	"github.com/bi-tools/campaign-costs/pkg/services/ingest"
	"github.com/bi-tools/campaign-costs/pkg/services/pricing"
	"github.com/bi-tools/campaign-costs/pkg/services/report"
)

type ReportCmd struct {
	outPath     string
	mode        string
	profilePath string
	profile     string
	preview     bool
	output      io.Writer
}

func NewReportCmd(output io.Writer) *cobra.Command {
	rc := &ReportCmd{output: output}
	cmd := &cobra.Command{
		Use:   "report [files...]",
		Short: "Build the per-team cost report from delivery feeds",
		Args:  cobra.MinimumNArgs(1),
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.outPath, "out", "", "Write the pt-BR CSV report to this path (default stdout)")
	cmd.Flags().StringVar(&rc.mode, "mode", "multi", "Eligibility mode: simple or multi")
	cmd.Flags().StringVar(&rc.profilePath, "pricing-file", "", "Path to a pricing-profile ini file")
	cmd.Flags().StringVar(&rc.profile, "pricing-profile", "default", "Profile name inside --pricing-file")
	cmd.Flags().BoolVar(&rc.preview, "preview", false, "Render the report as a console table as well")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	ctx := logger.WithContext(cmd.Context())

	mode, err := ingest.ParseMode(rc.mode)
	if err != nil {
		return err
	}

	prices := pricing.NewStore()
	if rc.profilePath != "" {
		prices, err = pricing.LoadProfile(rc.profilePath, rc.profile)
		if err != nil {
			return err
		}
	}

	var sources []ingest.Source
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		closers = append(closers, f)
		sources = append(sources, ingest.Source{Name: f.Name(), Reader: f})
	}

	result, err := report.NewController(mode, prices).Run(ctx, sources)
	if err != nil {
		return err
	}

	out := rc.output
	if rc.outPath != "" {
		f, err := os.Create(rc.outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", rc.outPath, err)
		}
		defer f.Close()
		out = f
	}

	if err := export.NewFormatter(out).Write(result); err != nil {
		return err
	}

	if rc.preview {
		if err := export.NewReporter(rc.output).Handle(result); err != nil {
			return err
		}
	}

	return nil
}
