package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bi-tools/campaign-costs/pkg/server"
	"github.com/bi-tools/campaign-costs/pkg/services/config"
	"github.com/bi-tools/campaign-costs/pkg/services/ingest"
	"github.com/bi-tools/campaign-costs/pkg/services/pricing"
	"github.com/bi-tools/campaign-costs/pkg/services/report"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the campaign cost report server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the settings file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	mode, err := ingest.ParseMode(settings.Mode)
	if err != nil {
		return err
	}

	prices := pricing.NewStore()
	if settings.Pricing.ProfilePath != "" {
		prices, err = pricing.LoadProfile(settings.Pricing.ProfilePath, settings.Pricing.Profile)
		if err != nil {
			return fmt.Errorf("failed to load pricing profile: %w", err)
		}
		logger.Info().
			Str("path", settings.Pricing.ProfilePath).
			Str("profile", settings.Pricing.Profile).
			Msg("pricing profile loaded")
	}

	addr := net.JoinHostPort(settings.Server.Host, settings.Server.Port)
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Report: report.NewController(mode, prices),
		},
	})

	logger.Info().Str("addr", addr).Str("mode", settings.Mode).Msg("configuration loaded")
	return api.Start()
}
