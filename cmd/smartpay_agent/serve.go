package main

import (
	"github.com/spf13/cobra"

	"github.com/yuvaraja/smartpay-agent/internal/report"
	"github.com/yuvaraja/smartpay-agent/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveBackendURL string
	serveAPIKey     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the presentation API server",
	Long:  `Start an HTTP server that exposes the prediction, insights, and report-download endpoints for a web front end.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveBackendURL, "backend", "", "Backend base URL (overrides config and SMARTPAY_BACKEND_URL)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "API key sent as x-api-key (overrides config and SMARTPAY_API_KEY)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig(serveConfigPath, serveBackendURL, serveAPIKey)
	if err != nil {
		return err
	}

	client, err := newBackendClient(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:    servePort,
		Backend: client,
		Reports: report.NewGenerator(cfg.ResolvedReportDir()),
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
