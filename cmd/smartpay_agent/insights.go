package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yuvaraja/smartpay-agent/internal/observability"
	"github.com/yuvaraja/smartpay-agent/internal/types"
)

var (
	insightsConfigPath string
	insightsBackendURL string
	insightsAPIKey     string
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show dataset snapshot and model explainability",
	Long:  `Fetch the live dataset summary and the top feature importances from the backend. The two panels are fetched concurrently and degrade independently when unavailable.`,
	RunE:  runInsights,
}

func init() {
	insightsCmd.Flags().StringVar(&insightsConfigPath, "config", "", "Path to JSON config file")
	insightsCmd.Flags().StringVar(&insightsBackendURL, "backend", "", "Backend base URL (overrides config and SMARTPAY_BACKEND_URL)")
	insightsCmd.Flags().StringVar(&insightsAPIKey, "api-key", "", "API key sent as x-api-key (overrides config and SMARTPAY_API_KEY)")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(insightsConfigPath, insightsBackendURL, insightsAPIKey)
	if err != nil {
		return err
	}

	client, err := newBackendClient(cfg)
	if err != nil {
		return err
	}

	var (
		summary     *types.AnalyticsSummary
		summaryErr  error
		features    []types.FeatureImportance
		featuresErr error
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		summary, summaryErr = client.FetchSummary(ctx)
		return nil
	})
	g.Go(func() error {
		features, featuresErr = client.FetchExplanations(ctx)
		return nil
	})
	_ = g.Wait()

	printer := observability.NewPrinter(os.Stdout)
	if summaryErr != nil {
		printer.PrintUnavailable("LIVE DATASET SNAPSHOT", summaryErr)
	} else {
		printer.PrintSummary(summary)
	}
	if featuresErr != nil {
		printer.PrintUnavailable("MODEL INSIGHTS", featuresErr)
	} else {
		printer.PrintFeatureImportances(features)
	}

	// The panels are best-effort; unavailability is informational, not a
	// command failure.
	return nil
}
