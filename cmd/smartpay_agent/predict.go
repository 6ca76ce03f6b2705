package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuvaraja/smartpay-agent/internal/observability"
	"github.com/yuvaraja/smartpay-agent/internal/report"
	"github.com/yuvaraja/smartpay-agent/internal/types"
)

var (
	predictConfigPath string
	predictBackendURL string
	predictAPIKey     string
	predictReportFlag bool
	predictVerbose    bool

	predictAge       int
	predictEducation string
	predictJobTitle  string
	predictHours     int
	predictGender    string
	predictMarital   string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict a candidate's salary",
	Long:  `Send candidate details to the prediction backend and print the predicted salary. Use --report to also write a PDF report.`,
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().StringVar(&predictConfigPath, "config", "", "Path to JSON config file")
	predictCmd.Flags().StringVar(&predictBackendURL, "backend", "", "Backend base URL (overrides config and SMARTPAY_BACKEND_URL)")
	predictCmd.Flags().StringVar(&predictAPIKey, "api-key", "", "API key sent as x-api-key (overrides config and SMARTPAY_API_KEY)")
	predictCmd.Flags().BoolVar(&predictReportFlag, "report", false, "Write a PDF report for a successful prediction")
	predictCmd.Flags().BoolVar(&predictVerbose, "verbose", false, "Print the submitted candidate details")

	predictCmd.Flags().IntVar(&predictAge, "age", 28, "Candidate age (17-80)")
	predictCmd.Flags().StringVar(&predictEducation, "education", types.EducationBachelors, "Education level")
	predictCmd.Flags().StringVar(&predictJobTitle, "job-title", "Software Engineer", "Job title")
	predictCmd.Flags().IntVar(&predictHours, "hours-per-week", 40, "Hours per week (10-100)")
	predictCmd.Flags().StringVar(&predictGender, "gender", "Male", "Gender")
	predictCmd.Flags().StringVar(&predictMarital, "marital-status", "Single", "Marital status")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(predictConfigPath, predictBackendURL, predictAPIKey)
	if err != nil {
		return err
	}

	input := types.CandidateInput{
		Age:           predictAge,
		Education:     predictEducation,
		JobTitle:      predictJobTitle,
		HoursPerWeek:  predictHours,
		Gender:        predictGender,
		MaritalStatus: predictMarital,
	}
	if err := input.Validate(); err != nil {
		return fmt.Errorf("invalid candidate input: %w", err)
	}

	client, err := newBackendClient(cfg)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if predictVerbose || cfg.Verbose {
		printer.PrintCandidate(&input)
	}

	result, err := client.Predict(cmd.Context(), input)
	if err != nil {
		// The outcome box is the user-facing explanation; keep the
		// top-level handler from repeating it.
		printer.PrintOutcome(err)
		return errSilent
	}

	printer.PrintPrediction(result)

	if predictReportFlag {
		gen := report.NewGenerator(cfg.ResolvedReportDir())
		rep, err := gen.Generate(cmd.Context(), input, *result)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", rep.Path)
	}

	return nil
}
