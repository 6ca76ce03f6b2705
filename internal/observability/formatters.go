// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yuvaraja/smartpay-agent/internal/backend"
	"github.com/yuvaraja/smartpay-agent/internal/report"
	"github.com/yuvaraja/smartpay-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxFeaturesToShow is the default number of features to display
	maxFeaturesToShow = 10
)

// Printer handles formatted CLI output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidate echoes the candidate details being submitted.
func (p *Printer) PrintCandidate(input *types.CandidateInput) {
	if input == nil {
		return
	}

	var sb strings.Builder
	for _, f := range input.Fields() {
		sb.WriteString(fmt.Sprintf("%-16s %s\n", f.Key+":", f.Value))
	}

	p.printBox("CANDIDATE DETAILS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPrediction outputs a successful prediction.
func (p *Printer) PrintPrediction(result *types.PredictionResult) {
	if result == nil {
		return
	}

	content := fmt.Sprintf("Predicted annual salary (USD): %s", report.FormatUSD(result.PredictedSalaryUSD))
	p.printBox("PREDICTION RESULT", content)
}

// PrintSummary outputs the dataset snapshot panel.
func (p *Printer) PrintSummary(summary *types.AnalyticsSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records:     %d\n", summary.RecordCount))
	sb.WriteString(fmt.Sprintf("Avg Salary:  %s\n", report.FormatUSD(summary.AverageSalary)))
	sb.WriteString(fmt.Sprintf("Max Salary:  %s\n", report.FormatUSD(summary.MaxSalary)))
	sb.WriteString(fmt.Sprintf("Min Salary:  %s", report.FormatUSD(summary.MinSalary)))

	p.printBox("LIVE DATASET SNAPSHOT", sb.String())
}

// PrintFeatureImportances outputs the explainability panel in backend order.
func (p *Printer) PrintFeatureImportances(features []types.FeatureImportance) {
	if len(features) == 0 {
		p.printBox("MODEL INSIGHTS", "No feature info returned.")
		return
	}

	var sb strings.Builder
	count := min(len(features), maxFeaturesToShow)
	for i := 0; i < count; i++ {
		f := features[i]
		sb.WriteString(fmt.Sprintf("%-24s %.4f", f.Feature, f.Importance))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(features) > maxFeaturesToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more features", len(features)-maxFeaturesToShow))
	}

	p.printBox("MODEL INSIGHTS", sb.String())
}

// PrintUnavailable outputs the degraded state of a non-critical panel.
func (p *Printer) PrintUnavailable(title string, err error) {
	reason := "unavailable"
	var unavailable *backend.Unavailable
	if errors.As(err, &unavailable) {
		reason = unavailable.Reason
	} else if err != nil {
		reason = err.Error()
	}
	p.printBox(title, "Unavailable: "+reason)
}

// PrintOutcome outputs a human-readable explanation of a prediction failure.
func (p *Printer) PrintOutcome(err error) {
	if err == nil {
		return
	}

	var connErr *backend.ConnectionError
	var authErr *backend.AuthError
	var srvErr *backend.ServerError
	var apiErr *backend.APIError

	switch {
	case errors.As(err, &connErr):
		p.printBox("CONNECTION ERROR", "Could not reach backend.\nCheck backend URL and network.")
	case errors.As(err, &authErr):
		p.printBox("AUTHENTICATION ERROR", fmt.Sprintf("HTTP %d.\nCheck API key and backend settings.", authErr.StatusCode))
	case errors.As(err, &srvErr):
		p.printBox("SERVER ERROR", fmt.Sprintf("Backend returned HTTP %d.\nCheck backend logs.", srvErr.StatusCode))
	case errors.As(err, &apiErr):
		p.printBox("API ERROR", fmt.Sprintf("HTTP %d\n%s", apiErr.StatusCode, apiErr.Raw))
	default:
		p.printBox("ERROR", err.Error())
	}
}
