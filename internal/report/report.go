package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yuvaraja/smartpay-agent/internal/types"
)

// Title is the report heading.
const Title = "SmartPay — Salary Prediction Report"

// TimestampFormat is the wall-clock format stamped on every report.
const TimestampFormat = "2006-01-02 15:04:05"

//go:embed report.html.tmpl
var reportTemplateSource string

var reportTemplate = template.Must(template.New("report").Parse(reportTemplateSource))

// Data is the structure passed to the report template.
type Data struct {
	Title       string
	GeneratedAt string
	Fields      []types.Field
	Salary      string
}

// FormatUSD renders an amount as currency with two decimal places and
// thousands separators, e.g. $85,432.10.
func FormatUSD(v float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("$%.2f", v)
}

// Render produces the report document HTML. Output is deterministic for
// identical inputs and timestamp: repeated generations differ only in the
// generated-at line.
func Render(input types.CandidateInput, result types.PredictionResult, generatedAt time.Time) (string, error) {
	if err := checkPrintable("job_title", input.JobTitle); err != nil {
		return "", err
	}

	data := &Data{
		Title:       Title,
		GeneratedAt: generatedAt.Format(TimestampFormat),
		Fields:      input.Fields(),
		Salary:      FormatUSD(result.PredictedSalaryUSD),
	}

	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, data); err != nil {
		return "", &GenerationError{
			Message: "failed to execute report template",
			Cause:   err,
		}
	}
	return sb.String(), nil
}

// checkPrintable rejects free-text values that are not valid UTF-8 or contain
// control characters, which would corrupt the printed document.
func checkPrintable(field, value string) error {
	if !utf8.ValidString(value) {
		return &GenerationError{
			Message: fmt.Sprintf("field %s is not valid UTF-8", field),
		}
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return &GenerationError{
				Message: fmt.Sprintf("field %s contains control characters", field),
			}
		}
	}
	return nil
}
