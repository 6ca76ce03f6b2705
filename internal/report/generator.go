package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/yuvaraja/smartpay-agent/internal/types"
)

// PDFPrinter converts rendered report HTML into PDF bytes.
type PDFPrinter interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// Report is the handle to a generated document. The generator does not manage
// the file beyond creation; retention and cleanup are the caller's concern.
type Report struct {
	Path        string
	GeneratedAt time.Time
	HTML        string
}

// Generator writes one report per successful prediction.
type Generator struct {
	OutputDir string
	Printer   PDFPrinter
	Now       func() time.Time
}

// NewGenerator creates a Generator that prints through headless Chrome and
// writes into outputDir.
func NewGenerator(outputDir string) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Printer:   NewChromePrinter(),
		Now:       time.Now,
	}
}

// Generate renders and prints the report for one successful prediction, then
// writes it under a fresh unique name. Any construction failure surfaces as
// *GenerationError; no partial file is left behind.
func (g *Generator) Generate(ctx context.Context, input types.CandidateInput, result types.PredictionResult) (*Report, error) {
	generatedAt := g.Now()

	html, err := Render(input, result, generatedAt)
	if err != nil {
		return nil, err
	}

	pdf, err := g.Printer.PrintPDF(ctx, html)
	if err != nil {
		return nil, &GenerationError{
			Message: "failed to print PDF",
			Cause:   err,
		}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, &GenerationError{
			Message: fmt.Sprintf("failed to create report directory %s", g.OutputDir),
			Cause:   err,
		}
	}

	name := fmt.Sprintf("smartpay_report_%s.pdf", uuid.New().String())
	path := filepath.Join(g.OutputDir, name)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return nil, &GenerationError{
			Message: fmt.Sprintf("failed to write report file %s", path),
			Cause:   err,
		}
	}

	return &Report{
		Path:        path,
		GeneratedAt: generatedAt,
		HTML:        html,
	}, nil
}
