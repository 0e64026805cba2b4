package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dutchdutchdutch/signalscore/internal/harvest"
	"github.com/dutchdutchdutch/signalscore/internal/scoring"
	"github.com/dutchdutchdutch/signalscore/internal/sources"
)

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := &scoring.CompanyScore{
		CompanyName:   "Acme",
		Score:         72.5,
		Category:      scoring.Leading,
		CategoryLabel: "Leading",
		Signals: scoring.SignalData{
			ToolStack:     []string{"pytorch", "mlflow"},
			MarketingOnly: false,
		},
		ComponentScores: map[string]float64{
			scoring.ComponentAIKeywords: 80,
			scoring.ComponentAgentic:    60,
			scoring.ComponentToolStack:  50,
			scoring.ComponentNonEngAI:   40,
			scoring.ComponentAIInIT:     90,
		},
		Evidence:        []string{"Detected 2 AI/ML tools: pytorch, mlflow"},
		ConfidenceScore: 0.8,
	}

	p.PrintScoreReport(score)
	out := buf.String()

	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "72.5")
	assert.Contains(t, out, "Leading")
	assert.Contains(t, out, "pytorch, mlflow")
	assert.Contains(t, out, "READINESS SCORE")
	assert.Contains(t, out, "EVIDENCE")
	assert.NotContains(t, out, "marketing sources")
}

func TestPrintScoreReportMarketingOnly(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := &scoring.CompanyScore{
		CompanyName:     "Acme",
		Signals:         scoring.SignalData{MarketingOnly: true},
		ComponentScores: map[string]float64{},
	}

	p.PrintScoreReport(score)
	assert.Contains(t, buf.String(), "marketing sources")
}

func TestPrintScoreReportNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintHarvestSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &harvest.Result{
		CompanyName: "Acme",
		RootDomain:  "acme.com",
		Sources: []harvest.SourceRecord{
			{URL: "https://acme.com", Label: sources.Homepage},
			{URL: "https://acme.com/careers", Label: sources.JobPosting},
		},
	}

	p.PrintHarvestSummary(result)
	out := buf.String()

	assert.Contains(t, out, "HARVEST SUMMARY")
	assert.Contains(t, out, "acme.com")
	assert.Contains(t, out, "https://acme.com/careers")
}

func TestPrintHarvestSummaryTruncatesList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &harvest.Result{CompanyName: "Acme", RootDomain: "acme.com"}
	for i := 0; i < 8; i++ {
		result.Sources = append(result.Sources, harvest.SourceRecord{
			URL:   "https://acme.com/jobs",
			Label: sources.JobPosting,
		})
	}

	p.PrintHarvestSummary(result)
	assert.Contains(t, buf.String(), "and 3 more")
}
