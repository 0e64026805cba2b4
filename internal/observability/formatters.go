// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/dutchdutchdutch/signalscore/internal/harvest"
	"github.com/dutchdutchdutch/signalscore/internal/scoring"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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

// PrintHarvestSummary outputs the pages that contributed to a scoring run.
func (p *Printer) PrintHarvestSummary(result *harvest.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", result.CompanyName))
	sb.WriteString(fmt.Sprintf("Domain:   %s\n", result.RootDomain))
	sb.WriteString("\n")

	if len(result.Sources) > 0 {
		sb.WriteString("Pages harvested:\n")
		count := min(len(result.Sources), maxItemsToShow)
		for i := 0; i < count; i++ {
			src := result.Sources[i]
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", src.Label, src.URL))
		}
		if len(result.Sources) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Sources)-maxItemsToShow))
		}
	}

	p.printBox("HARVEST SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs the final score with component breakdown and
// the top evidence lines.
func (p *Printer) PrintScoreReport(score *scoring.CompanyScore) {
	if score == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:    %s\n", score.CompanyName))
	sb.WriteString(fmt.Sprintf("Score:      %.1f / 100\n", score.Score))
	sb.WriteString(fmt.Sprintf("Category:   %s\n", score.CategoryLabel))
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", score.ConfidenceScore*100))
	sb.WriteString("\n")

	sb.WriteString("Components:\n")
	for _, key := range []string{
		scoring.ComponentAIKeywords,
		scoring.ComponentAgentic,
		scoring.ComponentToolStack,
		scoring.ComponentNonEngAI,
		scoring.ComponentAIInIT,
	} {
		sb.WriteString(fmt.Sprintf("  %-16s %5.1f\n", key, score.ComponentScores[key]))
	}

	if len(score.Signals.ToolStack) > 0 {
		tools := strings.Join(score.Signals.ToolStack, ", ")
		if len(tools) > 40 {
			tools = tools[:37] + "..."
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Tools: %s\n", tools))
	}

	if score.Signals.MarketingOnly {
		sb.WriteString("\n")
		sb.WriteString("Note: AI claims found only in marketing sources\n")
	}

	p.printBox("READINESS SCORE", strings.TrimSuffix(sb.String(), "\n"))

	if evidence := score.TopEvidence(); len(evidence) > 0 {
		var eb strings.Builder
		for _, line := range evidence {
			eb.WriteString(fmt.Sprintf("• %s\n", line))
		}
		if len(score.Evidence) > len(evidence) {
			eb.WriteString(fmt.Sprintf("... and %d more\n", len(score.Evidence)-len(evidence)))
		}
		p.printBox("EVIDENCE", strings.TrimSuffix(eb.String(), "\n"))
	}
}
