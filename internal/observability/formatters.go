// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-composer/internal/retrieval"
	"github.com/jonathan/cv-composer/internal/types"
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

// PrintRetrieval outputs the retrieved entries with scores and rank diagnostics.
func (p *Printer) PrintRetrieval(result *retrieval.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates scored: %d  skipped: %d\n", result.Stats.Scored, result.Stats.Skipped))
	if result.CacheHit {
		sb.WriteString("Served from cache\n")
	}
	sb.WriteString("\n")

	if len(result.Entries) == 0 {
		sb.WriteString("No entries retrieved")
		p.printBox("RETRIEVED EXAMPLES", sb.String())
		return
	}

	count := min(len(result.Entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := result.Entries[i]
		title := entry.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		score := ""
		if i < len(result.Scores) {
			score = fmt.Sprintf("Score: %.3f  ", result.Scores[i])
		}
		sb.WriteString(fmt.Sprintf("    %s%s / %s\n", score, entry.Profession, entry.Section.Display()))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(result.Entries)-maxItemsToShow))
	}

	p.printBox("RETRIEVED EXAMPLES", sb.String())
}

// PrintVerdict outputs a validation verdict with its reasons.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintVerdict(verdict types.ValidationVerdict) {
	if verdict.IsValid && len(verdict.Reasons) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4,
			fmt.Sprintf("✅ VALID (confidence %.2f)", verdict.Confidence))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	if verdict.IsValid {
		sb.WriteString(fmt.Sprintf("Valid with caveats (confidence %.2f):\n\n", verdict.Confidence))
	} else {
		sb.WriteString(fmt.Sprintf("Invalid (confidence %.2f):\n\n", verdict.Confidence))
	}

	for i, reason := range verdict.Reasons {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", reason))
		if i < len(verdict.Reasons)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION VERDICT", sb.String())
}

// PrintImportReport outputs a summary of an ingestion run.
func (p *Printer) PrintImportReport(imported, skipped, failed int, errs []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Imported: %d\n", imported))
	sb.WriteString(fmt.Sprintf("Skipped:  %d\n", skipped))
	sb.WriteString(fmt.Sprintf("Failed:   %d\n", failed))

	if len(errs) > 0 {
		sb.WriteString("\n")
		count := min(len(errs), maxItemsToShow)
		for i := 0; i < count; i++ {
			msg := errs[i]
			if len(msg) > 50 {
				msg = msg[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("⚠ %s\n", msg))
		}
		if len(errs) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more errors\n", len(errs)-maxItemsToShow))
		}
	}

	p.printBox("IMPORT REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
