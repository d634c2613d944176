// Package observability provides formatted output utilities for the CLI commands.
package observability

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/careerpath/internal/db"
	"github.com/jonathan/careerpath/internal/schemas"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for CLI commands
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

// PrintSeedResults outputs one line per seeded catalog collection.
func (p *Printer) PrintSeedResults(results []db.SeedResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	inserted := 0
	for _, r := range results {
		if r.Skipped {
			sb.WriteString(fmt.Sprintf("%-22s skipped (already seeded)\n", r.Collection))
			continue
		}
		inserted += r.Inserted
		sb.WriteString(fmt.Sprintf("%-22s inserted %d\n", r.Collection, r.Inserted))
	}
	sb.WriteString(fmt.Sprintf("\nTotal documents inserted: %d", inserted))

	p.printBox("CATALOG SEED", sb.String())
}

// PrintCatalogCounts outputs the record count of every collection in name order.
func (p *Printer) PrintCatalogCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		sb.WriteString(fmt.Sprintf("%-22s %d", name, counts[name]))
		if i < len(names)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, sb.String())
}

// PrintValidationErrors outputs the first schema violations held by err. Other errors print
// nothing and report false.
func (p *Printer) PrintValidationErrors(err error) bool {
	var validationErr *schemas.ValidationError
	if !errors.As(err, &validationErr) || len(validationErr.Errors) == 0 {
		return false
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d schema violations:\n\n", len(validationErr.Errors)))

	count := min(len(validationErr.Errors), maxItemsToShow)
	for i := 0; i < count; i++ {
		fe := validationErr.Errors[i]
		sb.WriteString(fmt.Sprintf("• %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s", fe.Message))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(validationErr.Errors) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more", len(validationErr.Errors)-maxItemsToShow))
	}

	p.printBox("CATALOG VALIDATION FAILED", sb.String())
	return true
}
