// Package observability provides logging setup and formatted output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/infofill/internal/types"
	"github.com/mattn/go-runewidth"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in previews
	maxItemsToShow = 5
)

// Printer handles formatted output for list and show commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// cellWidth measures terminal columns. Ambiguous-width runes such as the box
// drawing set count as one column regardless of locale.
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// truncate shortens s to at most n display columns.
func truncate(s string, n int) string {
	return cellWidth.Truncate(s, n, "...")
}

// pad fills s with spaces to exactly n display columns.
func pad(s string, n int) string {
	return cellWidth.FillRight(truncate(s, n), n)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs the basic section followed by section counts.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	for _, key := range types.BasicKeys() {
		sb.WriteString(fmt.Sprintf("%-17s %s\n", key+":", profile.Basic.Get(key)))
	}
	for _, key := range profile.Basic.ExtraKeys() {
		sb.WriteString(fmt.Sprintf("%-17s %s\n", key+":", profile.Basic.Get(key)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experiences: %d\n", len(profile.Experiences)))
	sb.WriteString(fmt.Sprintf("Family:      %d", len(profile.Family)))

	p.printBox("PROFILE", sb.String())
}

// PrintExperiences outputs every experience with its id and date range.
func (p *Printer) PrintExperiences(list []types.Experience) {
	if len(list) == 0 {
		p.printBox("EXPERIENCES", "(none)")
		return
	}

	var sb strings.Builder
	for i, e := range list {
		sb.WriteString(fmt.Sprintf("%s  [%s]\n", e.ID, e.Type))
		sb.WriteString(fmt.Sprintf("  %s - %s  %s\n", e.StartDate, e.EndDate, e.Name))
		if e.Role != "" || e.Title != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimSpace(e.Role+" "+e.Title)))
		}
		if i < len(list)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("EXPERIENCES (%d)", len(list)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFamily outputs every family member.
func (p *Printer) PrintFamily(list []types.Family) {
	if len(list) == 0 {
		p.printBox("FAMILY", "(none)")
		return
	}

	var sb strings.Builder
	for _, f := range list {
		sb.WriteString(fmt.Sprintf("%s  %s %s\n", f.ID, f.Relation, f.Name))
		if f.Company != "" || f.Position != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimSpace(f.Company+" "+f.Position)))
		}
	}

	p.printBox(fmt.Sprintf("FAMILY (%d)", len(list)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplates outputs the library with a short preview of each template.
func (p *Printer) PrintTemplates(list []types.Template) {
	if len(list) == 0 {
		p.printBox("TEMPLATES", "(none)")
		return
	}

	var sb strings.Builder
	for i, t := range list {
		sb.WriteString(fmt.Sprintf("%s  %s\n", t.ID, t.Name))
		sb.WriteString(fmt.Sprintf("  type: %s\n", t.Type.Label()))

		lines := strings.Split(strings.TrimSpace(t.Content), "\n")
		count := min(len(lines), 2)
		for _, line := range lines[:count] {
			sb.WriteString(fmt.Sprintf("  > %s\n", line))
		}
		if len(lines) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more lines\n", len(lines)-count))
		}
		if i < len(list)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("TEMPLATES (%d)", len(list)), strings.TrimSuffix(sb.String(), "\n"))
}

// GenerationResult summarizes one template rendered by a batch run.
type GenerationResult struct {
	TemplateID string
	Path       string
	Err        error
}

// PrintGenerationSummary outputs the outcome of a batch generation run.
func (p *Printer) PrintGenerationSummary(results []GenerationResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	sb.WriteString(fmt.Sprintf("Rendered %d/%d templates\n\n", len(results)-failed, len(results)))

	count := min(len(results), maxItemsToShow)
	for _, r := range results[:count] {
		if r.Err != nil {
			sb.WriteString(fmt.Sprintf("✗ %s: %v\n", r.TemplateID, r.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("✓ %s -> %s\n", r.TemplateID, r.Path))
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(results)-maxItemsToShow))
	}

	title := "GENERATION COMPLETE"
	if failed > 0 {
		title = fmt.Sprintf("GENERATION FINISHED WITH %d FAILURES", failed)
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
