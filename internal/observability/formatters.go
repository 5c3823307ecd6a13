// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
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

// PrintAnalysis outputs a human-readable summary of one resume analysis.
func (p *Printer) PrintAnalysis(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	name := analysis.PersonalInfo.Name
	if name == "" {
		name = "(name not found)"
	}
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", name))
	if analysis.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", analysis.PersonalInfo.Email))
	}
	if analysis.Filename != "" {
		sb.WriteString(fmt.Sprintf("File:       %s\n", analysis.Filename))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Department: %s (%s)\n", analysis.Classification.Department, analysis.Classification.Status))
	sb.WriteString(fmt.Sprintf("Ranking:    %.1f / 100\n", analysis.Classification.RankingScore))
	sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", analysis.Experience.TotalYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", analysis.Education.HighestDegree))
	sb.WriteString(fmt.Sprintf("Skills:     %d total (%d technical)\n",
		analysis.Skills.Total(), analysis.Skills.TechnicalCount()))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Fraud score: %.0f / 100\n", analysis.Fraud.Score))
	if len(analysis.Fraud.Findings) > 0 {
		count := min(len(analysis.Fraud.Findings), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", analysis.Fraud.Findings[i]))
		}
		if len(analysis.Fraud.Findings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Fraud.Findings)-maxItemsToShow))
		}
	}

	if analysis.Eligibility != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Eligibility: %.1f (min %.0f)\n",
			analysis.Eligibility.TotalScore, analysis.Eligibility.MinScoreRequired))
		sb.WriteString(fmt.Sprintf("  %s\n", analysis.Eligibility.Message))
	}

	if analysis.Decision != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Verdict: %s (%s)\n", analysis.Decision.Verdict, analysis.Decision.Authenticity))
		sb.WriteString(fmt.Sprintf("  %s\n", analysis.Decision.Reason))
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankings outputs a ranked candidate list. An empty department
// label means the list is ranked by overall score.
func (p *Printer) PrintRankings(department string, candidates []types.Candidate) {
	title := "TOP CANDIDATES (overall)"
	if department != "" {
		title = fmt.Sprintf("TOP CANDIDATES: %s", department)
	}

	if len(candidates) == 0 {
		p.printBox(title, "No accepted candidates to rank")
		return
	}

	var sb strings.Builder
	for i, candidate := range candidates {
		name := candidate.Name
		if name == "" {
			name = "(name not found)"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))

		score := candidate.DepartmentScore
		label := "Fit"
		if department == "" {
			score = candidate.OverallScore
			label = "Overall"
		}
		sb.WriteString(fmt.Sprintf("    %s: %.1f  Ranking: %.1f  Dept: %s\n",
			label, score, candidate.RankingScore, candidate.Department))
		if i < len(candidates)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs counts for one batch run.
func (p *Printer) PrintBatchSummary(total, succeeded, failed, shortlisted int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Files processed: %d\n", total))
	sb.WriteString(fmt.Sprintf("Succeeded:       %d\n", succeeded))
	sb.WriteString(fmt.Sprintf("Failed:          %d\n", failed))
	if shortlisted >= 0 {
		sb.WriteString(fmt.Sprintf("Shortlisted:     %d\n", shortlisted))
	}
	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
