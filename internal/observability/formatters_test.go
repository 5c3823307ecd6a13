package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func sampleAnalysis() *types.Analysis {
	skills := types.NewSkillSet()
	skills[types.CategoryProgramming] = []string{"python", "go"}
	skills[types.CategorySoftSkills] = []string{"leadership"}

	return &types.Analysis{
		Filename:     "jane_doe.pdf",
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Skills:       skills,
		Experience:   types.Experience{TotalYears: 6},
		Education:    types.Education{HighestDegree: types.DegreeMasters},
		Classification: types.ClassificationResult{
			Status:       types.StatusAccepted,
			Department:   "IT",
			RankingScore: 72,
		},
		Fraud: types.FraudResult{
			Score:    10,
			Findings: []string{"Very short resume content"},
		},
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(sampleAnalysis())
	output := buf.String()

	assert.Contains(t, output, "RESUME ANALYSIS")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "IT (Accepted)")
	assert.Contains(t, output, "6.0 years")
	assert.Contains(t, output, "Masters")
	assert.Contains(t, output, "Very short resume content")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_WithDecision(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := sampleAnalysis()
	analysis.Eligibility = &types.EligibilityResult{
		TotalScore:       75.5,
		MinScoreRequired: 70,
		Eligible:         true,
		Message:          "Eligible for shortlisting",
	}
	analysis.Decision = &types.Decision{
		Verdict:      types.VerdictShortlisted,
		Reason:       "Passed all criteria",
		Authenticity: "Human-Written",
	}

	p.PrintAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "Eligible for shortlisting")
	assert.Contains(t, output, "Shortlisted")
	assert.Contains(t, output, "Human-Written")
}

func TestPrintRankings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	candidates := []types.Candidate{
		{Name: "Jane Doe", Department: "IT", RankingScore: 80, DepartmentScore: 65},
		{Name: "", Department: "IT", RankingScore: 60, DepartmentScore: 50},
	}

	p.PrintRankings("IT", candidates)
	output := buf.String()

	assert.Contains(t, output, "TOP CANDIDATES: IT")
	assert.Contains(t, output, "#1  Jane Doe")
	assert.Contains(t, output, "Fit: 65.0")
	assert.Contains(t, output, "(name not found)")
}

func TestPrintRankings_Overall(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	candidates := []types.Candidate{
		{Name: "Jane Doe", Department: "IT", RankingScore: 80, OverallScore: 74},
	}

	p.PrintRankings("", candidates)
	output := buf.String()

	assert.Contains(t, output, "TOP CANDIDATES (overall)")
	assert.Contains(t, output, "Overall: 74.0")
}

func TestPrintRankings_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankings("IT", nil)

	assert.Contains(t, buf.String(), "No accepted candidates to rank")
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchSummary(10, 8, 2, 3)
	output := buf.String()

	assert.Contains(t, output, "BATCH SUMMARY")
	assert.Contains(t, output, "Files processed: 10")
	assert.Contains(t, output, "Shortlisted:     3")
}