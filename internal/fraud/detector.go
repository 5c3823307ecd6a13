// Package fraud scores resumes for signs of fabrication: AI-assistant
// phrasing, skill inflation, timeline problems, and missing basics.
// Scores are additive per check and clamped to 0-100.
package fraud

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/types"
)

// aiPatterns are phrases assistants leave behind when a resume is
// generated wholesale. The first hit scores; later patterns are not
// checked so pasted AI output is not penalized repeatedly.
var aiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(as an AI|language model|I cannot|I am unable to)\b`),
	regexp.MustCompile(`(?i)\b(based on my training|according to my knowledge)\b`),
	regexp.MustCompile(`(?i)\b(I don't have|I do not have)\b`),
	regexp.MustCompile(`(?i)\b(as a large language model)\b`),
	regexp.MustCompile(`(?i)\b(I am designed to|I am programmed to)\b`),
}

// educationTierKeywords group degree mentions into claim tiers; a
// resume claiming more than two tiers is suspicious.
var educationTierKeywords = [][]string{
	{"high school", "diploma"},
	{"bachelor", "b.s.", "b.a.", "undergraduate"},
	{"master", "m.s.", "m.a.", "mba", "graduate"},
	{"ph.d", "doctorate", "phd"},
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// Detect runs every fraud check against the resume and returns the
// clamped score with one finding per triggered check, in check order.
func Detect(text string, skills types.SkillSet, experience types.Experience) types.FraudResult {
	score := 0.0
	findings := []string{}
	lower := strings.ToLower(text)

	for _, pattern := range aiPatterns {
		if pattern.MatchString(lower) {
			score += 25
			findings = append(findings, "AI-generated content patterns detected")
			break
		}
	}

	total := skills.Total()
	switch {
	case total > 25:
		score += 25
		findings = append(findings, "Unusually high number of skills listed (>25)")
	case total > 15:
		score += 15
		findings = append(findings, "High number of skills listed (>15)")
	}

	if experience.TotalYears < 2 && total > 12 {
		score += 20
		findings = append(findings, "Skills-to-experience ratio suspicious")
	}

	if years := extraction.Years(text); len(years) >= 2 && !sort.IntsAreSorted(years) {
		score += 30
		findings = append(findings, "Date inconsistencies detected - timeline issues")
	}

	tiers := 0
	for _, keywords := range educationTierKeywords {
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				tiers++
				break
			}
		}
	}
	if tiers > 2 {
		score += 15
		findings = append(findings, "Multiple education levels claimed")
	}

	if !emailPattern.MatchString(text) && !phonePattern.MatchString(text) {
		score += 10
		findings = append(findings, "Missing contact information")
	}

	if len(strings.TrimSpace(text)) < 100 {
		score += 10
		findings = append(findings, "Very short resume content")
	}

	if score > 100 {
		score = 100
	}
	return types.FraudResult{Score: score, Findings: findings}
}
