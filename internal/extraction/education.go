package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// degreeTierPatterns are tested once each against the lower-cased text,
// highest tier first. Every matching tier is recorded.
var degreeTierPatterns = []struct {
	level   types.DegreeLevel
	pattern *regexp.Regexp
}{
	{types.DegreePhD, regexp.MustCompile(`\b(?:ph\.?d|doctorate)\b`)},
	{types.DegreeMasters, regexp.MustCompile(`\b(?:m\.?s|m\.?a|master'?s?|mba)\b`)},
	{types.DegreeBachelors, regexp.MustCompile(`\b(?:b\.?s|b\.?a|bachelor'?s?|undergraduate)\b`)},
	{types.DegreeDiploma, regexp.MustCompile(`\b(?:associate|diploma|certificate)\b`)},
}

var institutionKeywords = []string{"university", "college", "institute", "school"}

// institutionExclusions reject lines that mention an institution keyword
// but belong to another resume section.
var institutionExclusions = []string{"experience", "skills", "projects"}

// Education identifies degree tiers and institution lines in the text.
// HighestDegree follows the ordinal ranking PhD > Masters > Bachelors >
// Diploma > Unknown.
func Education(text string) types.Education {
	edu := types.Education{
		HighestDegree: types.DegreeUnknown,
		Degrees:       []types.DegreeLevel{},
		Institutions:  []string{},
	}
	if text == "" {
		return edu
	}

	lower := strings.ToLower(text)
	for _, tier := range degreeTierPatterns {
		if tier.pattern.MatchString(lower) {
			edu.Degrees = append(edu.Degrees, tier.level)
			if tier.level > edu.HighestDegree {
				edu.HighestDegree = tier.level
			}
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if isInstitutionLine(trimmed) {
			edu.Institutions = append(edu.Institutions, trimmed)
		}
	}

	return edu
}

func isInstitutionLine(line string) bool {
	if len(line) <= 5 || len(line) >= 100 {
		return false
	}
	lower := strings.ToLower(line)

	hasKeyword := false
	for _, keyword := range institutionKeywords {
		if strings.Contains(lower, keyword) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return false
	}

	for _, excluded := range institutionExclusions {
		if strings.Contains(lower, excluded) {
			return false
		}
	}
	return true
}
