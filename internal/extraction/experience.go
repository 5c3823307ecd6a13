package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/types"
)

var yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// jobLinePatterns are permissive position/company matchers applied per
// line: "X at/@/| Y" and "X - Y".
var jobLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.*?)\s*(?:at|@|\|)\s*(.*)$`),
	regexp.MustCompile(`^(.*?)\s*-\s*(.*)$`),
}

// titleNounPattern catches "senior python developer"-style role mentions
// anywhere in the text.
var titleNounPattern = regexp.MustCompile(`(?i)(senior|junior|lead)?\s*([a-z]+)\s*(?:developer|engineer|analyst|manager)`)

// pairBlocklist disqualifies a position/company pair when either side
// contains one of these words.
var pairBlocklist = []string{"email", "phone", "http"}

// Years returns every 4-digit token in the 1900-2099 range, in text
// order. Any such token counts: the heuristic cannot tell a graduation
// year from a zip code fragment.
func Years(text string) []int {
	matches := yearPattern.FindAllString(text, -1)
	years := make([]int, 0, len(matches))
	for _, m := range matches {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	return years
}

// Experience estimates years of experience and collects position/company
// pairs from job-like lines. The year span is a documented approximation:
// max(year)-min(year) over all year-like tokens.
func Experience(text string) types.Experience {
	exp := types.Experience{Positions: []string{}, Companies: []string{}}
	if text == "" {
		return exp
	}

	years := Years(text)
	switch {
	case len(years) >= 2:
		minYear, maxYear := years[0], years[0]
		for _, y := range years[1:] {
			if y < minYear {
				minYear = y
			}
			if y > maxYear {
				maxYear = y
			}
		}
		exp.TotalYears = float64(maxYear - minYear)
	case len(years) == 1 && years[0] <= time.Now().Year():
		exp.TotalYears = float64(time.Now().Year() - years[0])
	}

	exp.Positions, exp.Companies = extractJobPairs(text)
	return exp
}

func extractJobPairs(text string) (positions, companies []string) {
	positions = []string{}
	companies = []string{}

	addPair := func(position, company string) {
		position = strings.TrimSpace(position)
		company = strings.TrimSpace(company)
		if len(position) <= 2 || len(company) <= 2 {
			return
		}
		if containsBlockedWord(position) || containsBlockedWord(company) {
			return
		}
		if !contains(positions, position) {
			positions = append(positions, position)
		}
		if !contains(companies, company) {
			companies = append(companies, company)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for _, pattern := range jobLinePatterns {
			if m := pattern.FindStringSubmatch(line); m != nil {
				addPair(m[1], m[2])
			}
		}
	}

	// The title-noun pattern yields (modifier, noun) pairs; they pass
	// through the same filters as position/company pairs.
	for _, m := range titleNounPattern.FindAllStringSubmatch(text, -1) {
		addPair(m[1], m[2])
	}

	return positions, companies
}

func containsBlockedWord(s string) bool {
	lower := strings.ToLower(s)
	for _, word := range pairBlocklist {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
