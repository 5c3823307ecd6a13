// Package extraction pulls structured candidate facts out of raw resume
// text. All extractors are pure functions of the text: missing data is
// reported as empty values, never as errors.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns are tried in order; the first pattern that yields any match
// wins and later patterns are never consulted.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\+?[\d\s-]{10,}`),
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
}

// locationGazetteer lists the city/region names recognized as locations,
// matched as case-insensitive substrings anywhere in the text.
var locationGazetteer = []string{
	"new york", "london", "san francisco", "chicago", "austin",
	"remote", "hybrid", "boston", "seattle", "los angeles",
	"toronto", "sydney", "berlin", "paris", "tokyo",
}

// sectionHeaders disqualify a line from being a candidate name.
var sectionHeaders = []string{"experience", "education", "skills"}

// PersonalInfo extracts contact details from resume text. Fields that
// cannot be found are left empty.
func PersonalInfo(text string) types.PersonalInfo {
	info := types.PersonalInfo{}
	if text == "" {
		return info
	}

	info.Email = emailPattern.FindString(text)

	for _, pattern := range phonePatterns {
		if phone := pattern.FindString(text); phone != "" {
			info.Phone = strings.TrimSpace(phone)
			break
		}
	}

	info.Name = extractName(text)
	info.Location = extractLocation(text)

	return info
}

// extractName scans the first 15 lines for a plausible name line: short,
// free of digits/emails/URLs, 2-4 words, not a section header, and
// followed by a non-empty line (a title usually follows the name).
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	limit := min(len(lines), 15)

	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if !isPlausibleName(line) {
			continue
		}
		if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			return line
		}
	}
	return ""
}

func isPlausibleName(line string) bool {
	if len(line) <= 2 || len(line) >= 50 {
		return false
	}
	if strings.ContainsAny(line, "0123456789@") {
		return false
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "http") {
		return false
	}
	for _, header := range sectionHeaders {
		if strings.HasPrefix(lower, header) {
			return false
		}
	}
	words := strings.Fields(line)
	return len(words) >= 2 && len(words) <= 4
}

func extractLocation(text string) string {
	lower := strings.ToLower(text)
	for _, location := range locationGazetteer {
		if strings.Contains(lower, location) {
			return titleCase(location)
		}
	}
	return ""
}

// titleCase capitalizes the first letter of each word. The gazetteer is
// plain ASCII, so byte-level capitalization is sufficient.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
