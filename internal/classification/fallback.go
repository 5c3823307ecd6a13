package classification

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

var financeKeywords = []string{"finance", "accounting", "banking"}
var marketingKeywords = []string{"marketing", "sales", "advertising"}

// Fallback is the rule-based classification used when the model has no
// signal for a resume. It is deliberately coarse: skill counts and a
// few keyword probes, with "General" as the catch-all department.
func Fallback(text string, skills types.SkillSet) types.ClassificationResult {
	lower := strings.ToLower(text)

	department := "General"
	switch {
	case skills.TechnicalCount() >= 2:
		department = "IT"
	case len(skills[types.CategorySoftSkills]) >= 3:
		department = "HR"
	case containsAny(lower, financeKeywords):
		department = "Finance"
	case containsAny(lower, marketingKeywords):
		department = "Marketing"
	}

	status := types.StatusRejected
	if skills.Total() >= 3 {
		status = types.StatusAccepted
	}

	return types.ClassificationResult{
		Status:       status,
		Department:   department,
		RankingScore: minFloat(float64(skills.Total())*15, 100),
	}
}

func containsAny(s string, words []string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}
