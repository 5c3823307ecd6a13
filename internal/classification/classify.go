// Package classification assigns resumes to departments and scores
// them for ranking. A small embedded centroid model handles department
// assignment; acceptance and ranking are deterministic rules.
package classification

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/types"
)

// Classifier holds a trained department model. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	model *centroidModel
}

func NewClassifier() *Classifier {
	return &Classifier{model: trainCentroidModel()}
}

// Departments returns the model's label set, in label order.
func Departments() []string {
	out := make([]string, len(departments))
	copy(out, departments)
	return out
}

// Classify assigns a department and determines acceptance status and
// ranking score. Department assignment considers the resume text
// together with the extracted skills; when the model has no signal the
// rule-based fallback decides everything.
func (c *Classifier) Classify(text string, skills types.SkillSet) types.ClassificationResult {
	combined := text + " " + strings.Join(skills.Flatten(), " ")

	label, ok := c.model.predict(combined)
	if !ok {
		return Fallback(text, skills)
	}

	return types.ClassificationResult{
		Status:       acceptanceStatus(text, skills),
		Department:   departments[label],
		RankingScore: RankingScore(text, skills),
	}
}

// educationKeywords signal any degree mention for the acceptance rules.
var educationKeywords = []string{"bachelor", "master", "mba", "ph.d", "doctorate", "degree"}

// acceptanceStatus applies the acceptance rules in order: enough total
// skills, technical skills backed by experience, education backed by
// some skills, or a moderate skill count.
func acceptanceStatus(text string, skills types.SkillSet) types.Status {
	total := skills.Total()
	tech := skills.TechnicalCount()
	hasExperience := len(extraction.Years(text)) >= 2

	lower := strings.ToLower(text)
	hasEducation := false
	for _, keyword := range educationKeywords {
		if strings.Contains(lower, keyword) {
			hasEducation = true
			break
		}
	}

	switch {
	case total >= 4:
		return types.StatusAccepted
	case tech >= 2 && hasExperience:
		return types.StatusAccepted
	case hasEducation && total >= 2:
		return types.StatusAccepted
	case total >= 3:
		return types.StatusAccepted
	default:
		return types.StatusRejected
	}
}

// RankingScore combines skills, technical depth, experience span and
// education into a 0-100 score. Components are individually capped so
// no single dimension dominates.
func RankingScore(text string, skills types.SkillSet) float64 {
	score := 0.0

	// 4 points per skill, capped at 40.
	score += minFloat(float64(skills.Total())*4, 40)

	// 5 points per technical skill, capped at 20.
	score += minFloat(float64(skills.TechnicalCount())*5, 20)

	// 4 points per year of the observed year span, capped at 20.
	if years := extraction.Years(text); len(years) > 0 {
		minYear, maxYear := years[0], years[0]
		for _, y := range years[1:] {
			if y < minYear {
				minYear = y
			}
			if y > maxYear {
				maxYear = y
			}
		}
		score += minFloat(float64(maxYear-minYear)*4, 20)
	}

	// Highest education tier mentioned, up to 20.
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "ph.d") || strings.Contains(lower, "doctorate"):
		score += 20
	case strings.Contains(lower, "master") || strings.Contains(lower, "mba"):
		score += 15
	case strings.Contains(lower, "bachelor") || strings.Contains(lower, "b.s.") || strings.Contains(lower, "b.a."):
		score += 10
	case strings.Contains(lower, "diploma") || strings.Contains(lower, "associate"):
		score += 5
	}

	return minFloat(score, 100)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
