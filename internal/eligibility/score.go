// Package eligibility scores candidates against department hiring
// criteria. Each department weights skill match, experience, education
// and project evidence differently; the weighted total is compared
// against the department's minimum score.
package eligibility

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/types"
)

// Score evaluates a candidate profile against one department's
// criteria. An unknown department yields the zero result with an
// "Invalid department" message rather than an error: the pipeline
// records it as a finding, it does not abort the run.
func Score(profile types.CandidateProfile, departments *config.Registry, departmentName string) types.EligibilityResult {
	dept, ok := departments.Get(departmentName)
	if !ok {
		return types.EligibilityResult{Message: "Invalid department"}
	}

	weights := dept.Weights

	matchPct := SkillMatch(profile.Skills, dept.RequiredSkills)
	skillScore := matchPct / 100 * weights.SkillMatch
	expScore := experienceScore(profile.ExperienceYears, dept.MinExperience, weights.Experience)

	eduScore := 0.0
	if educationMatches(profile.Education, dept.RequiredEducation) {
		eduScore = weights.Education
	}

	// Substantial work-experience text stands in for project and
	// certification evidence.
	projectsScore := weights.ProjectsCerts * 0.3
	if len(profile.WorkExperience) > 100 {
		projectsScore = weights.ProjectsCerts * 0.7
	}

	total := skillScore + expScore + eduScore + projectsScore
	eligible := total >= dept.MinScore

	message := fmt.Sprintf("Score below minimum (%g)", dept.MinScore)
	if eligible {
		message = "Eligible for shortlisting"
	}

	return types.EligibilityResult{
		TotalScore:           total,
		SkillMatchPercentage: matchPct,
		Breakdown: types.ScoreBreakdown{
			SkillScore:      skillScore,
			ExperienceScore: expScore,
			EducationScore:  eduScore,
			ProjectsScore:   projectsScore,
		},
		Eligible:         eligible,
		MinScoreRequired: dept.MinScore,
		Message:          message,
	}
}

// SkillMatch computes how well candidate skills cover the required
// list, as a 0-100 percentage. Exact matches count 1; a candidate
// skill that only overlaps a required skill as a substring (either
// direction, both longer than two characters) counts 0.5 once.
func SkillMatch(candidateSkills, requiredSkills []string) float64 {
	if len(candidateSkills) == 0 || len(requiredSkills) == 0 {
		return 0
	}

	candidate := normalize(candidateSkills)
	required := normalize(requiredSkills)

	requiredSet := make(map[string]struct{}, len(required))
	for _, skill := range required {
		requiredSet[skill] = struct{}{}
	}

	matches := 0.0
	for _, skill := range candidate {
		if _, exact := requiredSet[skill]; exact {
			matches++
			continue
		}
		if len(skill) <= 2 {
			continue
		}
		for _, req := range required {
			if len(req) <= 2 {
				continue
			}
			if strings.Contains(req, skill) || strings.Contains(skill, req) {
				matches += 0.5
				break
			}
		}
	}

	pct := matches / float64(len(required)) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

func normalize(skills []string) []string {
	out := make([]string, len(skills))
	for i, skill := range skills {
		out[i] = strings.TrimSpace(strings.ToLower(skill))
	}
	return out
}

// experienceScore maps years of experience onto the experience weight
// in tiers relative to the department minimum.
func experienceScore(years, minYears, weight float64) float64 {
	switch {
	case years >= minYears*1.5:
		return weight
	case years >= minYears:
		return weight * 0.8
	case years >= minYears*0.5:
		return weight * 0.5
	default:
		return weight * 0.2
	}
}

func educationMatches(education string, required []string) bool {
	if education == "" || len(required) == 0 {
		return false
	}
	lower := strings.ToLower(education)
	for _, req := range required {
		if strings.Contains(lower, strings.ToLower(req)) {
			return true
		}
	}
	return false
}
