// Package ranking orders accepted candidates by department fit. Each
// department emphasizes a different mix of experience, skills and
// education; scores combine those with the pipeline's ranking score.
package ranking

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// fitWeights describe what a department values. Exactly one of the
// skill dimensions applies: technical first, then soft, then total.
type fitWeights struct {
	experience float64
	technical  float64
	soft       float64
	skills     float64
	education  float64
}

// departmentFitWeights is keyed by classifier department labels.
// Unknown departments use the General weights.
var departmentFitWeights = map[string]fitWeights{
	"IT":          {technical: 0.4, experience: 0.3, education: 0.2},
	"HR":          {experience: 0.4, soft: 0.3, education: 0.2},
	"Finance":     {experience: 0.5, education: 0.3},
	"Marketing":   {experience: 0.4, soft: 0.3, education: 0.2},
	"Engineering": {technical: 0.5, experience: 0.3, education: 0.2},
	"Operations":  {experience: 0.5, soft: 0.3, education: 0.2},
	"Sales":       {experience: 0.4, soft: 0.4, education: 0.2},
	"General":     {experience: 0.4, skills: 0.4, education: 0.2},
}

// educationFitScores map the highest degree onto a 0-1 factor.
var educationFitScores = map[types.DegreeLevel]float64{
	types.DegreePhD:       1.0,
	types.DegreeMasters:   0.8,
	types.DegreeBachelors: 0.6,
	types.DegreeDiploma:   0.4,
}

// DepartmentScore rates how well a candidate fits a department,
// 0-100. Ten years of experience, ten technical skills (or five soft
// skills, or fifteen total) and a PhD would each max their component.
func DepartmentScore(candidate types.Candidate, department string) float64 {
	weights, ok := departmentFitWeights[department]
	if !ok {
		weights = departmentFitWeights["General"]
	}

	score := clamp01(candidate.ExperienceYears/10) * weights.experience * 100

	switch {
	case weights.technical > 0:
		score += clamp01(float64(candidate.Skills.TechnicalCount())/10) * weights.technical * 100
	case weights.soft > 0:
		score += clamp01(float64(candidate.Skills.SoftCount())/5) * weights.soft * 100
	default:
		skillsWeight := weights.skills
		if skillsWeight == 0 {
			skillsWeight = 0.3
		}
		score += clamp01(float64(candidate.Skills.Total())/15) * skillsWeight * 100
	}

	score += educationFitScores[candidate.EducationLevel] * weights.education * 100

	if score > 100 {
		score = 100
	}
	return score
}

// ByDepartment ranks the candidates assigned to one department,
// highest department score first with ranking score as tiebreak, and
// returns at most topN. Input order is never mutated; returned
// candidates carry their DepartmentScore.
func ByDepartment(candidates []types.Candidate, department string, topN int) []types.Candidate {
	ranked := make([]types.Candidate, 0)
	for _, candidate := range candidates {
		if candidate.Department != department {
			continue
		}
		candidate.DepartmentScore = DepartmentScore(candidate, department)
		ranked = append(ranked, candidate)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].DepartmentScore != ranked[j].DepartmentScore {
			return ranked[i].DepartmentScore > ranked[j].DepartmentScore
		}
		return ranked[i].RankingScore > ranked[j].RankingScore
	})

	if topN >= 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// TopAcrossDepartments groups candidates by their assigned department
// and ranks each group, returning up to topN per department.
func TopAcrossDepartments(candidates []types.Candidate, topN int) map[string][]types.Candidate {
	departments := map[string]struct{}{}
	for _, candidate := range candidates {
		departments[candidate.Department] = struct{}{}
	}

	top := make(map[string][]types.Candidate, len(departments))
	for department := range departments {
		top[department] = ByDepartment(candidates, department, topN)
	}
	return top
}

// Overall ranks all candidates together. The overall score blends the
// pipeline ranking score with department fit, 60/40, so candidates in
// departments that suit them rise.
func Overall(candidates []types.Candidate, topN int) []types.Candidate {
	ranked := make([]types.Candidate, len(candidates))
	for i, candidate := range candidates {
		candidate.DepartmentScore = DepartmentScore(candidate, candidate.Department)
		candidate.OverallScore = candidate.RankingScore*0.6 + candidate.DepartmentScore*0.4
		ranked[i] = candidate
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})

	if topN >= 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
