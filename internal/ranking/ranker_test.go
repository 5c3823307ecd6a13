package ranking

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itCandidate(name string, years float64, techSkills int, degree types.DegreeLevel, rankingScore float64) types.Candidate {
	skills := types.NewSkillSet()
	for i := 0; i < techSkills; i++ {
		skills[types.CategoryProgramming] = append(skills[types.CategoryProgramming], "skill")
	}
	return types.Candidate{
		Name:            name,
		Department:      "IT",
		RankingScore:    rankingScore,
		ExperienceYears: years,
		EducationLevel:  degree,
		Skills:          skills,
	}
}

func TestDepartmentScore_ITWeighting(t *testing.T) {
	c := itCandidate("a", 5, 4, types.DegreeBachelors, 0)

	// experience 0.5*0.3*100 + technical 0.4*0.4*100 + education
	// 0.6*0.2*100 = 15 + 16 + 12.
	assert.InDelta(t, 43.0, DepartmentScore(c, "IT"), 1e-9)
}

func TestDepartmentScore_ComponentsSaturate(t *testing.T) {
	c := itCandidate("a", 40, 30, types.DegreePhD, 0)

	// All components at their caps: 30 + 40 + 20.
	assert.InDelta(t, 90.0, DepartmentScore(c, "IT"), 1e-9)
}

func TestDepartmentScore_SoftSkillDepartments(t *testing.T) {
	skills := types.NewSkillSet()
	skills[types.CategorySoftSkills] = []string{"communication", "leadership", "teamwork", "empathy", "mentoring"}
	c := types.Candidate{ExperienceYears: 4, EducationLevel: types.DegreeMasters, Skills: skills}

	// HR: experience 0.4*0.4*100 + soft 1.0*0.3*100 + education
	// 0.8*0.2*100 = 16 + 30 + 16.
	assert.InDelta(t, 62.0, DepartmentScore(c, "HR"), 1e-9)
}

func TestDepartmentScore_FinanceUsesTotalSkillFallback(t *testing.T) {
	skills := types.NewSkillSet()
	skills[types.CategoryToolsPlatforms] = []string{"excel", "sap", "tableau"}
	c := types.Candidate{ExperienceYears: 10, EducationLevel: types.DegreeMasters, Skills: skills}

	// Finance declares no skill dimension, so total skills apply with
	// the default 0.3 weight: 50 + (3/15)*30 + 0.8*0.3*100 = 50+6+24.
	assert.InDelta(t, 80.0, DepartmentScore(c, "Finance"), 1e-9)
}

func TestDepartmentScore_UnknownDepartmentUsesGeneral(t *testing.T) {
	c := itCandidate("a", 5, 3, types.DegreeUnknown, 0)

	assert.Equal(t, DepartmentScore(c, "General"), DepartmentScore(c, "Underwater Basketweaving"))
}

func TestByDepartment_FiltersSortsAndTruncates(t *testing.T) {
	candidates := []types.Candidate{
		itCandidate("weak", 1, 1, types.DegreeUnknown, 10),
		itCandidate("strong", 9, 8, types.DegreePhD, 90),
		itCandidate("middle", 5, 4, types.DegreeBachelors, 50),
		{Name: "other-dept", Department: "Sales"},
	}

	top := ByDepartment(candidates, "IT", 2)

	require.Len(t, top, 2)
	assert.Equal(t, "strong", top[0].Name)
	assert.Equal(t, "middle", top[1].Name)
	assert.Greater(t, top[0].DepartmentScore, top[1].DepartmentScore)
}

func TestByDepartment_RankingScoreBreaksTies(t *testing.T) {
	a := itCandidate("low-rank", 5, 4, types.DegreeBachelors, 40)
	b := itCandidate("high-rank", 5, 4, types.DegreeBachelors, 80)

	top := ByDepartment([]types.Candidate{a, b}, "IT", 5)

	require.Len(t, top, 2)
	assert.Equal(t, "high-rank", top[0].Name)
}

func TestByDepartment_DoesNotMutateInput(t *testing.T) {
	candidates := []types.Candidate{
		itCandidate("b", 1, 1, types.DegreeUnknown, 10),
		itCandidate("a", 9, 8, types.DegreePhD, 90),
	}

	ByDepartment(candidates, "IT", 5)

	assert.Equal(t, "b", candidates[0].Name)
	assert.Equal(t, 0.0, candidates[0].DepartmentScore)
}

func TestByDepartment_Idempotent(t *testing.T) {
	candidates := []types.Candidate{
		itCandidate("weak", 1, 1, types.DegreeUnknown, 10),
		itCandidate("strong", 9, 8, types.DegreePhD, 90),
	}

	first := ByDepartment(candidates, "IT", 5)
	second := ByDepartment(candidates, "IT", 5)

	assert.Equal(t, first, second)
}

func TestTopAcrossDepartments_GroupsByDepartment(t *testing.T) {
	sales := types.Candidate{Name: "s", Department: "Sales", ExperienceYears: 4, Skills: types.NewSkillSet()}
	candidates := []types.Candidate{
		itCandidate("i1", 5, 4, types.DegreeBachelors, 50),
		itCandidate("i2", 2, 2, types.DegreeUnknown, 20),
		sales,
	}

	top := TopAcrossDepartments(candidates, 5)

	require.Len(t, top, 2)
	assert.Len(t, top["IT"], 2)
	require.Len(t, top["Sales"], 1)
	assert.Equal(t, "s", top["Sales"][0].Name)
}

func TestOverall_BlendsRankingAndFit(t *testing.T) {
	c := itCandidate("a", 5, 4, types.DegreeBachelors, 70)

	ranked := Overall([]types.Candidate{c}, 10)

	require.Len(t, ranked, 1)
	// 70*0.6 + 43*0.4.
	assert.InDelta(t, 59.2, ranked[0].OverallScore, 1e-9)
	assert.InDelta(t, 43.0, ranked[0].DepartmentScore, 1e-9)
}

func TestOverall_SortsDescendingAndTruncates(t *testing.T) {
	candidates := []types.Candidate{
		itCandidate("low", 1, 1, types.DegreeUnknown, 10),
		itCandidate("high", 9, 8, types.DegreePhD, 95),
		itCandidate("mid", 5, 4, types.DegreeBachelors, 50),
	}

	ranked := Overall(candidates, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "high", ranked[0].Name)
	assert.Equal(t, "mid", ranked[1].Name)
	assert.GreaterOrEqual(t, ranked[0].OverallScore, ranked[1].OverallScore)
}
