package classification

import (
	"fmt"
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

func skillSet(entries map[types.SkillCategory][]string) types.SkillSet {
	set := types.NewSkillSet()
	for cat, skills := range entries {
		set[cat] = skills
	}
	return set
}

func TestClassify_DepartmentFromModel(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		text string
		want string
	}{
		{"python developer building web services with docker and kubernetes on aws", "IT"},
		{"recruiter handling talent acquisition, onboarding and employee relations", "HR"},
		{"accountant preparing financial statements, audit and tax filings", "Finance"},
		{"seo specialist running social media and advertising campaigns", "Marketing"},
		{"mechanical engineer, cad and solidworks, manufacturing design", "Engineering"},
		{"supply chain and logistics, inventory management and procurement", "Operations"},
		{"account executive closing b2b deals, negotiation and revenue growth", "Sales"},
	}
	for _, tc := range cases {
		got := c.Classify(tc.text, types.NewSkillSet())
		assert.Equal(t, tc.want, got.Department, "text: %s", tc.text)
	}
}

func TestClassify_NoSignalFallsBack(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("zzz qqq xyzzy", types.NewSkillSet())

	assert.Equal(t, "General", got.Department)
	assert.Equal(t, types.StatusRejected, got.Status)
	assert.Equal(t, 0.0, got.RankingScore)
}

func TestAcceptanceStatus(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		skills types.SkillSet
		want   types.Status
	}{
		{
			name:   "four skills accepted regardless of text",
			text:   "",
			skills: skillSet(map[types.SkillCategory][]string{types.CategoryToolsPlatforms: {"jira", "git", "excel", "tableau"}}),
			want:   types.StatusAccepted,
		},
		{
			name:   "two tech skills with experience accepted",
			text:   "worked 2018 to 2022",
			skills: skillSet(map[types.SkillCategory][]string{types.CategoryProgramming: {"python", "go"}}),
			want:   types.StatusAccepted,
		},
		{
			name:   "two tech skills without experience rejected",
			text:   "no dates here",
			skills: skillSet(map[types.SkillCategory][]string{types.CategoryProgramming: {"python", "go"}}),
			want:   types.StatusRejected,
		},
		{
			name:   "education with two skills accepted",
			text:   "Bachelor of Arts",
			skills: skillSet(map[types.SkillCategory][]string{types.CategorySoftSkills: {"leadership", "teamwork"}}),
			want:   types.StatusAccepted,
		},
		{
			name:   "three non-tech skills accepted",
			text:   "",
			skills: skillSet(map[types.SkillCategory][]string{types.CategorySoftSkills: {"leadership", "teamwork", "communication"}}),
			want:   types.StatusAccepted,
		},
		{
			name:   "two non-tech skills no education rejected",
			text:   "",
			skills: skillSet(map[types.SkillCategory][]string{types.CategorySoftSkills: {"leadership", "teamwork"}}),
			want:   types.StatusRejected,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, acceptanceStatus(tc.text, tc.skills))
		})
	}
}

func TestRankingScore_Components(t *testing.T) {
	skills := skillSet(map[types.SkillCategory][]string{
		types.CategoryProgramming:    {"python", "java"},
		types.CategoryWebDevelopment: {"react"},
		types.CategoryDatabase:       {"sql", "mongodb"},
		types.CategorySoftSkills:     {"leadership"},
	})
	text := "Bachelor of Science, roles from 2016 to 2020"

	// 6 skills * 4 = 24, 3 tech * 5 = 15, 4 year span * 4 = 16,
	// bachelor tier = 10.
	assert.Equal(t, 65.0, RankingScore(text, skills))
}

func TestRankingScore_ComponentCaps(t *testing.T) {
	many := make([]string, 30)
	for i := range many {
		many[i] = fmt.Sprintf("skill%d", i)
	}
	skills := skillSet(map[types.SkillCategory][]string{types.CategoryProgramming: many})
	text := "Ph.D, career 1990 to 2020"

	// Skills capped at 40, tech at 20, span at 20, phd tier 20.
	assert.Equal(t, 100.0, RankingScore(text, skills))
}

func TestRankingScore_EducationTiersExclusive(t *testing.T) {
	empty := types.NewSkillSet()

	// Highest mentioned tier wins; tiers do not stack.
	assert.Equal(t, 20.0, RankingScore("doctorate and master and bachelor", empty))
	assert.Equal(t, 15.0, RankingScore("mba and bachelor", empty))
	assert.Equal(t, 10.0, RankingScore("b.s. graduate", empty))
	assert.Equal(t, 5.0, RankingScore("associate degree", empty))
	assert.Equal(t, 0.0, RankingScore("no education", empty))
}

func TestFallback_DepartmentRules(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		skills types.SkillSet
		want   string
	}{
		{
			name:   "tech skills win over keyword probes",
			text:   "finance background",
			skills: skillSet(map[types.SkillCategory][]string{types.CategoryProgramming: {"python", "go"}}),
			want:   "IT",
		},
		{
			name:   "three soft skills mean HR",
			text:   "",
			skills: skillSet(map[types.SkillCategory][]string{types.CategorySoftSkills: {"leadership", "teamwork", "communication"}}),
			want:   "HR",
		},
		{
			name:   "finance keyword",
			text:   "ten years in banking",
			skills: types.NewSkillSet(),
			want:   "Finance",
		},
		{
			name:   "marketing keyword",
			text:   "advertising campaigns",
			skills: types.NewSkillSet(),
			want:   "Marketing",
		},
		{
			name:   "nothing matches",
			text:   "zzz",
			skills: types.NewSkillSet(),
			want:   "General",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Fallback(tc.text, tc.skills).Department)
		})
	}
}

func TestFallback_ScoreAndStatus(t *testing.T) {
	skills := skillSet(map[types.SkillCategory][]string{
		types.CategoryToolsPlatforms: {"jira", "git", "excel"},
	})

	got := Fallback("", skills)

	assert.Equal(t, types.StatusAccepted, got.Status)
	assert.Equal(t, 45.0, got.RankingScore)

	rejected := Fallback("", types.NewSkillSet())
	assert.Equal(t, types.StatusRejected, rejected.Status)
}

func TestDepartments_ReturnsCopy(t *testing.T) {
	list := Departments()
	list[0] = "mutated"

	assert.Equal(t, "IT", Departments()[0])
}
