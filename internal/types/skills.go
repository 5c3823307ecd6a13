// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

// SkillCategory identifies one of the fixed skill categories the extractor
// reports. The set is closed; extraction never invents new categories.
type SkillCategory string

const (
	CategoryProgramming    SkillCategory = "Programming"
	CategoryWebDevelopment SkillCategory = "Web Development"
	CategoryDatabase       SkillCategory = "Database"
	CategoryCloudDevOps    SkillCategory = "Cloud & DevOps"
	CategoryAIML           SkillCategory = "AI/ML"
	CategoryDataScience    SkillCategory = "Data Science"
	CategorySoftSkills     SkillCategory = "Soft Skills"
	CategoryToolsPlatforms SkillCategory = "Tools & Platforms"
)

// SkillCategories returns all categories in their canonical order.
func SkillCategories() []SkillCategory {
	return []SkillCategory{
		CategoryProgramming,
		CategoryWebDevelopment,
		CategoryDatabase,
		CategoryCloudDevOps,
		CategoryAIML,
		CategoryDataScience,
		CategorySoftSkills,
		CategoryToolsPlatforms,
	}
}

// SkillSet maps each category to the skills matched in the resume text.
// Every category is present, with an empty list when nothing matched.
// Within a category, skills appear in vocabulary order, not text order.
type SkillSet map[SkillCategory][]string

// NewSkillSet returns a SkillSet with all categories initialized to empty lists.
func NewSkillSet() SkillSet {
	set := make(SkillSet, len(SkillCategories()))
	for _, cat := range SkillCategories() {
		set[cat] = []string{}
	}
	return set
}

// Total returns the number of matched skills across all categories.
func (s SkillSet) Total() int {
	total := 0
	for _, skills := range s {
		total += len(skills)
	}
	return total
}

// TechnicalCount returns the number of skills in the technical categories
// (Programming, AI/ML, Web Development).
func (s SkillSet) TechnicalCount() int {
	return len(s[CategoryProgramming]) + len(s[CategoryAIML]) + len(s[CategoryWebDevelopment])
}

// SoftCount returns the number of soft skills.
func (s SkillSet) SoftCount() int {
	return len(s[CategorySoftSkills])
}

// Flatten returns all matched skills as a single list in category order.
func (s SkillSet) Flatten() []string {
	flat := make([]string, 0, s.Total())
	for _, cat := range SkillCategories() {
		flat = append(flat, s[cat]...)
	}
	return flat
}
