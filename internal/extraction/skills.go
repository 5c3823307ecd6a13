package extraction

import (
	"regexp"

	"github.com/jonathan/resume-screener/internal/types"
)

// skillVocabulary defines, per category, the terms the extractor knows.
// Matched skills are reported in this order regardless of where they
// appear in the text.
var skillVocabulary = []struct {
	category types.SkillCategory
	terms    []string
}{
	{types.CategoryProgramming, []string{
		"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift",
		"kotlin", "go", "rust", "typescript", "scala", "r", "matlab",
	}},
	{types.CategoryWebDevelopment, []string{
		"html", "css", "react", "angular", "vue", "django", "flask",
		"node.js", "express", "spring", "laravel", "bootstrap", "jquery",
	}},
	{types.CategoryDatabase, []string{
		"sql", "mysql", "postgresql", "mongodb", "redis", "oracle",
		"sqlite", "cassandra", "dynamodb", "firebase",
	}},
	{types.CategoryCloudDevOps, []string{
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
		"terraform", "ansible", "git", "ci/cd", "github", "gitlab",
	}},
	{types.CategoryAIML, []string{
		"machine learning", "deep learning", "tensorflow", "pytorch",
		"nlp", "computer vision", "neural networks", "scikit-learn",
		"opencv", "keras",
	}},
	{types.CategoryDataScience, []string{
		"pandas", "numpy", "r", "matplotlib", "seaborn", "tableau",
		"power bi", "excel", "statistics", "analytics",
	}},
	{types.CategorySoftSkills, []string{
		"leadership", "communication", "teamwork", "problem solving",
		"project management", "agile", "scrum", "time management",
		"critical thinking", "creativity", "adaptability",
	}},
	{types.CategoryToolsPlatforms, []string{
		"jira", "confluence", "slack", "teams", "zoom", "notion",
		"trello", "asana", "word", "excel", "powerpoint", "outlook",
	}},
}

// termPatterns holds one word-boundary matcher per vocabulary term,
// compiled once at init.
var termPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, group := range skillVocabulary {
		for _, term := range group.terms {
			if _, ok := termPatterns[term]; ok {
				continue
			}
			termPatterns[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		}
	}
}

// Skills matches the known vocabulary against the text. A term found
// anywhere counts once, regardless of frequency or context. Every
// category is present in the result, empty when nothing matched.
func Skills(text string) types.SkillSet {
	found := types.NewSkillSet()
	if text == "" {
		return found
	}

	for _, group := range skillVocabulary {
		for _, term := range group.terms {
			if termPatterns[term].MatchString(text) {
				found[group.category] = append(found[group.category], term)
			}
		}
	}
	return found
}
