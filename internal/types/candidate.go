package types

// Candidate is the aggregate consumed by the ranker. DepartmentScore and
// OverallScore are derived values; the ranker recomputes them on every call
// rather than trusting stored copies.
type Candidate struct {
	Name            string      `json:"name"`
	Department      string      `json:"department"`
	RankingScore    float64     `json:"ranking_score"`
	ExperienceYears float64     `json:"experience_years"`
	EducationLevel  DegreeLevel `json:"education_level"`
	Skills          SkillSet    `json:"skills"`
	DepartmentScore float64     `json:"department_score"`
	OverallScore    float64     `json:"overall_score"`
}

// CandidateProfile is the flattened view of a candidate used for
// eligibility scoring against a department's requirements.
type CandidateProfile struct {
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Education       string   `json:"education"`
	WorkExperience  string   `json:"work_experience"`
}
