package types

// Status is the accept/reject outcome of classification.
type Status string

const (
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)

// ClassificationResult is the output of department classification.
type ClassificationResult struct {
	Status       Status  `json:"status"`
	Department   string  `json:"department"`
	RankingScore float64 `json:"ranking_score"`
}

// FraudResult is the output of fraud/authenticity scoring. Findings are
// ordered by check evaluation order, not severity.
type FraudResult struct {
	Score    float64  `json:"score"`
	Findings []string `json:"findings"`
}

// ScoreBreakdown itemizes the weighted components of an eligibility score.
type ScoreBreakdown struct {
	SkillScore      float64 `json:"skill_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`
	ProjectsScore   float64 `json:"projects_score"`
}

// EligibilityResult is the output of department-weighted eligibility scoring.
type EligibilityResult struct {
	TotalScore           float64        `json:"total_score"`
	SkillMatchPercentage float64        `json:"skill_match_percentage"`
	Breakdown            ScoreBreakdown `json:"breakdown"`
	Eligible             bool           `json:"eligible"`
	MinScoreRequired     float64        `json:"min_score_required"`
	Message              string         `json:"message"`
}

// Verdict is the final hiring outcome.
type Verdict string

const (
	VerdictShortlisted Verdict = "Shortlisted"
	VerdictRejected    Verdict = "Rejected"
)

// Decision is the final verdict with its reason and the authenticity
// classification that fed into it.
type Decision struct {
	Verdict      Verdict `json:"verdict"`
	Reason       string  `json:"reason"`
	Authenticity string  `json:"authenticity"`
}
