package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Analysis is the full record produced by one pipeline run over a resume.
type Analysis struct {
	ID             uuid.UUID            `json:"id"`
	Filename       string               `json:"filename,omitempty"`
	PersonalInfo   PersonalInfo         `json:"personal_info"`
	Skills         SkillSet             `json:"skills"`
	Experience     Experience           `json:"experience"`
	Education      Education            `json:"education"`
	Classification ClassificationResult `json:"classification"`
	Fraud          FraudResult          `json:"fraud"`
	Eligibility    *EligibilityResult   `json:"eligibility,omitempty"`
	Decision       *Decision            `json:"decision,omitempty"`
	ProcessingTime time.Duration        `json:"processing_time"`
	CreatedAt      time.Time            `json:"created_at"`
}

// Candidate projects the analysis into the aggregate the ranker consumes.
func (a *Analysis) Candidate() Candidate {
	return Candidate{
		Name:            a.PersonalInfo.Name,
		Department:      a.Classification.Department,
		RankingScore:    a.Classification.RankingScore,
		ExperienceYears: a.Experience.TotalYears,
		EducationLevel:  a.Education.HighestDegree,
		Skills:          a.Skills,
	}
}

// Profile projects the analysis into the flattened view used for
// eligibility scoring. The education text combines degree names and
// institution lines so keyword requirements can match either.
func (a *Analysis) Profile() CandidateProfile {
	eduLines := make([]string, 0, len(a.Education.Degrees)+len(a.Education.Institutions))
	for _, degree := range a.Education.Degrees {
		eduLines = append(eduLines, degree.String())
	}
	eduLines = append(eduLines, a.Education.Institutions...)

	return CandidateProfile{
		Skills:          a.Skills.Flatten(),
		ExperienceYears: a.Experience.TotalYears,
		Education:       strings.Join(eduLines, "\n"),
		WorkExperience:  strings.Join(a.Experience.Positions, "\n"),
	}
}
