package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

// stubRow feeds canned column values through the pgx.Row interface.
type stubRow struct {
	values []any
}

func (r stubRow) Scan(dest ...any) error {
	for i, value := range r.values {
		switch d := dest[i].(type) {
		case *uuid.UUID:
			*d = value.(uuid.UUID)
		case *string:
			*d = value.(string)
		case *float64:
			*d = value.(float64)
		case *int64:
			*d = value.(int64)
		case *[]byte:
			if value == nil {
				*d = nil
			} else {
				*d = value.([]byte)
			}
		case *time.Time:
			*d = value.(time.Time)
		}
	}
	return nil
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestScanAnalysis_RoundTrip(t *testing.T) {
	id := uuid.New()
	createdAt := time.Now().UTC().Truncate(time.Millisecond)

	skills := types.NewSkillSet()
	skills[types.CategoryProgramming] = []string{"python"}

	original := types.Analysis{
		ID:           id,
		Filename:     "resume.pdf",
		PersonalInfo: types.PersonalInfo{Name: "Jane Roe", Email: "jane@example.com"},
		Skills:       skills,
		Experience:   types.Experience{TotalYears: 4, Positions: []string{"Engineer"}, Companies: []string{"Initech"}},
		Education:    types.Education{HighestDegree: types.DegreeBachelors, Degrees: []types.DegreeLevel{types.DegreeBachelors}, Institutions: []string{"State University"}},
		Classification: types.ClassificationResult{
			Status: types.StatusAccepted, Department: "IT", RankingScore: 72,
		},
		Fraud:       types.FraudResult{Score: 10, Findings: []string{"Very short resume content"}},
		Eligibility: &types.EligibilityResult{TotalScore: 75, Eligible: true, Message: "Eligible for shortlisting"},
		Decision:    &types.Decision{Verdict: types.VerdictShortlisted, Reason: "Passed all criteria", Authenticity: "Human-Written"},
	}

	row := stubRow{values: []any{
		original.ID, original.Filename, string(original.Classification.Status),
		original.Classification.Department, original.Classification.RankingScore,
		mustJSON(t, original.PersonalInfo), mustJSON(t, original.Skills),
		mustJSON(t, original.Experience), mustJSON(t, original.Education),
		mustJSON(t, original.Fraud), mustJSON(t, original.Eligibility),
		mustJSON(t, original.Decision), int64(1500), createdAt,
	}}

	loaded, err := scanAnalysis(row)

	require.NoError(t, err)
	assert.Equal(t, original.ID, loaded.ID)
	assert.Equal(t, original.PersonalInfo, loaded.PersonalInfo)
	assert.Equal(t, original.Skills, loaded.Skills)
	assert.Equal(t, original.Experience, loaded.Experience)
	assert.Equal(t, original.Education, loaded.Education)
	assert.Equal(t, original.Classification, loaded.Classification)
	assert.Equal(t, original.Fraud, loaded.Fraud)
	require.NotNil(t, loaded.Eligibility)
	assert.Equal(t, *original.Eligibility, *loaded.Eligibility)
	require.NotNil(t, loaded.Decision)
	assert.Equal(t, *original.Decision, *loaded.Decision)
	assert.Equal(t, 1500*time.Millisecond, loaded.ProcessingTime)
	assert.Equal(t, createdAt, loaded.CreatedAt)
}

func TestScanAnalysis_NullEligibilityAndDecision(t *testing.T) {
	row := stubRow{values: []any{
		uuid.New(), "resume.txt", "Rejected", "General", 15.0,
		mustJSON(t, types.PersonalInfo{}), mustJSON(t, types.NewSkillSet()),
		mustJSON(t, types.Experience{}), mustJSON(t, types.Education{}),
		mustJSON(t, types.FraudResult{Findings: []string{}}),
		nil, nil, int64(0), time.Now(),
	}}

	loaded, err := scanAnalysis(row)

	require.NoError(t, err)
	assert.Nil(t, loaded.Eligibility)
	assert.Nil(t, loaded.Decision)
	assert.Equal(t, types.StatusRejected, loaded.Classification.Status)
}
