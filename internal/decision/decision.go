// Package decision produces the final hiring verdict from the fraud,
// authenticity and eligibility results.
package decision

import "github.com/jonathan/resume-screener/internal/types"

// AuthenticityStatus buckets an AI-likelihood score.
type AuthenticityStatus string

const (
	AuthenticityAIGenerated AuthenticityStatus = "AI-Generated"
	AuthenticityAIAssisted  AuthenticityStatus = "Possibly AI-Assisted"
	AuthenticityHuman       AuthenticityStatus = "Human-Written"
)

// Authenticity classifies an AI score: 70 and above is generated, 40
// and above possibly assisted, anything lower human-written.
func Authenticity(aiScore float64) AuthenticityStatus {
	switch {
	case aiScore >= 70:
		return AuthenticityAIGenerated
	case aiScore >= 40:
		return AuthenticityAIAssisted
	default:
		return AuthenticityHuman
	}
}

// Decide applies the rejection gates in order of severity: fraud
// first, then AI authorship, then eligibility. A candidate that clears
// all three is shortlisted. Possibly AI-Assisted is tolerated; only an
// outright AI-Generated verdict rejects.
func Decide(aiScore float64, fraud types.FraudResult, eligibility types.EligibilityResult) types.Decision {
	authenticity := Authenticity(aiScore)

	if fraud.Score >= 60 {
		return types.Decision{
			Verdict:      types.VerdictRejected,
			Reason:       "High fraud probability detected",
			Authenticity: string(authenticity),
		}
	}

	if authenticity == AuthenticityAIGenerated {
		return types.Decision{
			Verdict:      types.VerdictRejected,
			Reason:       "Resume appears to be AI-generated",
			Authenticity: string(authenticity),
		}
	}

	if !eligibility.Eligible {
		return types.Decision{
			Verdict:      types.VerdictRejected,
			Reason:       eligibility.Message,
			Authenticity: string(authenticity),
		}
	}

	return types.Decision{
		Verdict:      types.VerdictShortlisted,
		Reason:       "Passed all criteria",
		Authenticity: string(authenticity),
	}
}
