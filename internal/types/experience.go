package types

// Experience holds the work-history estimate extracted from a resume.
// TotalYears is a span between the earliest and latest 4-digit year found
// in the text, so it approximates career span rather than months worked.
type Experience struct {
	TotalYears float64  `json:"total_years"`
	Positions  []string `json:"positions"`
	Companies  []string `json:"companies"`
}
