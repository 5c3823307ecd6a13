package types

import (
	"encoding/json"
	"fmt"
)

// DegreeLevel ranks degree tiers on an ordinal scale. Comparisons between
// degrees anywhere in the system rely on this ordering.
type DegreeLevel int

const (
	DegreeUnknown DegreeLevel = iota
	DegreeDiploma
	DegreeBachelors
	DegreeMasters
	DegreePhD
)

var degreeNames = map[DegreeLevel]string{
	DegreeUnknown:   "Unknown",
	DegreeDiploma:   "Diploma",
	DegreeBachelors: "Bachelors",
	DegreeMasters:   "Masters",
	DegreePhD:       "PhD",
}

// String returns the display name for the degree level.
func (d DegreeLevel) String() string {
	if name, ok := degreeNames[d]; ok {
		return name
	}
	return "Unknown"
}

// ParseDegreeLevel converts a display name back to a DegreeLevel.
// Unrecognized names map to DegreeUnknown.
func ParseDegreeLevel(name string) DegreeLevel {
	for level, n := range degreeNames {
		if n == name {
			return level
		}
	}
	return DegreeUnknown
}

// MarshalJSON encodes the degree level as its display name.
func (d DegreeLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a degree level from its display name.
func (d *DegreeLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("degree level must be a string: %w", err)
	}
	*d = ParseDegreeLevel(name)
	return nil
}

// Education holds the academic background extracted from a resume.
type Education struct {
	HighestDegree DegreeLevel   `json:"highest_degree"`
	Degrees       []DegreeLevel `json:"degrees"`
	Institutions  []string      `json:"institutions"`
}
