package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Document is a resume file reduced to analyzable text.
type Document struct {
	Filename string    `json:"filename"`
	Text     string    `json:"text"`
	Metadata *Metadata `json:"metadata"`
}

// Metadata records provenance for an ingested resume. The hash covers
// the cleaned text, so re-ingesting an identical resume under a new
// filename is detectable.
type Metadata struct {
	Filename   string `json:"filename"`
	IngestedAt string `json:"ingested_at"` // RFC3339
	Hash       string `json:"hash"`        // SHA256 hex digest of cleaned text
	Characters int    `json:"characters"`
}

// NewMetadata stamps metadata for cleaned resume text.
func NewMetadata(text, filename string) *Metadata {
	digest := sha256.Sum256([]byte(text))
	return &Metadata{
		Filename:   filename,
		IngestedAt: time.Now().UTC().Format(time.RFC3339),
		Hash:       hex.EncodeToString(digest[:]),
		Characters: len(text),
	}
}

// ToJSON serializes metadata for storage alongside analysis results.
func (m *Metadata) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return data, nil
}
