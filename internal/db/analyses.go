package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/types"
)

// ErrAnalysisNotFound is returned when an analysis ID does not exist.
var ErrAnalysisNotFound = errors.New("analysis not found")

// SaveAnalysis stores one completed analysis.
func (db *DB) SaveAnalysis(ctx context.Context, analysis *types.Analysis) error {
	personalInfo, err := json.Marshal(analysis.PersonalInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal personal info: %w", err)
	}
	skills, err := json.Marshal(analysis.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	experience, err := json.Marshal(analysis.Experience)
	if err != nil {
		return fmt.Errorf("failed to marshal experience: %w", err)
	}
	education, err := json.Marshal(analysis.Education)
	if err != nil {
		return fmt.Errorf("failed to marshal education: %w", err)
	}
	fraudResult, err := json.Marshal(analysis.Fraud)
	if err != nil {
		return fmt.Errorf("failed to marshal fraud result: %w", err)
	}

	var eligibility, decision []byte
	if analysis.Eligibility != nil {
		if eligibility, err = json.Marshal(analysis.Eligibility); err != nil {
			return fmt.Errorf("failed to marshal eligibility: %w", err)
		}
	}
	if analysis.Decision != nil {
		if decision, err = json.Marshal(analysis.Decision); err != nil {
			return fmt.Errorf("failed to marshal decision: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_analyses (
			id, filename, candidate_name, candidate_email, department,
			classification_status, ranking_score, fraud_score, experience_years,
			personal_info, skills, experience, education, fraud,
			eligibility, decision, processing_time_ms, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		analysis.ID, analysis.Filename,
		analysis.PersonalInfo.Name, analysis.PersonalInfo.Email,
		analysis.Classification.Department, string(analysis.Classification.Status),
		analysis.Classification.RankingScore, analysis.Fraud.Score,
		analysis.Experience.TotalYears,
		personalInfo, skills, experience, education, fraudResult,
		eligibility, decision,
		analysis.ProcessingTime.Milliseconds(), analysis.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis loads one analysis by ID.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, filename, classification_status, department, ranking_score,
			personal_info, skills, experience, education, fraud,
			eligibility, decision, processing_time_ms, created_at
		 FROM resume_analyses WHERE id = $1`, id)

	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to load analysis %s: %w", id, err)
	}
	return analysis, nil
}

// ListAnalyses returns the most recent analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]*types.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, classification_status, department, ranking_score,
			personal_info, skills, experience, education, fraud,
			eligibility, decision, processing_time_ms, created_at
		 FROM resume_analyses ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	return collectAnalyses(rows)
}

// ListByDepartment returns analyses assigned to one department,
// highest ranking score first.
func (db *DB) ListByDepartment(ctx context.Context, department string, limit int) ([]*types.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, classification_status, department, ranking_score,
			personal_info, skills, experience, education, fraud,
			eligibility, decision, processing_time_ms, created_at
		 FROM resume_analyses
		 WHERE department = $1
		 ORDER BY ranking_score DESC, created_at DESC
		 LIMIT $2`, department, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses for %s: %w", department, err)
	}
	defer rows.Close()

	return collectAnalyses(rows)
}

// Stats summarizes stored analyses for the dashboard endpoint.
type Stats struct {
	TotalAnalyses   int            `json:"total_analyses"`
	AcceptedCount   int            `json:"accepted_count"`
	AverageFraud    float64        `json:"average_fraud_score"`
	ByDepartment    map[string]int `json:"by_department"`
	AverageRanking  float64        `json:"average_ranking_score"`
	LatestCreatedAt *time.Time     `json:"latest_created_at,omitempty"`
}

// GetStats aggregates counts and averages over all stored analyses.
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByDepartment: map[string]int{}}

	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE classification_status = 'Accepted'),
			COALESCE(AVG(fraud_score), 0),
			COALESCE(AVG(ranking_score), 0),
			MAX(created_at)
		 FROM resume_analyses`).
		Scan(&stats.TotalAnalyses, &stats.AcceptedCount, &stats.AverageFraud,
			&stats.AverageRanking, &stats.LatestCreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT department, COUNT(*) FROM resume_analyses GROUP BY department`)
	if err != nil {
		return nil, fmt.Errorf("failed to load department stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var department string
		var count int
		if err := rows.Scan(&department, &count); err != nil {
			return nil, fmt.Errorf("failed to scan department stats: %w", err)
		}
		stats.ByDepartment[department] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read department stats: %w", err)
	}
	return stats, nil
}

func collectAnalyses(rows pgx.Rows) ([]*types.Analysis, error) {
	var analyses []*types.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}
	return analyses, nil
}

func scanAnalysis(row pgx.Row) (*types.Analysis, error) {
	var analysis types.Analysis
	var status string
	var personalInfo, skills, experience, education, fraudResult []byte
	var eligibility, decision []byte
	var processingMS int64

	err := row.Scan(&analysis.ID, &analysis.Filename, &status,
		&analysis.Classification.Department, &analysis.Classification.RankingScore,
		&personalInfo, &skills, &experience, &education, &fraudResult,
		&eligibility, &decision, &processingMS, &analysis.CreatedAt)
	if err != nil {
		return nil, err
	}

	analysis.Classification.Status = types.Status(status)
	analysis.ProcessingTime = time.Duration(processingMS) * time.Millisecond

	if err := json.Unmarshal(personalInfo, &analysis.PersonalInfo); err != nil {
		return nil, fmt.Errorf("corrupt personal_info: %w", err)
	}
	if err := json.Unmarshal(skills, &analysis.Skills); err != nil {
		return nil, fmt.Errorf("corrupt skills: %w", err)
	}
	if err := json.Unmarshal(experience, &analysis.Experience); err != nil {
		return nil, fmt.Errorf("corrupt experience: %w", err)
	}
	if err := json.Unmarshal(education, &analysis.Education); err != nil {
		return nil, fmt.Errorf("corrupt education: %w", err)
	}
	if err := json.Unmarshal(fraudResult, &analysis.Fraud); err != nil {
		return nil, fmt.Errorf("corrupt fraud result: %w", err)
	}
	if len(eligibility) > 0 {
		analysis.Eligibility = &types.EligibilityResult{}
		if err := json.Unmarshal(eligibility, analysis.Eligibility); err != nil {
			return nil, fmt.Errorf("corrupt eligibility: %w", err)
		}
	}
	if len(decision) > 0 {
		analysis.Decision = &types.Decision{}
		if err := json.Unmarshal(decision, analysis.Decision); err != nil {
			return nil, fmt.Errorf("corrupt decision: %w", err)
		}
	}
	return &analysis, nil
}
