package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxUploadBytes caps resume uploads. Real resumes are well under this.
const maxUploadBytes = 16 << 20

// TokenRequest is the request body for /auth/token
type TokenRequest struct {
	AdminKey string `json:"admin_key" validate:"required"`
}

// TokenResponse is the response for /auth/token
type TokenResponse struct {
	Token          string    `json:"token"`
	TokenType      string    `json:"token_type"`
	ClientID       uuid.UUID `json:"client_id"`
	ExpiresInHours int       `json:"expires_in_hours"`
}

// AnalyzeRequest is the JSON request body for /analyze. File uploads
// use multipart/form-data instead, with the same department field.
type AnalyzeRequest struct {
	Text       string `json:"text" validate:"required"`
	Filename   string `json:"filename,omitempty"`
	Department string `json:"department,omitempty"`
}

// RankingsResponse is the response for /rankings
type RankingsResponse struct {
	Department string            `json:"department,omitempty"`
	Candidates []types.Candidate `json:"candidates"`
}

// DepartmentsResponse is the response for /departments
type DepartmentsResponse struct {
	Departments []config.Department `json:"departments"`
}

// handleAuthToken exchanges the admin key for a JWT bearer token.
func (s *Server) handleAuthToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if !s.adminKeys.VerifyKey(req.AdminKey) {
		err := &ErrInvalidAdminKey{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	clientID := uuid.New()
	token, err := s.jwtService.GenerateToken(clientID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, TokenResponse{
		Token:          token,
		TokenType:      "Bearer",
		ClientID:       clientID,
		ExpiresInHours: s.jwtService.config.ExpirationHours,
	})
}

// handleAnalyze runs the analysis pipeline over a submitted resume.
// The body is either JSON with raw text or multipart/form-data with a
// "resume" file. Results are persisted when a database is configured.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	text, filename, department, err := s.parseAnalyzeRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if department != "" {
		if _, ok := s.analyzer.Departments().Get(department); !ok {
			notFound := &ErrDepartmentNotFound{Name: department}
			s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
			return
		}
	}

	var analysis *types.Analysis
	if department == "" {
		analysis = s.analyzer.Analyze(text, filename)
	} else {
		analysis = s.analyzer.AnalyzeForDepartment(text, filename, department)
	}

	if s.db != nil {
		if err := s.db.SaveAnalysis(r.Context(), analysis); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save analysis: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// parseAnalyzeRequest extracts resume text from either request format.
func (s *Server) parseAnalyzeRequest(r *http.Request) (text, filename, department string, err error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return s.parseAnalyzeUpload(r)
	}

	var req AnalyzeRequest
	if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
		return "", "", "", &ErrValidation{Field: "body", Message: "invalid JSON: " + decodeErr.Error()}
	}
	if validateErr := s.validator.Struct(req); validateErr != nil {
		return "", "", "", &ErrValidation{Field: "text", Message: "required"}
	}
	return req.Text, req.Filename, req.Department, nil
}

func (s *Server) parseAnalyzeUpload(r *http.Request) (text, filename, department string, err error) {
	if parseErr := r.ParseMultipartForm(maxUploadBytes); parseErr != nil {
		return "", "", "", &ErrValidation{Field: "body", Message: "invalid multipart form: " + parseErr.Error()}
	}

	file, header, formErr := r.FormFile("resume")
	if formErr != nil {
		return "", "", "", &ErrValidation{Field: "resume", Message: "file is required"}
	}
	defer file.Close()

	data, readErr := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if readErr != nil {
		return "", "", "", fmt.Errorf("failed to read upload: %w", readErr)
	}

	doc, ingestErr := ingestion.Read(data, header.Filename)
	if ingestErr != nil {
		return "", "", "", &ErrValidation{Field: "resume", Message: ingestErr.Error()}
	}

	return doc.Text, doc.Filename, r.FormValue("department"), nil
}

// handleListAnalyses returns stored analyses, newest first. A
// department query parameter filters by assigned department and orders
// by ranking score instead.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	limit := queryInt(r, "limit", 50)
	department := r.URL.Query().Get("department")

	var analyses []*types.Analysis
	var err error
	if department != "" {
		analyses, err = s.db.ListByDepartment(r.Context(), department, limit)
	} else {
		analyses, err = s.db.ListAnalyses(r.Context(), limit)
	}
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// handleGetAnalysis returns one stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleRankings ranks stored accepted candidates. With a department
// query parameter, candidates assigned there are ranked by department
// fit; otherwise all candidates are ranked by blended overall score.
func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	department := r.URL.Query().Get("department")
	topN := queryInt(r, "top", 10)

	var analyses []*types.Analysis
	var err error
	if department != "" {
		analyses, err = s.db.ListByDepartment(r.Context(), department, 500)
	} else {
		analyses, err = s.db.ListAnalyses(r.Context(), 500)
	}
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	candidates := acceptedCandidates(analyses)
	var ranked []types.Candidate
	if department != "" {
		ranked = ranking.ByDepartment(candidates, department, topN)
	} else {
		ranked = ranking.Overall(candidates, topN)
	}

	s.jsonResponse(w, http.StatusOK, RankingsResponse{
		Department: department,
		Candidates: ranked,
	})
}

// handleDepartments lists the configured hiring criteria.
func (s *Server) handleDepartments(w http.ResponseWriter, _ *http.Request) {
	registry := s.analyzer.Departments()
	departments := make([]config.Department, 0, registry.Len())
	for _, name := range registry.Names() {
		if dept, ok := registry.Get(name); ok {
			departments = append(departments, dept)
		}
	}
	s.jsonResponse(w, http.StatusOK, DepartmentsResponse{Departments: departments})
}

// handleStats returns aggregate statistics over stored analyses.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	stats, err := s.db.GetStats(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stats)
}

// requireDB writes a 503 and returns false when no database is
// configured.
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		err := &ErrNoDatabase{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return false
	}
	return true
}

// acceptedCandidates projects accepted analyses into ranker input.
func acceptedCandidates(analyses []*types.Analysis) []types.Candidate {
	candidates := make([]types.Candidate, 0, len(analyses))
	for _, analysis := range analyses {
		if analysis.Classification.Status != types.StatusAccepted {
			continue
		}
		candidates = append(candidates, analysis.Candidate())
	}
	return candidates
}

func queryInt(r *http.Request, key string, fallback int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
