package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/types"
)

const testAdminKey = "test-admin-key"

const sampleResume = `JOHN DOE
john.doe@email.com | (555) 123-4567

EXPERIENCE
Senior Software Engineer at TechCorp (2020-2024)
Software Developer at StartupInc (2018-2020)

SKILLS
Python, JavaScript, React, Django, PostgreSQL, AWS, Docker

EDUCATION
Bachelor of Science in Computer Science, State University (2016-2020)`

// newTestServer builds a server with no database and rate limiting off.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	hash, err := config.HashAdminKey(testAdminKey, 10)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_KEY_HASH", hash)
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(Config{Port: 8080})
	require.NoError(t, err)
	t.Cleanup(func() { s.rateLimiter.Stop() })
	return s
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func authToken(t *testing.T, s *Server) string {
	t.Helper()

	body, err := json.Marshal(TokenRequest{AdminKey: testAdminKey})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/auth/token", bytes.NewReader(body))
	rec := doRequest(s, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func authedRequest(t *testing.T, s *Server, method, target string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+authToken(t, s))
	return req
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "not configured", resp["database"])
}

func TestAuthToken_InvalidKey(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(TokenRequest{AdminKey: "wrong-key"})
	rec := doRequest(s, httptest.NewRequest("POST", "/auth/token", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthToken_MissingKey(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, httptest.NewRequest("POST", "/auth/token", bytes.NewReader([]byte("{}"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_RequiresAuth(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{Text: sampleResume})
	rec := doRequest(s, httptest.NewRequest("POST", "/analyze", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAnalyze_JSON(t *testing.T) {
	s := newTestServer(t)

	body, err := json.Marshal(AnalyzeRequest{
		Text:       sampleResume,
		Filename:   "john_doe.txt",
		Department: "Software Engineering",
	})
	require.NoError(t, err)

	rec := doRequest(s, authedRequest(t, s, "POST", "/analyze", body))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var analysis types.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "john.doe@email.com", analysis.PersonalInfo.Email)
	assert.Equal(t, types.StatusAccepted, analysis.Classification.Status)
	require.NotNil(t, analysis.Eligibility)
	require.NotNil(t, analysis.Decision)
}

func TestAnalyze_NoDepartmentSkipsEligibility(t *testing.T) {
	s := newTestServer(t)

	body, err := json.Marshal(AnalyzeRequest{Text: sampleResume})
	require.NoError(t, err)

	rec := doRequest(s, authedRequest(t, s, "POST", "/analyze", body))

	require.Equal(t, http.StatusOK, rec.Code)
	var analysis types.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Nil(t, analysis.Eligibility)
	assert.Nil(t, analysis.Decision)
}

func TestAnalyze_UnknownDepartment(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{Text: sampleResume, Department: "Astrology"})
	rec := doRequest(s, authedRequest(t, s, "POST", "/analyze", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyze_MissingText(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, authedRequest(t, s, "POST", "/analyze", []byte("{}")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_MultipartUpload(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "john_doe.txt")
	require.NoError(t, err)
	fmt.Fprint(part, sampleResume)
	require.NoError(t, writer.WriteField("department", "Software Engineering"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+authToken(t, s))
	rec := doRequest(s, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var analysis types.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "john_doe.txt", analysis.Filename)
	assert.Equal(t, "JOHN DOE", analysis.PersonalInfo.Name)
	require.NotNil(t, analysis.Eligibility)
}

func TestStoredEndpoints_NoDatabase(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/analyses", "/rankings", "/stats"} {
		t.Run(target, func(t *testing.T) {
			rec := doRequest(s, authedRequest(t, s, "GET", target, nil))

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		})
	}
}

func TestDepartments(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, authedRequest(t, s, "GET", "/departments", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DepartmentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Departments, 7)
	assert.Equal(t, "Software Engineering", resp.Departments[0].Name)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrInvalidAdminKey{}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrDepartmentNotFound{Name: "X"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "text", Message: "required"}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrNoDatabase{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}
