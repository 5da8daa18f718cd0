package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cvscore/internal/config"
	"cvscore/internal/errors"
	"cvscore/internal/observability"
	"cvscore/internal/types"
)

func newTestServer(t *testing.T, apiKeys []string, maxRequestSize int64) *Server {
	t.Helper()

	logger, err := errors.New("error")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	appCfg := &config.Config{
		Observability: config.ObservabilityConfig{
			HealthCheck: config.HealthCheckConfig{Timeout: 15 * time.Second},
		},
	}

	return NewServer(appCfg, ServerConfig{
		Host:           "localhost",
		Port:           "8080",
		Version:        "test",
		APIKeys:        apiKeys,
		MaxRequestSize: maxRequestSize,
	}, logger)
}

func newTestObservability(t *testing.T) *observability.ObservabilityManager {
	t.Helper()

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("Failed to create observability manager: %v", err)
	}
	return om
}

func newScoreRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("Failed to write form field %q: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/score", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func testResumeContent() string {
	return `Jane Doe
jane.doe@example.com (555) 123-4567 linkedin.com/in/janedoe

Experience
Led a team of 12 engineers and increased revenue by 40%.

Education
BSc Computer Science

Skills
javascript python react aws docker sql

Projects
Built an internal analytics platform saving 900 hours annually.`
}

func TestScoreHandlerSuccess(t *testing.T) {
	s := newTestServer(t, nil, 10*1024*1024)
	om := newTestObservability(t)
	handler := s.createScoreHandler(om)

	req := newScoreRequest(t, map[string]string{
		"content":  testResumeContent(),
		"filename": "resume.txt",
	})
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", ct)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("Score out of range: %d", result.Score)
	}
	if result.Summary == "" {
		t.Error("Expected a non-empty summary")
	}
	if len(result.Keywords.Present) == 0 {
		t.Errorf("Expected some keywords matched, got present %v", result.Keywords.Present)
	}
}

func TestScoreHandlerWithJobDescription(t *testing.T) {
	s := newTestServer(t, nil, 10*1024*1024)
	om := newTestObservability(t)
	handler := s.createScoreHandler(om)

	req := newScoreRequest(t, map[string]string{
		"content":        testResumeContent(),
		"filename":       "resume.txt",
		"jobDescription": "We need experience with javascript and react and python and docker skills",
	})
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	// Vocabulary is derived from the job description, not the default list
	for _, kw := range append(result.Keywords.Present, result.Keywords.Missing...) {
		if kw == "leadership" || kw == "communication" {
			t.Errorf("Default vocabulary keyword %q leaked into a derived vocabulary", kw)
		}
	}
}

func TestScoreHandlerMissingContent(t *testing.T) {
	s := newTestServer(t, nil, 10*1024*1024)
	om := newTestObservability(t)
	handler := s.createScoreHandler(om)

	req := newScoreRequest(t, map[string]string{"filename": "resume.txt"})
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != "No resume content provided" {
		t.Errorf("Expected error 'No resume content provided', got %q", resp.Error)
	}
}

func TestScoreHandlerShortContent(t *testing.T) {
	s := newTestServer(t, nil, 10*1024*1024)
	om := newTestObservability(t)
	handler := s.createScoreHandler(om)

	req := newScoreRequest(t, map[string]string{"content": "too short to score"})
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != "Resume content is too short for analysis" {
		t.Errorf("Expected error 'Resume content is too short for analysis', got %q", resp.Error)
	}
}

func TestScoreHandlerMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil, 10*1024*1024)
	om := newTestObservability(t)
	handler := s.createScoreHandler(om)

	req := httptest.NewRequest(http.MethodGet, "/score", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rec.Code)
	}
}

func TestScoreHandlerRejectsNonMultipart(t *testing.T) {
	s := newTestServer(t, nil, 10*1024*1024)
	om := newTestObservability(t)
	handler := s.createScoreHandler(om)

	req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(`{"content":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for non-multipart body, got %d", rec.Code)
	}
}

func TestScoreHandlerRequestTooLarge(t *testing.T) {
	s := newTestServer(t, nil, 256)
	om := newTestObservability(t)
	handler := s.requestSizeLimitMiddleware()(s.createScoreHandler(om))

	req := newScoreRequest(t, map[string]string{
		"content": strings.Repeat("padding words for an oversized request body ", 100),
	})
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected status 413, got %d", rec.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer(t, []string{"valid-test-key-123"}, 10*1024*1024)
	om := newTestObservability(t)
	handler := s.authMiddleware(s.createScoreHandler(om))

	t.Run("missing API key", func(t *testing.T) {
		req := newScoreRequest(t, map[string]string{"content": testResumeContent()})
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rec.Code)
		}
	})

	t.Run("invalid API key", func(t *testing.T) {
		req := newScoreRequest(t, map[string]string{"content": testResumeContent()})
		req.Header.Set("X-API-Key", "wrong-key")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rec.Code)
		}
	})

	t.Run("valid API key header", func(t *testing.T) {
		req := newScoreRequest(t, map[string]string{"content": testResumeContent()})
		req.Header.Set("X-API-Key", "valid-test-key-123")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := newScoreRequest(t, map[string]string{"content": testResumeContent()})
		req.Header.Set("Authorization", "Bearer valid-test-key-123")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})

	t.Run("no keys configured skips auth", func(t *testing.T) {
		open := newTestServer(t, nil, 10*1024*1024)
		openHandler := open.authMiddleware(open.createScoreHandler(om))

		req := newScoreRequest(t, map[string]string{"content": testResumeContent()})
		rec := httptest.NewRecorder()
		openHandler(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(t, nil, 10*1024*1024)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.healthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("Expected status healthy, got %v", resp["status"])
	}
	if resp["service"] != "cvscore" {
		t.Errorf("Expected service cvscore, got %v", resp["service"])
	}
}

func TestStatsHandler(t *testing.T) {
	s := newTestServer(t, nil, 10*1024*1024)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	s.statsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode stats response: %v", err)
	}
	if resp["service"] != "cvscore" {
		t.Errorf("Expected service cvscore, got %v", resp["service"])
	}
}
