package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cvscore/internal/engine"
	cvscoreErrors "cvscore/internal/errors"
	"cvscore/internal/observability"
	"cvscore/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("cvscore.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		req, err := parseScoreRequest(r)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeErrorResponse(w, "Request body too large", err.Error(), http.StatusRequestEntityTooLarge)
				return
			}
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if req.Content == "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "No resume content provided", "", http.StatusBadRequest)
			return
		}

		// The filename is informational only, never parsed
		span.SetAttributes(
			attribute.Int("request.content_length", len(req.Content)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("request.filename", req.Filename),
			attribute.String("operation", "score"),
		)
		s.Logger.Info("Scoring resume",
			"filename", req.Filename,
			"content_length", len(req.Content),
			"has_job_description", req.JobDescription != "")

		metrics := om.GetMetrics()
		var result types.AnalysisResult
		err = metrics.TrackAnalysis(ctx, "score", func(ctx context.Context) *observability.AnalysisOutcome {
			output, analyzeErr := engine.Analyze(req.Content, req.JobDescription)
			result = output
			outcome := &observability.AnalysisOutcome{Error: analyzeErr}
			if analyzeErr == nil {
				outcome.Score = output.Score
				outcome.WordCount = len(strings.Fields(req.Content))
				outcome.KeywordsMatched = len(output.Keywords.Present)
			}
			return outcome
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			metrics.RecordBusinessMetric(ctx, "resume_scored", false, om,
				attribute.String("error", err.Error()))
			writeAnalysisError(w, err)
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("resume.score", result.Score),
			attribute.Int("keywords.present", len(result.Keywords.Present)),
			attribute.Int("keywords.missing", len(result.Keywords.Missing)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("resume.score", result.Score),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// writeAnalysisError maps scoring errors to HTTP error responses
func writeAnalysisError(w http.ResponseWriter, err error) {
	var appErr *cvscoreErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case cvscoreErrors.ErrCodeMissingContent:
			writeErrorResponse(w, "No resume content provided", "", http.StatusBadRequest)
			return
		case cvscoreErrors.ErrCodeInsufficientContent:
			writeErrorResponse(w, "Resume content is too short for analysis", "", http.StatusBadRequest)
			return
		}
	}
	writeErrorResponse(w, "Failed to analyze resume", "", http.StatusInternalServerError)
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
