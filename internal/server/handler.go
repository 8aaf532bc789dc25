package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"campus-assistant/internal/assistant/classifier"
	apperrors "campus-assistant/internal/common/errors"
)

// querySchema constrains the request body: a single non-empty question
// string and nothing else.
var querySchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"question": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
			"maxLength": 1000,
		},
	},
	"required":             []interface{}{"question"},
	"additionalProperties": false,
}

type queryRequest struct {
	Question string `json:"question"`
}

type queryResponse struct {
	RequestID string `json:"requestId"`
	Category  string `json:"category"`
	Answer    string `json:"answer"`
}

type errorResponse struct {
	RequestID string   `json:"requestId"`
	ErrorCode string   `json:"errorCode"`
	Message   string   `json:"message"`
	Details   []string `json:"details,omitempty"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.New().String()
	log := s.logger.WithFields(map[string]interface{}{"requestId": requestID})

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			RequestID: requestID,
			ErrorCode: string(apperrors.ErrCodeInvalidRequest),
			Message:   "request body must be valid JSON",
		})
		return
	}

	if details, err := validateQueryBody(body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			RequestID: requestID,
			ErrorCode: string(apperrors.ErrCodeInvalidRequest),
			Message:   "invalid query request",
			Details:   details,
		})
		return
	}

	question := body["question"].(string)
	intent := classifier.Classify(question)

	ctx, cancel := context.WithTimeout(r.Context(), s.config.QueryTimeout)
	defer cancel()

	start := time.Now()
	answer := s.answerer.Execute(ctx, intent)

	if s.history != nil {
		s.history.Record(ctx, question, intent.Category)
	}

	log.Info("query processed", map[string]interface{}{
		"category":   string(intent.Category),
		"durationMs": time.Since(start).Milliseconds(),
	})

	s.writeJSON(w, http.StatusOK, queryResponse{
		RequestID: requestID,
		Category:  string(intent.Category),
		Answer:    answer,
	})
}

// validateQueryBody checks the decoded body against querySchema and, on
// failure, returns one human-readable line per violation.
func validateQueryBody(body map[string]interface{}) ([]string, error) {
	schemaLoader := gojsonschema.NewGoLoader(querySchema)
	documentLoader := gojsonschema.NewGoLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, apperrors.NewInvalidRequestError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		return details, apperrors.NewInvalidRequestError(strings.Join(details, "; "))
	}

	// The schema admits whitespace-only questions; reject them here so the
	// pipeline never sees a blank query.
	if question, _ := body["question"].(string); strings.TrimSpace(question) == "" {
		return []string{"question: must not be blank"}, apperrors.NewInvalidRequestError("question must not be blank")
	}
	return nil, nil
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.history == nil {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{"enabled": false})
		return
	}

	stats, err := s.history.Stats(r.Context())
	if err != nil {
		s.logger.Error("stats read failed", map[string]interface{}{"error": err.Error()})
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			ErrorCode: string(apperrors.ErrCodeInternal),
			Message:   "failed to read query stats",
		})
		return
	}

	recent, err := s.history.Recent(r.Context(), 10)
	if err != nil {
		s.logger.Error("recent read failed", map[string]interface{}{"error": err.Error()})
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			ErrorCode: string(apperrors.ErrCodeInternal),
			Message:   "failed to read recent questions",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"enabled":    true,
		"categories": stats,
		"recent":     recent,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string, len(s.pingers))
	healthy := true
	for name, pinger := range s.pingers {
		if err := pinger.Ping(r.Context()); err != nil {
			checks[name] = "unhealthy: " + err.Error()
			healthy = false
			continue
		}
		checks[name] = "healthy"
	}

	status := http.StatusOK
	overall := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}
	s.writeJSON(w, status, map[string]interface{}{
		"status": overall,
		"time":   time.Now().Format(time.RFC3339),
		"checks": checks,
	})
}

// writeJSON renders a response body. Encode failures cannot be surfaced to
// the client at this point (the status line is already written), so they are
// logged like every other best-effort failure.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", map[string]interface{}{"error": err.Error()})
	}
}
