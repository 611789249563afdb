package api

import (
	"encoding/json"
	"net/http"

	"github.com/triviahq/trivia-api/internal/logger"
	"github.com/triviahq/trivia-api/models"
	"go.uber.org/zap"
)

// Envelope is the JSON body written for failures.
type Envelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

const (
	MessageNotFound         = "resource not found"
	MessageUnprocessable    = "unprocessable"
	MessageMethodNotAllowed = "method not allowed"
	MessageBadRequest       = "bad request"
	MessageInternal         = "internal server error"
)

// StatusFor maps an error kind to its HTTP status and client message.
func StatusFor(kind models.ErrorKind) (int, string) {
	switch kind {
	case models.KindNotFound:
		return http.StatusNotFound, MessageNotFound
	case models.KindUnprocessable:
		return http.StatusUnprocessableEntity, MessageUnprocessable
	case models.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed, MessageMethodNotAllowed
	case models.KindBadRequest:
		return http.StatusBadRequest, MessageBadRequest
	default:
		return http.StatusInternalServerError, MessageInternal
	}
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Get().Error("failed to encode response", zap.Error(err))
	}
}

// WriteSuccess writes fields with "success": true and status 200.
func WriteSuccess(w http.ResponseWriter, fields map[string]any) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true
	WriteJSON(w, http.StatusOK, body)
}

// WriteError writes the failure envelope for err. The cause is logged, never sent.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := StatusFor(models.KindOf(err))

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		logger.Get().Error("request failed", fields...)
	} else {
		logger.Get().Warn("request rejected", fields...)
	}

	WriteJSON(w, status, Envelope{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// NotFound answers unknown routes with the JSON envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, models.NewNotFoundError("no route for "+r.URL.Path))
}

// MethodNotAllowed answers known routes requested with an unsupported verb.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, models.NewError(models.KindMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path, nil))
}

// QuestionMaps serializes questions for a response body.
func QuestionMaps(questions []models.Question) []map[string]any {
	out := make([]map[string]any, len(questions))
	for i := range questions {
		out[i] = questions[i].ToMap()
	}
	return out
}
