package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"insights-api/internal/core/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// aiFailure is the body of every failed /ai response.
type aiFailure struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Fallback string `json:"fallback"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func writeAIFailure(w http.ResponseWriter, status int, msg, fallback string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(aiFailure{Error: msg, Fallback: fallback})
}

// decode reads a JSON body into dst. On failure it writes HTTP 400 in the
// AI failure shape and returns false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, fallback string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.DebugContext(r.Context(), "invalid request body", slog.Any("error", err))
		writeAIFailure(w, http.StatusBadRequest, "invalid JSON body", fallback)
		return false
	}
	return true
}

// writeAIError maps a use case error to its status and writes the AI
// failure shape.
func (h *Handler) writeAIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := aiStatus(err)
	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	h.logger.Log(r.Context(), level, "ai request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err))

	msg := err.Error()
	switch {
	case errors.Is(err, domain.ErrConfiguration):
		msg = domain.ErrConfiguration.Error()
	case status == http.StatusInternalServerError:
		msg = "internal error"
	}
	writeAIFailure(w, status, msg, fallback)
}

func aiStatus(err error) int {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConfiguration):
		return http.StatusServiceUnavailable
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
