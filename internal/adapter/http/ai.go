package httpadapter

import (
	"net/http"
	"time"

	"insights-api/internal/core/domain"
	"insights-api/internal/core/port"
)

// Fallback texts shown by the client when an AI call fails.
const (
	fallbackAnalysis = "AI analysis is currently unavailable. Please try again later."
	fallbackChat     = "I'm having trouble processing your request right now. Please try again in a moment."
)

type analysisRequest struct {
	Metrics map[string]any `json:"metrics"`
	Type    string         `json:"type"`
}

type chatRequest struct {
	Message             string               `json:"message"`
	Context             map[string]any       `json:"context"`
	ConversationHistory []domain.ChatMessage `json:"conversationHistory"`
}

type predictionRequest struct {
	Metrics   map[string]any `json:"metrics"`
	Timeframe string         `json:"timeframe"`
}

type analysisResponse struct {
	Success   bool      `json:"success"`
	Analysis  string    `json:"analysis"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

type chatResponse struct {
	Success        bool      `json:"success"`
	Response       string    `json:"response"`
	Timestamp      time.Time `json:"timestamp"`
	ConversationID string    `json:"conversationId"`
}

type insightsResponse struct {
	Success   bool             `json:"success"`
	Insights  []domain.Insight `json:"insights"`
	Analysis  string           `json:"analysis"`
	Type      string           `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
}

type predictionsResponse struct {
	Success     bool                `json:"success"`
	Predictions []domain.Prediction `json:"predictions"`
	Analysis    string              `json:"analysis"`
	Timeframe   string              `json:"timeframe"`
	Timestamp   time.Time           `json:"timestamp"`
}

// handleAnalysis runs one analysis template over the posted metrics.
func (h *Handler) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if !h.decode(w, r, &req, fallbackAnalysis) {
		return
	}
	resp, err := h.assistant.Analyze(r.Context(), port.AnalysisReq{Metrics: req.Metrics, Type: req.Type})
	if err != nil {
		h.writeAIError(w, r, err, fallbackAnalysis)
		return
	}
	h.writeJSON(w, http.StatusOK, analysisResponse{
		Success:   true,
		Analysis:  resp.Analysis,
		Type:      resp.Type,
		Timestamp: resp.Timestamp,
	})
}

// handleChat answers a chat message. An empty message yields HTTP 400.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !h.decode(w, r, &req, fallbackChat) {
		return
	}
	resp, err := h.assistant.Chat(r.Context(), port.ChatReq{
		Message: req.Message,
		Context: req.Context,
		History: req.ConversationHistory,
	})
	if err != nil {
		h.writeAIError(w, r, err, fallbackChat)
		return
	}
	h.writeJSON(w, http.StatusOK, chatResponse{
		Success:        true,
		Response:       resp.Response,
		Timestamp:      resp.Timestamp,
		ConversationID: resp.ConversationID,
	})
}

// handleInsights runs an analysis and returns it classified into insights.
func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if !h.decode(w, r, &req, fallbackAnalysis) {
		return
	}
	resp, err := h.assistant.Insights(r.Context(), port.AnalysisReq{Metrics: req.Metrics, Type: req.Type})
	if err != nil {
		h.writeAIError(w, r, err, fallbackAnalysis)
		return
	}
	h.writeJSON(w, http.StatusOK, insightsResponse{
		Success:   true,
		Insights:  nonNil(resp.Insights),
		Analysis:  resp.Analysis,
		Type:      resp.Type,
		Timestamp: resp.Timestamp,
	})
}

// handlePredictions forecasts the posted metrics over a timeframe.
func (h *Handler) handlePredictions(w http.ResponseWriter, r *http.Request) {
	var req predictionRequest
	if !h.decode(w, r, &req, fallbackAnalysis) {
		return
	}
	resp, err := h.assistant.Predictions(r.Context(), port.PredictionReq{Metrics: req.Metrics, Timeframe: req.Timeframe})
	if err != nil {
		h.writeAIError(w, r, err, fallbackAnalysis)
		return
	}
	h.writeJSON(w, http.StatusOK, predictionsResponse{
		Success:     true,
		Predictions: nonNil(resp.Predictions),
		Analysis:    resp.Analysis,
		Timeframe:   resp.Timeframe,
		Timestamp:   resp.Timestamp,
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
