package httpadapter

import (
	"log/slog"
	"net/http"

	"insights-api/internal/core/query"
)

// handleMetrics returns the KPI snapshots keyed by metric name.
func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.dashboard.Metrics(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "metrics error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch metrics")
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

// handleCharts returns the revenue, traffic and conversion series.
func (h *Handler) handleCharts(w http.ResponseWriter, r *http.Request) {
	c, err := h.dashboard.Charts(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "charts error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch chart data")
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleTable returns one page of campaigns. It accepts page, limit, sortBy,
// sortOrder and search plus the optional minRevenue, maxRevenue, minClicks,
// maxClicks, dateFrom and dateTo filters. Malformed values fall back to
// their defaults rather than failing the request.
func (h *Handler) handleTable(w http.ResponseWriter, r *http.Request) {
	page, err := h.dashboard.QueryCampaigns(r.Context(), query.ParseValues(r.URL.Query()))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "table error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch table data")
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

// handleOverview returns metrics, charts and the first table page at once.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.dashboard.Overview(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "overview error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}
	h.writeJSON(w, http.StatusOK, ov)
}
