package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"insights-api/internal/core/port"
	"insights-api/internal/telemetry"
)

// Deps are the use cases and collaborators served by the Handler.
type Deps struct {
	Dashboard port.DashboardUseCase
	Assistant port.AssistantUseCase
	Logger    *slog.Logger
	Metrics   *telemetry.Metrics
}

// Options tunes routing and the protective middleware.
type Options struct {
	// BasePath prefixes every dashboard and AI route, e.g. "/api".
	BasePath string
	// MetricsPath serves the Prometheus registry when Deps.Metrics is set.
	MetricsPath string
	// AllowedOrigins lists CORS origins; "*" allows any. Empty disables CORS.
	AllowedOrigins []string
	// RateLimitRPS and RateLimitBurst bound /ai requests per client IP.
	// A non-positive RPS disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// built on a chi.Router.
type Handler struct {
	dashboard port.DashboardUseCase
	assistant port.AssistantUseCase
	logger    *slog.Logger
	metrics   *telemetry.Metrics
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(deps Deps, opts Options) *Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	h := &Handler{
		dashboard: deps.Dashboard,
		assistant: deps.Assistant,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(h.instrument)
	r.Use(middleware.Recoverer)
	r.Use(cors(opts.AllowedOrigins))

	r.Get("/healthz", h.handleHealth)
	if h.metrics != nil && opts.MetricsPath != "" {
		r.Method(http.MethodGet, opts.MetricsPath, h.metrics.Handler())
	}

	limiter := newRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, 10*time.Minute)

	api := func(r chi.Router) {
		r.Get("/metrics", h.handleMetrics)
		r.Get("/charts", h.handleCharts)
		r.Get("/table", h.handleTable)
		r.Get("/overview", h.handleOverview)

		r.Route("/ai", func(r chi.Router) {
			limited := r.With(h.rateLimit(limiter, fallbackAnalysis))
			limited.Post("/analysis", h.handleAnalysis)
			limited.Post("/insights", h.handleInsights)
			limited.Post("/predictions", h.handlePredictions)
			r.With(h.rateLimit(limiter, fallbackChat)).Post("/chat", h.handleChat)
		})
	}
	if bp := basePath(opts.BasePath); bp == "" {
		r.Group(api)
	} else {
		r.Route(bp, api)
	}

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// basePath normalizes p to "/segment" form, or "" for the root.
func basePath(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
