// Package adminhttp serves the operational HTTP surface next to the MCP
// transport: liveness and a config summary for debugging deployments.
package adminhttp

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rs/cors"
)

// ConfigSummary is the non-secret subset of configuration exposed on the
// admin endpoint.
type ConfigSummary struct {
	UpstreamBaseURL string `json:"upstream_base_url"`
	BookingBaseURL  string `json:"booking_base_url"`
	DefaultLocale   string `json:"default_locale"`
	GazetteerSize   int    `json:"gazetteer_size"`
}

// Handlers holds dependencies for the admin HTTP handlers.
type Handlers struct {
	summary ConfigSummary
	logger  *slog.Logger
}

// NewHandlers creates the admin handler set.
func NewHandlers(summary ConfigSummary, logger *slog.Logger) *Handlers {
	return &Handlers{
		summary: summary,
		logger:  logger.With("component", "adminhttp_handler"),
	}
}

// Handler returns the admin mux wrapped with permissive CORS so browser
// dashboards can poll it.
func (h *Handlers) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /admin/config", h.handleConfig)
	return cors.Default().Handler(mux)
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handlers) handleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.summary); err != nil {
		h.logger.Error("Failed to encode config summary", slog.Any("error", err))
	}
}
