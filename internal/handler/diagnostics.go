package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"seedcodes/internal/httputil"
)

// DiagnosticsStore is the slice of the database handle the diagnostics
// endpoint needs. A nil store means no database is configured.
type DiagnosticsStore interface {
	Name() string
	CollectionNames(ctx context.Context) ([]string, error)
}

// DiagnosticsHandler reports backend and database status for the
// workspace viewer. It must never fail: every internal error is rendered
// as a human-readable status string.
type DiagnosticsHandler struct {
	store  DiagnosticsStore
	logger *slog.Logger
}

// NewDiagnosticsHandler creates a new diagnostics handler. store may be nil.
func NewDiagnosticsHandler(store DiagnosticsStore, logger *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		store:  store,
		logger: logger,
	}
}

type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics checks whether the database is available and accessible
// GET /test
func (h *DiagnosticsHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	resp := diagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store != nil {
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		names, err := h.store.CollectionNames(ctx)
		cancel()

		if err != nil {
			resp.Database = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), 50))
			h.logger.Warn("diagnostics collection listing failed", "error", err)
		} else {
			resp.Database = "✅ Connected & Working"
			if len(names) > 10 {
				names = names[:10]
			}
			resp.Collections = names
		}
	}

	// Presence only, never the values.
	resp.DatabaseURL = envStatus("DATABASE_URL")
	resp.DatabaseName = envStatus("DATABASE_NAME")

	httputil.RespondJSON(w, http.StatusOK, resp)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
