package handler

import (
	"log/slog"
	"net/http"

	"seedcodes/internal/httputil"
	"seedcodes/internal/service"
)

// SeedHandler exposes the seeding routine over HTTP.
type SeedHandler struct {
	seedService *service.SeedService
	logger      *slog.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seedService *service.SeedService, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
		logger:      logger,
	}
}

// Seed triggers the seeding routine on demand
// POST /api/seed
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seedService.Run(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
