package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"seedcodes/internal/domain"
	"seedcodes/internal/models"
	"seedcodes/internal/seed"
	"seedcodes/internal/service"
)

func newTestSeedHandler(repo domain.ProjectRepository) *SeedHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSeedHandler(service.NewSeedService(repo, seed.Projects, logger), logger)
}

func TestSeedEndpointOnEmptyStore(t *testing.T) {
	repo := &fakeRepo{}
	h := newTestSeedHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	rec := httptest.NewRecorder()
	h.Seed(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var result service.SeedResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !result.Seeded {
		t.Error("seeded = false, want true")
	}
	if result.Inserted != 4 {
		t.Errorf("inserted = %d, want 4", result.Inserted)
	}
}

func TestSeedEndpointOnPopulatedStore(t *testing.T) {
	repo := &fakeRepo{projects: []models.Project{{Title: "existing"}}}
	h := newTestSeedHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	rec := httptest.NewRecorder()
	h.Seed(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result service.SeedResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.Seeded {
		t.Error("seeded = true on populated store")
	}
	if result.Existing != 1 {
		t.Errorf("existing = %d, want 1", result.Existing)
	}
}

func TestSeedEndpointSurfacesCountError(t *testing.T) {
	repo := &fakeRepo{countErr: errors.New("server selection timeout")}
	h := newTestSeedHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	rec := httptest.NewRecorder()
	h.Seed(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestSeedEndpointNotConfigured(t *testing.T) {
	h := newTestSeedHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	rec := httptest.NewRecorder()
	h.Seed(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result service.SeedResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.Seeded {
		t.Error("seeded = true without a database")
	}
	if result.Reason != "database not configured" {
		t.Errorf("reason = %q", result.Reason)
	}
}
