package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeStore struct {
	name     string
	names    []string
	namesErr error
}

func (f *fakeStore) Name() string { return f.name }

func (f *fakeStore) CollectionNames(ctx context.Context) ([]string, error) {
	if f.namesErr != nil {
		return nil, f.namesErr
	}
	return f.names, nil
}

func runDiagnostics(t *testing.T, store DiagnosticsStore) diagnosticsResponse {
	t.Helper()
	h := NewDiagnosticsHandler(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	h.Diagnostics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("diagnostics status = %d, want 200", rec.Code)
	}

	var resp diagnosticsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp
}

func TestDiagnosticsWithoutDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	resp := runDiagnostics(t, nil)

	if resp.Backend != "✅ Running" {
		t.Errorf("backend = %q", resp.Backend)
	}
	if resp.Database != "❌ Not Available" {
		t.Errorf("database = %q", resp.Database)
	}
	if resp.ConnectionStatus != "Not Connected" {
		t.Errorf("connection_status = %q", resp.ConnectionStatus)
	}
	if resp.DatabaseURL != "❌ Not Set" || resp.DatabaseName != "❌ Not Set" {
		t.Errorf("env status = %q / %q, want Not Set", resp.DatabaseURL, resp.DatabaseName)
	}
	if len(resp.Collections) != 0 {
		t.Errorf("collections = %v, want empty", resp.Collections)
	}
}

func TestDiagnosticsHealthyDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "seedcodes")

	resp := runDiagnostics(t, &fakeStore{
		name:  "seedcodes",
		names: []string{"project"},
	})

	if resp.Database != "✅ Connected & Working" {
		t.Errorf("database = %q", resp.Database)
	}
	if resp.ConnectionStatus != "Connected" {
		t.Errorf("connection_status = %q", resp.ConnectionStatus)
	}
	if resp.DatabaseURL != "✅ Set" || resp.DatabaseName != "✅ Set" {
		t.Errorf("env status = %q / %q, want Set", resp.DatabaseURL, resp.DatabaseName)
	}
	if len(resp.Collections) != 1 || resp.Collections[0] != "project" {
		t.Errorf("collections = %v", resp.Collections)
	}
	// Presence flags must never leak the configured values.
	if strings.Contains(resp.DatabaseURL, "mongodb://") || strings.Contains(resp.DatabaseName, "seedcodes") {
		t.Error("diagnostics leaked configuration values")
	}
}

func TestDiagnosticsUnreachableDatabaseNeverFails(t *testing.T) {
	resp := runDiagnostics(t, &fakeStore{
		name:     "seedcodes",
		namesErr: errors.New("server selection error: context deadline exceeded, no reachable servers"),
	})

	if !strings.HasPrefix(resp.Database, "⚠️  Connected but Error: ") {
		t.Errorf("database = %q, want connected-but-erroring status", resp.Database)
	}
	// The error detail is truncated to 50 characters.
	detail := strings.TrimPrefix(resp.Database, "⚠️  Connected but Error: ")
	if len(detail) > 50 {
		t.Errorf("error detail %d chars, want at most 50", len(detail))
	}
}

func TestDiagnosticsCapsCollectionList(t *testing.T) {
	var names []string
	for i := 0; i < 15; i++ {
		names = append(names, fmt.Sprintf("coll%d", i))
	}

	resp := runDiagnostics(t, &fakeStore{name: "seedcodes", names: names})

	if len(resp.Collections) != 10 {
		t.Errorf("collections = %d entries, want 10", len(resp.Collections))
	}
}
