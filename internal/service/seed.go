package service

import (
	"context"
	"log/slog"

	"seedcodes/internal/domain"
	"seedcodes/internal/models"
)

// SeedResult reports what a seeding run did. Seeding is best-effort:
// per-record insert failures are collected here instead of aborting.
type SeedResult struct {
	Seeded   bool     `json:"seeded"`
	Reason   string   `json:"reason,omitempty"`
	Existing int64    `json:"existing,omitempty"`
	Inserted int      `json:"inserted,omitempty"`
	Failures []string `json:"failures,omitempty"`
}

// SeedService populates an empty project collection with the embedded
// sample set.
//
// The empty-check and the inserts are not atomic: two processes starting
// against the same empty store can both pass the check and double-insert.
// That matches the routine's best-effort contract and is intentionally
// left unguarded.
type SeedService struct {
	repo    domain.ProjectRepository
	samples func() []models.Project
	logger  *slog.Logger
}

// NewSeedService creates a seed service. repo may be nil when no database
// is configured; Run then reports not-seeded without error.
func NewSeedService(repo domain.ProjectRepository, samples func() []models.Project, logger *slog.Logger) *SeedService {
	return &SeedService{
		repo:    repo,
		samples: samples,
		logger:  logger,
	}
}

// Run checks collection emptiness and inserts the sample set if empty.
// Individual insert failures do not stop the loop; they are reported in
// the result. Only the emptiness check itself can return an error.
func (s *SeedService) Run(ctx context.Context) (*SeedResult, error) {
	if s.repo == nil {
		return &SeedResult{Seeded: false, Reason: "database not configured"}, nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		return &SeedResult{
			Seeded:   false,
			Reason:   "collection already has data",
			Existing: count,
		}, nil
	}

	result := &SeedResult{}
	for _, sample := range s.samples() {
		p := sample
		if _, err := s.repo.Insert(ctx, &p); err != nil {
			s.logger.Warn("seed insert failed",
				"title", p.Title,
				"error", err,
			)
			result.Failures = append(result.Failures, err.Error())
			continue
		}
		result.Inserted++
	}

	result.Seeded = result.Inserted > 0

	s.logger.Info("seeding complete",
		"inserted", result.Inserted,
		"failed", len(result.Failures),
	)

	return result, nil
}
