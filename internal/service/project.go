package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"seedcodes/internal/domain"
	"seedcodes/internal/models"
)

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	GithubURL   string   `json:"github_url"`
	LiveURL     string   `json:"live_url"`
	Thumbnail   string   `json:"thumbnail"`
}

// ProjectService implements project creation and listing.
type ProjectService struct {
	repo   domain.ProjectRepository
	logger *slog.Logger
}

// NewProjectService creates a new project service. repo may be nil when no
// database is configured; operations then fail with ErrNotConfigured.
func NewProjectService(repo domain.ProjectRepository, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates the request and stores a new project, returning the
// identifier assigned by the store.
func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest) (string, error) {
	if s.repo == nil {
		return "", domain.ErrNotConfigured
	}

	if err := s.validateCreateRequest(req); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project := &models.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Tags:        req.Tags,
		GithubURL:   req.GithubURL,
		LiveURL:     req.LiveURL,
		Thumbnail:   req.Thumbnail,
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}

	id, err := s.repo.Insert(ctx, project)
	if err != nil {
		return "", err
	}

	s.logger.Info("project created",
		"id", id,
		"title", project.Title,
	)

	return id, nil
}

// List retrieves at most limit projects, optionally filtered by tag.
func (s *ProjectService) List(ctx context.Context, tag string, limit int64) ([]models.Project, error) {
	if s.repo == nil {
		return nil, domain.ErrNotConfigured
	}

	projects, err := s.repo.List(ctx, tag, limit)
	if err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

func (s *ProjectService) validateCreateRequest(req *CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, 200),
			validation.By(validateNotBlank),
		),
		validation.Field(&req.GithubURL, is.URL),
		validation.Field(&req.LiveURL, is.URL),
		validation.Field(&req.Thumbnail, is.URL),
	)
}

// validateNotBlank rejects values that are empty after trimming.
func validateNotBlank(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}
