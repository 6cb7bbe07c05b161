package domain

import (
	"context"

	"seedcodes/internal/models"
)

// ProjectRepository is the storage contract for project records.
// Implemented by repository/mongodb; services depend only on this interface.
type ProjectRepository interface {
	// Insert stores a project and returns the identifier assigned by the
	// store, rendered as text.
	Insert(ctx context.Context, project *models.Project) (string, error)

	// List returns at most limit projects in the store's natural order.
	// A non-empty tag restricts results to projects whose tag list
	// contains it; an empty tag matches everything.
	List(ctx context.Context, tag string, limit int64) ([]models.Project, error)

	// Count reports the number of stored projects.
	Count(ctx context.Context) (int64, error)
}
