package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"seedcodes/internal/domain"
	"seedcodes/internal/models"
)

// ProjectCollection is the collection backing project records.
const ProjectCollection = "project"

// projectDocument is the storage representation of a project. It is the
// only place bson tags and ObjectIDs appear; everything above the
// repository speaks models.Project with a text id.
type projectDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Tags        []string           `bson:"tags"`
	GithubURL   string             `bson:"github_url,omitempty"`
	LiveURL     string             `bson:"live_url,omitempty"`
	Thumbnail   string             `bson:"thumbnail,omitempty"`
}

func newProjectDocument(p *models.Project) projectDocument {
	return projectDocument{
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		GithubURL:   p.GithubURL,
		LiveURL:     p.LiveURL,
		Thumbnail:   p.Thumbnail,
	}
}

func (d projectDocument) toModel() models.Project {
	p := models.Project{
		Title:       d.Title,
		Description: d.Description,
		Tags:        d.Tags,
		GithubURL:   d.GithubURL,
		LiveURL:     d.LiveURL,
		Thumbnail:   d.Thumbnail,
	}
	if !d.ID.IsZero() {
		p.ID = d.ID.Hex()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

// ProjectRepository implements domain.ProjectRepository on a mongo database.
type ProjectRepository struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewProjectRepository creates a project repository bound to the project
// collection of the given database.
func NewProjectRepository(db *mongo.Database, logger *slog.Logger) *ProjectRepository {
	return &ProjectRepository{
		coll:   db.Collection(ProjectCollection),
		logger: logger,
	}
}

// Insert stores a project and returns the assigned ObjectID as hex.
func (r *ProjectRepository) Insert(ctx context.Context, project *models.Project) (string, error) {
	res, err := r.coll.InsertOne(ctx, newProjectDocument(project))
	if err != nil {
		return "", fmt.Errorf("insert project: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert project: unexpected id type %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

// List retrieves at most limit projects in natural order, optionally
// filtered to those whose tag list contains tag.
func (r *ProjectRepository) List(ctx context.Context, tag string, limit int64) ([]models.Project, error) {
	filter := bson.M{}
	if tag != "" {
		filter["tags"] = bson.M{"$in": bson.A{tag}}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []projectDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	projects := make([]models.Project, 0, len(docs))
	for _, d := range docs {
		projects = append(projects, d.toModel())
	}

	return projects, nil
}

// Count reports the number of stored projects.
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

// compile-time interface check
var _ domain.ProjectRepository = (*ProjectRepository)(nil)
