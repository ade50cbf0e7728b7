package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

const (
	// ProjectListLimit caps GET /api/projects.
	ProjectListLimit = 100
	// FeaturedListLimit caps GET /api/projects/featured.
	FeaturedListLimit = 10
)

// ProjectService is the business logic for portfolio projects.
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	ListFeatured(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	// Create validates in, assigns an id and both timestamps, and stores it.
	Create(ctx context.Context, in model.ProjectInput) (*model.Project, error)
	// Update validates in and overwrites the project's fields, refreshing
	// only updated_at. Returns repository.ErrNotFound for an unknown id.
	Update(ctx context.Context, id string, in model.ProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}
