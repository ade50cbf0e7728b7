package repository

import (
	"context"
	"time"

	"github.com/portfolio/backend/internal/model"
)

// DB reports whether the underlying store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// ProjectRepository persists projects keyed by their application id.
type ProjectRepository interface {
	// List returns projects newest first, at most limit of them.
	List(ctx context.Context, limit int) ([]*model.Project, error)
	// ListFeatured is List restricted to featured projects.
	ListFeatured(ctx context.Context, limit int) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	// Update overwrites the editable fields and updated_at of the project
	// with the given id and returns the stored result.
	Update(ctx context.Context, id string, in model.ProjectInput, updatedAt time.Time) (*model.Project, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ContactRepository persists contact messages. Messages are never updated
// or deleted once saved.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, limit int) ([]*model.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}

// Schema creates and tears down the collections and their unique id indexes.
type Schema interface {
	Ensure(ctx context.Context) error
	Drop(ctx context.Context) error
}
