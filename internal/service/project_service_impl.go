package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/validation"
)

// ProjectServiceImpl implements ProjectService.
type ProjectServiceImpl struct {
	projectRepo repository.ProjectRepository
	now         func() time.Time
	newID       func() string
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo, now: Now, newID: uuid.NewString}
}

// Now returns the current time in the precision every store can hold.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *ProjectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.List(ctx, ProjectListLimit)
}

func (s *ProjectServiceImpl) ListFeatured(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.ListFeatured(ctx, FeaturedListLimit)
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *ProjectServiceImpl) Create(ctx context.Context, in model.ProjectInput) (*model.Project, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := s.now()
	project := &model.Project{
		ID:           s.newID(),
		ProjectInput: in,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, id string, in model.ProjectInput) (*model.Project, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return s.projectRepo.Update(ctx, id, in, s.now())
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}
