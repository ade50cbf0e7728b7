package handler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// memProjectRepo is an in-memory repository.ProjectRepository.
type memProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*model.Project
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: map[string]*model.Project{}}
}

func (m *memProjectRepo) sorted(filter func(*model.Project) bool, limit int) []*model.Project {
	var out []*model.Project
	for _, p := range m.projects {
		if filter(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (m *memProjectRepo) List(ctx context.Context, limit int) ([]*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(*model.Project) bool { return true }, limit), nil
}

func (m *memProjectRepo) ListFeatured(ctx context.Context, limit int) ([]*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(p *model.Project) bool { return p.Featured }, limit), nil
}

func (m *memProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProjectRepo) Create(ctx context.Context, project *model.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *project
	m.projects[project.ID] = &cp
	return nil
}

func (m *memProjectRepo) Update(ctx context.Context, id string, in model.ProjectInput, updatedAt time.Time) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.ProjectInput = in
	p.UpdatedAt = updatedAt
	cp := *p
	return &cp, nil
}

func (m *memProjectRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

func (m *memProjectRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.projects)), nil
}

// recordingContactRepo is an in-memory repository.ContactRepository.
type recordingContactRepo struct {
	mu    sync.Mutex
	saved []*model.ContactMessage
}

func (r *recordingContactRepo) Save(ctx context.Context, msg *model.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *msg
	r.saved = append(r.saved, &cp)
	return nil
}

func (r *recordingContactRepo) List(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.ContactMessage
	for i := len(r.saved) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.saved[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *recordingContactRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.saved)), nil
}
