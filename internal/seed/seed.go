// Package seed fills empty collections with the sample portfolio shown on a
// fresh install.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// Result reports how many records were inserted per collection.
type Result struct {
	Projects int
	Contacts int
}

// Seeder inserts sample records into empty collections.
type Seeder struct {
	projects repository.ProjectRepository
	contacts repository.ContactRepository
	now      func() time.Time
	newID    func() string
}

// New creates a Seeder. now is typically service.Now.
func New(projects repository.ProjectRepository, contacts repository.ContactRepository, now func() time.Time) *Seeder {
	return &Seeder{projects: projects, contacts: contacts, now: now, newID: uuid.NewString}
}

// Run seeds each collection only if it holds no records.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	n, err := s.projects.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("count projects: %w", err)
	}
	if n == 0 {
		for _, p := range s.sampleProjects() {
			if err := s.projects.Create(ctx, p); err != nil {
				return res, fmt.Errorf("seed project %q: %w", p.Title, err)
			}
			res.Projects++
		}
		slog.Info("seeded sample projects", "count", res.Projects)
	}

	n, err = s.contacts.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("count contacts: %w", err)
	}
	if n == 0 {
		for _, m := range s.sampleContacts() {
			if err := s.contacts.Save(ctx, m); err != nil {
				return res, fmt.Errorf("seed contact %q: %w", m.Subject, err)
			}
			res.Contacts++
		}
		slog.Info("seeded sample contact messages", "count", res.Contacts)
	}

	return res, nil
}

// sampleProjects stamps the fixtures one second apart so that the first
// fixture sorts newest.
func (s *Seeder) sampleProjects() []*model.Project {
	now := s.now()
	out := make([]*model.Project, 0, len(projectFixtures))
	for i, in := range projectFixtures {
		at := now.Add(-time.Duration(i) * time.Second)
		in.TechStack = append([]string(nil), in.TechStack...)
		in.GalleryImages = append([]string(nil), in.GalleryImages...)
		out = append(out, &model.Project{
			ID:           s.newID(),
			ProjectInput: in,
			CreatedAt:    at,
			UpdatedAt:    at,
		})
	}
	return out
}

func (s *Seeder) sampleContacts() []*model.ContactMessage {
	now := s.now()
	out := make([]*model.ContactMessage, 0, len(contactFixtures))
	for _, in := range contactFixtures {
		out = append(out, &model.ContactMessage{
			ID:           s.newID(),
			ContactInput: in,
			CreatedAt:    now,
			Status:       model.ContactStatusUnread,
		})
	}
	return out
}
