package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

const projectColumns = `id, title, subtitle, description, tech_stack, category, hero_image,
	gallery_images, video_url, challenge, solution, process, results, live_url,
	github_url, featured, created_at, updated_at`

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Subtitle, &p.Description, &p.TechStack, &p.Category, &p.HeroImage,
		&p.GalleryImages, &p.VideoURL, &p.Challenge, &p.Solution, &p.Process, &p.Results, &p.LiveURL,
		&p.GitHubURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

func (r *PgProjectRepository) query(ctx context.Context, sql string, args ...any) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// List returns projects ordered by created_at descending.
func (r *PgProjectRepository) List(ctx context.Context, limit int) ([]*model.Project, error) {
	return r.query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
}

// ListFeatured returns featured projects ordered by created_at descending.
func (r *PgProjectRepository) ListFeatured(ctx context.Context, limit int) ([]*model.Project, error) {
	return r.query(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE featured ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
}

// GetByID returns ErrNotFound when no row has the given id.
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id,
	))
}

// Create inserts the project as given; id and timestamps must already be set.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO projects (`+projectColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		p.ID, p.Title, p.Subtitle, p.Description, nonNil(p.TechStack), p.Category, p.HeroImage,
		nonNil(p.GalleryImages), p.VideoURL, p.Challenge, p.Solution, p.Process, p.Results, p.LiveURL,
		p.GitHubURL, p.Featured, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// Update overwrites every editable column and returns the updated row.
func (r *PgProjectRepository) Update(ctx context.Context, id string, in model.ProjectInput, updatedAt time.Time) (*model.Project, error) {
	return scanProject(r.pool.QueryRow(ctx,
		`UPDATE projects SET
			title = $2, subtitle = $3, description = $4, tech_stack = $5, category = $6,
			hero_image = $7, gallery_images = $8, video_url = $9, challenge = $10,
			solution = $11, process = $12, results = $13, live_url = $14, github_url = $15,
			featured = $16, updated_at = $17
		 WHERE id = $1
		 RETURNING `+projectColumns,
		id, in.Title, in.Subtitle, in.Description, nonNil(in.TechStack), in.Category,
		in.HeroImage, nonNil(in.GalleryImages), in.VideoURL, in.Challenge,
		in.Solution, in.Process, in.Results, in.LiveURL, in.GitHubURL,
		in.Featured, updatedAt,
	))
}

// Delete returns ErrNotFound when no row was removed.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored projects.
func (r *PgProjectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n)
	return n, err
}

// nonNil keeps NOT NULL text[] columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
