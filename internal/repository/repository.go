package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultDatabaseName is used when neither the URL nor the config names a database.
const DefaultDatabaseName = "portfolio_db"

// Store bundles the repositories of one backend together with its
// connection handle.
type Store struct {
	Backend  string
	Projects ProjectRepository
	Contacts ContactRepository
	Schema   Schema
	DB       DB

	close func(ctx context.Context) error
}

// Close releases the connection handle.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the store named by databaseURL. mongodb:// and
// mongodb+srv:// URLs select MongoDB; postgres:// and postgresql:// select
// PostgreSQL. databaseName only applies to MongoDB and may be empty.
func Open(ctx context.Context, databaseURL, databaseName string) (*Store, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		if databaseName == "" {
			databaseName = DatabaseNameFromURL(u)
		}
		return openMongo(ctx, databaseURL, databaseName)
	case "postgres", "postgresql":
		return openPostgres(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}

// DatabaseNameFromURL returns the first path segment of u, or
// DefaultDatabaseName when the path is empty.
func DatabaseNameFromURL(u *url.URL) string {
	name := strings.Trim(u.Path, "/")
	if i := strings.Index(name, "/"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return DefaultDatabaseName
	}
	return name
}

// NewPool creates a PostgreSQL connection pool and verifies it with a ping.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func openPostgres(ctx context.Context, connString string) (*Store, error) {
	pool, err := NewPool(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &Store{
		Backend:  "postgres",
		Projects: NewPgProjectRepository(pool),
		Contacts: NewPgContactRepository(pool),
		Schema:   NewPgSchema(pool),
		DB:       pool,
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}
