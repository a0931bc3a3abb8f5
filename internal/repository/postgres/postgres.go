package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	pool *pgxpool.Pool
}

// NewConnection returns *Storage so the pool is shared
func NewConnection(connString string) (*Storage, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	return &Storage{
		pool: pool,
	}, nil
}

// Init creates the tables the service needs when they do not exist yet.
func (s *Storage) Init(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS courses (
			id text PRIMARY KEY,
			name text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS professors (
			id text PRIMARY KEY,
			name text NOT NULL,
			national_code text,
			mobile text,
			prefer_days integer[] NOT NULL,
			days text NOT NULL,
			courses text[] NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		);
	`

	_, err := s.pool.Exec(ctx, schema)
	return err
}

// Close closes the database connection pool
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
