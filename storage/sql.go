// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/idea-board/models"
)

// SQLStore persists ideas over database/sql. The same implementation
// serves sqlite and postgres: $1-style placeholders are valid on both
// drivers, and created_at is stored as unix nanoseconds so ordering and
// round-trips are exact regardless of driver time handling.
type SQLStore struct {
	db *sql.DB
}

var _ Store = (*SQLStore)(nil)

// OpenSQL opens a database with the given driver name ("sqlite" or
// "postgres"), verifies the connection and creates the schema.
func OpenSQL(driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	store, err := NewSQLStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLStore wraps an already-open connection and creates the schema.
// Safe to call multiple times - uses IF NOT EXISTS.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

const schema = `
-- Ideas
CREATE TABLE IF NOT EXISTS idea (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    upvotes BIGINT NOT NULL DEFAULT 0 CHECK (upvotes >= 0),
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_idea_rank ON idea(upvotes, created_at);

-- Status Checks
CREATE TABLE IF NOT EXISTS status_check (
    id TEXT PRIMARY KEY,
    client_name TEXT NOT NULL,
    created_at BIGINT NOT NULL
);
`

func (s *SQLStore) InsertIdea(ctx context.Context, idea models.Idea) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO idea (id, text, upvotes, created_at)
		VALUES ($1, $2, $3, $4)
	`, idea.ID, idea.Text, idea.Upvotes, idea.CreatedAt.UTC().UnixNano())

	if err != nil {
		return fmt.Errorf("failed to insert idea: %w", err)
	}
	return nil
}

func (s *SQLStore) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, upvotes, created_at
		FROM idea
		ORDER BY upvotes DESC, created_at DESC
		LIMIT $1
	`, listCap)
	if err != nil {
		return nil, fmt.Errorf("failed to query ideas: %w", err)
	}
	defer rows.Close()

	ideas := []models.Idea{}
	for rows.Next() {
		var idea models.Idea
		var createdNs int64
		if err := rows.Scan(&idea.ID, &idea.Text, &idea.Upvotes, &createdNs); err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		idea.CreatedAt = time.Unix(0, createdNs).UTC()
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ideas: %w", err)
	}
	return ideas, nil
}

func (s *SQLStore) UpvoteIdea(ctx context.Context, id string) (models.Idea, error) {
	// Single UPDATE ... RETURNING statement keeps the increment atomic.
	var idea models.Idea
	var createdNs int64
	err := s.db.QueryRowContext(ctx, `
		UPDATE idea
		SET upvotes = upvotes + 1
		WHERE id = $1
		RETURNING id, text, upvotes, created_at
	`, id).Scan(&idea.ID, &idea.Text, &idea.Upvotes, &createdNs)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Idea{}, ErrNotFound
	}
	if err != nil {
		return models.Idea{}, fmt.Errorf("failed to upvote idea: %w", err)
	}
	idea.CreatedAt = time.Unix(0, createdNs).UTC()
	return idea, nil
}

func (s *SQLStore) InsertStatusCheck(ctx context.Context, check models.StatusCheck) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO status_check (id, client_name, created_at)
		VALUES ($1, $2, $3)
	`, check.ID, check.ClientName, check.Timestamp.UTC().UnixNano())

	if err != nil {
		return fmt.Errorf("failed to insert status check: %w", err)
	}
	return nil
}

func (s *SQLStore) ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_name, created_at
		FROM status_check
		ORDER BY created_at
		LIMIT $1
	`, listCap)
	if err != nil {
		return nil, fmt.Errorf("failed to query status checks: %w", err)
	}
	defer rows.Close()

	checks := []models.StatusCheck{}
	for rows.Next() {
		var check models.StatusCheck
		var createdNs int64
		if err := rows.Scan(&check.ID, &check.ClientName, &createdNs); err != nil {
			return nil, fmt.Errorf("failed to scan status check: %w", err)
		}
		check.Timestamp = time.Unix(0, createdNs).UTC()
		checks = append(checks, check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status checks: %w", err)
	}
	return checks, nil
}

func (s *SQLStore) Close(ctx context.Context) error {
	return s.db.Close()
}
