// Copyright 2026 Sodapelangi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/sodapelangi/regulatorai-sub000/core"
)

// Store wraps the shared database handle used by the repositories.
// Records are stored in the same binary encoding the BadgerDB backend uses,
// with relational columns alongside for indexing.
type Store struct {
	DB *sql.DB
}

// New constructs the Store from the DATABASE_URL environment variable, or
// from the individual POSTGRES_* variables when it is unset.
func New(ctx context.Context) (*Store, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := getenvDefault("POSTGRES_HOST", "localhost")
		port := getenvDefault("POSTGRES_PORT", "5432")
		user := os.Getenv("POSTGRES_USER")
		pass := os.Getenv("POSTGRES_PASSWORD")
		db := os.Getenv("POSTGRES_DB")
		ssl := getenvDefault("POSTGRES_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, db, ssl)
	}
	return NewWithDSN(ctx, dsn)
}

// NewWithDSN constructs the Store using an explicit Postgres DSN.
func NewWithDSN(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	s := &Store{DB: db}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id BIGINT PRIMARY KEY,
			inserted_at TIMESTAMPTZ NOT NULL,
			record BYTEA NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS documents_inserted_at_idx ON documents (inserted_at DESC)`,
		`CREATE TABLE IF NOT EXISTS chunks (
			id BIGINT PRIMARY KEY,
			document_id BIGINT NOT NULL,
			level INT NOT NULL,
			seq INT NOT NULL,
			embedded BOOLEAN NOT NULL DEFAULT FALSE,
			record BYTEA NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS chunks_document_idx ON chunks (document_id, level, seq)`,
		`CREATE TABLE IF NOT EXISTS ingestion_jobs (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			record BYTEA NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ingestion_jobs_created_at_idx ON ingestion_jobs (created_at DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// WithTransaction executes fn within a database transaction.
// Implements the storage.Repository transaction contract.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(ctx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

// IDs are unsigned 64-bit hashes; BIGINT holds them through a stable
// two's-complement round trip.
func idToInt64(id core.ID) int64 {
	return int64(id)
}
