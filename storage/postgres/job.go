package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/storage"
)

// JobRepository implements storage.JobRepository for Postgres.
type JobRepository struct {
	store *Store
}

var _ storage.JobRepository = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository.
func NewJobRepository(store *Store) *JobRepository {
	return &JobRepository{store: store}
}

// Close is a no-op; the repository holds no resources beyond the store.
func (r *JobRepository) Close() error {
	return nil
}

// WithTransaction delegates to the store.
func (r *JobRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.store.WithTransaction(ctx, fn)
}

// CreateJob stores a new job record.
func (r *JobRepository) CreateJob(ctx context.Context, job *core.IngestionJob) (*core.IngestionJob, error) {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := r.store.DB.ExecContext(ctx,
		`INSERT INTO ingestion_jobs (id, created_at, record) VALUES ($1,$2,$3)`,
		job.Id, job.CreatedAt, storage.MarshalJob(job))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, storage.ErrDuplicateKey
		}
		return nil, err
	}
	return job, nil
}

// GetJob retrieves a single job by ID.
func (r *JobRepository) GetJob(ctx context.Context, id string) (*core.IngestionJob, error) {
	var record []byte
	err := r.store.DB.QueryRowContext(ctx,
		`SELECT record FROM ingestion_jobs WHERE id=$1`, id).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return storage.UnmarshalJob(record)
}

// UpdateJob applies fn to the current stored job record and writes the
// result back within one transaction. The row is locked for the duration so
// pipeline progress updates never clobber each other.
func (r *JobRepository) UpdateJob(ctx context.Context, id string, fn func(job *core.IngestionJob) error) (*core.IngestionJob, error) {
	tx, err := r.store.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var record []byte
	err = tx.QueryRowContext(ctx,
		`SELECT record FROM ingestion_jobs WHERE id=$1 FOR UPDATE`, id).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	job, err := storage.UnmarshalJob(record)
	if err != nil {
		return nil, err
	}
	if err := fn(job); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE ingestion_jobs SET record=$2 WHERE id=$1`, id, storage.MarshalJob(job))
	if err != nil {
		return nil, err
	}
	return job, tx.Commit()
}

// GetRecentJobs retrieves the N most recently created jobs, most recent first.
func (r *JobRepository) GetRecentJobs(ctx context.Context, limit int) ([]*core.IngestionJob, error) {
	rows, err := r.store.DB.QueryContext(ctx,
		`SELECT record FROM ingestion_jobs ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*core.IngestionJob
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, err
		}
		job, err := storage.UnmarshalJob(record)
		if err != nil {
			return nil, err
		}
		results = append(results, job)
	}
	return results, rows.Err()
}
