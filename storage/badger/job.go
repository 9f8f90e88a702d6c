package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/storage"
)

// JobRepository implements storage.JobRepository for BadgerDB.
type JobRepository struct {
	backend *Backend
}

var _ storage.JobRepository = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository.
func NewJobRepository(backend *Backend) *JobRepository {
	return &JobRepository{
		backend: backend,
	}
}

// Close is a no-op; the repository holds no resources beyond the backend.
func (r *JobRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *JobRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// CreateJob stores a new job record.
func (r *JobRepository) CreateJob(ctx context.Context, job *core.IngestionJob) (*core.IngestionJob, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeJobKey(job.Id)

		existing, err := r.readJob(tx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			return storage.ErrDuplicateKey
		}

		if job.CreatedAt.IsZero() {
			job.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
		}

		value := storage.MarshalJob(job)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		dateKey := makeJobDateKey(job.CreatedAt, job.Id)
		if err := tx.Set(dateKey, []byte(job.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return job, err
}

// GetJob retrieves a single job by ID.
func (r *JobRepository) GetJob(ctx context.Context, id string) (*core.IngestionJob, error) {
	var result *core.IngestionJob
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeJobKey(id)
		var err error
		result, err = r.readJob(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// UpdateJob applies fn to the current stored job record and writes the
// result back within one transaction. The pipeline interleaves with polling
// readers, so job mutation is read-modify-write rather than blind overwrite.
func (r *JobRepository) UpdateJob(ctx context.Context, id string, fn func(job *core.IngestionJob) error) (*core.IngestionJob, error) {
	var result *core.IngestionJob
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeJobKey(id)

		job, err := r.readJob(tx, key)
		if err != nil {
			return err
		}
		if job == nil {
			return storage.ErrNotFound
		}

		if err := fn(job); err != nil {
			return err
		}

		value := storage.MarshalJob(job)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		result = job
		return tx.Commit()
	}, true)

	return result, err
}

// GetRecentJobs retrieves the N most recently created jobs, most recent first.
func (r *JobRepository) GetRecentJobs(ctx context.Context, limit int) ([]*core.IngestionJob, error) {
	var results []*core.IngestionJob
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past every possible date key, then walk backwards
		startKey := makePartialJobDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(jobDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var jobID string
			if err := iter.Item().Value(func(val []byte) error {
				jobID = string(val)
				return nil
			}); err != nil {
				return err
			}

			job, err := r.readJob(tx, makeJobKey(jobID))
			if err != nil {
				return err
			}
			if job != nil {
				results = append(results, job)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// readJob reads a job record from the transaction.
// Returns nil, nil when the key does not exist.
func (r *JobRepository) readJob(tx *badger.Txn, key []byte) (*core.IngestionJob, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var job *core.IngestionJob
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		job, unmarshalErr = storage.UnmarshalJob(val)
		return unmarshalErr
	})
	return job, err
}
