package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/storage"
)

// ChunkRepository implements storage.ChunkRepository for Postgres.
type ChunkRepository struct {
	store *Store
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
func NewChunkRepository(store *Store) *ChunkRepository {
	return &ChunkRepository{store: store}
}

// Close is a no-op; the repository holds no resources beyond the store.
func (r *ChunkRepository) Close() error {
	return nil
}

// WithTransaction delegates to the store.
func (r *ChunkRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.store.WithTransaction(ctx, fn)
}

// PutChunks upserts one or more chunks. Chunk identities are deterministic
// per (document, level, position), so a retried ingestion run overwrites the
// same rows instead of duplicating them.
func (r *ChunkRepository) PutChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error) {
	tx, err := r.store.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Microsecond)
	for _, chunk := range chunks {
		var record []byte
		err := tx.QueryRowContext(ctx,
			`SELECT record FROM chunks WHERE id=$1`, idToInt64(chunk.Id)).Scan(&record)
		switch {
		case err == nil:
			old, unmarshalErr := storage.UnmarshalChunk(record)
			if unmarshalErr != nil {
				return nil, unmarshalErr
			}
			chunk.InsertedAt = old.InsertedAt
		case errors.Is(err, sql.ErrNoRows):
			if chunk.InsertedAt.IsZero() {
				chunk.InsertedAt = now
			}
		default:
			return nil, err
		}
		chunk.UpdatedAt = now

		_, err = tx.ExecContext(ctx, `
INSERT INTO chunks (id, document_id, level, seq, embedded, record) VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (id) DO UPDATE SET
  document_id = EXCLUDED.document_id,
  level = EXCLUDED.level,
  seq = EXCLUDED.seq,
  embedded = EXCLUDED.embedded,
  record = EXCLUDED.record`,
			idToInt64(chunk.Id), idToInt64(chunk.DocumentID), chunk.Level, chunk.Seq,
			len(chunk.Vector) > 0, storage.MarshalChunk(chunk))
		if err != nil {
			return nil, err
		}
	}

	return chunks, tx.Commit()
}

// GetChunk retrieves a single chunk by ID.
func (r *ChunkRepository) GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error) {
	var record []byte
	err := r.store.DB.QueryRowContext(ctx,
		`SELECT record FROM chunks WHERE id=$1`, idToInt64(id)).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return storage.UnmarshalChunk(record)
}

// GetChunksByDocument retrieves all chunks of a document, ordered by level
// then document-order position.
func (r *ChunkRepository) GetChunksByDocument(ctx context.Context, docID core.ID) ([]*core.Chunk, error) {
	rows, err := r.store.DB.QueryContext(ctx, `
SELECT record FROM chunks WHERE document_id=$1 ORDER BY level, seq`, idToInt64(docID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*core.Chunk
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, err
		}
		chunk, err := storage.UnmarshalChunk(record)
		if err != nil {
			return nil, err
		}
		results = append(results, chunk)
	}
	return results, rows.Err()
}

// DeleteChunksByDocument removes all chunks of a document.
// Returns the number of chunks removed.
func (r *ChunkRepository) DeleteChunksByDocument(ctx context.Context, docID core.ID) (int, error) {
	res, err := r.store.DB.ExecContext(ctx,
		`DELETE FROM chunks WHERE document_id=$1`, idToInt64(docID))
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

// FindSimilar finds chunks similar to the given vector. Vectors are
// normalized at write time, so the dot product is the cosine similarity.
// Chunks without an embedding are skipped.
func (r *ChunkRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	rows, err := r.store.DB.QueryContext(ctx, `SELECT record FROM chunks WHERE embedded`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*core.SearchResult
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, err
		}
		chunk, err := storage.UnmarshalChunk(record)
		if err != nil {
			return nil, err
		}
		if len(chunk.Vector) != len(vector) {
			continue
		}

		var score float32
		for i, v := range vector {
			score += v * chunk.Vector[i]
		}
		if score >= minSimilarity {
			results = append(results, &core.SearchResult{Chunk: chunk, Score: score})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit >= 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
