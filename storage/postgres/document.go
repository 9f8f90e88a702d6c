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

// DocumentRepository implements storage.DocumentRepository for Postgres.
type DocumentRepository struct {
	store *Store
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(store *Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

// Close is a no-op; the repository holds no resources beyond the store.
func (r *DocumentRepository) Close() error {
	return nil
}

// WithTransaction delegates to the store.
func (r *DocumentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.store.WithTransaction(ctx, fn)
}

// AddDocument stores a document record.
// Document IDs are content-derived, so re-adding the same document
// overwrites the stored record rather than duplicating it.
func (r *DocumentRepository) AddDocument(ctx context.Context, doc *core.Document) (*core.Document, error) {
	tx, err := r.store.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var oldInserted time.Time
	err = tx.QueryRowContext(ctx,
		`SELECT inserted_at FROM documents WHERE id=$1`, idToInt64(doc.Id)).Scan(&oldInserted)

	// Encoded records carry timestamps at microsecond resolution, matching
	// the TIMESTAMPTZ index column.
	now := time.Now().UTC().Truncate(time.Microsecond)
	switch {
	case err == nil:
		doc.InsertedAt = oldInserted.UTC()
	case errors.Is(err, sql.ErrNoRows):
		if doc.InsertedAt.IsZero() {
			doc.InsertedAt = now
		}
	default:
		return nil, err
	}
	doc.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
INSERT INTO documents (id, inserted_at, record) VALUES ($1,$2,$3)
ON CONFLICT (id) DO UPDATE SET record = EXCLUDED.record`,
		idToInt64(doc.Id), doc.InsertedAt, storage.MarshalDocument(doc))
	if err != nil {
		return nil, err
	}
	return doc, tx.Commit()
}

// UpdateDocument updates an existing document record.
func (r *DocumentRepository) UpdateDocument(ctx context.Context, doc *core.Document) (*core.Document, error) {
	tx, err := r.store.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var oldInserted time.Time
	err = tx.QueryRowContext(ctx,
		`SELECT inserted_at FROM documents WHERE id=$1 FOR UPDATE`, idToInt64(doc.Id)).Scan(&oldInserted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	doc.InsertedAt = oldInserted.UTC()
	doc.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err = tx.ExecContext(ctx,
		`UPDATE documents SET record=$2 WHERE id=$1`,
		idToInt64(doc.Id), storage.MarshalDocument(doc))
	if err != nil {
		return nil, err
	}
	return doc, tx.Commit()
}

// GetDocument retrieves a single document by ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id core.ID) (*core.Document, error) {
	var record []byte
	err := r.store.DB.QueryRowContext(ctx,
		`SELECT record FROM documents WHERE id=$1`, idToInt64(id)).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return storage.UnmarshalDocument(record)
}

// GetDocuments retrieves multiple documents by their IDs.
// Missing IDs are skipped without error.
func (r *DocumentRepository) GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = idToInt64(id)
	}

	rows, err := r.store.DB.QueryContext(ctx,
		`SELECT record FROM documents WHERE id = ANY($1)`, pq.Array(raw))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*core.Document
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, err
		}
		doc, err := storage.UnmarshalDocument(record)
		if err != nil {
			return nil, err
		}
		results = append(results, doc)
	}
	return results, rows.Err()
}

// DeleteDocument removes a document record by ID.
func (r *DocumentRepository) DeleteDocument(ctx context.Context, id core.ID) error {
	res, err := r.store.DB.ExecContext(ctx,
		`DELETE FROM documents WHERE id=$1`, idToInt64(id))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetRecentDocuments retrieves the N most recently inserted documents,
// most recent first.
func (r *DocumentRepository) GetRecentDocuments(ctx context.Context, limit int) ([]*core.Document, error) {
	rows, err := r.store.DB.QueryContext(ctx,
		`SELECT record FROM documents ORDER BY inserted_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*core.Document
	for rows.Next() {
		var record []byte
		if err := rows.Scan(&record); err != nil {
			return nil, err
		}
		doc, err := storage.UnmarshalDocument(record)
		if err != nil {
			return nil, err
		}
		results = append(results, doc)
	}
	return results, rows.Err()
}
