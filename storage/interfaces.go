package storage

import (
	"context"

	"github.com/sodapelangi/regulatorai-sub000/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing document records.
type DocumentRepository interface {
	Repository
	// AddDocument stores a document record. The document ID is content-derived
	// and must be set by the caller before the call. Adding an existing ID
	// overwrites the stored record (ingestion is at-least-once).
	// Sets InsertedAt/UpdatedAt timestamps if not already set.
	AddDocument(ctx context.Context, doc *core.Document) (*core.Document, error)

	// UpdateDocument updates an existing document record.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if the document doesn't exist.
	UpdateDocument(ctx context.Context, doc *core.Document) (*core.Document, error)

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// DeleteDocument removes a document record by ID.
	// Chunks belonging to the document are not touched; use
	// ChunkRepository.DeleteChunksByDocument for those.
	// Returns ErrNotFound if the document doesn't exist.
	DeleteDocument(ctx context.Context, id core.ID) error

	// GetRecentDocuments retrieves the N most recently inserted documents,
	// most recent first.
	GetRecentDocuments(ctx context.Context, limit int) ([]*core.Document, error)
}

// ChunkRepository provides operations for managing document chunks.
type ChunkRepository interface {
	Repository
	// PutChunks upserts one or more chunks. Chunk IDs are deterministic per
	// (document, level, position), so a retried ingestion run writes the same
	// keys rather than duplicating rows. Sets InsertedAt timestamp if not
	// already set.
	PutChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error)

	// GetChunk retrieves a single chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error)

	// GetChunksByDocument retrieves all chunks of a document,
	// ordered by level then document-order position.
	GetChunksByDocument(ctx context.Context, docID core.ID) ([]*core.Chunk, error)

	// DeleteChunksByDocument removes all chunks of a document.
	// Returns the number of chunks removed.
	DeleteChunksByDocument(ctx context.Context, docID core.ID) (int, error)

	// FindSimilar finds chunks similar to the given vector.
	// Returns chunks with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)
}

// JobRepository provides operations for managing ingestion job records.
type JobRepository interface {
	Repository
	// CreateJob stores a new job record. The job ID must be set by the caller.
	// Sets CreatedAt timestamp if not already set.
	// Returns ErrDuplicateKey if a job with the same ID already exists.
	CreateJob(ctx context.Context, job *core.IngestionJob) (*core.IngestionJob, error)

	// GetJob retrieves a single job by ID.
	// Returns ErrNotFound if the job doesn't exist.
	GetJob(ctx context.Context, id string) (*core.IngestionJob, error)

	// UpdateJob applies fn to the current stored job record and writes the
	// result back, all within one transaction. Polling readers interleave
	// with pipeline progress updates, so job mutation is read-modify-write,
	// never blind overwrite. If fn returns an error the update is abandoned
	// and the error is returned.
	// Returns ErrNotFound if the job doesn't exist.
	UpdateJob(ctx context.Context, id string, fn func(job *core.IngestionJob) error) (*core.IngestionJob, error)

	// GetRecentJobs retrieves the N most recently created jobs,
	// most recent first.
	GetRecentJobs(ctx context.Context, limit int) ([]*core.IngestionJob, error)
}
