package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to the database named by TEST_DATABASE_URL, or skips
// the test when it is unset. The tests create their own rows and clean up
// after themselves, so a shared database is fine.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres integration tests")
	}

	store, err := NewWithDSN(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestDocumentRepository_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewDocumentRepository(store)
	ctx := context.Background()

	text := fmt.Sprintf("PERATURAN PEMERINTAH NOMOR 45 TAHUN 2024 %s", uuid.NewString())
	doc := &core.Document{
		Id:       core.DocumentID(text),
		FullText: text,
		Metadata: core.DocumentMetadata{Category: "PERATURAN PEMERINTAH", Number: "45", Year: "2024"},
	}
	t.Cleanup(func() { repo.DeleteDocument(ctx, doc.Id) })

	added, err := repo.AddDocument(ctx, doc)
	require.NoError(t, err)
	firstInserted := added.InsertedAt

	got, err := repo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, "45", got.Metadata.Number)
	assert.Equal(t, text, got.FullText)

	// Re-adding overwrites in place and keeps the insertion time
	time.Sleep(5 * time.Millisecond)
	doc.Metadata.Subject = "PERIZINAN BERUSAHA"
	again, err := repo.AddDocument(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, firstInserted.Unix(), again.InsertedAt.Unix())

	got, err = repo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, "PERIZINAN BERUSAHA", got.Metadata.Subject)

	require.NoError(t, repo.DeleteDocument(ctx, doc.Id))
	_, err = repo.GetDocument(ctx, doc.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteDocument(ctx, doc.Id), storage.ErrNotFound)
}

func TestChunkRepository_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewChunkRepository(store)
	ctx := context.Background()

	docID := core.DocumentID(uuid.NewString())
	t.Cleanup(func() { repo.DeleteChunksByDocument(ctx, docID) })

	var chunks []*core.Chunk
	for i := 0; i < 3; i++ {
		chunks = append(chunks, &core.Chunk{
			Id:         core.ChunkID(docID, 3, i),
			DocumentID: docID,
			Level:      3,
			Type:       core.ChunkTypeArticle,
			Number:     fmt.Sprintf("%d", i+1),
			Content:    "Isi pasal.",
			Seq:        i,
			Vector:     []float32{1, 0},
		})
	}
	chunks = append(chunks, &core.Chunk{
		Id:         core.ChunkID(docID, 1, 0),
		DocumentID: docID,
		Level:      1,
		Type:       core.ChunkTypeMetadata,
		Content:    "PERATURAN PEMERINTAH NOMOR 45 TAHUN 2024",
		Seq:        0,
	})

	_, err := repo.PutChunks(ctx, chunks...)
	require.NoError(t, err)

	got, err := repo.GetChunksByDocument(ctx, docID)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, 1, got[0].Level)
	assert.Equal(t, "1", got[1].Number)

	one, err := repo.GetChunk(ctx, chunks[0].Id)
	require.NoError(t, err)
	assert.Equal(t, chunks[0].Content, one.Content)

	deleted, err := repo.DeleteChunksByDocument(ctx, docID)
	require.NoError(t, err)
	assert.Equal(t, 4, deleted)

	_, err = repo.GetChunk(ctx, chunks[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestJobRepository_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewJobRepository(store)
	ctx := context.Background()

	id := uuid.NewString()
	t.Cleanup(func() { store.DB.ExecContext(ctx, `DELETE FROM ingestion_jobs WHERE id=$1`, id) })

	job := &core.IngestionJob{
		Id:       id,
		Filename: "pp-45-2024.txt",
		Status:   core.JobStatusPending,
		Progress: core.JobProgress{Stage: core.StageValidation, Message: "queued"},
	}

	_, err := repo.CreateJob(ctx, job)
	require.NoError(t, err)

	_, err = repo.CreateJob(ctx, job)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	updated, err := repo.UpdateJob(ctx, id, func(j *core.IngestionJob) error {
		j.Status = core.JobStatusProcessing
		return j.Progress.Advance(core.StageChunking, 0, "chunking", 0, 0)
	})
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusProcessing, updated.Status)

	boom := errors.New("boom")
	_, err = repo.UpdateJob(ctx, id, func(j *core.IngestionJob) error {
		j.Status = core.JobStatusCompleted
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetJob(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusProcessing, got.Status)
}
