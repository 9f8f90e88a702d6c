package badger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(text string) *core.Document {
	return &core.Document{
		Id:       core.DocumentID(text),
		FullText: text,
		Metadata: core.DocumentMetadata{
			Category: "PERATURAN PEMERINTAH",
			Number:   "45",
			Year:     "2024",
			Subject:  "PERIZINAN BERUSAHA",
		},
	}
}

func TestAddAndGetDocument(t *testing.T) {
	docRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	doc := testDocument("PERATURAN PEMERINTAH NOMOR 45 TAHUN 2024")

	added, err := docRepo.AddDocument(ctx, doc)
	require.NoError(t, err)
	assert.False(t, added.InsertedAt.IsZero())
	assert.False(t, added.UpdatedAt.IsZero())

	got, err := docRepo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, doc.Id, got.Id)
	assert.Equal(t, "45", got.Metadata.Number)
	assert.Equal(t, doc.FullText, got.FullText)
}

func TestGetDocument_NotFound(t *testing.T) {
	docRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { docRepo.Close(); backend.Close() }()

	_, err = docRepo.GetDocument(context.Background(), core.ID(12345))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAddDocument_OverwritePreservesInsertedAt(t *testing.T) {
	docRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	text := "PERATURAN PEMERINTAH NOMOR 45 TAHUN 2024"

	first, err := docRepo.AddDocument(ctx, testDocument(text))
	require.NoError(t, err)
	firstInserted := first.InsertedAt

	// The returned stamp must equal what a read decodes, down to the
	// serialized microsecond resolution.
	stored, err := docRepo.GetDocument(ctx, first.Id)
	require.NoError(t, err)
	assert.True(t, firstInserted.Equal(stored.InsertedAt),
		"returned %v, stored %v", firstInserted, stored.InsertedAt)

	time.Sleep(5 * time.Millisecond)

	again := testDocument(text)
	again.Metadata.Subject = "PERIZINAN BERUSAHA BERBASIS RISIKO"
	second, err := docRepo.AddDocument(ctx, again)
	require.NoError(t, err)

	assert.True(t, firstInserted.Equal(second.InsertedAt))
	assert.True(t, second.UpdatedAt.After(firstInserted))

	got, err := docRepo.GetDocument(ctx, first.Id)
	require.NoError(t, err)
	assert.Equal(t, "PERIZINAN BERUSAHA BERBASIS RISIKO", got.Metadata.Subject)

	// Overwriting must not duplicate the date index entry
	recent, err := docRepo.GetRecentDocuments(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestUpdateDocument(t *testing.T) {
	docRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	doc, err := docRepo.AddDocument(ctx, testDocument("PERATURAN MENTERI NOMOR 3 TAHUN 2025"))
	require.NoError(t, err)

	doc.Analyzed = true
	doc.Analysis = core.AnalysisResult{
		Background: "Latar belakang penerbitan peraturan.",
		KeyPoints: []core.KeyPoint{
			{Title: "Kewajiban perizinan", ArticleRef: "Pasal 2"},
		},
		Confidence: 0.9,
		AnalyzedAt: time.Now().UTC(),
	}
	_, err = docRepo.UpdateDocument(ctx, doc)
	require.NoError(t, err)

	got, err := docRepo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.True(t, got.Analyzed)
	assert.Len(t, got.Analysis.KeyPoints, 1)
	assert.Equal(t, "Kewajiban perizinan", got.Analysis.KeyPoints[0].Title)
}

func TestUpdateDocument_NotFound(t *testing.T) {
	docRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { docRepo.Close(); backend.Close() }()

	_, err = docRepo.UpdateDocument(context.Background(), testDocument("never stored"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetDocuments_SkipsMissing(t *testing.T) {
	docRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	a, err := docRepo.AddDocument(ctx, testDocument("UNDANG-UNDANG NOMOR 1 TAHUN 2024"))
	require.NoError(t, err)
	b, err := docRepo.AddDocument(ctx, testDocument("UNDANG-UNDANG NOMOR 2 TAHUN 2024"))
	require.NoError(t, err)

	docs, err := docRepo.GetDocuments(ctx, a.Id, core.ID(999), b.Id)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestDeleteDocument(t *testing.T) {
	docRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	doc, err := docRepo.AddDocument(ctx, testDocument("KEPUTUSAN PRESIDEN NOMOR 9 TAHUN 2023"))
	require.NoError(t, err)

	require.NoError(t, docRepo.DeleteDocument(ctx, doc.Id))

	_, err = docRepo.GetDocument(ctx, doc.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Date index entry is gone too
	recent, err := docRepo.GetRecentDocuments(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)

	err = docRepo.DeleteDocument(ctx, doc.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetRecentDocuments_Order(t *testing.T) {
	docRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		doc := testDocument(fmt.Sprintf("PERATURAN PEMERINTAH NOMOR %d TAHUN 2024", i))
		doc.Metadata.Number = fmt.Sprintf("%d", i)
		doc.InsertedAt = now.Add(time.Duration(i) * time.Hour)
		_, err = docRepo.AddDocument(ctx, doc)
		require.NoError(t, err)
	}

	recent, err := docRepo.GetRecentDocuments(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "4", recent[0].Metadata.Number)
	assert.Equal(t, "3", recent[1].Metadata.Number)
	assert.Equal(t, "2", recent[2].Metadata.Number)

	all, err := docRepo.GetRecentDocuments(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
