package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sodapelangi/regulatorai-sub000/ai/mock"
	"github.com/sodapelangi/regulatorai-sub000/analysis"
	"github.com/sodapelangi/regulatorai-sub000/ingestion"
	"github.com/sodapelangi/regulatorai-sub000/search"
	"github.com/sodapelangi/regulatorai-sub000/server"
	"github.com/sodapelangi/regulatorai-sub000/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clientDocText = `PERATURAN MENTERI KEUANGAN REPUBLIK INDONESIA
NOMOR 3 TAHUN 2025
TENTANG TATA CARA PELAPORAN PAJAK DIGITAL

BAB I
KETENTUAN UMUM

Pasal 1
Dalam Peraturan Menteri ini yang dimaksud dengan Pajak Digital adalah pajak
atas transaksi elektronik.

Pasal 2
Setiap pelaku usaha digital wajib menyampaikan laporan berkala.`

func newTestClient(t *testing.T) *Client {
	t.Helper()

	docRepo, chunkRepo, jobRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	provider := mock.NewMockProvider()
	pipeline, err := ingestion.NewPipeline(docRepo, chunkRepo, jobRepo, provider,
		ingestion.WithPoolSize(1))
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	analyzer := analysis.NewAnalyzer(docRepo, provider.Generator())
	searcher, err := search.NewSearcher(chunkRepo, provider, search.WithMinSimilarity(-1))
	require.NoError(t, err)

	srv := server.New(pipeline, analyzer, searcher, docRepo, chunkRepo, jobRepo, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return New(ts.URL, WithPollInterval(10*time.Millisecond), WithPollCeiling(10*time.Second))
}

func TestClient_SubmitAndWait(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	job, err := c.Submit(ctx, "pmk-3-2025.txt", clientDocText)
	require.NoError(t, err)
	assert.Equal(t, "pending", job.Status)
	assert.False(t, job.Terminal())

	final, err := c.WaitForCompletion(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", final.Status)
	assert.True(t, final.Terminal())
	assert.Equal(t, 100, final.Progress.Percent)
	require.NotEmpty(t, final.DocumentID)

	doc, err := c.Document(ctx, final.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, "3", doc.Metadata.Number)
	assert.Equal(t, clientDocText, doc.FullText)

	chunks, err := c.Chunks(ctx, final.DocumentID)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	assert.Equal(t, 1, chunks[0].Level)
}

func TestClient_FailedJobIsNotAClientError(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	job, err := c.Submit(ctx, "notes.txt", "Catatan belanja mingguan untuk dapur kantor.")
	require.NoError(t, err)

	final, err := c.WaitForCompletion(ctx, job.ID)
	require.NoError(t, err, "a failed job is a successful poll")
	assert.Equal(t, "failed", final.Status)
	assert.NotEmpty(t, final.Error)
}

func TestClient_Analyze(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	job, err := c.Submit(ctx, "doc.txt", clientDocText)
	require.NoError(t, err)
	final, err := c.WaitForCompletion(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, "completed", final.Status)

	doc, err := c.Analyze(ctx, final.DocumentID)
	require.NoError(t, err)
	assert.True(t, doc.Analyzed)
	require.NotNil(t, doc.Analysis)
	assert.NotEmpty(t, doc.Analysis.KeyPoints)
	assert.NotEmpty(t, doc.SectorImpacts)
}

func TestClient_Search(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	job, err := c.Submit(ctx, "doc.txt", clientDocText)
	require.NoError(t, err)
	_, err = c.WaitForCompletion(ctx, job.ID)
	require.NoError(t, err)

	hits, err := c.Search(ctx, "pelaporan pajak digital", 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(hits), 3)
}

func TestClient_NotFound(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.Job(ctx, "no-such-job")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Document(ctx, "424242")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_APIError(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Submit(context.Background(), "doc.txt", "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "text is required")
}

func TestClient_PollTimeout(t *testing.T) {
	// A server that always reports a running job.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"stuck","status":"processing","progress":{"stage":"embedding","percent":80}}`))
	}))
	defer ts.Close()

	c := New(ts.URL, WithPollInterval(time.Millisecond), WithPollCeiling(10*time.Millisecond))
	job, err := c.WaitForCompletion(context.Background(), "stuck")
	require.ErrorIs(t, err, ErrPollTimeout)
	require.NotNil(t, job, "last observed state is returned alongside the timeout")
	assert.Equal(t, "processing", job.Status)
}

func TestClient_DeleteDocument(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	job, err := c.Submit(ctx, "doc.txt", clientDocText)
	require.NoError(t, err)
	final, err := c.WaitForCompletion(ctx, job.ID)
	require.NoError(t, err)

	require.NoError(t, c.DeleteDocument(ctx, final.DocumentID))
	_, err = c.Document(ctx, final.DocumentID)
	assert.ErrorIs(t, err, ErrNotFound)
}
