package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/sodapelangi/regulatorai-sub000/ai"
	"github.com/sodapelangi/regulatorai-sub000/chunker"
	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/extract"
	"github.com/sodapelangi/regulatorai-sub000/storage"
)

// Pipeline orchestrates the asynchronous ingestion of legal documents.
// Each submitted document runs through validation, structural chunking,
// embedding and storage, with progress recorded on a poll-able job record.
type Pipeline struct {
	documentRepository storage.DocumentRepository
	chunkRepository    storage.ChunkRepository
	jobRepository      storage.JobRepository
	embedder           ai.Embedder
	jobPool            *ants.Pool
	embedPool          *ants.Pool
	maxRetries         int
	retryDelay         time.Duration
	logger             *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent job processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.jobPool != nil {
			p.jobPool.Release()
		}

		jobPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.jobPool = jobPool
		return nil
	}
}

// WithEmbedConcurrency sets how many chunks of a single document are
// embedded in parallel. Default is 4.
func WithEmbedConcurrency(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embedPool != nil {
			p.embedPool.Release()
		}

		embedPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.embedPool = embedPool
		return nil
	}
}

// WithRetry sets the retry policy for embedding calls.
// Default is 3 attempts with a 1 second base delay.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts < 1 {
			maxAttempts = 1
		}
		if baseDelay <= 0 {
			baseDelay = time.Second
		}
		p.maxRetries = maxAttempts
		p.retryDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	documentRepository storage.DocumentRepository,
	chunkRepository storage.ChunkRepository,
	jobRepository storage.JobRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if documentRepository == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if jobRepository == nil {
		return nil, ErrJobRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	jobPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	embedPool, err := ants.NewPool(4)
	if err != nil {
		jobPool.Release()
		return nil, err
	}

	p := &Pipeline{
		documentRepository: documentRepository,
		chunkRepository:    chunkRepository,
		jobRepository:      jobRepository,
		embedder:           provider.Embedder(),
		jobPool:            jobPool,
		embedPool:          embedPool,
		maxRetries:         3,
		retryDelay:         time.Second,
		logger:             slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Submit registers a new ingestion job for the given document text and
// returns the pending job record immediately. Processing runs asynchronously
// on the pipeline's worker pool; callers observe completion or failure by
// polling Job.
func (p *Pipeline) Submit(ctx context.Context, filename, text string) (*core.IngestionJob, error) {
	job := &core.IngestionJob{
		Id:       uuid.NewString(),
		Filename: filename,
		FileSize: int64(len(text)),
		Status:   core.JobStatusPending,
		Progress: core.JobProgress{
			Stage:   core.StageValidation,
			Message: "queued",
		},
	}

	created, err := p.jobRepository.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}
	jobsSubmitted.Inc()

	if submitErr := p.jobPool.Submit(func() {
		p.run(created.Id, text)
	}); submitErr != nil {
		p.fail(context.Background(), created.Id, core.StageValidation, submitErr)
		return nil, submitErr
	}

	return created, nil
}

// Job returns the current state of an ingestion job.
func (p *Pipeline) Job(ctx context.Context, id string) (*core.IngestionJob, error) {
	return p.jobRepository.GetJob(ctx, id)
}

// run drives one job through all pipeline stages. It never returns an error:
// failures are recorded on the job record, which is the caller's single
// source of truth.
func (p *Pipeline) run(id, text string) {
	ctx := context.Background()

	if err := p.begin(ctx, id); err != nil {
		p.logger.Error("error starting ingestion job", "job_id", id, "err", err)
		return
	}

	stage, err := p.process(ctx, id, text)
	if err != nil {
		p.fail(ctx, id, stage, err)
	}
}

// process runs the validation, chunking, embedding and storing stages in
// order. On error it reports the stage that failed.
func (p *Pipeline) process(ctx context.Context, id, text string) (core.Stage, error) {
	// Validation
	if err := ValidateLegalDocument(text); err != nil {
		return core.StageValidation, err
	}
	if err := p.progress(ctx, id, core.StageValidation, 1, "document validated", 0, 0); err != nil {
		return core.StageValidation, err
	}

	// Chunking
	if err := p.progress(ctx, id, core.StageChunking, 0, "extracting structure", 0, 0); err != nil {
		return core.StageChunking, err
	}

	docID := core.DocumentID(text)
	meta := extract.Metadata(text)
	chunks := chunker.ChunkDocument(docID, meta, text)

	for _, validationErr := range core.ValidateChunks(chunks) {
		// Malformed fragments are logged, not fatal: a partially odd document
		// is still worth storing and searching.
		p.logger.Warn("chunk validation", "job_id", id, "err", validationErr)
	}

	msg := fmt.Sprintf("chunked into %d fragments", len(chunks))
	if err := p.progress(ctx, id, core.StageChunking, 1, msg, 0, len(chunks)); err != nil {
		return core.StageChunking, err
	}

	// Embedding
	if err := p.embedChunks(ctx, id, chunks); err != nil {
		return core.StageEmbedding, err
	}

	// Storing
	if err := p.progress(ctx, id, core.StageStoring, 0, "storing document", len(chunks), len(chunks)); err != nil {
		return core.StageStoring, err
	}

	chunker.AssignParents(chunks, text)

	doc := &core.Document{
		Id:       docID,
		Metadata: *meta,
		FullText: text,
	}
	if _, err := p.documentRepository.AddDocument(ctx, doc); err != nil {
		return core.StageStoring, err
	}
	if _, err := p.chunkRepository.PutChunks(ctx, chunks...); err != nil {
		return core.StageStoring, err
	}

	return core.StageCompleted, p.complete(ctx, id, docID)
}

// embedChunks embeds all chunks in parallel on the embed pool, bounded by
// the pool size. Each embedding call is retried with exponential backoff.
// The first error stops further work; already-running calls drain.
func (p *Pipeline) embedChunks(ctx context.Context, id string, chunks []*core.Chunk) error {
	total := len(chunks)
	if err := p.progress(ctx, id, core.StageEmbedding, 0, "generating embeddings", 0, total); err != nil {
		return err
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		done     int
	)

	for _, chunk := range chunks {
		chunk := chunk

		wg.Add(1)
		submitErr := p.embedPool.Submit(func() {
			defer wg.Done()

			mu.Lock()
			aborted := firstErr != nil
			mu.Unlock()
			if aborted {
				return
			}

			var vector []float32
			err := RetryWithBackoff(ctx, func() error {
				var embedErr error
				vector, embedErr = p.embedder.EmbedText(ctx, chunk.Content)
				return embedErr
			}, p.maxRetries, p.retryDelay)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("embedding chunk %d: %w", chunk.Id, err)
				}
				mu.Unlock()
				return
			}

			chunk.Vector = NormalizeVector(vector)
			chunksEmbedded.Inc()

			mu.Lock()
			done++
			n := done
			mu.Unlock()

			fraction := float64(n) / float64(total)
			if progressErr := p.progress(ctx, id, core.StageEmbedding, fraction, "generating embeddings", n, total); progressErr != nil {
				p.logger.Warn("error recording embedding progress", "job_id", id, "err", progressErr)
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()
	return firstErr
}

// begin transitions a pending job to processing.
func (p *Pipeline) begin(ctx context.Context, id string) error {
	_, err := p.jobRepository.UpdateJob(ctx, id, func(job *core.IngestionJob) error {
		if trErr := core.ValidateTransition(job.Status, core.JobStatusProcessing); trErr != nil {
			return trErr
		}
		job.Status = core.JobStatusProcessing
		job.StartedAt = time.Now().UTC()
		return job.Progress.Advance(core.StageValidation, 0, "validating document", 0, 0)
	})
	return err
}

// progress records a stage advance on the job. Updates are read-modify-write
// so they interleave safely with polling readers.
func (p *Pipeline) progress(ctx context.Context, id string, stage core.Stage, fraction float64, message string, current, total int) error {
	_, err := p.jobRepository.UpdateJob(ctx, id, func(job *core.IngestionJob) error {
		return job.Progress.Advance(stage, fraction, message, current, total)
	})
	return err
}

// complete marks the job as successfully finished and links the stored
// document.
func (p *Pipeline) complete(ctx context.Context, id string, docID core.ID) error {
	_, err := p.jobRepository.UpdateJob(ctx, id, func(job *core.IngestionJob) error {
		if trErr := core.ValidateTransition(job.Status, core.JobStatusCompleted); trErr != nil {
			return trErr
		}
		job.Status = core.JobStatusCompleted
		job.DocumentID = docID
		job.CompletedAt = time.Now().UTC()
		return job.Progress.Advance(core.StageCompleted, 1, "completed", job.Progress.CurrentChunk, job.Progress.TotalChunks)
	})
	if err != nil {
		return err
	}
	jobsCompleted.Inc()
	return nil
}

// fail marks the job as failed, preserving the last recorded percent and
// recording the cause verbatim for polling clients.
func (p *Pipeline) fail(ctx context.Context, id string, stage core.Stage, cause error) {
	_, err := p.jobRepository.UpdateJob(ctx, id, func(job *core.IngestionJob) error {
		if trErr := core.ValidateTransition(job.Status, core.JobStatusFailed); trErr != nil {
			return trErr
		}
		job.Status = core.JobStatusFailed
		job.ErrorMessage = cause.Error()
		job.CompletedAt = time.Now().UTC()
		return job.Progress.Advance(core.StageFailed, 0, cause.Error(), job.Progress.CurrentChunk, job.Progress.TotalChunks)
	})
	if err != nil {
		p.logger.Error("error recording job failure", "job_id", id, "stage", stage, "err", err)
	}
	jobsFailed.WithLabelValues(string(stage)).Inc()
	p.logger.Error("ingestion job failed", "job_id", id, "stage", stage, "err", cause)
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.jobPool != nil {
		p.jobPool.Release()
	}
	if p.embedPool != nil {
		p.embedPool.Release()
	}
}
