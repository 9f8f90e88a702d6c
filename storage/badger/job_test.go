package badger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJob(id string) *core.IngestionJob {
	return &core.IngestionJob{
		Id:       id,
		Filename: "pp-45-2024.txt",
		FileSize: 2048,
		Status:   core.JobStatusPending,
		Progress: core.JobProgress{
			Stage:   core.StageValidation,
			Message: "queued",
		},
	}
}

func TestCreateAndGetJob(t *testing.T) {
	_, _, jobRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { jobRepo.Close(); backend.Close() }()

	ctx := context.Background()
	job, err := jobRepo.CreateJob(ctx, testJob("job-1"))
	require.NoError(t, err)
	assert.False(t, job.CreatedAt.IsZero())

	got, err := jobRepo.GetJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "pp-45-2024.txt", got.Filename)
	assert.Equal(t, core.JobStatusPending, got.Status)
	assert.Equal(t, core.StageValidation, got.Progress.Stage)
}

func TestCreateJob_Duplicate(t *testing.T) {
	_, _, jobRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { jobRepo.Close(); backend.Close() }()

	ctx := context.Background()
	_, err = jobRepo.CreateJob(ctx, testJob("job-1"))
	require.NoError(t, err)

	_, err = jobRepo.CreateJob(ctx, testJob("job-1"))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestGetJob_NotFound(t *testing.T) {
	_, _, jobRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { jobRepo.Close(); backend.Close() }()

	_, err = jobRepo.GetJob(context.Background(), "no-such-job")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateJob(t *testing.T) {
	_, _, jobRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { jobRepo.Close(); backend.Close() }()

	ctx := context.Background()
	_, err = jobRepo.CreateJob(ctx, testJob("job-1"))
	require.NoError(t, err)

	updated, err := jobRepo.UpdateJob(ctx, "job-1", func(job *core.IngestionJob) error {
		if err := core.ValidateTransition(job.Status, core.JobStatusProcessing); err != nil {
			return err
		}
		job.Status = core.JobStatusProcessing
		job.StartedAt = time.Now().UTC()
		return job.Progress.Advance(core.StageChunking, 0.5, "chunking document", 0, 0)
	})
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusProcessing, updated.Status)

	got, err := jobRepo.GetJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusProcessing, got.Status)
	assert.Equal(t, core.StageChunking, got.Progress.Stage)
	assert.Equal(t, "chunking document", got.Progress.Message)
}

func TestUpdateJob_FnErrorAbandonsWrite(t *testing.T) {
	_, _, jobRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { jobRepo.Close(); backend.Close() }()

	ctx := context.Background()
	_, err = jobRepo.CreateJob(ctx, testJob("job-1"))
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = jobRepo.UpdateJob(ctx, "job-1", func(job *core.IngestionJob) error {
		job.Status = core.JobStatusCompleted
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := jobRepo.GetJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusPending, got.Status)
}

func TestUpdateJob_NotFound(t *testing.T) {
	_, _, jobRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { jobRepo.Close(); backend.Close() }()

	_, err = jobRepo.UpdateJob(context.Background(), "no-such-job", func(job *core.IngestionJob) error {
		return nil
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetRecentJobs_Order(t *testing.T) {
	_, _, jobRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { jobRepo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		job := testJob(fmt.Sprintf("job-%d", i))
		job.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		_, err = jobRepo.CreateJob(ctx, job)
		require.NoError(t, err)
	}

	recent, err := jobRepo.GetRecentJobs(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "job-4", recent[0].Id)
	assert.Equal(t, "job-3", recent[1].Id)
	assert.Equal(t, "job-2", recent[2].Id)

	all, err := jobRepo.GetRecentJobs(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := jobRepo.GetRecentJobs(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
