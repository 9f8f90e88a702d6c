package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageIndex_TotalOrder(t *testing.T) {
	order := []Stage{StageValidation, StageChunking, StageEmbedding, StageStoring, StageCompleted}
	for i := 1; i < len(order); i++ {
		assert.Less(t, StageIndex(order[i-1]), StageIndex(order[i]),
			"%s must precede %s", order[i-1], order[i])
	}
	assert.Equal(t, -1, StageIndex(Stage("bogus")))
}

func TestStagePercent_Ranges(t *testing.T) {
	tests := []struct {
		stage    Stage
		fraction float64
		want     int
	}{
		{StageValidation, 0, 0},
		{StageValidation, 1, 10},
		{StageChunking, 0, 10},
		{StageChunking, 0.5, 40},
		{StageChunking, 1, 70},
		{StageEmbedding, 0, 70},
		{StageEmbedding, 1, 95},
		{StageStoring, 1, 100},
		{StageCompleted, 0, 100},
		// Out-of-range fractions are clamped.
		{StageChunking, -1, 10},
		{StageChunking, 2, 70},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StagePercent(tt.stage, tt.fraction),
			"stage %s fraction %v", tt.stage, tt.fraction)
	}
}

func TestJobProgress_Advance_Monotonic(t *testing.T) {
	var p JobProgress

	require.NoError(t, p.Advance(StageValidation, 1, "validated", 0, 0))
	assert.Equal(t, 10, p.Percent)

	require.NoError(t, p.Advance(StageChunking, 0.5, "chunking", 3, 6))
	assert.Equal(t, 40, p.Percent)
	assert.Equal(t, 3, p.CurrentChunk)
	assert.Equal(t, 6, p.TotalChunks)

	// A smaller fraction within the same stage must not lower the percent.
	require.NoError(t, p.Advance(StageChunking, 0.1, "still chunking", 4, 6))
	assert.Equal(t, 40, p.Percent)

	require.NoError(t, p.Advance(StageEmbedding, 0, "embedding", 0, 6))
	require.NoError(t, p.Advance(StageStoring, 1, "stored", 0, 0))
	require.NoError(t, p.Advance(StageCompleted, 1, "done", 0, 0))
	assert.Equal(t, 100, p.Percent)
}

func TestJobProgress_Advance_RejectsBackwardStage(t *testing.T) {
	var p JobProgress
	require.NoError(t, p.Advance(StageEmbedding, 0.5, "embedding", 1, 2))

	err := p.Advance(StageChunking, 1, "late chunking", 0, 0)
	assert.ErrorIs(t, err, ErrStageOrder)
	assert.Equal(t, StageEmbedding, p.Stage, "rejected update must not mutate progress")
}

func TestJobProgress_Advance_UnknownStage(t *testing.T) {
	var p JobProgress
	assert.ErrorIs(t, p.Advance(Stage("warmup"), 0, "", 0, 0), ErrUnknownStage)
}
