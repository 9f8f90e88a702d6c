package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validChunk() *Chunk {
	return &Chunk{
		Id:         ChunkID(1, 3, 0),
		DocumentID: 1,
		Level:      3,
		Type:       ChunkTypeArticle,
		Number:     "1",
		Title:      "Pasal 1",
		Content:    "Dalam Undang-Undang ini yang dimaksud dengan...",
	}
}

func TestValidateChunk(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Chunk)
		wantErr error
	}{
		{"valid", func(c *Chunk) {}, nil},
		{"nil content", func(c *Chunk) { c.Content = "" }, ErrEmptyContent},
		{"level zero", func(c *Chunk) { c.Level = 0 }, ErrInvalidLevel},
		{"level four", func(c *Chunk) { c.Level = 4 }, ErrInvalidLevel},
		{"no document", func(c *Chunk) { c.DocumentID = 0 }, ErrMissingDocument},
		{"parent on chapter", func(c *Chunk) { c.Level = 2; c.ParentID = 7 }, ErrInvalidParent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk := validChunk()
			tt.mutate(chunk)
			err := ValidateChunk(chunk)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidChunk)
			}
		})
	}
}

func TestValidateChunk_Nil(t *testing.T) {
	err := ValidateChunk(nil)
	assert.ErrorIs(t, err, ErrInvalidChunk)
}

func TestValidateChunks_CollectsAllViolations(t *testing.T) {
	good := validChunk()

	empty := validChunk()
	empty.Id = ChunkID(1, 3, 1)
	empty.Content = ""

	dup := validChunk() // same Id as good

	errs := ValidateChunks([]*Chunk{good, empty, dup})
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], ErrEmptyContent)
	assert.ErrorIs(t, errs[1], ErrDuplicateChunkID)
}

func TestValidateChunks_Clean(t *testing.T) {
	a := validChunk()
	b := validChunk()
	b.Id = ChunkID(1, 3, 1)
	assert.Empty(t, ValidateChunks([]*Chunk{a, b}))
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    JobStatus
		to      JobStatus
		wantErr error
	}{
		{"pending to processing", JobStatusPending, JobStatusProcessing, nil},
		{"processing to completed", JobStatusProcessing, JobStatusCompleted, nil},
		{"processing to failed", JobStatusProcessing, JobStatusFailed, nil},
		{"pending to failed", JobStatusPending, JobStatusFailed, nil},
		{"pending to completed", JobStatusPending, JobStatusCompleted, ErrInvalidTransition},
		{"completed is final", JobStatusCompleted, JobStatusProcessing, ErrTerminalJob},
		{"failed is final", JobStatusFailed, JobStatusProcessing, ErrTerminalJob},
		{"failed to completed", JobStatusFailed, JobStatusCompleted, ErrTerminalJob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
