// Copyright 2026 Sodapelangi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reembed

import (
	"context"
	"math"

	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/storage"
)

const (
	// DefaultBatchSize is the default number of chunks to process in each batch
	DefaultBatchSize = 100
)

// ChunkIterator iterates over all stored chunks in batches, walking
// document by document.
type ChunkIterator struct {
	documents storage.DocumentRepository
	chunks    storage.ChunkRepository
	batchSize int
}

// NewChunkIterator creates a new chunk iterator.
// batchSize: number of chunks to hand to fn in each batch (must be > 0)
func NewChunkIterator(documents storage.DocumentRepository, chunks storage.ChunkRepository, batchSize int) *ChunkIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &ChunkIterator{
		documents: documents,
		chunks:    chunks,
		batchSize: batchSize,
	}
}

// Count returns the total number of chunks across all documents.
func (it *ChunkIterator) Count(ctx context.Context) (int, error) {
	docs, err := it.documents.GetRecentDocuments(ctx, math.MaxInt)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, doc := range docs {
		chunks, err := it.chunks.GetChunksByDocument(ctx, doc.Id)
		if err != nil {
			return 0, err
		}
		total += len(chunks)
	}
	return total, nil
}

// ForEach iterates over all chunks, calling fn for each batch. A batch may
// span document boundaries. Iteration stops on the first error from fn.
// Context cancellation is checked between batches.
func (it *ChunkIterator) ForEach(ctx context.Context, fn func([]*core.Chunk) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	docs, err := it.documents.GetRecentDocuments(ctx, math.MaxInt)
	if err != nil {
		return err
	}

	var batch []*core.Chunk
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := fn(batch); err != nil {
			return err
		}
		batch = nil

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	for _, doc := range docs {
		chunks, err := it.chunks.GetChunksByDocument(ctx, doc.Id)
		if err != nil {
			return err
		}

		for _, chunk := range chunks {
			batch = append(batch, chunk)
			if len(batch) >= it.batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}

	return flush()
}
