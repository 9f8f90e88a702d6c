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


package core

import "fmt"

// ValidateChunk validates a single Chunk according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Level must be 1, 2 or 3
//   - DocumentID must be set
//   - Only level-3 chunks may carry a ParentID
//
// NOT validated (populated by later stages):
//   - Vector (can be empty until the embedding stage runs)
//   - InsertedAt/UpdatedAt (set by storage)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}

	if chunk.Level < 1 || chunk.Level > 3 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidChunk, ErrInvalidLevel, chunk.Level)
	}

	if chunk.DocumentID == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrMissingDocument)
	}

	if chunk.ParentID != 0 && chunk.Level != 3 {
		return fmt.Errorf("%w: %w (level %d)", ErrInvalidChunk, ErrInvalidParent, chunk.Level)
	}

	return nil
}

// ValidateChunks validates a full document's chunk set and collects every
// violation instead of stopping at the first. The caller decides whether the
// violations block persistence; the pipeline logs them and proceeds.
func ValidateChunks(chunks []*Chunk) []error {
	var errs []error
	seen := make(map[ID]int, len(chunks))
	for i, chunk := range chunks {
		if err := ValidateChunk(chunk); err != nil {
			errs = append(errs, fmt.Errorf("chunk %d: %w", i, err))
			continue
		}
		if prev, dup := seen[chunk.Id]; dup {
			errs = append(errs, fmt.Errorf("chunk %d: %w: %d collides with chunk %d", i, ErrDuplicateChunkID, chunk.Id, prev))
			continue
		}
		seen[chunk.Id] = i
	}
	return errs
}

// ValidateTransition validates a job status transition against the
// pending -> processing -> completed|failed lifecycle. Terminal states are
// final.
func ValidateTransition(from, to JobStatus) error {
	if from.Terminal() {
		return fmt.Errorf("%w: %s", ErrTerminalJob, from)
	}
	switch {
	case from == JobStatusPending && to == JobStatusProcessing:
		return nil
	case from == JobStatusProcessing && (to == JobStatusCompleted || to == JobStatusFailed):
		return nil
	// A job may fail before processing starts (e.g. rejected input).
	case from == JobStatusPending && to == JobStatusFailed:
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
}
