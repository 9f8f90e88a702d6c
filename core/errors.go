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

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidLevel indicates a chunk level outside 1..3.
	ErrInvalidLevel = errors.New("chunk level must be 1, 2 or 3")

	// ErrMissingDocument indicates a chunk without a document reference.
	ErrMissingDocument = errors.New("chunk has no document reference")

	// ErrDuplicateChunkID indicates two chunks of one document share an identity.
	ErrDuplicateChunkID = errors.New("duplicate chunk identity")

	// ErrInvalidParent indicates a parent reference on a non-article chunk.
	ErrInvalidParent = errors.New("only level-3 chunks may reference a parent")

	// ErrInvalidJob indicates an IngestionJob failed validation.
	ErrInvalidJob = errors.New("invalid ingestion job")

	// ErrTerminalJob indicates a mutation attempt on a completed or failed job.
	ErrTerminalJob = errors.New("job is in a terminal state")

	// ErrInvalidTransition indicates a job status transition outside the
	// pending -> processing -> completed|failed lifecycle.
	ErrInvalidTransition = errors.New("invalid job status transition")

	// ErrUnknownStage indicates a stage name missing from the stage index table.
	ErrUnknownStage = errors.New("unknown pipeline stage")

	// ErrStageOrder indicates a progress update for an earlier stage.
	ErrStageOrder = errors.New("stage order violation")
)
