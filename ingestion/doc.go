// Package ingestion provides pipeline orchestration for processing legal documents.
//
// The Pipeline type manages the ingestion workflow for a submitted document:
//   - Validating that the text is an Indonesian legal document
//   - Extracting structural metadata and chunking the text
//   - Generating embeddings concurrently
//   - Storing the document and its chunks
//
// Submission returns immediately with a job record; all processing is
// asynchronous on worker pools. The job record is the single source of truth
// for progress and outcome, and callers observe it by polling. Failures are
// recorded on the job, never raised to the submitter.
package ingestion
