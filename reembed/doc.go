// Package reembed provides functionality for reembedding existing document
// chunks with new or updated embedding models.
//
// This package supports batch processing of chunks, progress tracking, and
// vector normalization to ensure compatibility with cosine similarity search.
// It is driven from the offline maintenance tooling, not the ingestion path.
package reembed
