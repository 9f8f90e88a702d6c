// Package server exposes the ingestion pipeline and analysis flow over HTTP.
//
// Document submission is asynchronous: POST /api/documents returns 202 with a
// job record, and clients poll GET /api/jobs/:id until the job reaches a
// terminal state. Analysis is synchronous and idempotent. All responses are
// JSON; errors go through a unified handler that renders {"error": ...}.
package server
