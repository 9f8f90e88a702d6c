// Package client is a Go client for the ingestion HTTP API.
//
// Submission is asynchronous: Submit returns a pending job, and
// WaitForCompletion polls it until a terminal state. A job that reports
// status "failed" is a successful poll, not a client error; ErrPollTimeout
// means the outcome is unknown, not that ingestion failed.
package client
