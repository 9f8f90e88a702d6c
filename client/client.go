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


package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPollInterval is the default delay between job polls.
	DefaultPollInterval = 2 * time.Second

	// DefaultPollCeiling bounds how long WaitForCompletion polls before
	// giving up with an unknown outcome.
	DefaultPollCeiling = 30 * time.Minute
)

var (
	// ErrNotFound is returned when the server reports a missing resource.
	ErrNotFound = errors.New("not found")

	// ErrPollTimeout is returned when a job does not reach a terminal state
	// within the poll ceiling. The job outcome is unknown, not failed: the
	// server may still be processing.
	ErrPollTimeout = errors.New("job still running after poll ceiling, outcome unknown")
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client is an HTTP client for the ingestion API.
type Client struct {
	baseURL string
	http    *http.Client

	pollInterval time.Duration
	pollCeiling  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithPollInterval sets the delay between job polls in WaitForCompletion.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithPollCeiling sets the maximum total time WaitForCompletion polls.
func WithPollCeiling(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pollCeiling = d
		}
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: DefaultTimeout},
		pollInterval: DefaultPollInterval,
		pollCeiling:  DefaultPollCeiling,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit uploads a document for ingestion and returns the pending job.
func (c *Client) Submit(ctx context.Context, filename, text string) (*Job, error) {
	body := map[string]string{"filename": filename, "text": text}
	var job Job
	if err := c.do(ctx, http.MethodPost, "/api/documents", body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Job fetches the current state of an ingestion job.
func (c *Client) Job(ctx context.Context, id string) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+id, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Jobs fetches the most recent jobs, newest first.
func (c *Client) Jobs(ctx context.Context, limit int) ([]Job, error) {
	var jobs []Job
	path := "/api/jobs"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// WaitForCompletion polls the job until it reaches a terminal state. It
// returns the terminal job record, which may report status "failed"; only
// transport errors and the poll ceiling produce a non-nil error. On
// ErrPollTimeout the outcome is unknown.
func (c *Client) WaitForCompletion(ctx context.Context, id string) (*Job, error) {
	deadline := time.Now().Add(c.pollCeiling)

	for {
		job, err := c.Job(ctx, id)
		if err != nil {
			return nil, err
		}
		if job.Terminal() {
			return job, nil
		}

		if time.Now().After(deadline) {
			return job, fmt.Errorf("%w: job %s", ErrPollTimeout, id)
		}

		timer := time.NewTimer(c.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// Document fetches a stored document, including its full text.
func (c *Client) Document(ctx context.Context, id string) (*Document, error) {
	var doc Document
	if err := c.do(ctx, http.MethodGet, "/api/documents/"+id, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Documents fetches the most recently stored documents, newest first.
func (c *Client) Documents(ctx context.Context, limit int) ([]Document, error) {
	var docs []Document
	path := "/api/documents"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Chunks fetches all chunks of a document in level-then-position order.
func (c *Client) Chunks(ctx context.Context, documentID string) ([]Chunk, error) {
	var chunks []Chunk
	if err := c.do(ctx, http.MethodGet, "/api/documents/"+documentID+"/chunks", nil, &chunks); err != nil {
		return nil, err
	}
	return chunks, nil
}

// Analyze triggers analysis of a document and returns the updated record.
// Analysis is synchronous and idempotent; re-running overwrites the prior
// result.
func (c *Client) Analyze(ctx context.Context, documentID string) (*Document, error) {
	var doc Document
	if err := c.do(ctx, http.MethodPost, "/api/documents/"+documentID+"/analysis", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Search embeds the query server-side and returns the most similar chunks.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	body := map[string]any{"query": query, "limit": limit}
	var hits []SearchHit
	if err := c.do(ctx, http.MethodPost, "/api/search", body, &hits); err != nil {
		return nil, err
	}
	return hits, nil
}

// DeleteDocument removes a document and its chunks.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/documents/"+id, nil, nil)
}

// do performs one JSON round trip and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Error == "" {
		envelope.Error = strings.TrimSpace(string(raw))
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, envelope.Error)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
}
