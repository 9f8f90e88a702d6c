package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/storage"
)

const (
	defaultListLimit   = 20
	maxListLimit       = 200
	defaultSearchLimit = 10
)

func parseDocumentID(c echo.Context) (core.ID, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid document id")
	}
	return core.ID(id), nil
}

func parseLimit(c echo.Context, fallback int) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit
}

// handleSubmit accepts a document for ingestion and responds 202 with the
// pending job. Processing is asynchronous; the job is the poll target.
func (s *Server) handleSubmit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	if req.Filename == "" {
		req.Filename = "untitled.txt"
	}

	job, err := s.pipeline.Submit(c.Request().Context(), req.Filename, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, newJobResponse(job))
}

func (s *Server) handleGetJob(c echo.Context) error {
	job, err := s.jobs.GetJob(c.Request().Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "job not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newJobResponse(job))
}

func (s *Server) handleListJobs(c echo.Context) error {
	jobs, err := s.jobs.GetRecentJobs(c.Request().Context(), parseLimit(c, defaultListLimit))
	if err != nil {
		return err
	}

	resp := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		resp = append(resp, newJobResponse(job))
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleListDocuments(c echo.Context) error {
	docs, err := s.documents.GetRecentDocuments(c.Request().Context(), parseLimit(c, defaultListLimit))
	if err != nil {
		return err
	}

	resp := make([]documentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, newDocumentResponse(doc, false))
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetDocument(c echo.Context) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return err
	}

	doc, err := s.documents.GetDocument(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "document not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newDocumentResponse(doc, true))
}

// handleDeleteDocument removes a document and all of its chunks.
func (s *Server) handleDeleteDocument(c echo.Context) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := s.documents.DeleteDocument(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "document not found")
		}
		return err
	}

	removed, err := s.chunks.DeleteChunksByDocument(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int{"chunks_removed": removed})
}

func (s *Server) handleGetChunks(c echo.Context) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := s.documents.GetDocument(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "document not found")
		}
		return err
	}

	chunks, err := s.chunks.GetChunksByDocument(ctx, id)
	if err != nil {
		return err
	}

	resp := make([]chunkResponse, 0, len(chunks))
	for _, chunk := range chunks {
		resp = append(resp, newChunkResponse(chunk))
	}
	return c.JSON(http.StatusOK, resp)
}

// handleAnalyze runs the two-call analysis flow synchronously and returns
// the updated document. Re-running overwrites the prior analysis.
func (s *Server) handleAnalyze(c echo.Context) error {
	id, err := parseDocumentID(c)
	if err != nil {
		return err
	}

	doc, err := s.analyzer.Analyze(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "document not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newDocumentResponse(doc, false))
}

// handleSearch runs the hybrid searcher over the stored chunks.
func (s *Server) handleSearch(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	if req.Limit < 1 {
		req.Limit = defaultSearchLimit
	}
	if req.Limit > maxListLimit {
		req.Limit = maxListLimit
	}

	results, err := s.searcher.FindSimilar(c.Request().Context(), req.Query, req.Limit)
	if err != nil {
		return err
	}

	resp := make([]searchHitResponse, 0, len(results))
	for _, result := range results {
		resp = append(resp, searchHitResponse{
			Chunk: newChunkResponse(result.Chunk),
			Score: result.Score,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
