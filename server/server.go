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


package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sodapelangi/regulatorai-sub000/analysis"
	"github.com/sodapelangi/regulatorai-sub000/ingestion"
	"github.com/sodapelangi/regulatorai-sub000/search"
	"github.com/sodapelangi/regulatorai-sub000/storage"
)

// Server wires the ingestion pipeline, analyzer and repositories into an
// HTTP API.
type Server struct {
	echo      *echo.Echo
	pipeline  *ingestion.Pipeline
	analyzer  *analysis.Analyzer
	searcher  *search.Searcher
	documents storage.DocumentRepository
	chunks    storage.ChunkRepository
	jobs      storage.JobRepository
	logger    *slog.Logger
}

// New creates a Server with all routes registered. Start must be called to
// begin serving.
func New(
	pipeline *ingestion.Pipeline,
	analyzer *analysis.Analyzer,
	searcher *search.Searcher,
	documents storage.DocumentRepository,
	chunks storage.ChunkRepository,
	jobs storage.JobRepository,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		pipeline:  pipeline,
		analyzer:  analyzer,
		searcher:  searcher,
		documents: documents,
		chunks:    chunks,
		jobs:      jobs,
		logger:    logger.With("component", "server"),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = s.errorHandler
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/documents", s.handleSubmit)
	api.GET("/documents", s.handleListDocuments)
	api.GET("/documents/:id", s.handleGetDocument)
	api.DELETE("/documents/:id", s.handleDeleteDocument)
	api.GET("/documents/:id/chunks", s.handleGetChunks)
	api.POST("/documents/:id/analysis", s.handleAnalyze)
	api.GET("/jobs", s.handleListJobs)
	api.GET("/jobs/:id", s.handleGetJob)
	api.POST("/search", s.handleSearch)

	s.echo = e
	return s
}

// errorHandler renders every error as {"error": message} and logs it.
func (s *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if he.Message != nil {
			msg = fmt.Sprint(he.Message)
		}
	}

	req := c.Request()
	s.logger.Warn("request failed",
		"status", code, "method", req.Method, "path", req.URL.Path, "err", err)

	if !c.Response().Committed {
		_ = c.JSON(code, map[string]string{"error": msg})
	}
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
