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


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	regulatorai "github.com/sodapelangi/regulatorai-sub000"
	"github.com/sodapelangi/regulatorai-sub000/ai"
	"github.com/sodapelangi/regulatorai-sub000/ai/openai"
	"github.com/sodapelangi/regulatorai-sub000/analysis"
	"github.com/sodapelangi/regulatorai-sub000/ingestion"
	"github.com/sodapelangi/regulatorai-sub000/search"
	"github.com/sodapelangi/regulatorai-sub000/server"
	"github.com/sodapelangi/regulatorai-sub000/storage"
	"github.com/sodapelangi/regulatorai-sub000/storage/postgres"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "regulad",
		Usage: "Regulatory document ingestion and analysis server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
			},
			&cli.StringFlag{
				Name:    "postgres-dsn",
				Usage:   "Postgres DSN; used instead of BadgerDB when set",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:  "listen",
				Usage: "HTTP listen address",
				Value: ":8420",
			},
			&cli.StringFlag{
				Name:  "ai-host",
				Usage: "OpenAI-compatible service host URL for embeddings and generation",
				Value: "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL (defaults to ai-host)",
			},
			&cli.StringFlag{
				Name:  "generator-host",
				Usage: "Generation service host URL (defaults to ai-host)",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
				Value: "embeddinggemma",
			},
			&cli.StringFlag{
				Name:  "generator-model",
				Usage: "Generation model name for document analysis",
				Value: "qwen2.5:3b",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of concurrent ingestion jobs",
			},
			&cli.IntFlag{
				Name:  "embed-concurrency",
				Usage: "Number of concurrent embedding requests per job",
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "Grace period for in-flight requests on shutdown",
				Value: 10 * time.Second,
			},
		},
		Before: setupLogger,
		Action: serveCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	aiConfig, err := buildAIConfig(c)
	if err != nil {
		return err
	}

	var (
		documents storage.DocumentRepository
		chunks    storage.ChunkRepository
		jobs      storage.JobRepository
		provider  ai.AIProvider
	)

	switch {
	case c.String("postgres-dsn") != "":
		store, err := postgres.NewWithDSN(context.Background(), c.String("postgres-dsn"))
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer store.Close()

		documents = postgres.NewDocumentRepository(store)
		chunks = postgres.NewChunkRepository(store)
		jobs = postgres.NewJobRepository(store)

		provider, err = openai.NewProvider(aiConfig)
		if err != nil {
			return fmt.Errorf("failed to create AI provider: %w", err)
		}
		defer provider.Close()

	case c.String("db") != "":
		svc, err := regulatorai.NewService(c.String("db"), regulatorai.WithAIConfig(aiConfig))
		if err != nil {
			return fmt.Errorf("failed to open service: %w", err)
		}
		defer svc.Close()

		documents = svc.DocumentRepository()
		chunks = svc.ChunkRepository()
		jobs = svc.JobRepository()
		provider = svc.Provider()

	default:
		return fmt.Errorf("either --db or --postgres-dsn is required")
	}

	var pipelineOpts []ingestion.Option
	if workers := c.Int("workers"); workers > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(workers))
	}
	if embedders := c.Int("embed-concurrency"); embedders > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithEmbedConcurrency(embedders))
	}

	pipeline, err := ingestion.NewPipeline(documents, chunks, jobs, provider, pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	searcher, err := search.NewSearcher(chunks, provider)
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	srv := server.New(
		pipeline,
		analysis.NewAnalyzer(documents, provider.Generator()),
		searcher,
		documents,
		chunks,
		jobs,
		slog.Default(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(c.String("listen"))
	}()

	slog.Info("server started", "listen", c.String("listen"), "db", c.String("db"))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.Duration("shutdown-timeout"))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func buildAIConfig(c *cli.Context) (*ai.Config, error) {
	embeddingHost := c.String("embedding-host")
	if embeddingHost == "" {
		embeddingHost = c.String("ai-host")
	}
	generatorHost := c.String("generator-host")
	if generatorHost == "" {
		generatorHost = c.String("ai-host")
	}

	cfg := ai.NewConfig(
		ai.WithEmbeddingHost(embeddingHost),
		ai.WithGeneratorHost(generatorHost),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGeneratorModel(c.String("generator-model")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return cfg, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
