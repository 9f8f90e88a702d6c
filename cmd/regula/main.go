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
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sodapelangi/regulatorai-sub000/ai"
	"github.com/sodapelangi/regulatorai-sub000/ai/openai"
	"github.com/sodapelangi/regulatorai-sub000/client"
	"github.com/sodapelangi/regulatorai-sub000/reembed"
	"github.com/sodapelangi/regulatorai-sub000/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "regula",
		Usage: "Command-line client for the regulatory document server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Base URL of the regulad server",
				Value:   "http://localhost:8420",
				EnvVars: []string{"REGULA_SERVER"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Submit a document file for ingestion and wait for completion",
				ArgsUsage: "FILE",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-wait",
						Usage: "Return the job id immediately instead of polling",
					},
					&cli.DurationFlag{
						Name:  "poll-interval",
						Usage: "Interval between job status polls",
						Value: client.DefaultPollInterval,
					},
				},
			},
			{
				Name:      "status",
				Usage:     "Show the status of an ingestion job",
				ArgsUsage: "JOB_ID",
				Action:    statusCommand,
			},
			{
				Name:   "jobs",
				Usage:  "List recent ingestion jobs",
				Action: jobsCommand,
				Flags:  []cli.Flag{limitFlag(20)},
			},
			{
				Name:      "documents",
				Usage:     "List stored documents, or show one when an id is given",
				ArgsUsage: "[DOCUMENT_ID]",
				Action:    documentsCommand,
				Flags:     []cli.Flag{limitFlag(20)},
			},
			{
				Name:      "analyze",
				Usage:     "Run analysis and sector classification for a document",
				ArgsUsage: "DOCUMENT_ID",
				Action:    analyzeCommand,
			},
			{
				Name:      "search",
				Usage:     "Search document fragments",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags:     []cli.Flag{limitFlag(5)},
			},
			{
				Name:      "delete",
				Usage:     "Delete a document and its fragments",
				ArgsUsage: "DOCUMENT_ID",
				Action:    deleteCommand,
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all stored fragments with new embeddings (direct database access)",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of fragments to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N fragments",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func limitFlag(value int) cli.Flag {
	return &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of results",
		Value:   value,
	}
}

func newClient(c *cli.Context) *client.Client {
	return client.New(c.String("server"), client.WithPollInterval(c.Duration("poll-interval")))
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}
	path := c.Args().First()

	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	ctx := context.Background()
	api := newClient(c)

	job, err := api.Submit(ctx, filepath.Base(path), string(text))
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}
	fmt.Printf("job %s submitted (%d bytes)\n", job.ID, job.FileSize)

	if c.Bool("no-wait") {
		return nil
	}

	job, err = api.WaitForCompletion(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("polling failed: %w", err)
	}
	printJob(job)
	if job.Status == "failed" {
		return errors.New("ingestion failed")
	}
	return nil
}

func statusCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one job id argument")
	}

	job, err := newClient(c).Job(context.Background(), c.Args().First())
	if err != nil {
		return err
	}
	printJob(job)
	return nil
}

func jobsCommand(c *cli.Context) error {
	jobs, err := newClient(c).Jobs(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}

	for _, job := range jobs {
		fmt.Printf("%s  %-10s %3d%%  %s\n", job.ID, job.Status, job.Progress.Percent, job.Filename)
	}
	return nil
}

func documentsCommand(c *cli.Context) error {
	ctx := context.Background()
	api := newClient(c)

	if c.NArg() == 0 {
		docs, err := api.Documents(ctx, c.Int("limit"))
		if err != nil {
			return err
		}
		for _, doc := range docs {
			fmt.Printf("%s  %s No. %s/%s  %s\n",
				doc.ID, doc.Metadata.Category, doc.Metadata.Number, doc.Metadata.Year, doc.Metadata.Subject)
		}
		return nil
	}

	doc, err := api.Document(ctx, c.Args().First())
	if err != nil {
		return err
	}
	printDocument(doc)
	return nil
}

func analyzeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one document id argument")
	}

	doc, err := newClient(c).Analyze(context.Background(), c.Args().First())
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	printDocument(doc)
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected a search query")
	}
	query := strings.Join(c.Args().Slice(), " ")

	hits, err := newClient(c).Search(context.Background(), query, c.Int("limit"))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d hits\n", len(hits))
	for i, hit := range hits {
		label := hit.Chunk.Type
		if hit.Chunk.Number != "" {
			label = fmt.Sprintf("%s %s", hit.Chunk.Type, hit.Chunk.Number)
		}
		fmt.Printf("%d: [%0.3f] %s (%s): %s\n", i, hit.Score, label, hit.Chunk.DocumentID, snippet(hit.Chunk.Content, 120))
	}
	return nil
}

func deleteCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one document id argument")
	}

	if err := newClient(c).DeleteDocument(context.Background(), c.Args().First()); err != nil {
		return err
	}
	fmt.Println("deleted")
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	documents := badger.NewDocumentRepository(backend)
	defer documents.Close()
	chunks := badger.NewChunkRepository(backend)
	defer chunks.Close()

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(documents, chunks, embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}
	return nil
}

func printJob(job *client.Job) {
	fmt.Printf("job:      %s\n", job.ID)
	fmt.Printf("file:     %s (%d bytes)\n", job.Filename, job.FileSize)
	fmt.Printf("status:   %s\n", job.Status)
	fmt.Printf("progress: %d%% (%s: %s)\n", job.Progress.Percent, job.Progress.Stage, job.Progress.Message)
	if job.Progress.TotalChunks > 0 {
		fmt.Printf("chunks:   %d/%d\n", job.Progress.CurrentChunk, job.Progress.TotalChunks)
	}
	if job.DocumentID != "" {
		fmt.Printf("document: %s\n", job.DocumentID)
	}
	if job.Error != "" {
		fmt.Printf("error:    %s\n", job.Error)
	}
}

func printDocument(doc *client.Document) {
	fmt.Printf("document: %s\n", doc.ID)
	fmt.Printf("title:    %s\n", doc.Metadata.Title)
	fmt.Printf("number:   %s No. %s Tahun %s\n", doc.Metadata.Category, doc.Metadata.Number, doc.Metadata.Year)
	if doc.Metadata.Subject != "" {
		fmt.Printf("subject:  %s\n", doc.Metadata.Subject)
	}
	if doc.Metadata.Authority != "" {
		fmt.Printf("issuer:   %s\n", doc.Metadata.Authority)
	}

	if doc.Analysis != nil {
		fmt.Printf("\nanalysis (confidence %.2f):\n", doc.Analysis.Confidence)
		if doc.Analysis.Background != "" {
			fmt.Printf("  background: %s\n", snippet(doc.Analysis.Background, 200))
		}
		for _, kp := range doc.Analysis.KeyPoints {
			fmt.Printf("  - %s", kp.Title)
			if kp.ArticleRef != "" {
				fmt.Printf(" (%s)", kp.ArticleRef)
			}
			fmt.Println()
		}
		for _, item := range doc.Analysis.Checklist {
			fmt.Printf("  [ ] %s\n", item.Task)
		}
	}

	for _, impact := range doc.SectorImpacts {
		fmt.Printf("sector:   %s (%s, %.2f)\n", impact.Sector, impact.Level, impact.Confidence)
	}
}

func snippet(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
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
