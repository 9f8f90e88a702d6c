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


package regulatorai

import (
	"io"
	"log/slog"

	"github.com/sodapelangi/regulatorai-sub000/ai"
	"github.com/sodapelangi/regulatorai-sub000/ai/openai"
	"github.com/sodapelangi/regulatorai-sub000/analysis"
	"github.com/sodapelangi/regulatorai-sub000/ingestion"
	"github.com/sodapelangi/regulatorai-sub000/reembed"
	"github.com/sodapelangi/regulatorai-sub000/search"
	"github.com/sodapelangi/regulatorai-sub000/storage"
	"github.com/sodapelangi/regulatorai-sub000/storage/badger"
)

// Service bundles the storage backend, repositories and AI provider behind
// one handle. It is the composition root used by the command-line tools.
type Service struct {
	backend   *badger.Backend
	docRepo   storage.DocumentRepository
	chunkRepo storage.ChunkRepository
	jobRepo   storage.JobRepository
	provider  ai.AIProvider
	logger    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig overrides the default AI endpoint configuration.
func WithAIConfig(cfg *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithInMemoryStorage keeps all data in memory instead of on disk.
func WithInMemoryStorage() ServiceOption {
	return func(o *serviceOptions) {
		o.inMemory = true
	}
}

// NewService opens the storage backend at filePath and wires the
// repositories and AI provider.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	docRepo := badger.NewDocumentRepository(backend)
	chunkRepo := badger.NewChunkRepository(backend)
	jobRepo := badger.NewJobRepository(backend)

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Service{
		backend:   backend,
		docRepo:   docRepo,
		chunkRepo: chunkRepo,
		jobRepo:   jobRepo,
		provider:  provider,
		logger:    slog.Default(),
	}, nil
}

// Close releases the AI provider, the repositories and the backend.
func (s *Service) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.jobRepo.Close(); err != nil {
		s.logger.Error("error closing job repository", "err", err)
		return err
	}
	if err := s.chunkRepo.Close(); err != nil {
		s.logger.Error("error closing chunk repository", "err", err)
		return err
	}
	if err := s.docRepo.Close(); err != nil {
		s.logger.Error("error closing document repository", "err", err)
		return err
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *Service) DocumentRepository() storage.DocumentRepository {
	return s.docRepo
}

func (s *Service) ChunkRepository() storage.ChunkRepository {
	return s.chunkRepo
}

func (s *Service) JobRepository() storage.JobRepository {
	return s.jobRepo
}

func (s *Service) Provider() ai.AIProvider {
	return s.provider
}

// NewIngestionPipeline creates an ingestion pipeline over this service's
// repositories.
func (s *Service) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.docRepo, s.chunkRepo, s.jobRepo, s.provider, opts...)
}

// NewSearcher creates a hybrid searcher over this service's chunks.
func (s *Service) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(s.chunkRepo, s.provider, opts...)
}

// NewAnalyzer creates an analyzer over this service's documents.
func (s *Service) NewAnalyzer() *analysis.Analyzer {
	return analysis.NewAnalyzer(s.docRepo, s.provider.Generator())
}

// NewReembedder creates a reembedder that refreshes every stored chunk
// vector, reporting progress to the given writer.
func (s *Service) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(s.docRepo, s.chunkRepo, s.provider.Embedder(), config, progress)
}
