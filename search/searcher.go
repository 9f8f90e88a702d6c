package search

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/sodapelangi/regulatorai-sub000/ai"
	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/ingestion"
	"github.com/sodapelangi/regulatorai-sub000/storage"
)

// DefaultMinSimilarity is the similarity floor for semantic candidates.
const DefaultMinSimilarity = 0.25

// queryArticleRe matches article references in a query ("pasal 12", "Pasal 5A").
var queryArticleRe = regexp.MustCompile(`(?i)\bpasal\s+(\d+[A-Za-z]?)\b`)

// Searcher provides hybrid semantic and reference-aware search over chunks.
type Searcher struct {
	chunkRepository storage.ChunkRepository
	embedder        ai.Embedder
	minSimilarity   float32
	logger          *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMinSimilarity sets the similarity floor for semantic candidates.
func WithMinSimilarity(min float32) Option {
	return func(s *Searcher) error {
		s.minSimilarity = min
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	chunkRepository storage.ChunkRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		chunkRepository: chunkRepository,
		embedder:        provider.Embedder(),
		minSimilarity:   DefaultMinSimilarity,
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindSimilar searches for chunks relevant to the query.
// Returns up to maxHits results, ranked by relevance score.
func (s *Searcher) FindSimilar(ctx context.Context, query string, maxHits int) ([]*core.SearchResult, error) {
	return s.FindSimilarWithMonitor(ctx, query, maxHits, nil)
}

// FindSimilarWithMonitor searches for chunks relevant to the query with
// monitoring. The monitor receives callbacks at each stage of the search.
// Returns up to maxHits results, ranked by relevance score.
func (s *Searcher) FindSimilarWithMonitor(ctx context.Context, query string, maxHits int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if maxHits < 1 {
		maxHits = 10
	}

	monitor.Start(query)

	// 1. Semantic candidates. Overfetch so re-scoring can change the cut.
	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	matches, err := s.chunkRepository.FindSimilar(ctx, ingestion.NormalizeVector(embedding), s.minSimilarity, maxHits*3)
	if err != nil {
		s.logger.Error("error querying for similar chunks", "err", err)
		return nil, err
	}

	ids := make([]uint64, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, uint64(match.Chunk.Id))
	}
	monitor.AfterSemanticSearch(ids)

	// 2. Article references named in the query.
	refs := queryArticleNumbers(query)
	if len(refs) > 0 {
		monitor.FoundArticleReferences(refs)
	}

	// 3. Re-score candidates.
	results := make([]*core.SearchResult, 0, len(matches))
	for _, match := range matches {
		chunk := match.Chunk
		score := match.Score

		if chunk.Level == 3 && matchesArticleNumber(refs, chunk.Number) {
			// The query names this article explicitly.
			score *= 1.5
			monitor.ArticleReferenceHit(chunk)
		} else {
			monitor.SemanticHit(chunk)
		}

		if containsAllQueryWords(chunk.Content, query) {
			score += 0.3
			monitor.VerbatimBoost(chunk)
		}

		results = append(results, &core.SearchResult{
			Chunk: chunk,
			Score: score,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxHits {
		results = results[:maxHits]
	}
	monitor.Finish(results)

	return results, nil
}

// queryArticleNumbers extracts the article numbers named in the query.
func queryArticleNumbers(query string) []string {
	var numbers []string
	for _, m := range queryArticleRe.FindAllStringSubmatch(query, -1) {
		numbers = append(numbers, strings.ToUpper(m[1]))
	}
	return numbers
}

func matchesArticleNumber(refs []string, number string) bool {
	if number == "" {
		return false
	}
	upper := strings.ToUpper(number)
	for _, ref := range refs {
		if ref == upper {
			return true
		}
	}
	return false
}
