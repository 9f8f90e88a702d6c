package search

import "github.com/sodapelangi/regulatorai-sub000/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterSemanticSearch(ids []uint64)
	FoundArticleReferences(numbers []string)
	SemanticHit(chunk *core.Chunk)
	ArticleReferenceHit(chunk *core.Chunk)
	VerbatimBoost(chunk *core.Chunk)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) AfterSemanticSearch(_ []uint64)       {}
func (n *noopMonitor) FoundArticleReferences(_ []string)    {}
func (n *noopMonitor) SemanticHit(_ *core.Chunk)            {}
func (n *noopMonitor) ArticleReferenceHit(_ *core.Chunk)    {}
func (n *noopMonitor) VerbatimBoost(_ *core.Chunk)          {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)        {}
