package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that re-ingesting the same
// document produces the same identifiers.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DocumentID derives the identifier of a document from its raw text.
func DocumentID(text string) ID {
	return IDFromContent(text)
}

// ChunkID derives a chunk identifier from its position within a document.
// Identity is a function of (document, level, position) so that a retried
// ingestion run writes the same chunk rows instead of duplicating them.
func ChunkID(docID ID, level, seq int) ID {
	return IDFromContent(fmt.Sprintf("doc:%d/%d/%d", docID, level, seq))
}

// ChunkType identifies the structural role of a chunk.
type ChunkType int

const (
	// ChunkTypeMetadata is the single level-1 chunk synthesized from document metadata.
	ChunkTypeMetadata ChunkType = iota + 1
	// ChunkTypeChapter is a level-2 chunk produced from a chapter (BAB) marker.
	ChunkTypeChapter
	// ChunkTypeArticle is a level-3 chunk produced from an article (Pasal) marker.
	ChunkTypeArticle
)

// String returns the storage/wire name of the chunk type.
func (t ChunkType) String() string {
	switch t {
	case ChunkTypeMetadata:
		return "metadata"
	case ChunkTypeChapter:
		return "chapter"
	case ChunkTypeArticle:
		return "article"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// DocumentMetadata is the flat metadata record produced by the structural
// extractor. Every field is independently optional; an empty field means the
// corresponding marker was not found, which is not an error.
type DocumentMetadata struct {
	Title             string
	Number            string
	Year              string
	Subject           string
	Considerations    string // Menimbang block, verbatim
	References        string // Mengingat block, verbatim
	Authority         string
	Category          string
	SigningPlace      string
	SigningDate       string // normalized YYYY-MM-DD, or "unknown"
	SignatoryTitle    string
	SignatoryName     string
	PromulgationPlace string
	PromulgationDate  string // normalized YYYY-MM-DD, or "unknown"
}

// Merge copies fields from other into m with fill-if-absent semantics:
// a field already populated in m is never overwritten. Used for late-arriving
// fields discovered during analysis (signing/promulgation dates).
func (m *DocumentMetadata) Merge(other *DocumentMetadata) {
	if other == nil {
		return
	}
	fill := func(dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
		}
	}
	fill(&m.Title, other.Title)
	fill(&m.Number, other.Number)
	fill(&m.Year, other.Year)
	fill(&m.Subject, other.Subject)
	fill(&m.Considerations, other.Considerations)
	fill(&m.References, other.References)
	fill(&m.Authority, other.Authority)
	fill(&m.Category, other.Category)
	fill(&m.SigningPlace, other.SigningPlace)
	fill(&m.SigningDate, other.SigningDate)
	fill(&m.SignatoryTitle, other.SignatoryTitle)
	fill(&m.SignatoryName, other.SignatoryName)
	fill(&m.PromulgationPlace, other.PromulgationPlace)
	fill(&m.PromulgationDate, other.PromulgationDate)
}

// IsEmpty reports whether no field of the metadata record is populated.
func (m *DocumentMetadata) IsEmpty() bool {
	return *m == DocumentMetadata{}
}

// Chunk is one fragment of a document's three-level hierarchy.
//
// Exactly one level-1 chunk exists per document. Level-2 and level-3 chunks
// exist only when their markers were found in the text. Only level-3 chunks
// may reference a level-2 parent; ParentID is 0 otherwise.
type Chunk struct {
	Id         ID
	DocumentID ID
	Level      int
	Type       ChunkType
	Number     string // chapter numeral ("I", "IV") or article number ("1", "12A")
	Title      string
	Content    string
	ParentID   ID
	Seq        int // document-order position within the level
	WordCount  int
	CharCount  int
	Vector     []float32 // embedding, populated by the embedding stage
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// CountText fills WordCount and CharCount from Content.
func (c *Chunk) CountText() {
	c.WordCount = len(strings.Fields(c.Content))
	c.CharCount = len([]rune(c.Content))
}

// JobStatus is the lifecycle state of an ingestion job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Terminal reports whether the status permits no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// IngestionJob is the poll-able record of one asynchronous ingestion run.
//
// The job record is the single source of truth for whether ingestion
// succeeded; partially persisted chunks are not rolled back on failure.
type IngestionJob struct {
	Id           string // UUID, assigned at submission
	Filename     string
	FileSize     int64
	Status       JobStatus
	Progress     JobProgress
	DocumentID   ID     // 0 until the job completes
	ErrorMessage string // populated only on failure
	CreatedAt    time.Time
	StartedAt    time.Time // zero until processing begins
	CompletedAt  time.Time // zero until a terminal state
}

// Document is the persisted document record: extracted metadata, the raw
// text, and (once analysis runs) the analysis result and sector impacts.
type Document struct {
	Id            ID
	Metadata      DocumentMetadata
	FullText      string
	Analysis      AnalysisResult
	Analyzed      bool // false until the analysis trigger has run
	SectorImpacts []SectorImpact
	InsertedAt    time.Time
	UpdatedAt     time.Time
}

// SearchResult pairs a chunk with its similarity score for vector search.
type SearchResult struct {
	Chunk *Chunk
	Score float32
}

// KeyPoint is one item of an analysis result's key point list.
type KeyPoint struct {
	Title       string
	Description string
	ArticleRef  string
}

// Comparison relates an article in the analyzed regulation to its wording in
// a prior version.
type Comparison struct {
	ArticleRef string
	OldText    string
	NewText    string
}

// ChecklistItem is one compliance task extracted from an analysis response.
type ChecklistItem struct {
	Task       string
	ArticleRef string
}

// AnalysisResult holds the typed records parsed from the narrative analysis
// response. A zero value is a valid "nothing recognized" result.
type AnalysisResult struct {
	Background      string
	KeyPoints       []KeyPoint
	HasPriorVersion bool         // caller-supplied: whether a prior regulation version exists
	Comparisons     []Comparison // meaningful only when HasPriorVersion
	BusinessImpact  string
	Checklist       []ChecklistItem
	Confidence      float64 // 0..1
	AnalyzedAt      time.Time
}

// ImpactLevel classifies how strongly a document affects a sector.
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// SectorImpact classifies the effect of a document on one business sector.
type SectorImpact struct {
	Sector     string
	Level      ImpactLevel
	Rationale  string
	Confidence float64 // 0..1
}

// Sectors is the controlled vocabulary for sector impact classification.
var Sectors = []string{
	"banking",
	"insurance",
	"capital markets",
	"fintech",
	"mining",
	"oil and gas",
	"manufacturing",
	"trade",
	"telecommunications",
	"transportation",
	"healthcare",
	"agriculture",
	"construction",
	"tourism",
	"education",
	"energy",
}

// KnownSector reports whether name is part of the controlled sector vocabulary.
func KnownSector(name string) bool {
	for _, s := range Sectors {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}
