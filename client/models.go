package client

import "time"

// Progress is the progress snapshot of an ingestion job.
type Progress struct {
	Stage        string `json:"stage"`
	Percent      int    `json:"percent"`
	Message      string `json:"message"`
	CurrentChunk int    `json:"current_chunk,omitempty"`
	TotalChunks  int    `json:"total_chunks,omitempty"`
}

// Job is the poll-able record of an ingestion run.
type Job struct {
	ID          string     `json:"id"`
	Filename    string     `json:"filename"`
	FileSize    int64      `json:"file_size"`
	Status      string     `json:"status"`
	Progress    Progress   `json:"progress"`
	DocumentID  string     `json:"document_id,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Terminal reports whether the job has finished, successfully or not.
func (j *Job) Terminal() bool {
	return j.Status == "completed" || j.Status == "failed"
}

// Metadata is the structural metadata extracted from a document.
type Metadata struct {
	Title             string `json:"title,omitempty"`
	Category          string `json:"category,omitempty"`
	Number            string `json:"number,omitempty"`
	Year              string `json:"year,omitempty"`
	Subject           string `json:"subject,omitempty"`
	Authority         string `json:"authority,omitempty"`
	Considerations    string `json:"considerations,omitempty"`
	References        string `json:"references,omitempty"`
	SigningPlace      string `json:"signing_place,omitempty"`
	SigningDate       string `json:"signing_date,omitempty"`
	SignatoryTitle    string `json:"signatory_title,omitempty"`
	SignatoryName     string `json:"signatory_name,omitempty"`
	PromulgationPlace string `json:"promulgation_place,omitempty"`
	PromulgationDate  string `json:"promulgation_date,omitempty"`
}

// KeyPoint is one substantive point of an analysis.
type KeyPoint struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ArticleRef  string `json:"article_ref,omitempty"`
}

// Comparison describes one change against the prior regulation version.
type Comparison struct {
	ArticleRef string `json:"article_ref,omitempty"`
	OldText    string `json:"old_text,omitempty"`
	NewText    string `json:"new_text,omitempty"`
}

// ChecklistItem is one compliance action item.
type ChecklistItem struct {
	Task       string `json:"task"`
	ArticleRef string `json:"article_ref,omitempty"`
}

// Analysis is the parsed analysis of a document.
type Analysis struct {
	Background      string          `json:"background,omitempty"`
	KeyPoints       []KeyPoint      `json:"key_points"`
	HasPriorVersion bool            `json:"has_prior_version"`
	Comparisons     []Comparison    `json:"comparisons,omitempty"`
	BusinessImpact  string          `json:"business_impact,omitempty"`
	Checklist       []ChecklistItem `json:"checklist"`
	Confidence      float64         `json:"confidence"`
	AnalyzedAt      time.Time       `json:"analyzed_at"`
}

// SectorImpact is the classified impact of a document on one sector.
type SectorImpact struct {
	Sector     string  `json:"sector"`
	Level      string  `json:"impact_level"`
	Rationale  string  `json:"rationale,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Document is a stored document record.
type Document struct {
	ID            string         `json:"id"`
	Metadata      Metadata       `json:"metadata"`
	FullText      string         `json:"full_text,omitempty"`
	Analyzed      bool           `json:"analyzed"`
	Analysis      *Analysis      `json:"analysis,omitempty"`
	SectorImpacts []SectorImpact `json:"sector_impacts,omitempty"`
	InsertedAt    time.Time      `json:"inserted_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Chunk is one fragment of a document's structural hierarchy.
type Chunk struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Level      int    `json:"level"`
	Type       string `json:"type"`
	Number     string `json:"number,omitempty"`
	Title      string `json:"title,omitempty"`
	Content    string `json:"content"`
	ParentID   string `json:"parent_id,omitempty"`
	Seq        int    `json:"seq"`
	WordCount  int    `json:"word_count"`
	CharCount  int    `json:"char_count"`
}

// SearchHit pairs a chunk with its similarity score.
type SearchHit struct {
	Chunk Chunk   `json:"chunk"`
	Score float32 `json:"score"`
}
