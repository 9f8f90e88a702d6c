package server

import (
	"strconv"
	"time"

	"github.com/sodapelangi/regulatorai-sub000/core"
)

// Document and chunk IDs are uint64; they are rendered as decimal strings so
// JSON consumers do not lose precision.

type submitRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

type progressResponse struct {
	Stage        string `json:"stage"`
	Percent      int    `json:"percent"`
	Message      string `json:"message"`
	CurrentChunk int    `json:"current_chunk,omitempty"`
	TotalChunks  int    `json:"total_chunks,omitempty"`
}

type jobResponse struct {
	ID          string           `json:"id"`
	Filename    string           `json:"filename"`
	FileSize    int64            `json:"file_size"`
	Status      string           `json:"status"`
	Progress    progressResponse `json:"progress"`
	DocumentID  string           `json:"document_id,omitempty"`
	Error       string           `json:"error,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	StartedAt   *time.Time       `json:"started_at,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

type metadataResponse struct {
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

type keyPointResponse struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ArticleRef  string `json:"article_ref,omitempty"`
}

type comparisonResponse struct {
	ArticleRef string `json:"article_ref,omitempty"`
	OldText    string `json:"old_text,omitempty"`
	NewText    string `json:"new_text,omitempty"`
}

type checklistItemResponse struct {
	Task       string `json:"task"`
	ArticleRef string `json:"article_ref,omitempty"`
}

type analysisResponse struct {
	Background      string                  `json:"background,omitempty"`
	KeyPoints       []keyPointResponse      `json:"key_points"`
	HasPriorVersion bool                    `json:"has_prior_version"`
	Comparisons     []comparisonResponse    `json:"comparisons,omitempty"`
	BusinessImpact  string                  `json:"business_impact,omitempty"`
	Checklist       []checklistItemResponse `json:"checklist"`
	Confidence      float64                 `json:"confidence"`
	AnalyzedAt      time.Time               `json:"analyzed_at"`
}

type sectorImpactResponse struct {
	Sector     string  `json:"sector"`
	Level      string  `json:"impact_level"`
	Rationale  string  `json:"rationale,omitempty"`
	Confidence float64 `json:"confidence"`
}

type documentResponse struct {
	ID            string                 `json:"id"`
	Metadata      metadataResponse       `json:"metadata"`
	FullText      string                 `json:"full_text,omitempty"`
	Analyzed      bool                   `json:"analyzed"`
	Analysis      *analysisResponse      `json:"analysis,omitempty"`
	SectorImpacts []sectorImpactResponse `json:"sector_impacts,omitempty"`
	InsertedAt    time.Time              `json:"inserted_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type chunkResponse struct {
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

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type searchHitResponse struct {
	Chunk chunkResponse `json:"chunk"`
	Score float32       `json:"score"`
}

func formatID(id core.ID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func newJobResponse(job *core.IngestionJob) jobResponse {
	resp := jobResponse{
		ID:       job.Id,
		Filename: job.Filename,
		FileSize: job.FileSize,
		Status:   string(job.Status),
		Progress: progressResponse{
			Stage:        string(job.Progress.Stage),
			Percent:      job.Progress.Percent,
			Message:      job.Progress.Message,
			CurrentChunk: job.Progress.CurrentChunk,
			TotalChunks:  job.Progress.TotalChunks,
		},
		CreatedAt: job.CreatedAt,
	}
	if job.DocumentID != 0 {
		resp.DocumentID = formatID(job.DocumentID)
	}
	resp.Error = job.ErrorMessage
	if !job.StartedAt.IsZero() {
		t := job.StartedAt
		resp.StartedAt = &t
	}
	if !job.CompletedAt.IsZero() {
		t := job.CompletedAt
		resp.CompletedAt = &t
	}
	return resp
}

func newMetadataResponse(m core.DocumentMetadata) metadataResponse {
	return metadataResponse{
		Title:             m.Title,
		Category:          m.Category,
		Number:            m.Number,
		Year:              m.Year,
		Subject:           m.Subject,
		Authority:         m.Authority,
		Considerations:    m.Considerations,
		References:        m.References,
		SigningPlace:      m.SigningPlace,
		SigningDate:       m.SigningDate,
		SignatoryTitle:    m.SignatoryTitle,
		SignatoryName:     m.SignatoryName,
		PromulgationPlace: m.PromulgationPlace,
		PromulgationDate:  m.PromulgationDate,
	}
}

func newAnalysisResponse(a core.AnalysisResult) *analysisResponse {
	resp := &analysisResponse{
		Background:      a.Background,
		KeyPoints:       make([]keyPointResponse, 0, len(a.KeyPoints)),
		HasPriorVersion: a.HasPriorVersion,
		BusinessImpact:  a.BusinessImpact,
		Checklist:       make([]checklistItemResponse, 0, len(a.Checklist)),
		Confidence:      a.Confidence,
		AnalyzedAt:      a.AnalyzedAt,
	}
	for _, kp := range a.KeyPoints {
		resp.KeyPoints = append(resp.KeyPoints, keyPointResponse(kp))
	}
	for _, cmp := range a.Comparisons {
		resp.Comparisons = append(resp.Comparisons, comparisonResponse(cmp))
	}
	for _, item := range a.Checklist {
		resp.Checklist = append(resp.Checklist, checklistItemResponse(item))
	}
	return resp
}

func newDocumentResponse(doc *core.Document, includeText bool) documentResponse {
	resp := documentResponse{
		ID:         formatID(doc.Id),
		Metadata:   newMetadataResponse(doc.Metadata),
		Analyzed:   doc.Analyzed,
		InsertedAt: doc.InsertedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
	if includeText {
		resp.FullText = doc.FullText
	}
	if doc.Analyzed {
		resp.Analysis = newAnalysisResponse(doc.Analysis)
	}
	for _, impact := range doc.SectorImpacts {
		resp.SectorImpacts = append(resp.SectorImpacts, sectorImpactResponse{
			Sector:     impact.Sector,
			Level:      string(impact.Level),
			Rationale:  impact.Rationale,
			Confidence: impact.Confidence,
		})
	}
	return resp
}

func newChunkResponse(chunk *core.Chunk) chunkResponse {
	resp := chunkResponse{
		ID:         formatID(chunk.Id),
		DocumentID: formatID(chunk.DocumentID),
		Level:      chunk.Level,
		Type:       chunk.Type.String(),
		Number:     chunk.Number,
		Title:      chunk.Title,
		Content:    chunk.Content,
		Seq:        chunk.Seq,
		WordCount:  chunk.WordCount,
		CharCount:  chunk.CharCount,
	}
	if chunk.ParentID != 0 {
		resp.ParentID = formatID(chunk.ParentID)
	}
	return resp
}
