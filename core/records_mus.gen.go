// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceLo6gSsqZfDZ5Q43UKDRA1AΞΞ = ord.NewSliceSer[Comparison](ComparisonMUS)
	slicebEcvKluOU2T2KMt6YczjbQΞΞ = ord.NewSliceSer[SectorImpact](SectorImpactMUS)
	sliceeWeSH4rQI9E8Rb1pQviRΔQΞΞ = ord.NewSliceSer[ChecklistItem](ChecklistItemMUS)
	slicegΣSTuIIPcΔeZ2crVyCML3QΞΞ = ord.NewSliceSer[KeyPoint](KeyPointMUS)
	slicenstL9HOiLwXdiΣNzOdtΔ3QΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var ChunkTypeMUS = chunkTypeMUS{}

type chunkTypeMUS struct{}

func (s chunkTypeMUS) Marshal(v ChunkType, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s chunkTypeMUS) Unmarshal(bs []byte) (v ChunkType, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ChunkType(tmp)
	return
}

func (s chunkTypeMUS) Size(v ChunkType) (size int) {
	return varint.Int.Size(int(v))
}

func (s chunkTypeMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var JobStatusMUS = jobStatusMUS{}

type jobStatusMUS struct{}

func (s jobStatusMUS) Marshal(v JobStatus, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s jobStatusMUS) Unmarshal(bs []byte) (v JobStatus, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = JobStatus(tmp)
	return
}

func (s jobStatusMUS) Size(v JobStatus) (size int) {
	return ord.String.Size(string(v))
}

func (s jobStatusMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var ImpactLevelMUS = impactLevelMUS{}

type impactLevelMUS struct{}

func (s impactLevelMUS) Marshal(v ImpactLevel, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s impactLevelMUS) Unmarshal(bs []byte) (v ImpactLevel, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ImpactLevel(tmp)
	return
}

func (s impactLevelMUS) Size(v ImpactLevel) (size int) {
	return ord.String.Size(string(v))
}

func (s impactLevelMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var StageMUS = stageMUS{}

type stageMUS struct{}

func (s stageMUS) Marshal(v Stage, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s stageMUS) Unmarshal(bs []byte) (v Stage, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Stage(tmp)
	return
}

func (s stageMUS) Size(v Stage) (size int) {
	return ord.String.Size(string(v))
}

func (s stageMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var DocumentMetadataMUS = documentMetadataMUS{}

type documentMetadataMUS struct{}

func (s documentMetadataMUS) Marshal(v DocumentMetadata, bs []byte) (n int) {
	n = ord.String.Marshal(v.Title, bs)
	n += ord.String.Marshal(v.Number, bs[n:])
	n += ord.String.Marshal(v.Year, bs[n:])
	n += ord.String.Marshal(v.Subject, bs[n:])
	n += ord.String.Marshal(v.Considerations, bs[n:])
	n += ord.String.Marshal(v.References, bs[n:])
	n += ord.String.Marshal(v.Authority, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	n += ord.String.Marshal(v.SigningPlace, bs[n:])
	n += ord.String.Marshal(v.SigningDate, bs[n:])
	n += ord.String.Marshal(v.SignatoryTitle, bs[n:])
	n += ord.String.Marshal(v.SignatoryName, bs[n:])
	n += ord.String.Marshal(v.PromulgationPlace, bs[n:])
	return n + ord.String.Marshal(v.PromulgationDate, bs[n:])
}

func (s documentMetadataMUS) Unmarshal(bs []byte) (v DocumentMetadata, n int, err error) {
	v.Title, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Number, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Year, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Subject, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Considerations, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.References, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Authority, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SigningPlace, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SigningDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SignatoryTitle, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SignatoryName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PromulgationPlace, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PromulgationDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMetadataMUS) Size(v DocumentMetadata) (size int) {
	size = ord.String.Size(v.Title)
	size += ord.String.Size(v.Number)
	size += ord.String.Size(v.Year)
	size += ord.String.Size(v.Subject)
	size += ord.String.Size(v.Considerations)
	size += ord.String.Size(v.References)
	size += ord.String.Size(v.Authority)
	size += ord.String.Size(v.Category)
	size += ord.String.Size(v.SigningPlace)
	size += ord.String.Size(v.SigningDate)
	size += ord.String.Size(v.SignatoryTitle)
	size += ord.String.Size(v.SignatoryName)
	size += ord.String.Size(v.PromulgationPlace)
	return size + ord.String.Size(v.PromulgationDate)
}

func (s documentMetadataMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ChunkMUS = chunkMUS{}

type chunkMUS struct{}

func (s chunkMUS) Marshal(v Chunk, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.DocumentID, bs[n:])
	n += varint.Int.Marshal(v.Level, bs[n:])
	n += ChunkTypeMUS.Marshal(v.Type, bs[n:])
	n += ord.String.Marshal(v.Number, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Content, bs[n:])
	n += IDMUS.Marshal(v.ParentID, bs[n:])
	n += varint.Int.Marshal(v.Seq, bs[n:])
	n += varint.Int.Marshal(v.WordCount, bs[n:])
	n += varint.Int.Marshal(v.CharCount, bs[n:])
	n += slicenstL9HOiLwXdiΣNzOdtΔ3QΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s chunkMUS) Unmarshal(bs []byte) (v Chunk, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DocumentID, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Level, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Type, n1, err = ChunkTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Number, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ParentID, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Seq, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.WordCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CharCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slicenstL9HOiLwXdiΣNzOdtΔ3QΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s chunkMUS) Size(v Chunk) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.DocumentID)
	size += varint.Int.Size(v.Level)
	size += ChunkTypeMUS.Size(v.Type)
	size += ord.String.Size(v.Number)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Content)
	size += IDMUS.Size(v.ParentID)
	size += varint.Int.Size(v.Seq)
	size += varint.Int.Size(v.WordCount)
	size += varint.Int.Size(v.CharCount)
	size += slicenstL9HOiLwXdiΣNzOdtΔ3QΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s chunkMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ChunkTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicenstL9HOiLwXdiΣNzOdtΔ3QΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var JobProgressMUS = jobProgressMUS{}

type jobProgressMUS struct{}

func (s jobProgressMUS) Marshal(v JobProgress, bs []byte) (n int) {
	n = StageMUS.Marshal(v.Stage, bs)
	n += varint.Int.Marshal(v.Percent, bs[n:])
	n += ord.String.Marshal(v.Message, bs[n:])
	n += varint.Int.Marshal(v.CurrentChunk, bs[n:])
	return n + varint.Int.Marshal(v.TotalChunks, bs[n:])
}

func (s jobProgressMUS) Unmarshal(bs []byte) (v JobProgress, n int, err error) {
	v.Stage, n, err = StageMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Percent, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Message, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CurrentChunk, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TotalChunks, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s jobProgressMUS) Size(v JobProgress) (size int) {
	size = StageMUS.Size(v.Stage)
	size += varint.Int.Size(v.Percent)
	size += ord.String.Size(v.Message)
	size += varint.Int.Size(v.CurrentChunk)
	return size + varint.Int.Size(v.TotalChunks)
}

func (s jobProgressMUS) Skip(bs []byte) (n int, err error) {
	n, err = StageMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

var IngestionJobMUS = ingestionJobMUS{}

type ingestionJobMUS struct{}

func (s ingestionJobMUS) Marshal(v IngestionJob, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Filename, bs[n:])
	n += varint.Int64.Marshal(v.FileSize, bs[n:])
	n += JobStatusMUS.Marshal(v.Status, bs[n:])
	n += JobProgressMUS.Marshal(v.Progress, bs[n:])
	n += IDMUS.Marshal(v.DocumentID, bs[n:])
	n += ord.String.Marshal(v.ErrorMessage, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.StartedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CompletedAt, bs[n:])
}

func (s ingestionJobMUS) Unmarshal(bs []byte) (v IngestionJob, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Filename, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FileSize, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = JobStatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Progress, n1, err = JobProgressMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DocumentID, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ErrorMessage, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StartedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CompletedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s ingestionJobMUS) Size(v IngestionJob) (size int) {
	size = ord.String.Size(v.Id)
	size += ord.String.Size(v.Filename)
	size += varint.Int64.Size(v.FileSize)
	size += JobStatusMUS.Size(v.Status)
	size += JobProgressMUS.Size(v.Progress)
	size += IDMUS.Size(v.DocumentID)
	size += ord.String.Size(v.ErrorMessage)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	size += raw.TimeUnixMicro.Size(v.StartedAt)
	return size + raw.TimeUnixMicro.Size(v.CompletedAt)
}

func (s ingestionJobMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = JobStatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = JobProgressMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var KeyPointMUS = keyPointMUS{}

type keyPointMUS struct{}

func (s keyPointMUS) Marshal(v KeyPoint, bs []byte) (n int) {
	n = ord.String.Marshal(v.Title, bs)
	n += ord.String.Marshal(v.Description, bs[n:])
	return n + ord.String.Marshal(v.ArticleRef, bs[n:])
}

func (s keyPointMUS) Unmarshal(bs []byte) (v KeyPoint, n int, err error) {
	v.Title, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ArticleRef, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s keyPointMUS) Size(v KeyPoint) (size int) {
	size = ord.String.Size(v.Title)
	size += ord.String.Size(v.Description)
	return size + ord.String.Size(v.ArticleRef)
}

func (s keyPointMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ComparisonMUS = comparisonMUS{}

type comparisonMUS struct{}

func (s comparisonMUS) Marshal(v Comparison, bs []byte) (n int) {
	n = ord.String.Marshal(v.ArticleRef, bs)
	n += ord.String.Marshal(v.OldText, bs[n:])
	return n + ord.String.Marshal(v.NewText, bs[n:])
}

func (s comparisonMUS) Unmarshal(bs []byte) (v Comparison, n int, err error) {
	v.ArticleRef, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.OldText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.NewText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s comparisonMUS) Size(v Comparison) (size int) {
	size = ord.String.Size(v.ArticleRef)
	size += ord.String.Size(v.OldText)
	return size + ord.String.Size(v.NewText)
}

func (s comparisonMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ChecklistItemMUS = checklistItemMUS{}

type checklistItemMUS struct{}

func (s checklistItemMUS) Marshal(v ChecklistItem, bs []byte) (n int) {
	n = ord.String.Marshal(v.Task, bs)
	return n + ord.String.Marshal(v.ArticleRef, bs[n:])
}

func (s checklistItemMUS) Unmarshal(bs []byte) (v ChecklistItem, n int, err error) {
	v.Task, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ArticleRef, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s checklistItemMUS) Size(v ChecklistItem) (size int) {
	size = ord.String.Size(v.Task)
	return size + ord.String.Size(v.ArticleRef)
}

func (s checklistItemMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var AnalysisResultMUS = analysisResultMUS{}

type analysisResultMUS struct{}

func (s analysisResultMUS) Marshal(v AnalysisResult, bs []byte) (n int) {
	n = ord.String.Marshal(v.Background, bs)
	n += slicegΣSTuIIPcΔeZ2crVyCML3QΞΞ.Marshal(v.KeyPoints, bs[n:])
	n += ord.Bool.Marshal(v.HasPriorVersion, bs[n:])
	n += sliceLo6gSsqZfDZ5Q43UKDRA1AΞΞ.Marshal(v.Comparisons, bs[n:])
	n += ord.String.Marshal(v.BusinessImpact, bs[n:])
	n += sliceeWeSH4rQI9E8Rb1pQviRΔQΞΞ.Marshal(v.Checklist, bs[n:])
	n += varint.Float64.Marshal(v.Confidence, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.AnalyzedAt, bs[n:])
}

func (s analysisResultMUS) Unmarshal(bs []byte) (v AnalysisResult, n int, err error) {
	v.Background, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.KeyPoints, n1, err = slicegΣSTuIIPcΔeZ2crVyCML3QΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.HasPriorVersion, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Comparisons, n1, err = sliceLo6gSsqZfDZ5Q43UKDRA1AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BusinessImpact, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Checklist, n1, err = sliceeWeSH4rQI9E8Rb1pQviRΔQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Confidence, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AnalyzedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s analysisResultMUS) Size(v AnalysisResult) (size int) {
	size = ord.String.Size(v.Background)
	size += slicegΣSTuIIPcΔeZ2crVyCML3QΞΞ.Size(v.KeyPoints)
	size += ord.Bool.Size(v.HasPriorVersion)
	size += sliceLo6gSsqZfDZ5Q43UKDRA1AΞΞ.Size(v.Comparisons)
	size += ord.String.Size(v.BusinessImpact)
	size += sliceeWeSH4rQI9E8Rb1pQviRΔQΞΞ.Size(v.Checklist)
	size += varint.Float64.Size(v.Confidence)
	return size + raw.TimeUnixMicro.Size(v.AnalyzedAt)
}

func (s analysisResultMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slicegΣSTuIIPcΔeZ2crVyCML3QΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceLo6gSsqZfDZ5Q43UKDRA1AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceeWeSH4rQI9E8Rb1pQviRΔQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var SectorImpactMUS = sectorImpactMUS{}

type sectorImpactMUS struct{}

func (s sectorImpactMUS) Marshal(v SectorImpact, bs []byte) (n int) {
	n = ord.String.Marshal(v.Sector, bs)
	n += ImpactLevelMUS.Marshal(v.Level, bs[n:])
	n += ord.String.Marshal(v.Rationale, bs[n:])
	return n + varint.Float64.Marshal(v.Confidence, bs[n:])
}

func (s sectorImpactMUS) Unmarshal(bs []byte) (v SectorImpact, n int, err error) {
	v.Sector, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Level, n1, err = ImpactLevelMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Rationale, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Confidence, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s sectorImpactMUS) Size(v SectorImpact) (size int) {
	size = ord.String.Size(v.Sector)
	size += ImpactLevelMUS.Size(v.Level)
	size += ord.String.Size(v.Rationale)
	return size + varint.Float64.Size(v.Confidence)
}

func (s sectorImpactMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ImpactLevelMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (s documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += DocumentMetadataMUS.Marshal(v.Metadata, bs[n:])
	n += ord.String.Marshal(v.FullText, bs[n:])
	n += AnalysisResultMUS.Marshal(v.Analysis, bs[n:])
	n += ord.Bool.Marshal(v.Analyzed, bs[n:])
	n += slicebEcvKluOU2T2KMt6YczjbQΞΞ.Marshal(v.SectorImpacts, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Metadata, n1, err = DocumentMetadataMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FullText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Analysis, n1, err = AnalysisResultMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Analyzed, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SectorImpacts, n1, err = slicebEcvKluOU2T2KMt6YczjbQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.Id)
	size += DocumentMetadataMUS.Size(v.Metadata)
	size += ord.String.Size(v.FullText)
	size += AnalysisResultMUS.Size(v.Analysis)
	size += ord.Bool.Size(v.Analyzed)
	size += slicebEcvKluOU2T2KMt6YczjbQΞΞ.Size(v.SectorImpacts)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = DocumentMetadataMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = AnalysisResultMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicebEcvKluOU2T2KMt6YczjbQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
