package chunker

import (
	"regexp"
	"strings"

	"github.com/sodapelangi/regulatorai-sub000/core"
)

var (
	chapterRe = regexp.MustCompile(`(?i)^BAB\s+([IVXLCDM]+|\d+)\b\.?\s*(.*)$`)
	articleRe = regexp.MustCompile(`(?i)^Pasal\s+(\d+[A-Za-z]?)\s*$`)

	// headingRe recognizes the all-caps heading line that conventionally
	// follows a bare "BAB <n>" marker line.
	headingRe = regexp.MustCompile(`^[A-Z][A-Z0-9 ,./-]*$`)
)

// MetadataChunk synthesizes the single level-1 chunk from an already
// extracted metadata record. It is always produced, even when the metadata
// is entirely empty.
func MetadataChunk(docID core.ID, meta *core.DocumentMetadata) *core.Chunk {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}
	add("Judul", meta.Title)
	add("Nomor", meta.Number)
	add("Tahun", meta.Year)
	add("Tentang", meta.Subject)
	add("Instansi", meta.Authority)
	if meta.Considerations != "" {
		lines = append(lines, "", "Menimbang:", meta.Considerations)
	}
	if meta.References != "" {
		lines = append(lines, "", "Mengingat:", meta.References)
	}

	content := strings.TrimSpace(strings.Join(lines, "\n"))
	if content == "" {
		content = "Metadata Dokumen"
	}

	chunk := &core.Chunk{
		Id:         core.ChunkID(docID, 1, 0),
		DocumentID: docID,
		Level:      1,
		Type:       core.ChunkTypeMetadata,
		Title:      "Metadata Dokumen",
		Content:    content,
		Seq:        0,
	}
	chunk.CountText()
	return chunk
}

// ChapterChunks splits text at every chapter (BAB) marker line. Each segment
// between two markers becomes one level-2 chunk; its content spans everything
// up to the next chapter marker, including any articles it contains. Zero
// chapter markers yield zero chunks.
func ChapterChunks(docID core.ID, text string) []*core.Chunk {
	lines := strings.Split(text, "\n")

	var chunks []*core.Chunk
	var current *core.Chunk
	var content []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(content, "\n"))
		current.CountText()
		chunks = append(chunks, current)
		current = nil
		content = content[:0]
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if m := chapterRe.FindStringSubmatch(line); m != nil {
			flush()
			title := strings.TrimSpace(m[2])
			if title == "" {
				if next := peekHeading(lines, i+1); next != "" {
					title = next
				} else {
					title = line
				}
			}
			current = &core.Chunk{
				Id:         core.ChunkID(docID, 2, len(chunks)),
				DocumentID: docID,
				Level:      2,
				Type:       core.ChunkTypeChapter,
				Number:     strings.ToUpper(m[1]),
				Title:      title,
				Seq:        len(chunks),
			}
			continue
		}
		if current != nil && line != "" {
			content = append(content, line)
		}
	}
	flush()

	return chunks
}

// ArticleChunks splits text at every article (Pasal) marker line. A segment
// runs until the next article or chapter marker; an embedded
// "Penjelasan Pasal <n>" block stays appended to the owning article instead
// of becoming its own chunk. Zero article markers yield zero chunks.
func ArticleChunks(docID core.ID, text string) []*core.Chunk {
	lines := strings.Split(text, "\n")

	var chunks []*core.Chunk
	var current *core.Chunk
	var content []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(content, "\n"))
		current.CountText()
		chunks = append(chunks, current)
		current = nil
		content = content[:0]
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if m := articleRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &core.Chunk{
				Id:         core.ChunkID(docID, 3, len(chunks)),
				DocumentID: docID,
				Level:      3,
				Type:       core.ChunkTypeArticle,
				Number:     strings.ToUpper(m[1]),
				Title:      "Pasal " + strings.ToUpper(m[1]),
				Seq:        len(chunks),
			}
			continue
		}

		// A chapter marker ends the current article segment without
		// starting a new one.
		if chapterRe.MatchString(line) {
			flush()
			continue
		}

		if current != nil && line != "" {
			content = append(content, line)
		}
	}
	flush()

	return chunks
}

// ChunkDocument runs the full chunking: one synthesized level-1 chunk plus
// the two independent passes over the text. Chunk identities are derived from
// (document, level, position), so re-running on identical input yields
// identical chunks.
func ChunkDocument(docID core.ID, meta *core.DocumentMetadata, text string) []*core.Chunk {
	chunks := []*core.Chunk{MetadataChunk(docID, meta)}
	chunks = append(chunks, ChapterChunks(docID, text)...)
	chunks = append(chunks, ArticleChunks(docID, text)...)
	return chunks
}

// AssignParents links each level-3 chunk to the level-2 chunk whose chapter
// marker most recently preceded the article marker in the original text.
// Called by the persistence stage; chunks produced by the extraction passes
// carry no parent linkage. Articles appearing before the first chapter marker
// keep ParentID 0.
func AssignParents(chunks []*core.Chunk, text string) {
	chapterBySeq := make(map[int]core.ID)
	for _, c := range chunks {
		if c.Level == 2 {
			chapterBySeq[c.Seq] = c.Id
		}
	}

	parentOfArticle := make(map[int]core.ID)
	chapterSeq := -1
	articleSeq := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if chapterRe.MatchString(line) {
			chapterSeq++
			continue
		}
		if articleRe.MatchString(line) {
			if chapterSeq >= 0 {
				parentOfArticle[articleSeq] = chapterBySeq[chapterSeq]
			}
			articleSeq++
		}
	}

	for _, c := range chunks {
		if c.Level == 3 {
			c.ParentID = parentOfArticle[c.Seq]
		}
	}
}

func peekHeading(lines []string, from int) string {
	for i := from; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if chapterRe.MatchString(line) || articleRe.MatchString(line) {
			return ""
		}
		if headingRe.MatchString(line) && len(line) < 80 {
			return line
		}
		return ""
	}
	return ""
}
