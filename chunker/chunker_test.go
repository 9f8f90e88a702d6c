package chunker

import (
	"testing"

	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoChapterDoc = `BAB I
KETENTUAN UMUM

Pasal 1
Dalam Undang-Undang ini yang dimaksud dengan Data Pribadi adalah data tentang
orang perseorangan yang teridentifikasi.

BAB II
RUANG LINGKUP

Pasal 2
Undang-Undang ini berlaku untuk setiap orang dan badan hukum.
`

func TestChunkDocument_TwoChaptersTwoArticles(t *testing.T) {
	docID := core.DocumentID(twoChapterDoc)
	meta := &core.DocumentMetadata{Title: "UNDANG-UNDANG", Year: "2024"}

	chunks := ChunkDocument(docID, meta, twoChapterDoc)

	var level1, level2, level3 []*core.Chunk
	for _, c := range chunks {
		switch c.Level {
		case 1:
			level1 = append(level1, c)
		case 2:
			level2 = append(level2, c)
		case 3:
			level3 = append(level3, c)
		}
	}

	require.Len(t, level1, 1)
	require.Len(t, level2, 2)
	require.Len(t, level3, 2)

	assert.Equal(t, "I", level2[0].Number)
	assert.Equal(t, "KETENTUAN UMUM", level2[0].Title)
	assert.Equal(t, "II", level2[1].Number)
	assert.Equal(t, "RUANG LINGKUP", level2[1].Title)

	assert.Equal(t, "1", level3[0].Number)
	assert.Equal(t, "Pasal 1", level3[0].Title)
	assert.Contains(t, level3[0].Content, "Data Pribadi")
	assert.NotContains(t, level3[0].Content, "BAB II")
	assert.Equal(t, "2", level3[1].Number)
	assert.Contains(t, level3[1].Content, "badan hukum")
}

func TestChunkDocument_IdentitiesUniqueAndDeterministic(t *testing.T) {
	docID := core.DocumentID(twoChapterDoc)
	meta := &core.DocumentMetadata{}

	first := ChunkDocument(docID, meta, twoChapterDoc)
	second := ChunkDocument(docID, meta, twoChapterDoc)

	seen := make(map[core.ID]bool)
	for _, c := range first {
		assert.False(t, seen[c.Id], "duplicate chunk identity %d", c.Id)
		seen[c.Id] = true
	}

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Id, second[i].Id)
		assert.Equal(t, first[i].Content, second[i].Content)
		assert.Equal(t, first[i].Title, second[i].Title)
	}
}

func TestChapterChunks_NoMarkers(t *testing.T) {
	text := "Pasal 1\nIsi pasal pertama.\n\nPasal 2\nIsi pasal kedua.\n"
	docID := core.DocumentID(text)

	assert.Empty(t, ChapterChunks(docID, text))

	articles := ArticleChunks(docID, text)
	require.Len(t, articles, 2)
	assert.Equal(t, "Isi pasal pertama.", articles[0].Content)
}

func TestArticleChunks_NoMarkers(t *testing.T) {
	text := "BAB I\nKETENTUAN UMUM\nTidak ada pasal di sini.\n"
	docID := core.DocumentID(text)

	assert.Empty(t, ArticleChunks(docID, text))
	require.Len(t, ChapterChunks(docID, text), 1)
}

func TestArticleChunks_ExplanationAppended(t *testing.T) {
	text := `Pasal 5
Setiap orang berhak atas pelindungan data.

Penjelasan Pasal 5
Yang dimaksud dengan pelindungan adalah jaminan hukum.

Pasal 6
Ketentuan lebih lanjut diatur dengan Peraturan Pemerintah.
`
	articles := ArticleChunks(core.DocumentID(text), text)
	require.Len(t, articles, 2)

	assert.Contains(t, articles[0].Content, "berhak atas pelindungan")
	assert.Contains(t, articles[0].Content, "jaminan hukum",
		"explanation block must stay attached to its article")
	assert.NotContains(t, articles[1].Content, "jaminan hukum")
}

func TestArticleChunks_LetterSuffixNumber(t *testing.T) {
	text := "Pasal 12A\nKetentuan sisipan.\n"
	articles := ArticleChunks(core.DocumentID(text), text)
	require.Len(t, articles, 1)
	assert.Equal(t, "12A", articles[0].Number)
}

func TestChapterChunks_ArabicNumberAndInlineTitle(t *testing.T) {
	text := "BAB 3 SANKSI ADMINISTRATIF\nPelanggaran dikenai sanksi.\n"
	chapters := ChapterChunks(core.DocumentID(text), text)
	require.Len(t, chapters, 1)
	assert.Equal(t, "3", chapters[0].Number)
	assert.Equal(t, "SANKSI ADMINISTRATIF", chapters[0].Title)
}

func TestMetadataChunk_AlwaysProduced(t *testing.T) {
	docID := core.ID(42)

	empty := MetadataChunk(docID, &core.DocumentMetadata{})
	require.NotNil(t, empty)
	assert.Equal(t, 1, empty.Level)
	assert.Equal(t, core.ChunkTypeMetadata, empty.Type)
	assert.NotEmpty(t, empty.Content, "level-1 chunk must validate even with empty metadata")

	full := MetadataChunk(docID, &core.DocumentMetadata{
		Title:          "PERATURAN PEMERINTAH",
		Number:         "5",
		Year:           "2024",
		Subject:        "PERLINDUNGAN DATA PRIBADI",
		Considerations: "a. bahwa diperlukan pengaturan;",
	})
	assert.Contains(t, full.Content, "Judul: PERATURAN PEMERINTAH")
	assert.Contains(t, full.Content, "Nomor: 5")
	assert.Contains(t, full.Content, "Tahun: 2024")
	assert.Contains(t, full.Content, "Menimbang:")
	assert.Positive(t, full.WordCount)
	assert.Positive(t, full.CharCount)
}

func TestAssignParents(t *testing.T) {
	docID := core.DocumentID(twoChapterDoc)
	chunks := ChunkDocument(docID, &core.DocumentMetadata{}, twoChapterDoc)

	AssignParents(chunks, twoChapterDoc)

	var chapters, articles []*core.Chunk
	for _, c := range chunks {
		switch c.Level {
		case 2:
			chapters = append(chapters, c)
		case 3:
			articles = append(articles, c)
		}
	}
	require.Len(t, chapters, 2)
	require.Len(t, articles, 2)

	assert.Equal(t, chapters[0].Id, articles[0].ParentID)
	assert.Equal(t, chapters[1].Id, articles[1].ParentID)

	// Level-1 and level-2 chunks never carry a parent.
	for _, c := range chunks {
		if c.Level != 3 {
			assert.Zero(t, c.ParentID)
		}
	}
}

func TestAssignParents_ArticleBeforeFirstChapter(t *testing.T) {
	text := "Pasal 1\nKetentuan pembuka.\n\nBAB I\nKETENTUAN UMUM\n\nPasal 2\nIsi.\n"
	docID := core.DocumentID(text)
	chunks := ChunkDocument(docID, &core.DocumentMetadata{}, text)

	AssignParents(chunks, text)

	var articles []*core.Chunk
	for _, c := range chunks {
		if c.Level == 3 {
			articles = append(articles, c)
		}
	}
	require.Len(t, articles, 2)
	assert.Zero(t, articles[0].ParentID, "article before any chapter has no parent")
	assert.NotZero(t, articles[1].ParentID)
}

func TestChunkDocument_ValidatesClean(t *testing.T) {
	docID := core.DocumentID(twoChapterDoc)
	chunks := ChunkDocument(docID, &core.DocumentMetadata{Title: "UU"}, twoChapterDoc)
	assert.Empty(t, core.ValidateChunks(chunks))
}
