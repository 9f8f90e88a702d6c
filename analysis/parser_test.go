package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `RINGKASAN LATAR BELAKANG
Peraturan ini disusun untuk memperkuat pelindungan data pribadi di Indonesia
dan menyesuaikan dengan perkembangan teknologi informasi.

POIN-POIN UTAMA
- Kewajiban pendaftaran: setiap pengendali data wajib mendaftar (Pasal 3)
- Sanksi administratif: denda hingga 2% dari pendapatan tahunan (Pasal 12)
- Hak subjek data atas penghapusan

DAMPAK BISNIS
Pelaku usaha wajib menyesuaikan proses pengolahan data dalam waktu dua tahun
sejak peraturan diundangkan.

CHECKLIST KEPATUHAN
- [ ] Tunjuk petugas pelindungan data (Pasal 5)
- [x] Susun catatan aktivitas pengolahan
- [ ] Lakukan penilaian dampak pelindungan data (Pasal 34-35)

TINGKAT KEYAKINAN
85%`

func TestParseAnalysis_AllSections(t *testing.T) {
	result := ParseAnalysis(sampleResponse, false)
	require.NotNil(t, result)

	assert.Contains(t, result.Background, "pelindungan data pribadi")
	assert.Contains(t, result.BusinessImpact, "dua tahun")
	assert.InDelta(t, 0.85, result.Confidence, 0.001)

	require.Len(t, result.KeyPoints, 3)
	assert.Equal(t, "Kewajiban pendaftaran", result.KeyPoints[0].Title)
	assert.Equal(t, "setiap pengendali data wajib mendaftar", result.KeyPoints[0].Description)
	assert.Equal(t, "Pasal 3", result.KeyPoints[0].ArticleRef)
	assert.Equal(t, "Pasal 12", result.KeyPoints[1].ArticleRef)
	assert.Equal(t, "Hak subjek data atas penghapusan", result.KeyPoints[2].Title)
	assert.Empty(t, result.KeyPoints[2].ArticleRef)

	require.Len(t, result.Checklist, 3)
	assert.Equal(t, "Tunjuk petugas pelindungan data", result.Checklist[0].Task)
	assert.Equal(t, "Pasal 5", result.Checklist[0].ArticleRef)
	assert.NotContains(t, result.Checklist[0].Task, "Pasal")
	assert.Equal(t, "Pasal 34-35", result.Checklist[2].ArticleRef)

	// No prior version: comparisons are nil, not empty
	assert.False(t, result.HasPriorVersion)
	assert.Nil(t, result.Comparisons)
}

func TestParseAnalysis_WithComparisons(t *testing.T) {
	text := `PERBANDINGAN DENGAN REGULASI SEBELUMNYA
Pasal: 5
Sebelumnya: Pendaftaran bersifat sukarela.
Sesudahnya: Pendaftaran bersifat wajib.

Pasal: 12
Sebelumnya: Tidak ada sanksi administratif.
Sesudahnya: Sanksi denda administratif diberlakukan.

TINGKAT KEYAKINAN
90%`

	result := ParseAnalysis(text, true)
	require.True(t, result.HasPriorVersion)
	require.Len(t, result.Comparisons, 2)
	assert.Equal(t, "5", result.Comparisons[0].ArticleRef)
	assert.Equal(t, "Pendaftaran bersifat sukarela.", result.Comparisons[0].OldText)
	assert.Equal(t, "Pendaftaran bersifat wajib.", result.Comparisons[0].NewText)
	assert.Equal(t, "12", result.Comparisons[1].ArticleRef)
}

func TestParseAnalysis_ComparisonSectionIgnoredWithoutPriorVersion(t *testing.T) {
	text := `PERBANDINGAN DENGAN REGULASI SEBELUMNYA
Pasal: 5
Sebelumnya: A.
Sesudahnya: B.`

	result := ParseAnalysis(text, false)
	assert.Nil(t, result.Comparisons)
}

func TestParseAnalysis_PriorVersionWithEmptySection(t *testing.T) {
	result := ParseAnalysis("RINGKASAN LATAR BELAKANG\nTeks.", true)

	// Prior version exists but the section is missing: empty, not nil
	assert.NotNil(t, result.Comparisons)
	assert.Empty(t, result.Comparisons)
}

func TestParseAnalysis_DanglingComparisonDiscarded(t *testing.T) {
	text := `PERBANDINGAN DENGAN REGULASI SEBELUMNYA
Pasal: 5
Sebelumnya: Lengkap.
Sesudahnya: Lengkap juga.

Pasal: 9
Sebelumnya: Tidak pernah selesai.`

	result := ParseAnalysis(text, true)
	require.Len(t, result.Comparisons, 1)
	assert.Equal(t, "5", result.Comparisons[0].ArticleRef)
}

func TestParseAnalysis_MissingSections(t *testing.T) {
	result := ParseAnalysis("teks bebas tanpa judul bagian apa pun", false)
	require.NotNil(t, result)

	assert.Empty(t, result.Background)
	assert.Empty(t, result.KeyPoints)
	assert.Empty(t, result.BusinessImpact)
	assert.Empty(t, result.Checklist)
	assert.InDelta(t, ConfidenceFallback, result.Confidence, 0.001)
}

func TestParseAnalysis_EmptyInput(t *testing.T) {
	result := ParseAnalysis("", false)
	require.NotNil(t, result)
	assert.InDelta(t, ConfidenceFallback, result.Confidence, 0.001)
}

func TestParseAnalysis_DecoratedHeadings(t *testing.T) {
	text := `## 1. RINGKASAN LATAR BELAKANG
Latar belakang singkat.

**POIN-POIN UTAMA**
- Satu poin saja (Pasal 7)

### TINGKAT KEYAKINAN:
70%`

	result := ParseAnalysis(text, false)
	assert.Equal(t, "Latar belakang singkat.", result.Background)
	require.Len(t, result.KeyPoints, 1)
	assert.Equal(t, "Pasal 7", result.KeyPoints[0].ArticleRef)
	assert.InDelta(t, 0.70, result.Confidence, 0.001)
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		expected float64
	}{
		{"plain percent", "85%", 0.85},
		{"with prose", "Tingkat keyakinan analisis ini adalah 92%.", 0.92},
		{"decimal comma", "87,5%", 0.875},
		{"over hundred clamps", "150%", 1.0},
		{"absent", "cukup yakin", ConfidenceFallback},
		{"empty", "", ConfidenceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, parseConfidence(tt.section), 0.001)
		})
	}
}

func TestBulletItems_ContinuationLines(t *testing.T) {
	section := `- poin pertama yang panjang
  dan berlanjut di baris kedua
- poin kedua`

	items := bulletItems(section)
	require.Len(t, items, 2)
	assert.Equal(t, "poin pertama yang panjang dan berlanjut di baris kedua", items[0])
	assert.Equal(t, "poin kedua", items[1])
}

func TestMatchHeading(t *testing.T) {
	assert.Equal(t, headingKeyPoints, matchHeading("POIN-POIN UTAMA"))
	assert.Equal(t, headingKeyPoints, matchHeading("## 2) POIN-POIN UTAMA"))
	assert.Equal(t, headingImpact, matchHeading("**DAMPAK BISNIS**"))
	assert.Empty(t, matchHeading("DAMPAK BISNIS terhadap UMKM dan koperasi"))
	assert.Empty(t, matchHeading("BAGIAN TIDAK DIKENAL"))
	assert.Empty(t, matchHeading("- bullet biasa"))
}
