package analysis

import (
	"testing"

	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectorImpacts(t *testing.T) {
	text := `Sector: Banking
Impact Level: High
Rationale: Bank memproses data nasabah dalam skala besar.
Confidence: 0.9

Sector: fintech
Impact Level: medium
Rationale: Penyelenggara fintech tunduk pada kewajiban yang sama.
Confidence: 0.75`

	impacts := ParseSectorImpacts(text)
	require.Len(t, impacts, 2)

	assert.Equal(t, "banking", impacts[0].Sector)
	assert.Equal(t, core.ImpactHigh, impacts[0].Level)
	assert.Contains(t, impacts[0].Rationale, "nasabah")
	assert.InDelta(t, 0.9, impacts[0].Confidence, 0.001)

	assert.Equal(t, "fintech", impacts[1].Sector)
	assert.Equal(t, core.ImpactMedium, impacts[1].Level)

	for _, impact := range impacts {
		assert.True(t, core.KnownSector(impact.Sector))
	}
}

func TestParseSectorImpacts_UnknownSectorDropped(t *testing.T) {
	text := `Sector: space mining
Impact Level: high
Rationale: x
Confidence: 0.9

Sector: banking
Impact Level: medium
Rationale: Kewajiban pelaporan baru bagi bank.
Confidence: 0.8`

	impacts := ParseSectorImpacts(text)
	require.Len(t, impacts, 1)
	assert.Equal(t, "banking", impacts[0].Sector)
	for _, impact := range impacts {
		assert.True(t, core.KnownSector(impact.Sector))
	}
}

func TestParseSectorImpacts_DanglingRecordDiscarded(t *testing.T) {
	text := `Sector: banking
Impact Level: high
Rationale: Lengkap.
Confidence: 0.9

Sector: insurance
Impact Level: low`

	impacts := ParseSectorImpacts(text)
	require.Len(t, impacts, 1)
	assert.Equal(t, "banking", impacts[0].Sector)
}

func TestParseSectorImpacts_RestartDiscardsPartial(t *testing.T) {
	text := `Sector: mining
Impact Level: high
Sector: trade
Impact Level: low
Rationale: Hanya blok kedua yang lengkap.
Confidence: 0.6`

	impacts := ParseSectorImpacts(text)
	require.Len(t, impacts, 1)
	assert.Equal(t, "trade", impacts[0].Sector)
	assert.Equal(t, core.ImpactLow, impacts[0].Level)
}

func TestParseSectorImpacts_BulletDecorations(t *testing.T) {
	text := `- Sector: healthcare
- Impact Level: tinggi
- Rationale: Rumah sakit mengelola data kesehatan sensitif.
- Confidence: 85%`

	impacts := ParseSectorImpacts(text)
	require.Len(t, impacts, 1)
	assert.Equal(t, "healthcare", impacts[0].Sector)
	assert.Equal(t, core.ImpactHigh, impacts[0].Level)
	assert.InDelta(t, 0.85, impacts[0].Confidence, 0.001)
}

func TestParseSectorImpacts_MalformedInput(t *testing.T) {
	assert.Empty(t, ParseSectorImpacts(""))
	assert.Empty(t, ParseSectorImpacts("teks bebas tanpa struktur"))
	assert.Empty(t, ParseSectorImpacts("Sector: banking"))
}

func TestParseImpactLevel(t *testing.T) {
	tests := []struct {
		value    string
		expected core.ImpactLevel
	}{
		{"low", core.ImpactLow},
		{"Rendah", core.ImpactLow},
		{"HIGH", core.ImpactHigh},
		{"tinggi", core.ImpactHigh},
		{"medium", core.ImpactMedium},
		{"sedang-sedang saja", core.ImpactMedium},
		{"", core.ImpactMedium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseImpactLevel(tt.value), "value %q", tt.value)
	}
}

func TestParseSectorConfidence(t *testing.T) {
	assert.InDelta(t, 0.9, parseSectorConfidence("0.9"), 0.001)
	assert.InDelta(t, 0.85, parseSectorConfidence("85%"), 0.001)
	assert.InDelta(t, 0.5, parseSectorConfidence("0,5"), 0.001)
	assert.InDelta(t, 1.0, parseSectorConfidence("1.7"), 0.001)
	assert.InDelta(t, ConfidenceFallback, parseSectorConfidence("tinggi"), 0.001)
}
