package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLegalIndicators(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty text", "", 0},
		{"plain prose", "Laporan keuangan kuartal ketiga tahun ini.", 1}, // TAHUN
		{"full header", "PERATURAN PEMERINTAH NOMOR 45 TAHUN 2024 TENTANG PAJAK", 4},
		{"case insensitive", "peraturan pemerintah nomor 45 tahun 2024 tentang pajak, pasal 1", 5},
		{"repeated marker counts once", "Pasal 1 Pasal 2 Pasal 3", 1},
		{"all indicators", "PERATURAN UNDANG-UNDANG KEPUTUSAN INSTRUKSI NOMOR TAHUN TENTANG PASAL", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLegalIndicators(tt.text))
		})
	}
}

func TestValidateLegalDocument(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		err := ValidateLegalDocument("PERATURAN MENTERI NOMOR 7 TAHUN 2023 TENTANG DATA")
		assert.NoError(t, err)
	})

	t.Run("exactly at threshold", func(t *testing.T) {
		err := ValidateLegalDocument("PERATURAN NOMOR 7 TAHUN 2023")
		assert.NoError(t, err)
	})

	t.Run("empty text", func(t *testing.T) {
		err := ValidateLegalDocument("")
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("whitespace only", func(t *testing.T) {
		err := ValidateLegalDocument("   \n\t  ")
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("not a legal document", func(t *testing.T) {
		err := ValidateLegalDocument("Resep rendang daging sapi untuk empat porsi.")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotLegalDocument)
	})

	t.Run("below threshold", func(t *testing.T) {
		err := ValidateLegalDocument("NOMOR 12 TAHUN 2020")
		assert.ErrorIs(t, err, ErrNotLegalDocument)
	})
}
