package ingestion

import (
	"fmt"
	"strings"
)

// legalIndicators are markers whose presence distinguishes an Indonesian
// legal document from arbitrary prose.
var legalIndicators = []string{
	"PERATURAN",
	"UNDANG-UNDANG",
	"KEPUTUSAN",
	"INSTRUKSI",
	"NOMOR",
	"TAHUN",
	"TENTANG",
	"PASAL",
}

// minLegalIndicators is the number of distinct indicators required for a
// document to pass validation.
const minLegalIndicators = 3

// CountLegalIndicators returns how many distinct legal-document markers
// appear in the text. Matching is case-insensitive.
func CountLegalIndicators(text string) int {
	upper := strings.ToUpper(text)
	count := 0
	for _, indicator := range legalIndicators {
		if strings.Contains(upper, indicator) {
			count++
		}
	}
	return count
}

// ValidateLegalDocument checks that the text is non-empty and carries enough
// legal-document markers to be worth ingesting.
func ValidateLegalDocument(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyDocument
	}
	if found := CountLegalIndicators(text); found < minLegalIndicators {
		return fmt.Errorf("%w: found %d of %d required markers",
			ErrNotLegalDocument, found, minLegalIndicators)
	}
	return nil
}
