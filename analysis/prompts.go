package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sodapelangi/regulatorai-sub000/core"
)

// maxPromptChars caps the document text embedded in a prompt. Long
// regulations are truncated; the structural sections at the top carry the
// bulk of the analyzable signal.
const maxPromptChars = 12000

// AnalysisPrompt builds the narrative analysis request for a document.
// The comparison section is only requested when a prior version of the
// regulation is known to exist.
func AnalysisPrompt(doc *core.Document, hasPriorVersion bool) string {
	var b strings.Builder

	b.WriteString("Anda adalah analis hukum. Analisis peraturan berikut dan jawab ")
	b.WriteString("persis dengan judul-judul bagian di bawah ini, tanpa bagian lain.\n\n")

	b.WriteString(headingBackground + "\n")
	b.WriteString("<ringkasan singkat latar belakang peraturan>\n\n")

	b.WriteString(headingKeyPoints + "\n")
	b.WriteString("- <judul poin>: <uraian> (Pasal <nomor>)\n\n")

	if hasPriorVersion {
		b.WriteString(headingComparison + "\n")
		b.WriteString("Pasal: <nomor>\n")
		b.WriteString("Sebelumnya: <ketentuan lama>\n")
		b.WriteString("Sesudahnya: <ketentuan baru>\n\n")
	}

	b.WriteString(headingImpact + "\n")
	b.WriteString("<dampak terhadap pelaku usaha>\n\n")

	b.WriteString(headingChecklist + "\n")
	b.WriteString("- [ ] <tindakan kepatuhan> (Pasal <nomor>)\n\n")

	b.WriteString(headingConfidence + "\n")
	b.WriteString("<persentase, contoh: 85%>\n\n")

	writeDocument(&b, doc)
	return b.String()
}

// SectorPrompt builds the sector impact classification request for a document.
func SectorPrompt(doc *core.Document) string {
	var b strings.Builder

	b.WriteString("Klasifikasikan dampak peraturan berikut terhadap sektor usaha. ")
	b.WriteString("Gunakan hanya nama sektor dari daftar ini: ")
	b.WriteString(strings.Join(core.Sectors, ", "))
	b.WriteString(".\n\nJawab dengan blok berulang persis dalam format:\n\n")
	b.WriteString("Sector: <nama sektor>\n")
	b.WriteString("Impact Level: <low|medium|high>\n")
	b.WriteString("Rationale: <alasan singkat>\n")
	b.WriteString("Confidence: <0.0-1.0>\n\n")
	b.WriteString("Sertakan hanya sektor yang benar-benar terdampak.\n\n")

	writeDocument(&b, doc)
	return b.String()
}

func writeDocument(b *strings.Builder, doc *core.Document) {
	b.WriteString("=== DOKUMEN ===\n")
	if doc.Metadata.Title != "" {
		fmt.Fprintf(b, "%s", doc.Metadata.Title)
		if doc.Metadata.Number != "" && doc.Metadata.Year != "" {
			fmt.Fprintf(b, " NOMOR %s TAHUN %s", doc.Metadata.Number, doc.Metadata.Year)
		}
		b.WriteString("\n")
	}
	if doc.Metadata.Subject != "" {
		fmt.Fprintf(b, "TENTANG %s\n", doc.Metadata.Subject)
	}
	b.WriteString("\n")

	text := doc.FullText
	if len(text) > maxPromptChars {
		cut := maxPromptChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	b.WriteString(text)
}
