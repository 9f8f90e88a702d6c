package extract

import (
	"regexp"
	"strings"

	"github.com/sodapelangi/regulatorai-sub000/core"
)

// titleKeywords maps the fixed set of leading title keywords to the document
// category they denote. Longer keywords are matched before their prefixes.
var titleKeywords = []struct {
	keyword  string
	category string
}{
	{"UNDANG-UNDANG", "statute"},
	{"PERATURAN PEMERINTAH PENGGANTI UNDANG-UNDANG", "government regulation in lieu of statute"},
	{"PERATURAN PEMERINTAH", "government regulation"},
	{"PERATURAN PRESIDEN", "presidential regulation"},
	{"PERATURAN MENTERI", "ministerial regulation"},
	{"PERATURAN DAERAH", "regional regulation"},
	{"PERATURAN", "regulation"},
	{"KEPUTUSAN PRESIDEN", "presidential decree"},
	{"KEPUTUSAN MENTERI", "ministerial decree"},
	{"KEPUTUSAN", "decree"},
	{"INSTRUKSI", "instruction"},
	{"SURAT EDARAN", "circular"},
}

// authorityKeywords mark a line as naming the issuing authority.
var authorityKeywords = []string{
	"MENTERI",
	"PRESIDEN",
	"PEMERINTAH",
	"GUBERNUR",
	"BUPATI",
	"WALIKOTA",
	"OTORITAS",
	"KEPALA",
	"DIREKTUR JENDERAL",
	"DEWAN PERWAKILAN RAKYAT",
}

var (
	numberRe = regexp.MustCompile(`(?i)\bNOMOR\s+([0-9]+[0-9A-Za-z./-]*)`)
	yearRe   = regexp.MustCompile(`(?i)\bTAHUN\s+(\d{4})\b`)

	// Full signing block: place, date, signatory title, "ttd", signatory name.
	signingRe = regexp.MustCompile(`(?i)Ditetapkan\s+di\s+([^\n,]+?)[,\s]*\n?\s*pada\s+tanggal\s+([^\n]+?)\s*\n\s*([^\n]+?),?\s*\n\s*ttd\.?,?\s*\n?\s*([^\n]+)`)
	// Fallback when the ttd block is absent or mangled.
	signingShortRe = regexp.MustCompile(`(?i)Ditetapkan\s+di\s+([^\n,]+?)[,\s]*(?:\n|\s)\s*pada\s+tanggal\s+([^\n]+)`)

	promulgationRe = regexp.MustCompile(`(?i)Diundangkan\s+di\s+([^\n,]+?)[,\s]*(?:\n|\s)\s*pada\s+tanggal\s+([^\n]+)`)
)

// Metadata scans raw document text for fixed legal-document markers and
// produces a partial metadata record. Every field is independently optional:
// a text with no recognizable markers yields an empty record, not an error.
func Metadata(text string) *core.DocumentMetadata {
	meta := &core.DocumentMetadata{}

	scanLines(text, meta)
	matchNumberYear(text, meta)
	matchSigning(text, meta)
	matchPromulgation(text, meta)

	return meta
}

// scanLines walks the text line by line, maintaining only the current line
// index, and fills title, authority, subject, considerations and references.
func scanLines(text string, meta *core.DocumentMetadata) {
	lines := strings.Split(text, "\n")

	const (
		scanNone = iota
		scanConsiderations
		scanReferences
	)
	state := scanNone
	var block []string

	flush := func() {
		joined := strings.TrimSpace(strings.Join(block, "\n"))
		switch state {
		case scanConsiderations:
			meta.Considerations = joined
		case scanReferences:
			meta.References = joined
		}
		block = block[:0]
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		upper := strings.ToUpper(line)

		switch {
		case strings.HasPrefix(upper, "MENGINGAT"):
			flush()
			state = scanReferences
			if rest := afterColon(line); rest != "" {
				block = append(block, rest)
			}
			continue
		case strings.HasPrefix(upper, "MENIMBANG"):
			flush()
			state = scanConsiderations
			if rest := afterColon(line); rest != "" {
				block = append(block, rest)
			}
			continue
		case strings.HasPrefix(upper, "MEMUTUSKAN"):
			flush()
			state = scanNone
			continue
		}

		if state != scanNone {
			if line != "" {
				block = append(block, line)
			}
			continue
		}

		if meta.Title == "" {
			if category, ok := matchTitle(upper); ok {
				meta.Title = line
				meta.Category = category
				if next := nextNonEmpty(lines, i+1); next != "" && isAuthorityLine(next) {
					meta.Authority = next
				}
				continue
			}
		}

		if meta.Subject == "" && strings.HasPrefix(upper, "TENTANG") {
			// Subjects frequently wrap over several lines; collect until
			// the next section starts.
			var parts []string
			if rest := strings.TrimSpace(line[len("TENTANG"):]); rest != "" {
				parts = append(parts, rest)
			}
			j := i + 1
			for ; j < len(lines); j++ {
				next := strings.TrimSpace(lines[j])
				if next == "" {
					if len(parts) == 0 {
						continue
					}
					break
				}
				if subjectEnds(strings.ToUpper(next)) {
					break
				}
				parts = append(parts, next)
			}
			meta.Subject = strings.Join(parts, " ")
			i = j - 1
		}
	}
	flush()
}

// subjectEnds reports whether an upper-cased line opens the section that
// follows the subject block.
func subjectEnds(upper string) bool {
	for _, kw := range []string{"MENIMBANG", "MENGINGAT", "MEMUTUSKAN", "DENGAN RAHMAT"} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// matchTitle reports whether an upper-cased line starts with a title keyword.
func matchTitle(upper string) (category string, ok bool) {
	for _, tk := range titleKeywords {
		if strings.HasPrefix(upper, tk.keyword) {
			return tk.category, true
		}
	}
	return "", false
}

func isAuthorityLine(line string) bool {
	upper := strings.ToUpper(strings.TrimSpace(line))
	for _, kw := range authorityKeywords {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// matchNumberYear matches registration number and year anywhere in the text.
// These documents repeat their own header, so the last match wins.
func matchNumberYear(text string, meta *core.DocumentMetadata) {
	if ms := numberRe.FindAllStringSubmatch(text, -1); len(ms) > 0 {
		meta.Number = strings.TrimSpace(ms[len(ms)-1][1])
	}
	if ms := yearRe.FindAllStringSubmatch(text, -1); len(ms) > 0 {
		meta.Year = ms[len(ms)-1][1]
	}
}

func matchSigning(text string, meta *core.DocumentMetadata) {
	if m := signingRe.FindStringSubmatch(text); m != nil {
		meta.SigningPlace = strings.TrimSpace(m[1])
		meta.SigningDate = NormalizeDate(m[2])
		meta.SignatoryTitle = strings.TrimSpace(m[3])
		meta.SignatoryName = strings.TrimSpace(m[4])
		return
	}
	if m := signingShortRe.FindStringSubmatch(text); m != nil {
		meta.SigningPlace = strings.TrimSpace(m[1])
		meta.SigningDate = NormalizeDate(m[2])
	}
}

func matchPromulgation(text string, meta *core.DocumentMetadata) {
	if m := promulgationRe.FindStringSubmatch(text); m != nil {
		meta.PromulgationPlace = strings.TrimSpace(m[1])
		meta.PromulgationDate = NormalizeDate(m[2])
	}
}

func afterColon(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return ""
}

func nextNonEmpty(lines []string, from int) string {
	for i := from; i < len(lines); i++ {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
