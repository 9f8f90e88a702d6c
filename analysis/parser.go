package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sodapelangi/regulatorai-sub000/core"
)

// ConfidenceFallback is the overall confidence assigned when the response
// carries no parseable percentage token.
const ConfidenceFallback = 0.75

// Section headings the generator is asked to produce. The parser anchors on
// these; any heading may be missing, which yields an empty field.
const (
	headingBackground = "RINGKASAN LATAR BELAKANG"
	headingKeyPoints  = "POIN-POIN UTAMA"
	headingComparison = "PERBANDINGAN DENGAN REGULASI SEBELUMNYA"
	headingImpact     = "DAMPAK BISNIS"
	headingChecklist  = "CHECKLIST KEPATUHAN"
	headingConfidence = "TINGKAT KEYAKINAN"
)

var knownHeadings = []string{
	headingBackground,
	headingKeyPoints,
	headingComparison,
	headingImpact,
	headingChecklist,
	headingConfidence,
}

var (
	// Tolerates markdown and numbering decorations around a heading:
	// "## 2. POIN-POIN UTAMA", "**DAMPAK BISNIS**", etc.
	headingLineRe = regexp.MustCompile(`^\s*(?:#+\s*)?(?:\*\*)?\s*(?:\d+[.)]\s*)?([A-Z][A-Z -]+[A-Z])\s*(?:\*\*)?\s*:?\s*$`)

	bulletRe     = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*(?:\[\s*[xX]?\s*\]\s*)?(.*)$`)
	articleRefRe = regexp.MustCompile(`(?i)\(?\s*Pasal\s+(\d+[A-Za-z]?(?:\s*-\s*\d+[A-Za-z]?)?)\s*\)?`)
	percentRe    = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*%`)
)

// ParseAnalysis extracts the typed analysis record from a free-text generator
// response. Every section is independently optional; malformed input yields
// an empty or partial result, never an error. The comparison section is only
// consulted when hasPriorVersion is true; otherwise Comparisons stays nil,
// which is distinct from an empty list.
func ParseAnalysis(text string, hasPriorVersion bool) *core.AnalysisResult {
	sections := splitSections(text)

	result := &core.AnalysisResult{
		Background:      strings.TrimSpace(sections[headingBackground]),
		KeyPoints:       parseKeyPoints(sections[headingKeyPoints]),
		HasPriorVersion: hasPriorVersion,
		BusinessImpact:  strings.TrimSpace(sections[headingImpact]),
		Checklist:       parseChecklist(sections[headingChecklist]),
		Confidence:      parseConfidence(sections[headingConfidence]),
	}

	if hasPriorVersion {
		result.Comparisons = parseComparisons(sections[headingComparison])
		if result.Comparisons == nil {
			result.Comparisons = []core.Comparison{}
		}
	}

	return result
}

// splitSections maps each known heading to the text between it and the next
// known heading (or end of input). Unanchored text before the first heading
// is dropped.
func splitSections(text string) map[string]string {
	sections := make(map[string]string, len(knownHeadings))

	lines := strings.Split(text, "\n")
	current := ""
	var buf []string

	flush := func() {
		if current != "" {
			sections[current] = strings.Join(buf, "\n")
		}
		buf = nil
	}

	for _, line := range lines {
		if h := matchHeading(line); h != "" {
			flush()
			current = h
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return sections
}

// matchHeading reports which known heading a line denotes, or "".
func matchHeading(line string) string {
	m := headingLineRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	candidate := strings.TrimSpace(m[1])
	for _, h := range knownHeadings {
		if strings.EqualFold(candidate, h) {
			return h
		}
	}
	return ""
}

// parseKeyPoints splits a section on bullet markers. A bullet of the form
// "Judul: uraian (Pasal 3)" yields title, description, and article reference;
// without a separator the whole line becomes the title.
func parseKeyPoints(section string) []core.KeyPoint {
	var points []core.KeyPoint
	for _, item := range bulletItems(section) {
		item, ref := extractArticleRef(item)
		if item == "" {
			continue
		}

		point := core.KeyPoint{ArticleRef: ref}
		if title, desc, found := strings.Cut(item, ":"); found && strings.TrimSpace(title) != "" {
			point.Title = strings.TrimSpace(title)
			point.Description = strings.TrimSpace(desc)
		} else {
			point.Title = item
		}
		points = append(points, point)
	}
	return points
}

// parseChecklist splits a section on bullet/checkbox markers; each item's
// article reference is pulled out and stripped from the task text.
func parseChecklist(section string) []core.ChecklistItem {
	var items []core.ChecklistItem
	for _, item := range bulletItems(section) {
		task, ref := extractArticleRef(item)
		if task == "" {
			continue
		}
		items = append(items, core.ChecklistItem{Task: task, ArticleRef: ref})
	}
	return items
}

// parseComparisons consumes repeating labeled records:
//
//	Pasal: 5
//	Sebelumnya: <old text>
//	Sesudahnya: <new text>
//
// Only completed records are kept; a dangling partial record at the end of
// the section is discarded.
func parseComparisons(section string) []core.Comparison {
	var comparisons []core.Comparison
	var current core.Comparison
	var haveRef, haveOld, haveNew bool

	reset := func() {
		current = core.Comparison{}
		haveRef, haveOld, haveNew = false, false, false
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		switch {
		case hasLabel(line, "Pasal"):
			if haveRef {
				// New record before the previous one completed
				reset()
			}
			current.ArticleRef = labelValue(line, "Pasal")
			haveRef = true
		case hasLabel(line, "Sebelumnya"):
			current.OldText = labelValue(line, "Sebelumnya")
			haveOld = true
		case hasLabel(line, "Sesudahnya"):
			current.NewText = labelValue(line, "Sesudahnya")
			haveNew = true
		}

		if haveRef && haveOld && haveNew {
			comparisons = append(comparisons, current)
			reset()
		}
	}

	return comparisons
}

// parseConfidence pulls a percentage token from the confidence section and
// maps it onto [0,1]. Absent or unparseable tokens fall back to the default.
func parseConfidence(section string) float64 {
	m := percentRe.FindStringSubmatch(section)
	if m == nil {
		return ConfidenceFallback
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return ConfidenceFallback
	}
	return clamp01(value / 100)
}

// bulletItems returns the trimmed text of each bullet line in a section.
// Continuation lines (non-bullet lines following a bullet) are appended to
// the preceding item.
func bulletItems(section string) []string {
	var items []string
	for _, line := range strings.Split(section, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := bulletRe.FindStringSubmatch(line); m != nil && strings.TrimSpace(m[1]) != "" {
			items = append(items, strings.TrimSpace(m[1]))
			continue
		}
		if len(items) > 0 {
			items[len(items)-1] += " " + strings.TrimSpace(line)
		}
	}
	return items
}

// extractArticleRef pulls the article reference out of an item, returning
// the item text with the reference stripped and the reference itself.
func extractArticleRef(item string) (string, string) {
	m := articleRefRe.FindStringSubmatch(item)
	if m == nil {
		return strings.TrimSpace(item), ""
	}
	ref := "Pasal " + strings.ReplaceAll(m[1], " ", "")
	stripped := strings.TrimSpace(articleRefRe.ReplaceAllString(item, ""))
	stripped = strings.TrimRight(stripped, " .,;:")
	return stripped, ref
}

func hasLabel(line, label string) bool {
	if len(line) <= len(label) {
		return false
	}
	return strings.EqualFold(line[:len(label)], label) && strings.HasPrefix(strings.TrimSpace(line[len(label):]), ":")
}

func labelValue(line, label string) string {
	rest := strings.TrimSpace(line[len(label):])
	rest = strings.TrimPrefix(rest, ":")
	return strings.TrimSpace(rest)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
