package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DateUnknown is the normalized value for a date string that cannot be
// resolved. A bare number or garbage input never maps to an arbitrary date.
const DateUnknown = "unknown"

// indonesianMonths translates locale month names to month numbers.
// "nopember" is the older spelling still common in promulgation blocks.
var indonesianMonths = map[string]int{
	"januari":   1,
	"februari":  2,
	"maret":     3,
	"april":     4,
	"mei":       5,
	"juni":      6,
	"juli":      7,
	"agustus":   8,
	"september": 9,
	"oktober":   10,
	"november":  11,
	"nopember":  11,
	"desember":  12,
}

var (
	spelledDateRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})\b`)
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{4})\b`)
	isoDateRe     = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
)

// NormalizeDate converts an Indonesian-locale date string to YYYY-MM-DD.
// Accepted forms: "2 Januari 2024", "02/01/2024", "2-1-2024" and an already
// normalized "2024-01-02". Anything else returns DateUnknown.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DateUnknown
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		return m[0]
	}

	if m := spelledDateRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, ok := indonesianMonths[strings.ToLower(m[2])]
		year, _ := strconv.Atoi(m[3])
		if ok && validDate(year, month, day) {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
		return DateUnknown
	}

	if m := numericDateRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if validDate(year, month, day) {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
	}

	return DateUnknown
}

func validDate(year, month, day int) bool {
	return year >= 1900 && year <= 2200 && month >= 1 && month <= 12 && day >= 1 && day <= 31
}
