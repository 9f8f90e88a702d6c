package analysis

import (
	"strconv"
	"strings"

	"github.com/sodapelangi/regulatorai-sub000/core"
)

// ParseSectorImpacts consumes a sector classification response made of
// repeating four-line records:
//
//	Sector: banking
//	Impact Level: high
//	Rationale: <free text>
//	Confidence: 0.9
//
// Only completed records naming a sector from the controlled vocabulary are
// kept; a dangling partial record at the end of input is discarded. Malformed
// input yields a best-effort, possibly-empty slice, never an error.
func ParseSectorImpacts(text string) []core.SectorImpact {
	var impacts []core.SectorImpact
	var current core.SectorImpact
	var haveSector, haveLevel, haveRationale, haveConfidence bool

	reset := func() {
		current = core.SectorImpact{}
		haveSector, haveLevel, haveRationale, haveConfidence = false, false, false, false
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		switch {
		case hasLabel(line, "Sector"):
			if haveSector {
				// Previous record never completed
				reset()
			}
			current.Sector = strings.ToLower(labelValue(line, "Sector"))
			haveSector = true
		case hasLabel(line, "Impact Level"):
			current.Level = parseImpactLevel(labelValue(line, "Impact Level"))
			haveLevel = true
		case hasLabel(line, "Rationale"):
			current.Rationale = labelValue(line, "Rationale")
			haveRationale = true
		case hasLabel(line, "Confidence"):
			current.Confidence = parseSectorConfidence(labelValue(line, "Confidence"))
			haveConfidence = true
		}

		if haveSector && haveLevel && haveRationale && haveConfidence {
			// The model occasionally invents sector names despite being
			// handed the list; anything outside the vocabulary is dropped.
			if core.KnownSector(current.Sector) {
				impacts = append(impacts, current)
			}
			reset()
		}
	}

	return impacts
}

// parseImpactLevel maps a level token onto the fixed vocabulary.
// Unrecognized tokens default to medium.
func parseImpactLevel(value string) core.ImpactLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low", "rendah":
		return core.ImpactLow
	case "high", "tinggi":
		return core.ImpactHigh
	default:
		return core.ImpactMedium
	}
}

// parseSectorConfidence accepts either a 0..1 fraction or a percentage token.
func parseSectorConfidence(value string) float64 {
	value = strings.TrimSpace(value)
	if m := percentRe.FindStringSubmatch(value); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			return clamp01(v / 100)
		}
		return ConfidenceFallback
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil {
		return ConfidenceFallback
	}
	return clamp01(v)
}
