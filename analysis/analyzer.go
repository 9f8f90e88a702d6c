// Copyright 2026 Sodapelangi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/sodapelangi/regulatorai-sub000/ai"
	"github.com/sodapelangi/regulatorai-sub000/core"
	"github.com/sodapelangi/regulatorai-sub000/extract"
	"github.com/sodapelangi/regulatorai-sub000/storage"
)

// Revocation clauses signal that the regulation replaces a prior version.
var priorVersionRe = regexp.MustCompile(`(?i)\b(mencabut|dicabut dan dinyatakan tidak berlaku)\b`)

// HasPriorVersion reports whether the document text indicates that a prior
// version of the regulation exists (a revocation clause is present).
func HasPriorVersion(text string) bool {
	return priorVersionRe.MatchString(text)
}

// Analyzer runs the two-call analysis flow for persisted documents: one
// generator call for the narrative analysis, one for the sector impact
// classification, both parsed best-effort and written back onto the
// document record.
type Analyzer struct {
	docs   storage.DocumentRepository
	gen    ai.Generator
	logger *slog.Logger
}

// NewAnalyzer creates an Analyzer backed by the given repositories and
// generator.
func NewAnalyzer(docs storage.DocumentRepository, gen ai.Generator) *Analyzer {
	return &Analyzer{
		docs:   docs,
		gen:    gen,
		logger: slog.Default().With("component", "analyzer"),
	}
}

// Analyze fetches the document, generates and parses both responses, and
// writes the merged result back. Re-invoking overwrites the prior analysis
// rather than appending, so the operation is idempotent. Generator failures
// propagate and leave the stored document untouched.
func (a *Analyzer) Analyze(ctx context.Context, docID core.ID) (*core.Document, error) {
	doc, err := a.docs.GetDocument(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("fetch document %d: %w", docID, err)
	}

	hasPrior := HasPriorVersion(doc.FullText)
	a.logger.Info("analyzing document", "document_id", doc.Id, "has_prior_version", hasPrior)

	narrative, err := a.gen.Generate(ctx, AnalysisPrompt(doc, hasPrior))
	if err != nil {
		return nil, fmt.Errorf("generate analysis: %w", err)
	}

	sectors, err := a.gen.Generate(ctx, SectorPrompt(doc))
	if err != nil {
		return nil, fmt.Errorf("generate sector impacts: %w", err)
	}

	result := ParseAnalysis(narrative, hasPrior)
	result.AnalyzedAt = time.Now().UTC()
	impacts := ParseSectorImpacts(sectors)

	// Signing and promulgation dates sometimes surface only here; merge them
	// into the metadata without overwriting already-populated fields.
	if late := extract.Metadata(doc.FullText); late != nil {
		doc.Metadata.Merge(late)
	}

	doc.Analysis = *result
	doc.Analyzed = true
	doc.SectorImpacts = impacts

	updated, err := a.docs.UpdateDocument(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("store analysis for document %d: %w", docID, err)
	}

	a.logger.Info("analysis stored",
		"document_id", doc.Id,
		"key_points", len(result.KeyPoints),
		"sector_impacts", len(impacts),
		"confidence", result.Confidence)
	return updated, nil
}
