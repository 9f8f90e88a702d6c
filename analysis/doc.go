// Package analysis turns free-text generator output into typed analysis
// records for regulation documents.
//
// Two structurally similar parsers live here. ParseAnalysis anchors on a
// fixed set of Indonesian section headings and extracts the text between
// each heading and the next; ParseSectorImpacts consumes repeating labeled
// four-line records. Both operate on the contract "always return a
// best-effort, possibly-empty structure" and never return an error, because
// generator output is not guaranteed to follow the requested format.
//
// The Analyzer service drives the full flow for a persisted document: two
// generator calls, both parsers, a fill-if-absent merge of late-discovered
// metadata dates, and an idempotent write-back onto the document record.
// Analysis runs independently of ingestion jobs and may be re-triggered at
// any time.
package analysis
