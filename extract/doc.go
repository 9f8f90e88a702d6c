// Package extract produces a flat metadata record from raw Indonesian legal
// document text.
//
// Extraction is best-effort pattern matching over a semi-structured format:
// a missing marker leaves the corresponding field empty and is never an
// error. The line scanner keeps no state beyond the current line index;
// registration number, year, signing and promulgation blocks are matched
// anywhere in the text, with the last match winning for fields the documents
// repeat in their own headers.
package extract
