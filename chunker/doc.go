// Package chunker decomposes legal document text into a three-level chunk
// hierarchy: one synthesized metadata chunk (level 1), one chunk per chapter
// marker (level 2) and one chunk per article marker (level 3).
//
// The hierarchy is kept flat: chunks carry an optional parent reference
// instead of nesting, which keeps persistence and partial-failure recovery
// simple. Parent linkage is not established during extraction; the
// persistence stage calls AssignParents using marker order in the original
// text.
package chunker
