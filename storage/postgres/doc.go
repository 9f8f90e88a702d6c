// Package postgres provides a Postgres-backed implementation of the storage
// repositories. It is interchangeable with the BadgerDB backend: records use
// the same binary encoding, with relational columns for the access paths the
// repositories need. Intended for deployments where the document corpus is
// shared between several server instances.
package postgres
