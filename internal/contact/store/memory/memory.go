// Package memory provides map-backed stores for the contact aggregate. They
// back unit tests and local development; the postgres package carries the same
// contracts against the real schema.
//
// Concurrency note: like the SQL stores, these expose last-writer-wins
// semantics for concurrent edits of the same row. There is no version column
// anywhere in the aggregate; the external system of record reconciles by
// replaying full rows, so a revision counter would never be consulted.
package memory

// nextID hands out int64 ids the way the database sequences do, starting
// at 1.
type nextID int64

func (n *nextID) take() int64 {
	*n++
	return int64(*n)
}
