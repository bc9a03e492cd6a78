// Package store persists converted graphs as dataset records.
//
// A [Record] couples a graph with its provenance: a human-readable name, the
// content hash of the graph, and a creation timestamp. Records are immutable
// once written; re-converting the same document yields the same hash, so
// callers can skip writes for graphs the store already holds.
//
// Two implementations are provided: [MongoStore] for the API server and
// [MemoryStore] for tests and ephemeral use.
package store
