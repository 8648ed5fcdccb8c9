// Package index provides the append-only ring-key search view and its
// periodically rebuilt k-d tree (the "D" component of the detector): the
// nearest-neighbor candidate source for loop-closure queries.
//
// # Temporal exclusion
//
// The search view never contains the most recently ingested records; how
// many are held back is controlled by NumExcludeRecent. This guarantees a
// query can never match itself or its immediate predecessors.
//
// # Rebuild policy
//
// The tree is not maintained incrementally. RingKeyIndex keeps no rebuild
// counter of its own: the caller counts ingests, checks the count against a
// rebuild period, and calls Rebuild when it is due; between rebuilds, Query still searches
// whatever tree snapshot was last built, which is acceptable because
// candidates are re-scored against the full descriptor before being
// trusted (see package scdistance).
package index
