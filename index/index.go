package index

import (
	"github.com/saurabh1002/scancontext/internal/kdtree"
)

// Candidate is one nearest-neighbor result from Query: the node index of a
// matching descriptor record and its ring-key L2 distance from the query.
type Candidate struct {
	Index    int
	Distance float64
}

// RingKeyIndex holds the append-only ring-key history and a k-d tree built
// over the search view: the prefix of history that excludes the most
// recently inserted NumExcludeRecent ring keys. The tree is not maintained
// incrementally; callers rebuild it explicitly (see Rebuild).
type RingKeyIndex struct {
	numExcludeRecent int
	candidates       int
	ringKeys         [][]float64
	tree             *kdtree.Tree
}

// New creates an empty RingKeyIndex. numExcludeRecent is the temporal
// exclusion window; candidates is the upper bound on results returned by
// Query.
func New(numExcludeRecent, candidates int) *RingKeyIndex {
	return &RingKeyIndex{
		numExcludeRecent: numExcludeRecent,
		candidates:       candidates,
		tree:             kdtree.Build(nil, nil),
	}
}

// Insert appends a ring key to history. It takes effect at the next
// Rebuild, not before: Query always searches the most recently built tree.
func (idx *RingKeyIndex) Insert(ringKey []float64) {
	idx.ringKeys = append(idx.ringKeys, ringKey)
}

// Len returns the number of ring keys inserted so far (the full history
// length, not the search view size).
func (idx *RingKeyIndex) Len() int {
	return len(idx.ringKeys)
}

// Rebuild rebuilds the k-d tree from the current search view: ring keys at
// node indices [0, Len()-numExcludeRecent). If the search view is empty,
// the resulting tree has no points and Query returns nil.
func (idx *RingKeyIndex) Rebuild() {
	n := len(idx.ringKeys) - idx.numExcludeRecent
	if n <= 0 {
		idx.tree = kdtree.Build(nil, nil)
		return
	}

	view := idx.ringKeys[:n]
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	idx.tree = kdtree.Build(view, indices)
}

// Query returns up to Candidates nearest ring keys to rk in the search
// view as of the last Rebuild, ordered nearest-first. If the tree has
// never been built or the search view was empty at the last rebuild, it
// returns nil.
func (idx *RingKeyIndex) Query(rk []float64) []Candidate {
	neighbors := idx.tree.KNN(rk, idx.candidates)
	if neighbors == nil {
		return nil
	}

	out := make([]Candidate, len(neighbors))
	for i, n := range neighbors {
		out[i] = Candidate{Index: n.Index, Distance: n.Distance}
	}
	return out
}
