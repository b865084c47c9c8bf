// Package degreepq implements the domination-degree priority queue: for
// every vertex it tracks a mutable rank-degree, bucketed by value, with O(1)
// increment/decrement, min/max queries, and a greedy "vertices needed to
// reach total degree m" lower bound.
//
// Two flavours are exposed, mirroring the two ways the branch-and-bound
// driver uses this structure concurrently: Light tracks fixed/candidate state
// and a dominated flag per vertex; Heavy additionally threads an intrusive per-bucket list of
// currently-undominated vertices, enabling O(1) min/max-undominated-vertex
// queries at the cost of extra bookkeeping on every mutation.
package degreepq

import "errors"

// Infeasible is returned by CountMinimumToDominate when no combination of
// remaining candidates can reach the requested total degree.
const Infeasible = 1 << 30

var (
	// ErrAlreadyFixed indicates AddCandidate was called on a vertex that is
	// not currently fixed.
	ErrAlreadyFixed = errors.New("degreepq: vertex is not fixed")

	// ErrNotFixed indicates RemoveCandidate was called on a vertex that is
	// already fixed, or whose bucket has no remaining unfixed vertices.
	ErrNotFixed = errors.New("degreepq: vertex is already fixed or bucket exhausted")

	// ErrAlreadyDominated indicates Dominate was called twice on a vertex
	// without an intervening Undominate.
	ErrAlreadyDominated = errors.New("degreepq: vertex already dominated")

	// ErrNotDominated indicates Undominate was called on a vertex that is
	// not currently dominated.
	ErrNotDominated = errors.New("degreepq: vertex is not dominated")
)
