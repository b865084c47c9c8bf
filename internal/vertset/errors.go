// Package vertset provides a fixed-capacity, swap-indexed set of vertex
// indices with O(1) membership, insertion, and removal.
//
// A VertexSet is the workhorse container of the domination solver: it backs
// the current working set D, the best-so-far set B, per-vertex candidate
// neighbourhoods, and the undominated set. Its defining property is that
// remove_pop (removing the most recently added member) never needs to move
// any other element, which the branch-and-bound driver exploits on every
// undo step.
package vertset

import "errors"

// Sentinel errors for VertexSet operations.
var (
	// ErrOutOfRange indicates a vertex index outside [0, capacity).
	ErrOutOfRange = errors.New("vertset: vertex index out of range")

	// ErrAlreadyMember indicates Add was called on a vertex already present.
	ErrAlreadyMember = errors.New("vertset: vertex already a member")

	// ErrNotMember indicates Remove was called on an absent vertex.
	ErrNotMember = errors.New("vertset: vertex not a member")

	// ErrNotMostRecent indicates RemovePop was called on a vertex that is not
	// the most recently added member.
	ErrNotMostRecent = errors.New("vertset: vertex is not the most recently added member")
)
