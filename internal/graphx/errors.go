// Package graphx provides the fixed-capacity adjacency-list graph that the
// domination solver searches over.
//
// A Graph is deliberately dumb: it knows nothing about domination, degrees,
// or bounds. It stores neighbour lists, preserves each vertex's real_index
// across renumbering, and can prepare itself for search by adding self-loops
// and sorting neighbour lists into the order the driver expects. Everything
// smarter lives in degreepq, mddstack, and bbt.
package graphx

import "errors"

// Sentinel errors for Graph construction and mutation.
var (
	// ErrTooManyVertices indicates a requested vertex count is MaxVertices or more.
	ErrTooManyVertices = errors.New("graphx: too many vertices")

	// ErrDegreeTooLarge indicates a vertex would exceed MaxDegree neighbours.
	ErrDegreeTooLarge = errors.New("graphx: degree too large")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("graphx: vertex index out of range")

	// ErrBadPermutation indicates Renumber was given a permutation that is
	// not a bijection on [0, n).
	ErrBadPermutation = errors.New("graphx: renumber permutation is invalid")
)
