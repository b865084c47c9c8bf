// Package mddstack implements the maximum-dominator-degree stack: for every
// undominated vertex u it tracks the best rank-degree among u's still-
// candidate neighbours, giving the branch-and-bound driver a strong lower
// bound on how many further dominators are still needed.
//
// Every mutation pushes an undo row; the matching pop restores mdd values,
// counts, and the running maximum exactly, which is what lets the driver
// backtrack without ever recomputing from scratch.
package mddstack

import "errors"

// InvalidMDD marks a vertex that is no longer undominated: its MDD carries
// no meaning and is excluded from mddCounts bookkeeping.
const InvalidMDD = 1 << 30

// Infeasible is returned by MinVerticesNeeded when some undominated vertex
// has no remaining candidate neighbour at all.
const Infeasible = 1 << 30

var (
	// ErrRowMismatch indicates RemoveDominator/UnexcludeDominator was called
	// with a vertex that does not match the top of the undo stack — the
	// push/pop calls made by the driver are out of order.
	ErrRowMismatch = errors.New("mddstack: undo row does not match dominator")

	// ErrEmptyUndominatedSet indicates GetMaxMDDVertex/GetMinMDDVertex was
	// called while no undominated vertex remains.
	ErrEmptyUndominatedSet = errors.New("mddstack: no undominated vertex remains")
)
