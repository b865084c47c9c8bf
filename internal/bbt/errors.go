// Package bbt implements the branch-and-bound driver: the fixed-order,
// domination-degree (DD), and maximum-dominator-degree (MDD) solver
// variants that search a DominationInstance for a minimum dominating set,
// or enumerate every dominating set within a size range.
//
// All three variants share a FrameworkState (res/mod partitioning, size
// bounds, the verbose depth-log, and structured logging) and the same
// overall shape: choose an undominated pivot, branch over an ordering of
// its closed neighbourhood, bound with a component-specific lower bound,
// recurse, and undo. What differs is which incremental structures back the
// pivot choice and the bound: none for fixed-order, DegreePQ light+heavy for
// DD, and DegreePQ heavy+MDDStack for MDD.
package bbt

import (
	"errors"

	"github.com/billbird/unidom/internal/instance"
)

// ErrEmptyNeighbourhood indicates the fixed-order solver reached a vertex
// whose closed neighbourhood is empty — always a sign of an inconsistent
// caller-supplied graph, since every vertex gains a self-loop before search
// begins.
var ErrEmptyNeighbourhood = errors.New("bbt: vertex has no neighbours to branch over")

// Solver is the common shape every variant in this package satisfies, so a
// registry keyed by name (see internal/registry) can hold any of them
// behind one interface.
type Solver interface {
	Solve(inst *instance.DominationInstance, out instance.OutputProxy) error
}
