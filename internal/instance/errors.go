// Package instance defines the data the branch-and-bound solvers, input
// sources, preprocess filters, and output proxies all share, kept free of
// any single solver's internals so none of them need to import each other.
package instance

import "errors"

// ErrTerminate may be returned from OutputProxy.ProcessSet to signal that
// the solver should stop backtracking early and finalize. It is a control
// flow marker, not a reported failure: callers unwrap it and treat it as a
// clean stop.
var ErrTerminate = errors.New("instance: output proxy requested termination")

// ErrInconsistentGraph indicates a solver found its own coverage bookkeeping
// inconsistent with the graph: not every vertex is counted as dominated, yet
// no undominated vertex is left to branch on. Constraints that make
// domination impossible do not produce it; the search then reports no set.
var ErrInconsistentGraph = errors.New("instance: graph cannot be fully dominated under the given constraints")
