package instance

import "github.com/billbird/unidom/internal/graphx"

// DominationInstance is the triple a solver consumes: a graph plus the
// vertices that must be in the dominating set (ForceIn) and the vertices
// forbidden from it (ForceOut). Callers must ensure ForceIn and ForceOut are
// disjoint and index into G before calling a Solver.
type DominationInstance struct {
	G        *graphx.Graph
	ForceIn  []int
	ForceOut []int
}

// OutputProxy receives dominating sets as a solver finds them.
//
// Initialize is called once before search begins, Finalize once after it
// ends (even on early termination). ProcessSet is called once per
// certificate — for an optimizing solver, once per strict improvement over
// the previous best; for an exhaustive one, once per set found in the
// requested size range. Returning ErrTerminate from ProcessSet asks the
// solver to stop searching and call Finalize immediately.
type OutputProxy interface {
	Initialize(inst *DominationInstance) error
	ProcessSet(inst *DominationInstance, dominatingSet []int) error
	Finalize(inst *DominationInstance) error
}

// InputSource produces one DominationInstance per call to ReadNext, until
// there are no more, at which point it returns (nil, false, nil).
// A non-nil error indicates malformed input and ends the stream.
type InputSource interface {
	ReadNext() (*DominationInstance, bool, error)
}

// PreprocessFilter mutates a DominationInstance before it reaches a solver —
// renumbering vertices, or turning CLI arguments into force_in/force_out
// entries.
type PreprocessFilter interface {
	Process(inst *DominationInstance) error
}
