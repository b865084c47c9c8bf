package bbt

import "github.com/billbird/unidom/internal/instance"

// DummySolver runs the output pipeline without any search: it reports the
// full vertex set exactly once as its only candidate, useful as a registry
// smoke-test entry and for exercising OutputProxy wiring without paying for
// a real search. The source's own process_set call at this point is
// commented out; here it is enabled, since a solver that reports nothing at
// all gives a caller no way to distinguish "ran and found nothing" from
// "never ran".
type DummySolver struct{}

// NewDummySolver returns a DummySolver. It carries no configurable state.
func NewDummySolver() *DummySolver { return &DummySolver{} }

// Solve calls Initialize, reports every vertex as one candidate set, then
// calls Finalize.
func (DummySolver) Solve(inst *instance.DominationInstance, out instance.OutputProxy) error {
	if err := out.Initialize(inst); err != nil {
		return err
	}
	n := inst.G.N()
	full := make([]int, n)
	for v := 0; v < n; v++ {
		full[v] = v
	}
	if err := out.ProcessSet(inst, full); err != nil && err != instance.ErrTerminate {
		return err
	}
	return out.Finalize(inst)
}
