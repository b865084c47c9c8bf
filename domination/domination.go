// Package domination is the public entry point for this module: it wires
// together internal/bbt, internal/registry, and the instance interfaces
// that InputSource/PreprocessFilter/OutputProxy implementations satisfy,
// mirroring the shape a caller of the source's unidom_common.hpp gets —
// one DominationInstance type, one Solver contract, and Solve/GenerateAll
// entry points — without exposing the internal solver machinery.
package domination

import (
	"go.uber.org/zap"

	"github.com/billbird/unidom/internal/bbt"
	"github.com/billbird/unidom/internal/instance"
	"github.com/billbird/unidom/internal/registry"
)

// DominationInstance is the graph plus force_in/force_out constraints a
// Solve or GenerateAll call consumes.
type DominationInstance = instance.DominationInstance

// OutputProxy, InputSource, and PreprocessFilter are the three
// collaborator interfaces §6 describes; components implementing them live
// in internal/renumber, internal/forcefilter, internal/registry (adapting
// internal/genboard's generators), and internal/outproxy, reachable by name
// through a *registry.Registry.
type (
	OutputProxy      = instance.OutputProxy
	InputSource      = instance.InputSource
	PreprocessFilter = instance.PreprocessFilter
)

// ErrTerminate and ErrInconsistentGraph are re-exported so callers never
// need to import internal/instance directly to branch on them.
var (
	ErrTerminate         = instance.ErrTerminate
	ErrInconsistentGraph = instance.ErrInconsistentGraph
)

// NewRegistry returns a *registry.Registry with every built-in solver,
// preprocess filter, board generator, and output proxy registered.
func NewRegistry() *registry.Registry {
	reg := registry.New()
	registry.RegisterDefaults(reg)
	return reg
}

// Options configures a search: which registered solver to run, its
// branching policy, the size window certificates must fall in, the
// res/mod search-tree partition, and diagnostics.
type Options struct {
	// Solver names a registry.Registry solver factory: "fixed_order",
	// "dd", "mdd", or "dummy".
	Solver string

	// Variant configures the DD/MDD branching policy. Ignored by
	// "fixed_order" and "dummy".
	Variant bbt.VariantOptions

	Lower, Upper int

	Res, Mod    uint
	ResmodDepth int

	Verbose bool
	Logger  *zap.Logger
}

// DefaultOptions returns the defaults: fixed_order solver, DD_basic-equivalent
// variant options, unbounded size, no res/mod partitioning, quiet.
func DefaultOptions() Options {
	return Options{
		Solver:      "fixed_order",
		Variant:     bbt.DefaultVariantOptions(),
		Upper:       1<<31 - 1,
		Mod:         1,
		ResmodDepth: -1,
	}
}

func (o Options) frameworkOptions() []bbt.FrameworkOption {
	opts := []bbt.FrameworkOption{
		bbt.WithBounds(o.Lower, o.Upper),
		bbt.WithResMod(o.Res, o.Mod),
		bbt.WithResModDepth(o.ResmodDepth),
		bbt.WithVerbose(o.Verbose),
	}
	if o.Logger != nil {
		opts = append(opts, bbt.WithLogger(o.Logger))
	}
	return opts
}

// Solve runs the registered solver named by opts.Solver in optimizing
// mode: out.ProcessSet is called once per strict improvement, ending with
// the minimum dominating set within [opts.Lower, opts.Upper].
func Solve(reg *registry.Registry, inst *DominationInstance, opts Options, out OutputProxy) error {
	return run(reg, inst, opts, out, false)
}

// GenerateAll runs the registered solver named by opts.Solver in
// enumeration mode: out.ProcessSet is called once per dominating set
// found within [opts.Lower, opts.Upper], with no optimization.
func GenerateAll(reg *registry.Registry, inst *DominationInstance, opts Options, out OutputProxy) error {
	return run(reg, inst, opts, out, true)
}

func run(reg *registry.Registry, inst *DominationInstance, opts Options, out OutputProxy, generateAll bool) error {
	factory, err := reg.Solver(opts.Solver)
	if err != nil {
		return err
	}
	fw := bbt.NewFrameworkState(opts.frameworkOptions()...)
	variant := opts.Variant
	variant.GenerateAll = generateAll
	return factory(fw, variant).Solve(inst, out)
}
