package registry

import (
	"fmt"
	"io"
	"strconv"

	"github.com/billbird/unidom/internal/bbt"
	"github.com/billbird/unidom/internal/instance"
)

// SolverFactory builds a bbt.Solver from a shared FrameworkState and
// variant policy. Solvers that ignore one or both arguments (DummySolver)
// still take the same shape, so the registry can hold every solver behind
// one factory type.
type SolverFactory func(fw *bbt.FrameworkState, opts bbt.VariantOptions) bbt.Solver

// FilterFactory builds an instance.PreprocessFilter from CLI-style string
// arguments (e.g. a BFS root, a random seed, or a force_in/force_out
// vertex list).
type FilterFactory func(args []string) (instance.PreprocessFilter, error)

// GeneratorFactory builds an instance.InputSource from CLI-style string
// arguments (typically a board size, or a size/subset pair for Kneser).
type GeneratorFactory func(args []string) (instance.InputSource, error)

// OutputFactory builds an instance.OutputProxy writing to w, configured by
// CLI-style flag tokens (e.g. "graph", "size_only").
type OutputFactory func(w io.Writer, args []string) (instance.OutputProxy, error)

// Registry is a name-keyed table of component factories. The zero value is
// not usable; construct one with New.
type Registry struct {
	solvers    map[string]SolverFactory
	filters    map[string]FilterFactory
	generators map[string]GeneratorFactory
	outputs    map[string]OutputFactory
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		solvers:    make(map[string]SolverFactory),
		filters:    make(map[string]FilterFactory),
		generators: make(map[string]GeneratorFactory),
		outputs:    make(map[string]OutputFactory),
	}
}

// RegisterSolver adds or replaces the solver factory under name.
func (r *Registry) RegisterSolver(name string, f SolverFactory) { r.solvers[name] = f }

// RegisterFilter adds or replaces the preprocess-filter factory under name.
func (r *Registry) RegisterFilter(name string, f FilterFactory) { r.filters[name] = f }

// RegisterGenerator adds or replaces the input-source factory under name.
func (r *Registry) RegisterGenerator(name string, f GeneratorFactory) { r.generators[name] = f }

// RegisterOutput adds or replaces the output-proxy factory under name.
func (r *Registry) RegisterOutput(name string, f OutputFactory) { r.outputs[name] = f }

// Solver looks up the solver factory registered under name.
func (r *Registry) Solver(name string) (SolverFactory, error) {
	f, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("registry: solver %q: %w", name, ErrUnknownComponent)
	}
	return f, nil
}

// Filter looks up the preprocess-filter factory registered under name.
func (r *Registry) Filter(name string) (FilterFactory, error) {
	f, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("registry: filter %q: %w", name, ErrUnknownComponent)
	}
	return f, nil
}

// Generator looks up the input-source factory registered under name.
func (r *Registry) Generator(name string) (GeneratorFactory, error) {
	f, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("registry: generator %q: %w", name, ErrUnknownComponent)
	}
	return f, nil
}

// Output looks up the output-proxy factory registered under name.
func (r *Registry) Output(name string) (OutputFactory, error) {
	f, ok := r.outputs[name]
	if !ok {
		return nil, fmt.Errorf("registry: output %q: %w", name, ErrUnknownComponent)
	}
	return f, nil
}

// hasFlag reports whether token appears anywhere in args, the same
// order-independent flag style the source's accept_argument loops use.
func hasFlag(args []string, token string) bool {
	for _, a := range args {
		if a == token {
			return true
		}
	}
	return false
}

// parseInt parses a single required integer argument, wrapping strconv's
// error with the offending argument's position for a clearer CLI message.
func parseInt(args []string, index int, label string) (int, error) {
	if index >= len(args) {
		return 0, fmt.Errorf("registry: missing %s argument", label)
	}
	v, err := strconv.Atoi(args[index])
	if err != nil {
		return 0, fmt.Errorf("registry: %s argument %q: %w", label, args[index], err)
	}
	return v, nil
}
