package registry

import (
	"io"

	"github.com/billbird/unidom/internal/bbt"
	"github.com/billbird/unidom/internal/forcefilter"
	"github.com/billbird/unidom/internal/genboard"
	"github.com/billbird/unidom/internal/instance"
	"github.com/billbird/unidom/internal/outproxy"
	"github.com/billbird/unidom/internal/renumber"
)

// RegisterDefaults populates reg with every solver, preprocess filter, and
// board generator this repository ships, mirroring what the source's
// REGISTER_SOLVER / REGISTER_PREPROCESS_FILTER / REGISTER_INPUT_SOURCE
// macros accumulated into a global table as a side effect of linking each
// translation unit. Here the registration is one explicit call, made once
// from cmd/unidom's main, with no package-level init().
func RegisterDefaults(reg *Registry) {
	registerSolvers(reg)
	registerFilters(reg)
	registerGenerators(reg)
	registerOutputs(reg)
}

func registerSolvers(reg *Registry) {
	reg.RegisterSolver("fixed_order", func(fw *bbt.FrameworkState, opts bbt.VariantOptions) bbt.Solver {
		return bbt.NewFixedOrderSolver(fw, opts.GenerateAll)
	})
	reg.RegisterSolver("dd", func(fw *bbt.FrameworkState, opts bbt.VariantOptions) bbt.Solver {
		return bbt.NewDDSolver(fw, opts)
	})
	reg.RegisterSolver("mdd", func(fw *bbt.FrameworkState, opts bbt.VariantOptions) bbt.Solver {
		return bbt.NewMDDSolver(fw, opts)
	})
	reg.RegisterSolver("dummy", func(*bbt.FrameworkState, bbt.VariantOptions) bbt.Solver {
		return bbt.NewDummySolver()
	})
}

func registerFilters(reg *Registry) {
	reg.RegisterFilter("min_degree", func([]string) (instance.PreprocessFilter, error) {
		return renumber.MinDegreeFilter{}, nil
	})
	reg.RegisterFilter("max_degree", func([]string) (instance.PreprocessFilter, error) {
		return renumber.MaxDegreeFilter{}, nil
	})
	reg.RegisterFilter("bfs", func(args []string) (instance.PreprocessFilter, error) {
		root := 0
		if len(args) > 0 {
			r, err := parseInt(args, 0, "bfs root")
			if err != nil {
				return nil, err
			}
			root = r
		}
		return renumber.NewBFSFilter(root), nil
	})
	reg.RegisterFilter("random", func(args []string) (instance.PreprocessFilter, error) {
		seed := int64(1)
		if len(args) > 0 {
			s, err := parseInt(args, 0, "random seed")
			if err != nil {
				return nil, err
			}
			seed = int64(s)
		}
		return renumber.NewRandomFilter(seed), nil
	})
	reg.RegisterFilter("force_in", func(args []string) (instance.PreprocessFilter, error) {
		vertices, err := forcefilter.ParseVertexList(args)
		if err != nil {
			return nil, err
		}
		return forcefilter.NewForceInFilter(vertices), nil
	})
	reg.RegisterFilter("force_out", func(args []string) (instance.PreprocessFilter, error) {
		vertices, err := forcefilter.ParseVertexList(args)
		if err != nil {
			return nil, err
		}
		return forcefilter.NewForceOutFilter(vertices), nil
	})
}

func registerGenerators(reg *Registry) {
	board := func(build func(n int) (*instance.DominationInstance, error), label string) GeneratorFactory {
		return func(args []string) (instance.InputSource, error) {
			n, err := parseInt(args, 0, label+" size")
			if err != nil {
				return nil, err
			}
			inst, err := build(n)
			if err != nil {
				return nil, err
			}
			return &singleInstanceSource{inst: inst}, nil
		}
	}
	reg.RegisterGenerator("queen", board(genboard.Queen, "queen"))
	reg.RegisterGenerator("rook", board(genboard.Rook, "rook"))
	reg.RegisterGenerator("bishop", board(genboard.Bishop, "bishop"))
	reg.RegisterGenerator("king", board(genboard.King, "king"))
	reg.RegisterGenerator("trigrid", board(genboard.Trigrid, "trigrid"))
	reg.RegisterGenerator("hexrook", board(genboard.Hexrook, "hexrook"))
	reg.RegisterGenerator("kneser", func(args []string) (instance.InputSource, error) {
		n, err := parseInt(args, 0, "kneser n")
		if err != nil {
			return nil, err
		}
		k, err := parseInt(args, 1, "kneser k")
		if err != nil {
			return nil, err
		}
		inst, err := genboard.Kneser(n, k)
		if err != nil {
			return nil, err
		}
		return &singleInstanceSource{inst: inst}, nil
	})
}

func registerOutputs(reg *Registry) {
	reg.RegisterOutput("output_all", func(w io.Writer, _ []string) (instance.OutputProxy, error) {
		return outproxy.NewAll(w), nil
	})
	reg.RegisterOutput("output_best", func(w io.Writer, args []string) (instance.OutputProxy, error) {
		best := outproxy.NewBest(w, nil)
		best.PrintGraph = hasFlag(args, "graph")
		best.SizeOnly = hasFlag(args, "size_only")
		return best, nil
	})
	reg.RegisterOutput("graph_only", func(w io.Writer, _ []string) (instance.OutputProxy, error) {
		return outproxy.NewGraphOnly(w), nil
	})
}
