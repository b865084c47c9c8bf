// Command unidom is the CLI driver: it reads or generates a
// DominationInstance, applies preprocess filters, runs a registered
// solver, and reports certificates through a registered output proxy.
// The flag layout follows Navigatorx/cmd/preprocessor's flat
// flag.*-variable-block style, with no config framework.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/billbird/unidom/domination"
	"github.com/billbird/unidom/internal/bbt"
	"github.com/billbird/unidom/internal/forcefilter"
	"github.com/billbird/unidom/internal/instance"
	"github.com/billbird/unidom/internal/ioformat"
	"github.com/billbird/unidom/internal/registry"
	"github.com/billbird/unidom/internal/unidomlog"
)

var (
	inputPath   = flag.String("input", "", "path to a graph text file (see the format in internal/ioformat); empty reads stdin")
	generator   = flag.String("generator", "", "board generator spec \"name:args,...\" (queen, rook, bishop, king, kneser, trigrid, hexrook); overrides -input")
	upper       = flag.Int("u", 1<<31-1, "reject certificates larger than this size")
	lower       = flag.Int("l", 0, "reject certificates smaller than this size")
	res         = flag.Uint("res", 0, "residue class for search-tree partitioning")
	mod         = flag.Uint("mod", 1, "number of residue classes for search-tree partitioning")
	resmodDepth = flag.Int("resmod_depth", -1, "depth at which res/mod partitioning is checked; -1 disables it")
	solverName  = flag.String("solver", "fixed_order", "registered solver: fixed_order, dd, mdd, dummy")
	order       = flag.String("order", "asc", "DD/MDD branch ranking order: asc or desc")
	renumber    = flag.String("renumber", "", "renumbering filter spec \"name:args,...\" (min_degree, max_degree, bfs:root, random:seed); empty skips renumbering")
	forceIn     = flag.String("force-in", "", "comma-separated vertex indices to force into the dominating set")
	forceOut    = flag.String("force-out", "", "comma-separated vertex indices forced out of the dominating set")
	output      = flag.String("output", "output_best", "registered output proxy: output_all, output_best, graph_only")
	generateAll = flag.Bool("all", false, "enumerate every dominating set in [-l,-u] instead of optimizing")
	verbose     = flag.Bool("verbose", false, "print the per-depth search node-count histogram")
	quiet       = flag.Bool("quiet", false, "suppress all diagnostic logging")
)

func main() {
	flag.Parse()

	logger, err := unidomlog.New(*verbose, *quiet)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Sugar().Errorf("unidom: %v", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	reg := domination.NewRegistry()

	inst, err := readInstance(reg)
	if err != nil {
		return fmt.Errorf("reading instance: %w", err)
	}

	if err := applyFilters(reg, inst); err != nil {
		return fmt.Errorf("applying filters: %w", err)
	}

	opts := domination.DefaultOptions()
	opts.Solver = *solverName
	opts.Lower, opts.Upper = *lower, *upper
	opts.Res, opts.Mod = *res, *mod
	opts.ResmodDepth = *resmodDepth
	opts.Verbose = *verbose
	opts.Logger = logger
	if *order == "desc" {
		opts.Variant.RankNeighbours = bbt.RankDescending
	}

	outFactory, err := reg.Output(*output)
	if err != nil {
		return fmt.Errorf("resolving output proxy: %w", err)
	}
	proxy, err := outFactory(os.Stdout, nil)
	if err != nil {
		return fmt.Errorf("building output proxy: %w", err)
	}

	if *generateAll {
		return domination.GenerateAll(reg, inst, opts, proxy)
	}
	return domination.Solve(reg, inst, opts, proxy)
}

func readInstance(reg *registry.Registry) (*instance.DominationInstance, error) {
	if *generator != "" {
		name, args := splitComponentSpec(*generator)
		factory, err := reg.Generator(name)
		if err != nil {
			return nil, err
		}
		src, err := factory(args)
		if err != nil {
			return nil, err
		}
		inst, more, err := src.ReadNext()
		if err != nil {
			return nil, err
		}
		if !more {
			return nil, fmt.Errorf("generator %q produced no instance", name)
		}
		return inst, nil
	}

	if *inputPath == "" {
		g, err := ioformat.ReadGraph(os.Stdin)
		if err != nil {
			return nil, err
		}
		return &instance.DominationInstance{G: g}, nil
	}
	f, err := os.Open(*inputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ioformat.ReadGraph(f)
	if err != nil {
		return nil, err
	}
	return &instance.DominationInstance{G: g}, nil
}

func applyFilters(reg *registry.Registry, inst *instance.DominationInstance) error {
	if *renumber != "" {
		name, args := splitComponentSpec(*renumber)
		factory, err := reg.Filter(name)
		if err != nil {
			return err
		}
		filter, err := factory(args)
		if err != nil {
			return err
		}
		if err := filter.Process(inst); err != nil {
			return err
		}
	}
	if *forceIn != "" {
		vertices, err := forcefilter.ParseVertexList(strings.Split(*forceIn, ","))
		if err != nil {
			return err
		}
		if err := forcefilter.NewForceInFilter(vertices).Process(inst); err != nil {
			return err
		}
	}
	if *forceOut != "" {
		vertices, err := forcefilter.ParseVertexList(strings.Split(*forceOut, ","))
		if err != nil {
			return err
		}
		if err := forcefilter.NewForceOutFilter(vertices).Process(inst); err != nil {
			return err
		}
	}
	return nil
}

// splitComponentSpec parses a "name:arg1,arg2" flag value into its name
// and argument list.
func splitComponentSpec(spec string) (string, []string) {
	name, rest, found := strings.Cut(spec, ":")
	if !found || rest == "" {
		return name, nil
	}
	return name, strings.Split(rest, ",")
}
