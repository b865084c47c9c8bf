package bbt

import (
	"strconv"

	"go.uber.org/zap"
)

// invalidDepth marks ResmodDepth as unset: the res/mod partitioning check is
// skipped entirely once report_node reaches it.
const invalidDepth = -1

// FrameworkState holds the settings and diagnostics shared by every solver
// variant: the res/mod search-tree partitioning scheme (for splitting one
// search across independent offline workers), the total size bounds that
// gate which certificates are emitted, and the optional per-depth node-count
// histogram used for tuning.
type FrameworkState struct {
	ResmodMod   uint
	ResmodRes   uint
	ResmodDepth int

	TotalLowerBound int
	TotalUpperBound int

	Verbose bool
	Logger  *zap.Logger

	depthLog []uint64
}

// FrameworkOption configures a FrameworkState at construction.
type FrameworkOption func(*FrameworkState)

// WithResMod partitions the search tree: only branches whose zero-based visit
// index at depth ResmodDepth satisfies index%mod == res are explored to
// completion.
func WithResMod(res, mod uint) FrameworkOption {
	return func(f *FrameworkState) {
		f.ResmodRes = res
		f.ResmodMod = mod
	}
}

// WithResModDepth sets the depth at which res/mod partitioning is checked.
// Depths above it are always explored; the check applies exactly once, at
// this depth, per branch.
func WithResModDepth(depth int) FrameworkOption {
	return func(f *FrameworkState) { f.ResmodDepth = depth }
}

// WithBounds restricts emitted certificates to size [lower, upper].
func WithBounds(lower, upper int) FrameworkOption {
	return func(f *FrameworkState) {
		f.TotalLowerBound = lower
		f.TotalUpperBound = upper
	}
}

// WithVerbose enables the per-depth node-count histogram in printDepthLog.
func WithVerbose(v bool) FrameworkOption {
	return func(f *FrameworkState) { f.Verbose = v }
}

// WithLogger supplies the *zap.Logger used for diagnostics. Defaults to a
// no-op logger.
func WithLogger(logger *zap.Logger) FrameworkOption {
	return func(f *FrameworkState) {
		if logger != nil {
			f.Logger = logger
		}
	}
}

// NewFrameworkState builds a FrameworkState with the source's defaults —
// unbounded set size, no res/mod partitioning, quiet — before applying opts.
func NewFrameworkState(opts ...FrameworkOption) *FrameworkState {
	f := &FrameworkState{
		ResmodMod:       1,
		ResmodRes:       0,
		ResmodDepth:     invalidDepth,
		TotalLowerBound: 0,
		TotalUpperBound: maxBound,
		Logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// maxBound stands in for "no upper bound"; graphs never approach it, so it
// never restricts a search that leaves TotalUpperBound at its default.
const maxBound = 1 << 30

// resetDepthLog (re)allocates the histogram for a graph with n vertices —
// depth can never exceed n, since D never exceeds n members.
func (f *FrameworkState) resetDepthLog(n int) {
	f.depthLog = make([]uint64, n+1)
}

// reportNode records a visit to the search node at the given depth (the
// current size of D) and returns a tri-state:
//
//	 0: this branch violates the res/mod condition and must be abandoned.
//	-1: this branch continues, but may need checking again deeper down.
//	 1: this branch continues and the check need never run again.
//
// checkResmodDepth lets a caller skip the check outright once it has
// already resolved to 1 for the current branch, exactly as the driver's
// FindDominatingSet re-enters itself with the check disabled after seeing 1.
func (f *FrameworkState) reportNode(depth int, checkResmodDepth bool) int {
	f.depthLog[depth]++
	if !checkResmodDepth {
		return 1
	}
	if depth == f.ResmodDepth {
		if (f.depthLog[depth]-1)%uint64(f.ResmodMod) == uint64(f.ResmodRes) {
			return 1
		}
		return 0
	}
	return -1
}

func (f *FrameworkState) unreportNode(depth int) {
	f.depthLog[depth]--
}

// printDepthLog emits the per-depth node-count histogram, when verbose.
func (f *FrameworkState) printDepthLog() {
	if !f.Verbose {
		return
	}
	maxDepth := 0
	for i, count := range f.depthLog {
		if count > 0 {
			maxDepth = i
		}
	}
	var total uint64
	fields := make([]zap.Field, 0, maxDepth+1)
	for i := 0; i <= maxDepth; i++ {
		fields = append(fields, zap.Uint64("depth_"+strconv.Itoa(i), f.depthLog[i]))
		total += f.depthLog[i]
	}
	f.Logger.Info("search depth log", fields...)
	f.Logger.Info("search depth log total", zap.Uint64("total_calls", total))
}
