package bbt

// ChooseVertexRule selects which undominated vertex the DD and MDD solvers
// branch on next.
type ChooseVertexRule int

const (
	// ChooseMinCandidateDegree picks the undominated vertex with the fewest
	// remaining candidate dominators — the vertex closest to being trapped.
	ChooseMinCandidateDegree ChooseVertexRule = iota
	// ChooseMaxCandidateDegree picks the undominated vertex with the most
	// remaining candidate dominators.
	ChooseMaxCandidateDegree
	// ChooseMinMDD picks the undominated vertex with the smallest maximum
	// dominator degree (MDD solver only).
	ChooseMinMDD
	// ChooseMaxMDD picks the undominated vertex with the largest maximum
	// dominator degree (MDD solver only).
	ChooseMaxMDD
)

// RankNeighboursRule orders the branch candidates at each node.
type RankNeighboursRule int

const (
	// RankAscending visits the lowest-ranked candidate first.
	RankAscending RankNeighboursRule = iota
	// RankDescending visits the highest-ranked candidate first.
	RankDescending
)

// VariantOptions configures the branching policy of the DD and MDD solver
// variants — the runtime equivalent of the source's five C++ template
// parameters on BBTDDSolverVariant/BBTMDDSolverVariant.
type VariantOptions struct {
	ChooseVertexRule ChooseVertexRule
	RankNeighbours   RankNeighboursRule

	// ForceStopOnTrappedVertex ends the branch loop as soon as a candidate
	// inclusion forces some other vertex's candidate degree to zero,
	// instead of continuing to try further candidates at this node.
	ForceStopOnTrappedVertex bool

	// RecheckBoundsInLoop re-evaluates the lower bound before every
	// candidate in the branch loop, not just once on node entry.
	RecheckBoundsInLoop bool

	// GenerateAll switches from "record only strict improvements over the
	// best set so far" to "emit every dominating set within the size
	// bounds".
	GenerateAll bool
}

// DefaultVariantOptions matches the source's DD_basic / MDD_basic aliases:
// minimum candidate degree, ascending rank, no early stop, bounds checked
// once per node, optimizing (not enumerating).
func DefaultVariantOptions() VariantOptions {
	return VariantOptions{
		ChooseVertexRule: ChooseMinCandidateDegree,
		RankNeighbours:   RankAscending,
	}
}
