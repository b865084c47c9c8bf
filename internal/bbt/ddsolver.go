package bbt

import (
	"sort"

	"github.com/billbird/unidom/internal/degreepq"
	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
	"github.com/billbird/unidom/internal/vertset"
)

// DDSolver branches using two domination-degree priority queues: a light
// UndominatedDPQ (rank = undominated neighbours) that orders the branch
// candidates and bounds via CountMinimumToDominate, and a heavy CandidateDPQ
// (rank = still-candidate neighbours) whose undominated lists choose the
// pivot.
type DDSolver struct {
	*FrameworkState
	VariantOptions

	inst *instance.DominationInstance
	out  instance.OutputProxy

	g            *graphx.Graph
	d, b         *vertset.VertexSet
	undominated  *degreepq.Light
	candidate    *degreepq.Heavy
	covered      []int
	fixed        []int
	totalCovered int
	totalFixed   int
}

// NewDDSolver builds a DDSolver sharing state with fw, configured by opts.
func NewDDSolver(fw *FrameworkState, opts VariantOptions) *DDSolver {
	return &DDSolver{FrameworkState: fw, VariantOptions: opts}
}

// Solve searches inst using the DD branching policy.
func (s *DDSolver) Solve(inst *instance.DominationInstance, out instance.OutputProxy) error {
	s.inst = inst
	s.out = out
	s.g = inst.G
	s.g.PrepareForSearch()

	n := s.g.N()
	s.d = vertset.New(n)
	s.b = vertset.New(n)
	// The DD and MDD variants seed B with n-1 elements, not n as the
	// fixed-order variant does — an inconsistency present in the source
	// itself, kept rather than reconciled.
	s.b.ResetFull(n - 1)
	if !s.GenerateAll && s.TotalUpperBound < n {
		s.b.ResetFull(s.TotalUpperBound + 1)
	}

	s.covered = make([]int, n)
	s.fixed = make([]int, n)
	s.totalCovered = 0
	s.totalFixed = 0

	s.undominated = degreepq.NewLight(s.g)
	s.candidate = degreepq.NewHeavy(s.g)

	for _, v := range inst.ForceIn {
		s.removeCandidate(v)
		s.d.Add(v)
		for _, u := range s.g.At(v).Neighbours() {
			s.dominate(u)
		}
	}
	for _, v := range inst.ForceOut {
		s.removeCandidate(v)
	}

	s.resetDepthLog(n)

	if err := out.Initialize(inst); err != nil {
		return err
	}
	err := s.findDominatingSet(true)
	if finalizeErr := out.Finalize(inst); finalizeErr != nil {
		return finalizeErr
	}
	if err != nil && err != instance.ErrTerminate {
		return err
	}
	s.printDepthLog()
	return nil
}

func (s *DDSolver) addCandidate(v int) {
	s.fixed[v] = 0
	s.totalFixed--
	s.undominated.AddCandidate(v)
	s.candidate.AddCandidate(v)
	for _, u := range s.g.At(v).Neighbours() {
		s.candidate.Increment(u)
	}
}

// removeCandidate fixes v and reports whether some neighbour u is now
// forced (its candidate degree hit zero while still undominated) — the
// caller may use this to end the branch loop early.
func (s *DDSolver) removeCandidate(v int) bool {
	s.fixed[v] = 1
	s.totalFixed++
	s.undominated.RemoveCandidate(v)
	s.candidate.RemoveCandidate(v)
	forced := false
	for _, u := range s.g.At(v).Neighbours() {
		if s.candidate.Decrement(u) == 0 && s.covered[u] == 0 {
			forced = true
		}
	}
	return forced
}

func (s *DDSolver) dominate(v int) {
	s.covered[v]++
	if s.covered[v] > 1 {
		return
	}
	s.totalCovered++
	s.undominated.Dominate(v)
	s.candidate.Dominate(v)
	for _, u := range s.g.At(v).Neighbours() {
		s.undominated.Decrement(u)
	}
}

func (s *DDSolver) undominate(v int) {
	s.covered[v]--
	if s.covered[v] > 0 {
		return
	}
	s.totalCovered--
	s.undominated.Undominate(v)
	s.candidate.Undominate(v)
	for _, u := range s.g.At(v).Neighbours() {
		s.undominated.Increment(u)
	}
}

func (s *DDSolver) addVertexToSet(j int, checkResmodDepth bool) (forced bool, err error) {
	forced = s.removeCandidate(j)
	s.d.Add(j)
	for _, k := range s.g.At(j).Neighbours() {
		s.dominate(k)
	}

	err = s.findDominatingSet(checkResmodDepth)
	if err != nil {
		return forced, err
	}

	neighbours := s.g.At(j).Neighbours()
	for k := len(neighbours) - 1; k >= 0; k-- {
		s.undominate(neighbours[k])
	}
	s.d.RemovePop(j)
	return forced, nil
}

func (s *DDSolver) boundsSatisfied() bool {
	n := s.g.N()
	minVerticesNeeded := s.undominated.CountMinimumToDominate(n - s.totalCovered)
	minTotalSize := s.d.Len() + minVerticesNeeded
	if s.GenerateAll {
		return minTotalSize <= s.TotalUpperBound && n-s.totalFixed >= minVerticesNeeded
	}
	return minTotalSize < s.b.Len() && n-s.totalFixed >= minVerticesNeeded
}

// rankNeighbours orders v's still-candidate neighbours by undominated-
// ranked-degree, ascending or descending per RankNeighbours. This replaces
// the source's hand-rolled radix sort (an array of degree-bucket linked
// lists sized to the current max degree) with a stable sort — the source
// itself notes the radix version is "a tough to transcribe" optimization,
// not a semantic requirement.
func (s *DDSolver) rankNeighbours(v int) []int {
	neighbours := s.g.At(v).Neighbours()
	ranked := make([]int, 0, len(neighbours))
	for _, u := range neighbours {
		if s.fixed[u] == 0 {
			ranked = append(ranked, u)
		}
	}
	degreeOf := s.undominated.RankedDegree
	less := func(i, j int) bool { return degreeOf(ranked[i]) < degreeOf(ranked[j]) }
	if s.RankNeighbours == RankDescending {
		less = func(i, j int) bool { return degreeOf(ranked[i]) > degreeOf(ranked[j]) }
	}
	sort.SliceStable(ranked, less)
	return ranked
}

func (s *DDSolver) findDominatingSet(checkResmodDepth bool) error {
	resmodCheck := s.reportNode(s.d.Len(), checkResmodDepth)
	if resmodCheck == 0 {
		return nil
	}
	if checkResmodDepth && resmodCheck == 1 {
		s.unreportNode(s.d.Len())
		return s.findDominatingSet(false)
	}

	n := s.g.N()
	if s.totalCovered == n {
		return s.reportCandidateSet()
	}

	var i int
	switch s.ChooseVertexRule {
	case ChooseMinCandidateDegree:
		i = s.candidate.GetMinUndominatedVertex()
	case ChooseMaxCandidateDegree:
		i = s.candidate.GetMaxUndominatedVertex()
	default:
		i = s.candidate.GetMinUndominatedVertex()
	}
	if i == graphx.InvalidVertex {
		return nil
	}

	if !s.RecheckBoundsInLoop && !s.boundsSatisfied() {
		return nil
	}

	neighbourArray := s.rankNeighbours(i)

	var fixedList []int
	for _, j := range neighbourArray {
		if s.RecheckBoundsInLoop && !s.boundsSatisfied() {
			break
		}
		forced, err := s.addVertexToSet(j, checkResmodDepth)
		if err != nil {
			return err
		}
		fixedList = append(fixedList, j)
		if s.ForceStopOnTrappedVertex && forced {
			break
		}
	}

	// Duplicating an odd quirk of the source: fixed vertices are unfixed in
	// the same order they were fixed, not reversed.
	for _, v := range fixedList {
		s.addCandidate(v)
	}
	return nil
}

func (s *DDSolver) reportCandidateSet() error {
	if s.GenerateAll {
		if s.d.Len() >= s.TotalLowerBound && s.d.Len() <= s.TotalUpperBound {
			return s.out.ProcessSet(s.inst, cloneElements(s.d))
		}
		return nil
	}
	if s.d.Len() >= s.TotalLowerBound && s.d.Len() < s.b.Len() {
		s.b.CopyFrom(s.d)
		return s.out.ProcessSet(s.inst, cloneElements(s.d))
	}
	return nil
}
