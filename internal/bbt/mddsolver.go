package bbt

import (
	"sort"

	"github.com/billbird/unidom/internal/degreepq"
	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
	"github.com/billbird/unidom/internal/mddstack"
	"github.com/billbird/unidom/internal/vertset"
)

// MDDSolver branches on the maximum-dominator-degree stack: at each node it
// picks an undominated vertex by MDD or by candidate-neighbour count (per
// ChooseVertexRule), and bounds via MDDStack.MinVerticesNeeded, which sees
// four steps further than DDSolver's per-vertex bound because it accounts
// for how a single new dominator can shrink several neighbours' MDDs at
// once.
type MDDSolver struct {
	*FrameworkState
	VariantOptions

	inst *instance.DominationInstance
	out  instance.OutputProxy

	g    *graphx.Graph
	d, b *vertset.VertexSet

	undominatedDPQ      *degreepq.Light
	candidateNeighbours []*vertset.VertexSet
	undominatedSet      *vertset.VertexSet
	mddStack            *mddstack.MDDStack

	covered, fixed           []int
	totalCovered, totalFixed int
}

// NewMDDSolver builds an MDDSolver sharing state with fw, configured by opts.
func NewMDDSolver(fw *FrameworkState, opts VariantOptions) *MDDSolver {
	return &MDDSolver{FrameworkState: fw, VariantOptions: opts}
}

// Solve searches inst using the MDD branching policy.
func (s *MDDSolver) Solve(inst *instance.DominationInstance, out instance.OutputProxy) error {
	s.inst = inst
	s.out = out
	s.g = inst.G
	s.g.PrepareForSearch()

	n := s.g.N()
	s.d = vertset.New(n)
	s.b = vertset.New(n)
	// See DDSolver.Solve: the source seeds B with n-1 elements here too.
	s.b.ResetFull(n - 1)
	if !s.GenerateAll && s.TotalUpperBound < n {
		s.b.ResetFull(s.TotalUpperBound + 1)
	}

	s.covered = make([]int, n)
	s.fixed = make([]int, n)
	s.totalCovered = 0
	s.totalFixed = 0

	s.undominatedSet = vertset.New(n)
	s.undominatedSet.ResetFull(n)

	s.candidateNeighbours = make([]*vertset.VertexSet, n)
	for v := 0; v < n; v++ {
		s.candidateNeighbours[v] = vertset.New(n)
		for _, u := range s.g.At(v).Neighbours() {
			s.candidateNeighbours[v].Add(u)
		}
	}

	s.undominatedDPQ = degreepq.NewLight(s.g)
	s.mddStack = mddstack.New(s.g, s.candidateNeighbours, s.undominatedSet, s.undominatedDPQ)

	for _, v := range inst.ForceIn {
		s.removeCandidate(v)
		s.d.Add(v)
		for _, u := range s.g.At(v).Neighbours() {
			s.dominate(u)
		}
		s.mddStack.AddDominator(v)
	}
	for _, v := range inst.ForceOut {
		s.removeCandidate(v)
		s.mddStack.ExcludeDominator(v)
	}

	s.resetDepthLog(n)

	if err := out.Initialize(inst); err != nil {
		return err
	}
	_, err := s.findDominatingSet(true)
	if finalizeErr := out.Finalize(inst); finalizeErr != nil {
		return finalizeErr
	}
	if err != nil && err != instance.ErrTerminate {
		return err
	}
	s.printDepthLog()
	return nil
}

func (s *MDDSolver) addCandidate(v int) {
	s.fixed[v] = 0
	s.totalFixed--
	s.undominatedDPQ.AddCandidate(v)
	for _, u := range s.g.At(v).Neighbours() {
		s.candidateNeighbours[u].Add(v)
	}
}

func (s *MDDSolver) removeCandidate(v int) bool {
	s.fixed[v] = 1
	s.totalFixed++
	s.undominatedDPQ.RemoveCandidate(v)
	forced := false
	for _, u := range s.g.At(v).Neighbours() {
		s.candidateNeighbours[u].Remove(v)
		if s.candidateNeighbours[u].Len() == 0 && s.covered[u] == 0 {
			forced = true
		}
	}
	return forced
}

func (s *MDDSolver) dominate(v int) {
	s.covered[v]++
	if s.covered[v] > 1 {
		return
	}
	s.totalCovered++
	s.undominatedDPQ.Dominate(v)
	s.undominatedSet.Remove(v)
	for _, u := range s.g.At(v).Neighbours() {
		s.undominatedDPQ.Decrement(u)
	}
}

func (s *MDDSolver) undominate(v int) {
	s.covered[v]--
	if s.covered[v] > 0 {
		return
	}
	s.totalCovered--
	s.undominatedDPQ.Undominate(v)
	s.undominatedSet.Add(v)
	for _, u := range s.g.At(v).Neighbours() {
		s.undominatedDPQ.Increment(u)
	}
}

// addVertexToSet adds j to the working set, recurses, and unwinds. The
// returned forced flag is set either because fixing j immediately trapped
// some other vertex, or because the recursive call bounded out fatally
// (result == 0) — in the latter case there is no point trying the
// remaining candidates at this node either, since the same fatal bound
// will keep holding until this node itself unwinds.
func (s *MDDSolver) addVertexToSet(j int, checkResmodDepth bool) (forced bool, err error) {
	forced = s.removeCandidate(j)
	s.d.Add(j)
	for _, k := range s.g.At(j).Neighbours() {
		s.dominate(k)
	}
	s.mddStack.AddDominator(j)

	result, err := s.findDominatingSet(checkResmodDepth)
	if err != nil {
		return forced, err
	}
	if result == 0 {
		forced = true
	}

	s.mddStack.RemoveDominator(j)
	neighbours := s.g.At(j).Neighbours()
	for k := len(neighbours) - 1; k >= 0; k-- {
		s.undominate(neighbours[k])
	}
	s.d.RemovePop(j)
	s.mddStack.ExcludeDominator(j)
	return forced, nil
}

// evaluateBounds is the MDD analogue of DDSolver.boundsSatisfied, but
// returns a tri-state rather than a bool: 0 when the bound can never be
// satisfied again on this branch (so the caller should give up on further
// siblings too), -1 when it merely fails here (possibly due to the vertex
// just added, so siblings should still be tried), 1 when it holds.
func (s *MDDSolver) evaluateBounds() int {
	n := s.g.N()
	minVerticesNeeded := s.mddStack.MinVerticesNeeded()
	if minVerticesNeeded >= mddstack.Infeasible {
		return 0
	}
	minTotalSize := s.d.Len() + minVerticesNeeded

	if s.GenerateAll {
		if n-s.totalFixed+1 < minVerticesNeeded {
			return 0
		}
		if n-s.totalFixed+1 == minVerticesNeeded {
			return -1
		}
		if minTotalSize > s.TotalUpperBound {
			return -1
		}
	} else {
		if n-s.totalFixed+1 < minVerticesNeeded {
			return 0
		}
		if n-s.totalFixed+1 == minVerticesNeeded {
			return -1
		}
		if minTotalSize >= s.b.Len() {
			return -1
		}
	}
	return 1
}

func (s *MDDSolver) chooseNextVertex() int {
	switch s.ChooseVertexRule {
	case ChooseMinMDD:
		return s.mddStack.GetMinMDDVertex()
	case ChooseMaxMDD:
		return s.mddStack.GetMaxMDDVertex()
	case ChooseMaxCandidateDegree:
		result := graphx.InvalidVertex
		best := 0
		for _, v := range s.undominatedSet.Elements() {
			if size := s.candidateNeighbours[v].Len(); size > best {
				best = size
				result = v
			}
		}
		return result
	default: // ChooseMinCandidateDegree
		result := graphx.InvalidVertex
		best := s.g.N() + 1
		for _, v := range s.undominatedSet.Elements() {
			if size := s.candidateNeighbours[v].Len(); size < best {
				best = size
				result = v
			}
		}
		return result
	}
}

func (s *MDDSolver) rankNeighbours(v int) []int {
	ranked := append([]int(nil), s.candidateNeighbours[v].Elements()...)
	degreeOf := s.undominatedDPQ.RankedDegree
	less := func(i, j int) bool { return degreeOf(ranked[i]) < degreeOf(ranked[j]) }
	if s.RankNeighbours == RankDescending {
		less = func(i, j int) bool { return degreeOf(ranked[i]) > degreeOf(ranked[j]) }
	}
	sort.SliceStable(ranked, less)
	return ranked
}

func (s *MDDSolver) findDominatingSet(checkResmodDepth bool) (int, error) {
	resmodCheck := s.reportNode(s.d.Len(), checkResmodDepth)
	if resmodCheck == 0 {
		return 1, nil
	}
	if checkResmodDepth && resmodCheck == 1 {
		s.unreportNode(s.d.Len())
		return s.findDominatingSet(false)
	}

	n := s.g.N()
	if s.totalCovered == n {
		return 1, s.reportCandidateSet()
	}

	boundResult := s.evaluateBounds()
	if boundResult != 1 {
		return boundResult, nil
	}

	i := s.chooseNextVertex()
	neighbourArray := s.rankNeighbours(i)

	var fixedList []int
	for _, j := range neighbourArray {
		if s.RecheckBoundsInLoop && s.evaluateBounds() != 1 {
			break
		}
		forced, err := s.addVertexToSet(j, checkResmodDepth)
		if err != nil {
			return 0, err
		}
		fixedList = append(fixedList, j)
		if s.ForceStopOnTrappedVertex && forced {
			break
		}
	}

	// Unlike DDSolver's forward-order unfixing, the MDD variant unfixes in
	// reverse — the source itself carries both orderings across its two
	// solver files, and each is preserved rather than reconciled.
	for q := len(fixedList) - 1; q >= 0; q-- {
		s.mddStack.UnexcludeDominator(fixedList[q])
		s.addCandidate(fixedList[q])
	}
	return 1, nil
}

func (s *MDDSolver) reportCandidateSet() error {
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
