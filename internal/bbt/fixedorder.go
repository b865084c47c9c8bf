package bbt

import (
	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
	"github.com/billbird/unidom/internal/vertset"
)

// FixedOrderSolver is the simplest branch-and-bound variant: no incremental
// degree structures, just per-vertex covered/fixed counters and a single
// global lower bound derived from the graph's maximum degree, which is
// deliberately never tightened as vertices get fixed during search — a
// looser bound than the DD and MDD variants use, kept for parity with the
// source rather than "fixed" to be tighter.
type FixedOrderSolver struct {
	*FrameworkState
	GenerateAll bool

	inst *instance.DominationInstance
	out  instance.OutputProxy

	d, b    *vertset.VertexSet
	covered []int
	fixed   []int

	totalCovered, totalFixed int
	maxDeg                   int
}

// NewFixedOrderSolver builds a FixedOrderSolver sharing state with fw.
func NewFixedOrderSolver(fw *FrameworkState, generateAll bool) *FixedOrderSolver {
	return &FixedOrderSolver{FrameworkState: fw, GenerateAll: generateAll}
}

// Solve searches inst for a minimum dominating set (or, when GenerateAll is
// set, enumerates every dominating set within the configured size bounds),
// reporting certificates to out.
func (s *FixedOrderSolver) Solve(inst *instance.DominationInstance, out instance.OutputProxy) error {
	s.inst = inst
	s.out = out
	g := inst.G
	g.PrepareForSearch()

	n := g.N()
	s.d = vertset.New(n)
	s.b = vertset.New(n)
	s.b.ResetFull(n)
	if !s.GenerateAll && s.TotalUpperBound < n {
		s.b.ResetFull(s.TotalUpperBound + 1)
	}

	s.maxDeg = 0
	for i := 0; i < n; i++ {
		if d := g.At(i).Deg(); d > s.maxDeg {
			s.maxDeg = d
		}
	}

	s.covered = make([]int, n)
	s.fixed = make([]int, n)
	s.totalCovered = 0
	s.totalFixed = 0

	for _, v := range inst.ForceIn {
		s.d.Add(v)
		for _, u := range g.At(v).Neighbours() {
			if s.covered[u] == 0 {
				s.totalCovered++
			}
			s.covered[u]++
		}
	}
	for _, v := range inst.ForceOut {
		s.fixed[v] = 1
		s.totalFixed++
	}

	s.resetDepthLog(n)

	if err := out.Initialize(inst); err != nil {
		return err
	}
	err := s.findDominatingSet(g, 0, true)
	if finalizeErr := out.Finalize(inst); finalizeErr != nil {
		return finalizeErr
	}
	if err != nil && err != instance.ErrTerminate {
		return err
	}
	s.printDepthLog()
	return nil
}

func (s *FixedOrderSolver) findDominatingSet(g *graphx.Graph, i int, checkResmodDepth bool) error {
	resmodCheck := s.reportNode(s.d.Len(), checkResmodDepth)
	if resmodCheck == 0 {
		return nil
	}
	if checkResmodDepth && resmodCheck == 1 {
		s.unreportNode(s.d.Len())
		return s.findDominatingSet(g, i, false)
	}

	n := g.N()
	if s.totalCovered == n {
		return s.reportCandidateSet()
	}

	for s.covered[i] != 0 {
		i++
	}
	if i >= n {
		return instance.ErrInconsistentGraph
	}

	minVerticesNeeded := (n - s.totalCovered + s.maxDeg) / (s.maxDeg + 1)
	minTotalSize := s.d.Len() + minVerticesNeeded
	if s.GenerateAll {
		if minTotalSize > s.TotalUpperBound || n-s.totalFixed < minVerticesNeeded {
			return nil
		}
	} else if minTotalSize >= s.b.Len() || n-s.totalFixed < minVerticesNeeded {
		return nil
	}

	iDeg := g.At(i).Deg()
	if iDeg == 0 {
		return ErrEmptyNeighbourhood
	}
	neighbourArray := make([]int, 0, iDeg+1)
	if s.fixed[i] == 0 {
		neighbourArray = append(neighbourArray, i)
	}
	for _, j := range g.At(i).Neighbours() {
		if s.fixed[j] == 0 && s.covered[j] == 0 && j != i {
			neighbourArray = append(neighbourArray, j)
		}
	}
	for _, j := range g.At(i).Neighbours() {
		if s.fixed[j] == 0 && s.covered[j] != 0 {
			neighbourArray = append(neighbourArray, j)
		}
	}

	fixedList := make([]int, 0, len(neighbourArray))
	for _, j := range neighbourArray {
		var err error
		fixedList, err = s.addVertexToSet(g, i, j, fixedList, checkResmodDepth)
		if err != nil {
			return err
		}
	}

	for q := len(fixedList) - 1; q >= 0; q-- {
		s.fixed[fixedList[q]] = 0
		s.totalFixed--
	}
	return nil
}

func (s *FixedOrderSolver) addVertexToSet(g *graphx.Graph, i, j int, fixedList []int, checkResmodDepth bool) ([]int, error) {
	s.fixed[j] = 1
	fixedList = append(fixedList, j)
	s.totalFixed++
	s.d.Add(j)

	for _, k := range g.At(j).Neighbours() {
		if s.covered[k] == 0 {
			s.totalCovered++
		}
		s.covered[k]++
	}

	err := s.findDominatingSet(g, i+1, checkResmodDepth)
	if err != nil {
		return fixedList, err
	}

	// Congruent to the source: this undoes covered[] in the same order it
	// was applied above, not reversed. Harmless here since the counters are
	// commutative, but kept as-is rather than "corrected".
	for _, k := range g.At(j).Neighbours() {
		s.covered[k]--
		if s.covered[k] == 0 {
			s.totalCovered--
		}
	}
	s.d.RemovePop(j)
	return fixedList, nil
}

func (s *FixedOrderSolver) reportCandidateSet() error {
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

func cloneElements(vs *vertset.VertexSet) []int {
	return append([]int(nil), vs.Elements()...)
}
