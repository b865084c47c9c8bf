package renumber

import (
	"math/rand"
	"sort"

	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
)

// apply renumbers inst.G according to permutation (permutation[i] is the
// vertex that becomes position i) and remaps ForceIn/ForceOut through the
// matching inverse permutation, replacing inst's graph and constraint
// slices in place.
func apply(inst *instance.DominationInstance, permutation []int) error {
	n := inst.G.N()
	inverse := make([]int, n)
	for i, p := range permutation {
		inverse[p] = i
	}

	out, err := graphx.New(n)
	if err != nil {
		return err
	}
	if err := inst.G.Renumber(permutation, out); err != nil {
		return err
	}

	newForceIn := make([]int, len(inst.ForceIn))
	for i, v := range inst.ForceIn {
		newForceIn[i] = inverse[v]
	}
	newForceOut := make([]int, len(inst.ForceOut))
	for i, v := range inst.ForceOut {
		newForceOut[i] = inverse[v]
	}

	inst.G = out
	inst.ForceIn = newForceIn
	inst.ForceOut = newForceOut
	return nil
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// MinDegreeFilter renumbers so low-degree vertices come first.
type MinDegreeFilter struct{}

// Process implements instance.PreprocessFilter.
func (MinDegreeFilter) Process(inst *instance.DominationInstance) error {
	g := inst.G
	perm := identity(g.N())
	sort.SliceStable(perm, func(i, j int) bool { return g.At(perm[i]).Deg() < g.At(perm[j]).Deg() })
	return apply(inst, perm)
}

// MaxDegreeFilter renumbers so high-degree vertices come first.
type MaxDegreeFilter struct{}

// Process implements instance.PreprocessFilter.
func (MaxDegreeFilter) Process(inst *instance.DominationInstance) error {
	g := inst.G
	perm := identity(g.N())
	sort.SliceStable(perm, func(i, j int) bool { return g.At(perm[i]).Deg() > g.At(perm[j]).Deg() })
	return apply(inst, perm)
}

// BFSFilter renumbers vertices in breadth-first order starting from Root.
type BFSFilter struct {
	Root int
}

// NewBFSFilter builds a BFSFilter rooted at root.
func NewBFSFilter(root int) *BFSFilter { return &BFSFilter{Root: root} }

// Process implements instance.PreprocessFilter. It fails with
// ErrIncompleteBFS if the graph is disconnected from Root.
func (f *BFSFilter) Process(inst *instance.DominationInstance) error {
	g := inst.G
	n := g.N()
	covered := make([]bool, n)
	result := make([]int, 0, n)
	result = append(result, f.Root)
	covered[f.Root] = true
	for start := 0; start < len(result); start++ {
		v := result[start]
		for _, u := range g.At(v).Neighbours() {
			if covered[u] {
				continue
			}
			covered[u] = true
			result = append(result, u)
		}
	}
	if len(result) != n {
		return ErrIncompleteBFS
	}
	return apply(inst, result)
}

// RandomFilter renumbers vertices with a uniformly random permutation
// generated by a Fisher-Yates (Knuth) shuffle.
type RandomFilter struct {
	Rand *rand.Rand
}

// NewRandomFilter builds a RandomFilter seeded from seed.
func NewRandomFilter(seed int64) *RandomFilter {
	return &RandomFilter{Rand: rand.New(rand.NewSource(seed))}
}

// Process implements instance.PreprocessFilter.
func (f *RandomFilter) Process(inst *instance.DominationInstance) error {
	r := f.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	perm := identity(inst.G.N())
	for i := 0; i < len(perm); i++ {
		j := i + r.Intn(len(perm)-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return apply(inst, perm)
}
