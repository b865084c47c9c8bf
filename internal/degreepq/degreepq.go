package degreepq

import "github.com/billbird/unidom/internal/graphx"

const none = -1

// base holds the state shared by the light and heavy variants: a bucket per
// possible degree value (index == degree, so no separate deg field is
// needed), doubly linked ascending by nonempty bucket, and per-vertex fixed
// and dominated flags.
//
// This replaces the C++ ancestor's intrusive pointer lists with plain index
// arrays into arena-style slices, and its head_tail sentinel node with
// explicit head/tail indices (none when the bucket chain is empty).
type base struct {
	heavy bool

	// bucket state, indexed by degree value 0..maxDeg.
	nodeNext, nodePrev             []int
	nodeCount, nodeUnfixed         []int
	nodeUndominated                []int
	undomHead, undomTail           []int // heavy only; vertex index or none
	head, tail                     int   // degree value of first/last nonempty bucket, or none

	// per-vertex state.
	degree      []int
	isFixed     []bool
	isDominated []bool
	vNext, vPrev []int // heavy only; undominated-list linkage per vertex
}

func newBase(g *graphx.Graph, heavy bool) base {
	n := g.N()
	maxDeg := n
	b := base{
		heavy:            heavy,
		nodeNext:         make([]int, maxDeg+1),
		nodePrev:         make([]int, maxDeg+1),
		nodeCount:        make([]int, maxDeg+1),
		nodeUnfixed:      make([]int, maxDeg+1),
		nodeUndominated:  make([]int, maxDeg+1),
		undomHead:        make([]int, maxDeg+1),
		undomTail:        make([]int, maxDeg+1),
		degree:           make([]int, n),
		isFixed:          make([]bool, n),
		isDominated:      make([]bool, n),
		vNext:            make([]int, n),
		vPrev:            make([]int, n),
		head:             0,
		tail:             0,
	}
	for i := range b.nodeNext {
		b.nodeNext[i] = none
		b.nodePrev[i] = none
		b.undomHead[i] = none
		b.undomTail[i] = none
	}
	for v := 0; v < n; v++ {
		b.vNext[v] = none
		b.vPrev[v] = none
	}

	// Seed every vertex into bucket 0, then bring each incidence in via
	// Increment, exactly as the source does: dumb but trivially correct.
	b.nodeCount[0] = n
	b.nodeUnfixed[0] = n
	b.nodeUndominated[0] = n
	for v := 0; v < n; v++ {
		if heavy {
			b.spliceIn(v, 0)
		}
	}

	for i := 0; i < n; i++ {
		deg := g.At(i).Deg()
		for k := 0; k < deg; k++ {
			b.increment(i)
		}
	}
	return b
}

// IsCandidate reports whether v is not currently fixed.
func (b *base) IsCandidate(v int) bool { return !b.isFixed[v] }

// IsDominated reports whether v is currently marked dominated.
func (b *base) IsDominated(v int) bool { return b.isDominated[v] }

// RankedDegree returns v's current rank-degree.
func (b *base) RankedDegree(v int) int { return b.degree[v] }

// AddCandidate un-fixes v (a.k.a. unfix). Precondition: v is fixed.
func (b *base) AddCandidate(v int) {
	if !b.isFixed[v] {
		panic(ErrAlreadyFixed)
	}
	b.nodeUnfixed[b.degree[v]]++
	b.isFixed[v] = false
}

// RemoveCandidate fixes v (a.k.a. fix). Precondition: v is a candidate and
// its bucket has at least one unfixed vertex (itself).
func (b *base) RemoveCandidate(v int) {
	deg := b.degree[v]
	if b.isFixed[v] || b.nodeUnfixed[deg] <= 0 {
		panic(ErrNotFixed)
	}
	b.nodeUnfixed[deg]--
	b.isFixed[v] = true
}

// Dominate marks v dominated (a.k.a. cover). In the heavy variant this
// splices v out of its bucket's undominated list.
func (b *base) Dominate(v int) {
	if b.isDominated[v] {
		panic(ErrAlreadyDominated)
	}
	b.isDominated[v] = true
	if b.heavy {
		deg := b.degree[v]
		b.nodeUndominated[deg]--
		b.spliceOut(v, deg)
	}
}

// Undominate marks v undominated (a.k.a. uncover), the exact inverse of
// Dominate.
func (b *base) Undominate(v int) {
	if !b.isDominated[v] {
		panic(ErrNotDominated)
	}
	b.isDominated[v] = false
	if b.heavy {
		deg := b.degree[v]
		b.nodeUndominated[deg]++
		b.spliceIn(v, deg)
	}
}

// Increment raises v's rank-degree by one, rewiring bucket linkage as
// needed, and returns the new degree.
func (b *base) Increment(v int) int { return b.increment(v) }

func (b *base) increment(v int) int {
	old := b.degree[v]
	newDeg := old + 1

	if b.nodeCount[newDeg] == 0 {
		b.nodeNext[newDeg] = b.nodeNext[old]
		b.nodePrev[newDeg] = old
		if b.nodeNext[old] != none {
			b.nodePrev[b.nodeNext[old]] = newDeg
		} else {
			b.tail = newDeg
		}
		b.nodeNext[old] = newDeg
	}
	b.degree[v] = newDeg
	b.nodeCount[newDeg]++

	if b.heavy && !b.isDominated[v] {
		b.spliceOut(v, old)
		b.spliceIn(v, newDeg)
		b.nodeUndominated[old]--
		b.nodeUndominated[newDeg]++
	}

	if !b.isFixed[v] {
		b.nodeUnfixed[old]--
		b.nodeUnfixed[newDeg]++
	}

	b.nodeCount[old]--
	if b.nodeCount[old] == 0 {
		b.nodePrev[newDeg] = b.nodePrev[old]
		if b.nodePrev[old] != none {
			b.nodeNext[b.nodePrev[old]] = newDeg
		} else {
			b.head = newDeg
		}
		b.nodeNext[old] = none
		b.nodePrev[old] = none
	}
	return newDeg
}

// Decrement lowers v's rank-degree by one, the exact mirror of Increment,
// and returns the new degree.
func (b *base) Decrement(v int) int {
	old := b.degree[v]
	newDeg := old - 1

	if b.nodeCount[newDeg] == 0 {
		b.nodeNext[newDeg] = old
		b.nodePrev[newDeg] = b.nodePrev[old]
		if b.nodePrev[old] != none {
			b.nodeNext[b.nodePrev[old]] = newDeg
		} else {
			b.head = newDeg
		}
		b.nodePrev[old] = newDeg
	}
	b.degree[v] = newDeg
	b.nodeCount[newDeg]++

	if b.heavy && !b.isDominated[v] {
		b.spliceOut(v, old)
		b.spliceIn(v, newDeg)
		b.nodeUndominated[old]--
		b.nodeUndominated[newDeg]++
	}

	if !b.isFixed[v] {
		b.nodeUnfixed[old]--
		b.nodeUnfixed[newDeg]++
	}

	b.nodeCount[old]--
	if b.nodeCount[old] == 0 {
		b.nodeNext[newDeg] = b.nodeNext[old]
		if b.nodeNext[old] != none {
			b.nodePrev[b.nodeNext[old]] = newDeg
		} else {
			b.tail = newDeg
		}
		b.nodeNext[old] = none
		b.nodePrev[old] = none
	}
	return newDeg
}

// GetMinDegree returns the smallest rank-degree with at least one vertex.
func (b *base) GetMinDegree() int { return b.head }

// GetMaxDegree returns the largest rank-degree with at least one vertex.
func (b *base) GetMaxDegree() int { return b.tail }

// SumOfTopKDegrees sums the rank-degrees of the k unfixed vertices with the
// largest degree (or all unfixed vertices, if fewer than k exist).
func (b *base) SumOfTopKDegrees(k int) int {
	sum := 0
	for node := b.tail; node != none && k > 0; node = b.nodePrev[node] {
		count := b.nodeUnfixed[node]
		if count >= k {
			sum += node * k
			k = 0
			break
		}
		sum += node * count
		k -= count
	}
	return sum
}

// CountMinimumToDominate returns a lower bound on the number of still-
// unfixed vertices needed so their rank-degrees sum to at least m: a greedy
// walk from the highest bucket downward. Returns Infeasible if no
// combination of remaining candidates can reach m.
func (b *base) CountMinimumToDominate(m int) int {
	count := 0
	for node := b.tail; ; node = b.nodePrev[node] {
		if node == none || node == 0 {
			return Infeasible
		}
		needed := (m + node - 1) / node
		if needed <= b.nodeUnfixed[node] {
			count += needed
			return count
		}
		count += b.nodeUnfixed[node]
		m -= node * b.nodeUnfixed[node]
	}
}

func (b *base) spliceIn(v, deg int) {
	tail := b.undomTail[deg]
	b.vPrev[v] = tail
	b.vNext[v] = none
	if tail != none {
		b.vNext[tail] = v
	} else {
		b.undomHead[deg] = v
	}
	b.undomTail[deg] = v
}

func (b *base) spliceOut(v, deg int) {
	p, nx := b.vPrev[v], b.vNext[v]
	if p != none {
		b.vNext[p] = nx
	} else {
		b.undomHead[deg] = nx
	}
	if nx != none {
		b.vPrev[nx] = p
	} else {
		b.undomTail[deg] = p
	}
	b.vPrev[v] = none
	b.vNext[v] = none
}

// Light is a DegreePQ that tracks fixed/candidate state and a per-vertex
// dominated flag, with no undominated lists; it is used as the
// UndominatedDPQ.
type Light struct{ base }

// NewLight builds a Light DegreePQ over g, seeding every vertex at degree 0
// and bringing in each incidence.
func NewLight(g *graphx.Graph) *Light {
	return &Light{newBase(g, false)}
}

// Heavy is a DegreePQ that additionally maintains, per bucket, an intrusive
// list of currently-undominated vertices for O(1) min/max-undominated
// queries. It is used as the CandidateDPQ.
type Heavy struct{ base }

// NewHeavy builds a Heavy DegreePQ over g.
func NewHeavy(g *graphx.Graph) *Heavy {
	return &Heavy{newBase(g, true)}
}

// GetMinUndominatedVertex returns the undominated vertex with the smallest
// rank-degree, or graphx.InvalidVertex if none remain.
func (h *Heavy) GetMinUndominatedVertex() int {
	for node := h.head; node != none; node = h.nodeNext[node] {
		if h.nodeUndominated[node] == 0 {
			continue
		}
		return h.undomHead[node]
	}
	return graphx.InvalidVertex
}

// GetMaxUndominatedVertex returns the undominated vertex with the largest
// rank-degree, or graphx.InvalidVertex if none remain.
func (h *Heavy) GetMaxUndominatedVertex() int {
	for node := h.tail; node != none; node = h.nodePrev[node] {
		if h.nodeUndominated[node] == 0 {
			continue
		}
		return h.undomHead[node]
	}
	return graphx.InvalidVertex
}
