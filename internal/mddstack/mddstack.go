package mddstack

import (
	"github.com/billbird/unidom/internal/degreepq"
	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/vertset"
)

type stackEntry struct {
	vertex int
	oldMDD int
}

type stackRow struct {
	dominator int
	entries   []stackEntry
}

// MDDStack is the maximum-dominator-degree undo stack described in the
// package doc. It reads, but does not own, the candidate-neighbour sets and
// the undominated-vertex bookkeeping the branch-and-bound driver maintains
// alongside it.
type MDDStack struct {
	g                   *graphx.Graph
	candidateNeighbours []*vertset.VertexSet
	undominated         *vertset.VertexSet
	undominatedDPQ      *degreepq.Light

	mddValues []int
	mddCounts []int
	maxMDD    int

	stack []stackRow
}

// New builds an MDDStack for g, deriving the initial mdd of every currently
// undominated vertex from candidateNeighbours and undominatedDPQ.
//
// candidateNeighbours[v] must hold v's still-candidate neighbours; the
// caller (the branch-and-bound driver) owns and mutates these sets. undominated
// must reflect the vertices not yet dominated at construction time; vertices
// outside it start at InvalidMDD. The MDD solver builds the stack with every
// vertex undominated and then records each force_in vertex via AddDominator.
func New(g *graphx.Graph, candidateNeighbours []*vertset.VertexSet, undominated *vertset.VertexSet, undominatedDPQ *degreepq.Light) *MDDStack {
	n := g.N()
	m := &MDDStack{
		g:                   g,
		candidateNeighbours: candidateNeighbours,
		undominated:         undominated,
		undominatedDPQ:      undominatedDPQ,
		mddValues:           make([]int, n),
		mddCounts:           make([]int, n+1),
	}
	for i := range m.mddValues {
		m.mddValues[i] = InvalidMDD
	}
	for _, v := range undominated.Elements() {
		mdd := m.recomputeMDD(v)
		m.mddValues[v] = mdd
		m.mddCounts[mdd]++
	}
	for i := 0; i <= n; i++ {
		if m.mddCounts[i] > 0 {
			m.maxMDD = i
		}
	}
	return m
}

// GetMDD returns v's current maximum-dominator-degree.
func (m *MDDStack) GetMDD(v int) int { return m.mddValues[v] }

// GetMaxMDD returns the largest MDD among currently undominated vertices.
func (m *MDDStack) GetMaxMDD() int { return m.maxMDD }

// GetMaxMDDVertex returns an undominated vertex whose MDD equals GetMaxMDD.
func (m *MDDStack) GetMaxMDDVertex() int {
	for _, v := range m.undominated.Elements() {
		if m.GetMDD(v) == m.maxMDD {
			return v
		}
	}
	panic(ErrEmptyUndominatedSet)
}

// GetMinMDDVertex returns an undominated vertex with the smallest MDD.
func (m *MDDStack) GetMinMDDVertex() int {
	result := graphx.InvalidVertex
	minMDD := InvalidMDD
	for _, v := range m.undominated.Elements() {
		if m.GetMDD(v) < minMDD {
			minMDD = m.GetMDD(v)
			result = v
		}
	}
	if result == graphx.InvalidVertex {
		panic(ErrEmptyUndominatedSet)
	}
	return result
}

// AddDominator records v's inclusion in the dominating set. It must be
// called after v's own neighbours have already been marked dominated
// elsewhere (in the UndominatedDPQ and the undominated VertexSet), so that
// recomputeMDD sees the post-domination state.
func (m *MDDStack) AddDominator(v int) {
	row := m.newRow(v)

	for _, u := range m.g.At(v).Neighbours() {
		oldMDD := m.mddValues[u]
		if oldMDD == InvalidMDD {
			continue
		}
		row.entries = append(row.entries, stackEntry{u, oldMDD})
		m.mddValues[u] = InvalidMDD
		m.mddCounts[oldMDD]--
	}

	// Vertices as far as four steps from v can have their MDD affected by
	// v joining the set, so the remaining undominated set is recomputed in
	// full rather than tracked incrementally further out.
	for _, u := range m.undominated.Elements() {
		oldMDD := m.mddValues[u]
		newMDD := m.recomputeMDD(u)
		if oldMDD == newMDD {
			continue
		}
		row.entries = append(row.entries, stackEntry{u, oldMDD})
		m.mddValues[u] = newMDD
		m.mddCounts[oldMDD]--
		m.mddCounts[newMDD]++
	}

	for m.maxMDD > 0 && m.mddCounts[m.maxMDD] == 0 {
		m.maxMDD--
	}
}

// RemoveDominator undoes the matching AddDominator(v), restoring mdd values,
// counts, and the running maximum exactly.
func (m *MDDStack) RemoveDominator(v int) {
	row := m.popRow(v)
	highestNewMDD := 0
	for i := len(row.entries) - 1; i >= 0; i-- {
		entry := row.entries[i]
		oldMDD := m.mddValues[entry.vertex]
		newMDD := entry.oldMDD
		m.mddValues[entry.vertex] = newMDD
		if oldMDD != InvalidMDD {
			m.mddCounts[oldMDD]--
		}
		m.mddCounts[newMDD]++
		if newMDD > highestNewMDD {
			highestNewMDD = newMDD
		}
	}
	if highestNewMDD > m.maxMDD {
		m.maxMDD = highestNewMDD
	}
}

// ExcludeDominator records that v (not itself in the dominating set) is now
// forbidden from ever joining it, tightening the MDD of v's still-
// undominated neighbours accordingly. Must be called just after v is fixed.
func (m *MDDStack) ExcludeDominator(v int) {
	row := m.newRow(v)
	for _, u := range m.g.At(v).Neighbours() {
		if !m.undominated.Contains(u) {
			continue
		}
		oldMDD := m.mddValues[u]
		newMDD := m.recomputeMDD(u)
		if newMDD != oldMDD {
			row.entries = append(row.entries, stackEntry{u, oldMDD})
			m.mddValues[u] = newMDD
			m.mddCounts[oldMDD]--
			m.mddCounts[newMDD]++
		}
	}
	// No max_mdd > 0 guard here: exclude_dominator's source keeps this loop
	// unguarded even though add_dominator's twin guards it. Preserved as-is;
	// it only underflows if this is called with no undominated vertex left,
	// which the driver never does.
	for m.mddCounts[m.maxMDD] == 0 {
		m.maxMDD--
	}
}

// UnexcludeDominator undoes the matching ExcludeDominator(v). Must be called
// just before v is unfixed.
func (m *MDDStack) UnexcludeDominator(v int) {
	row := m.popRow(v)
	highestNewMDD := 0
	for i := len(row.entries) - 1; i >= 0; i-- {
		entry := row.entries[i]
		oldMDD := m.mddValues[entry.vertex]
		newMDD := entry.oldMDD
		m.mddValues[entry.vertex] = newMDD
		m.mddCounts[oldMDD]--
		m.mddCounts[newMDD]++
		if newMDD > highestNewMDD {
			highestNewMDD = newMDD
		}
	}
	if highestNewMDD > m.maxMDD {
		m.maxMDD = highestNewMDD
	}
}

// MinVerticesNeeded returns a lower bound on the number of further
// dominators needed to cover every currently undominated vertex: a greedy
// walk of the mdd histogram from 0 upward. Returns Infeasible if any
// undominated vertex has mdd 0 (no candidate neighbour left to dominate it).
func (m *MDDStack) MinVerticesNeeded() int {
	if m.mddCounts[0] > 0 {
		return Infeasible
	}
	vertsNeeded := 0
	c := 0
	for mdd := 0; mdd <= m.maxMDD; mdd++ {
		c += m.mddCounts[mdd]
		for c > 0 {
			c -= mdd
			vertsNeeded++
		}
	}
	return vertsNeeded
}

func (m *MDDStack) recomputeMDD(v int) int {
	newMDD := 0
	for _, u := range m.candidateNeighbours[v].Elements() {
		if d := m.undominatedDPQ.RankedDegree(u); d > newMDD {
			newMDD = d
		}
	}
	return newMDD
}

func (m *MDDStack) newRow(dominator int) *stackRow {
	m.stack = append(m.stack, stackRow{dominator: dominator})
	return &m.stack[len(m.stack)-1]
}

func (m *MDDStack) popRow(dominator int) stackRow {
	last := len(m.stack) - 1
	row := m.stack[last]
	if row.dominator != dominator {
		panic(ErrRowMismatch)
	}
	m.stack = m.stack[:last]
	return row
}
