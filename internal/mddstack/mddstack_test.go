// Package mddstack_test validates the undo-stack invariant: after a matching
// pop, mdd values, counts, and the running maximum are bitwise identical to
// the state before the push.
package mddstack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billbird/unidom/internal/degreepq"
	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/mddstack"
	"github.com/billbird/unidom/internal/vertset"
)

// setup builds a path graph 0-1-2-3-4 with closed neighbourhoods (self
// prepended, as PrepareForSearch would leave them), full candidate
// neighbourhoods, everyone undominated, and the matching light DPQ.
func setup(t *testing.T) (*graphx.Graph, []*vertset.VertexSet, *vertset.VertexSet, *degreepq.Light) {
	t.Helper()
	g, err := graphx.New(5)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdgeSimple(i, i+1))
	}
	g.PrepareForSearch()

	candidateNeighbours := make([]*vertset.VertexSet, 5)
	for v := 0; v < 5; v++ {
		cn := vertset.New(5)
		for _, u := range g.At(v).Neighbours() {
			cn.Add(u)
		}
		candidateNeighbours[v] = cn
	}

	undominated := vertset.New(5)
	undominated.ResetFull(5)

	// UndominatedDPQ ranks each vertex by number of undominated closed
	// neighbours; since nothing is dominated yet, its rank equals degree.
	udpqHeavy := degreepq.NewHeavy(g)
	_ = udpqHeavy
	dpq := degreepq.NewLight(g)
	return g, candidateNeighbours, undominated, dpq
}

func TestMinVerticesNeededOnPath(t *testing.T) {
	g, cn, undominated, dpq := setup(t)
	m := mddstack.New(g, cn, undominated, dpq)
	require.GreaterOrEqual(t, m.MinVerticesNeeded(), 1)
}

func TestAddRemoveDominatorRoundTrip(t *testing.T) {
	g, cn, undominated, dpq := setup(t)
	m := mddstack.New(g, cn, undominated, dpq)

	before := snapshotMDDs(m, 5)

	// Including 2 dominates its closed neighbourhood {1, 2, 3}.
	undominated.Remove(1)
	undominated.Remove(2)
	undominated.Remove(3)
	m.AddDominator(2)
	require.NotEqual(t, before, snapshotMDDs(m, 5))

	m.RemoveDominator(2)
	undominated.Add(1)
	undominated.Add(2)
	undominated.Add(3)
	require.Equal(t, before, snapshotMDDs(m, 5))
}

func TestExcludeUnexcludeDominatorRoundTrip(t *testing.T) {
	g, cn, undominated, dpq := setup(t)
	m := mddstack.New(g, cn, undominated, dpq)

	before := snapshotMDDs(m, 5)

	// Excluding 1 leaves 0 with only itself (rank 2) as a candidate, so
	// mdd(0) drops from 3 to 2.
	cn[0].Remove(1)
	cn[2].Remove(1)
	m.ExcludeDominator(1)
	require.NotEqual(t, before, snapshotMDDs(m, 5))

	m.UnexcludeDominator(1)
	cn[0].Add(1)
	cn[2].Add(1)
	require.Equal(t, before, snapshotMDDs(m, 5))
}

func snapshotMDDs(m *mddstack.MDDStack, n int) []int {
	out := make([]int, n)
	for v := 0; v < n; v++ {
		out[v] = m.GetMDD(v)
	}
	return out
}
