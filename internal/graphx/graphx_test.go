package graphx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billbird/unidom/internal/graphx"
)

func mkPath5(t *testing.T) *graphx.Graph {
	t.Helper()
	g, err := graphx.New(5)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdgeSimple(i, i+1))
	}
	return g
}

func TestNewResetsRealIndex(t *testing.T) {
	g, err := graphx.New(3)
	require.NoError(t, err)
	for i, v := range g.V() {
		require.Equal(t, i, v.RealIndex)
		require.Equal(t, i, v.Index)
	}
}

func TestAddEdgeSimpleUndirected(t *testing.T) {
	g := mkPath5(t)
	require.ElementsMatch(t, []int{1}, g.At(0).Neighbours())
	require.ElementsMatch(t, []int{0, 2}, g.At(1).Neighbours())
}

func TestAddEdgeSimpleNoDuplicate(t *testing.T) {
	g, err := graphx.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeSimple(0, 1))
	require.NoError(t, g.AddEdgeSimple(0, 1))
	require.Len(t, g.At(0).Neighbours(), 1)
}

func TestPrepareForSearchOrdersDescendingWithSelfFirst(t *testing.T) {
	g := mkPath5(t)
	g.PrepareForSearch()
	require.Equal(t, []int{2, 3, 1}, g.At(2).Neighbours())
	require.Equal(t, []int{0, 1}, g.At(0).Neighbours())
}

func TestPrepareForSearchIsIdempotent(t *testing.T) {
	g := mkPath5(t)
	g.PrepareForSearch()
	first := append([]int(nil), g.At(2).Neighbours()...)
	g.PrepareForSearch()
	require.Equal(t, first, g.At(2).Neighbours())
}

func TestRenumberPreservesRealIndexAndRemapsNeighbours(t *testing.T) {
	g := mkPath5(t)
	out, err := graphx.New(5)
	require.NoError(t, err)
	// reverse the vertex order
	perm := []int{4, 3, 2, 1, 0}
	require.NoError(t, g.Renumber(perm, out))
	require.Equal(t, 4, out.At(0).RealIndex)
	require.ElementsMatch(t, []int{1}, out.At(0).Neighbours())
	require.ElementsMatch(t, []int{0, 2}, out.At(1).Neighbours())
}

func TestRenumberRejectsNonBijection(t *testing.T) {
	g := mkPath5(t)
	out, err := graphx.New(5)
	require.NoError(t, err)
	err = g.Renumber([]int{0, 0, 1, 2, 3}, out)
	require.ErrorIs(t, err, graphx.ErrBadPermutation)
}

func TestResetRejectsTooManyVertices(t *testing.T) {
	old := graphx.MaxVertices
	graphx.MaxVertices = 4
	defer func() { graphx.MaxVertices = old }()

	_, err := graphx.New(4)
	require.ErrorIs(t, err, graphx.ErrTooManyVertices)
}
