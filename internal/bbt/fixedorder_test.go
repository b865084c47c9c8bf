// Package bbt_test exercises the branch-and-bound driver end to end on
// small, hand-verified instances.
// Focus:
//  1. Optimizing search finds a minimum dominating set of the correct size.
//  2. The reported set is actually dominating.
//  3. Enumeration mode finds more than one minimum dominating set.
//  4. force_in constraints are honoured.
package bbt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billbird/unidom/internal/bbt"
	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
)

// collector is a minimal instance.OutputProxy that records every reported
// certificate, mirroring how the domination facade's built-in proxies work.
type collector struct {
	sets [][]int
}

func (c *collector) Initialize(*instance.DominationInstance) error { return nil }
func (c *collector) Finalize(*instance.DominationInstance) error   { return nil }
func (c *collector) ProcessSet(_ *instance.DominationInstance, set []int) error {
	c.sets = append(c.sets, append([]int(nil), set...))
	return nil
}

func mkK4(t *testing.T) *graphx.Graph {
	t.Helper()
	g, err := graphx.New(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdgeSimple(i, j))
		}
	}
	return g
}

func mkPath(t *testing.T, n int) *graphx.Graph {
	t.Helper()
	g, err := graphx.New(n)
	require.NoError(t, err)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdgeSimple(i, i+1))
	}
	return g
}

func isDominating(g *graphx.Graph, set []int) bool {
	in := make(map[int]bool)
	for _, v := range set {
		in[v] = true
	}
	for v := 0; v < g.N(); v++ {
		if in[v] {
			continue
		}
		dominated := false
		for _, u := range g.At(v).Neighbours() {
			if in[u] {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}
	return true
}

func TestFixedOrderFindsMinimumOnK4(t *testing.T) {
	g := mkK4(t)
	inst := &instance.DominationInstance{G: g}
	fw := bbt.NewFrameworkState()
	s := bbt.NewFixedOrderSolver(fw, false)
	out := &collector{}
	require.NoError(t, s.Solve(inst, out))
	require.NotEmpty(t, out.sets)
	best := out.sets[len(out.sets)-1]
	require.Len(t, best, 1)
	require.True(t, isDominating(g, best))
}

func TestFixedOrderFindsMinimumOnPath5(t *testing.T) {
	g := mkPath(t, 5)
	inst := &instance.DominationInstance{G: g}
	fw := bbt.NewFrameworkState()
	s := bbt.NewFixedOrderSolver(fw, false)
	out := &collector{}
	require.NoError(t, s.Solve(inst, out))
	require.NotEmpty(t, out.sets)
	best := out.sets[len(out.sets)-1]
	require.Len(t, best, 2)
	require.True(t, isDominating(g, best))
}

func TestFixedOrderGenerateAllFindsMultipleSets(t *testing.T) {
	g := mkPath(t, 5)
	inst := &instance.DominationInstance{G: g}
	fw := bbt.NewFrameworkState(bbt.WithBounds(2, 2))
	s := bbt.NewFixedOrderSolver(fw, true)
	out := &collector{}
	require.NoError(t, s.Solve(inst, out))
	for _, set := range out.sets {
		require.Len(t, set, 2)
		require.True(t, isDominating(g, set))
	}
	require.GreaterOrEqual(t, len(out.sets), 2)
}

func TestFixedOrderHonoursForceIn(t *testing.T) {
	g := mkPath(t, 5)
	inst := &instance.DominationInstance{G: g, ForceIn: []int{0}}
	fw := bbt.NewFrameworkState()
	s := bbt.NewFixedOrderSolver(fw, false)
	out := &collector{}
	require.NoError(t, s.Solve(inst, out))
	require.NotEmpty(t, out.sets)
	best := out.sets[len(out.sets)-1]
	require.Contains(t, best, 0)
	require.True(t, isDominating(g, best))
}
