// Focus:
//  1. DD-style search finds a minimum dominating set of the correct size.
//  2. Every reported certificate is actually dominating.
//  3. Enumeration mode finds more than one minimum dominating set.
//  4. force_in is honoured.
//  5. Fixed-order and DD search agree on minimum size across small instances.
package bbt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billbird/unidom/internal/bbt"
	"github.com/billbird/unidom/internal/instance"
)

func TestDDFindsMinimumOnK4(t *testing.T) {
	g := mkK4(t)
	inst := &instance.DominationInstance{G: g}
	fw := bbt.NewFrameworkState()
	s := bbt.NewDDSolver(fw, bbt.DefaultVariantOptions())
	out := &collector{}
	require.NoError(t, s.Solve(inst, out))
	require.NotEmpty(t, out.sets)
	best := out.sets[len(out.sets)-1]
	require.Len(t, best, 1)
	require.True(t, isDominating(g, best))
}

func TestDDFindsMinimumOnPath5(t *testing.T) {
	g := mkPath(t, 5)
	inst := &instance.DominationInstance{G: g}
	fw := bbt.NewFrameworkState()
	s := bbt.NewDDSolver(fw, bbt.DefaultVariantOptions())
	out := &collector{}
	require.NoError(t, s.Solve(inst, out))
	require.NotEmpty(t, out.sets)
	best := out.sets[len(out.sets)-1]
	require.Len(t, best, 2)
	require.True(t, isDominating(g, best))
}

func TestDDGenerateAllFindsMultipleSets(t *testing.T) {
	g := mkPath(t, 5)
	inst := &instance.DominationInstance{G: g}
	fw := bbt.NewFrameworkState(bbt.WithBounds(2, 2))
	opts := bbt.DefaultVariantOptions()
	opts.GenerateAll = true
	s := bbt.NewDDSolver(fw, opts)
	out := &collector{}
	require.NoError(t, s.Solve(inst, out))
	for _, set := range out.sets {
		require.Len(t, set, 2)
		require.True(t, isDominating(g, set))
	}
	require.GreaterOrEqual(t, len(out.sets), 2)
}

func TestDDHonoursForceIn(t *testing.T) {
	g := mkPath(t, 5)
	inst := &instance.DominationInstance{G: g, ForceIn: []int{0}}
	fw := bbt.NewFrameworkState()
	s := bbt.NewDDSolver(fw, bbt.DefaultVariantOptions())
	out := &collector{}
	require.NoError(t, s.Solve(inst, out))
	require.NotEmpty(t, out.sets)
	best := out.sets[len(out.sets)-1]
	require.Contains(t, best, 0)
	require.True(t, isDominating(g, best))
}

func TestDDAgreesWithFixedOrderOnMinimumSize(t *testing.T) {
	sizes := []int{3, 4, 6, 7}
	for _, n := range sizes {
		g1 := mkPath(t, n)
		g2 := mkPath(t, n)

		fwFO := bbt.NewFrameworkState()
		fo := bbt.NewFixedOrderSolver(fwFO, false)
		outFO := &collector{}
		require.NoError(t, fo.Solve(&instance.DominationInstance{G: g1}, outFO))

		fwDD := bbt.NewFrameworkState()
		dd := bbt.NewDDSolver(fwDD, bbt.DefaultVariantOptions())
		outDD := &collector{}
		require.NoError(t, dd.Solve(&instance.DominationInstance{G: g2}, outDD))

		require.NotEmpty(t, outFO.sets)
		require.NotEmpty(t, outDD.sets)
		require.Equal(t, len(outFO.sets[len(outFO.sets)-1]), len(outDD.sets[len(outDD.sets)-1]))
	}
}

func TestDDMaxCandidateDegreeAndDescendingRankStillFindMinimum(t *testing.T) {
	g := mkPath(t, 5)
	inst := &instance.DominationInstance{G: g}
	fw := bbt.NewFrameworkState()
	opts := bbt.VariantOptions{
		ChooseVertexRule: bbt.ChooseMaxCandidateDegree,
		RankNeighbours:   bbt.RankDescending,
	}
	s := bbt.NewDDSolver(fw, opts)
	out := &collector{}
	require.NoError(t, s.Solve(inst, out))
	require.NotEmpty(t, out.sets)
	best := out.sets[len(out.sets)-1]
	require.Len(t, best, 2)
	require.True(t, isDominating(g, best))
}
