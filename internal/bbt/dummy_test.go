package bbt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billbird/unidom/internal/bbt"
	"github.com/billbird/unidom/internal/instance"
)

func TestDummySolverReportsFullVertexSetOnce(t *testing.T) {
	g := mkPath(t, 5)
	inst := &instance.DominationInstance{G: g}
	out := &collector{}
	require.NoError(t, bbt.NewDummySolver().Solve(inst, out))
	require.Len(t, out.sets, 1)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4}, out.sets[0])
}
