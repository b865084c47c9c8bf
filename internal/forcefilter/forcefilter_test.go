package forcefilter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billbird/unidom/internal/forcefilter"
	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
)

func mkInstance(t *testing.T, n int) *instance.DominationInstance {
	t.Helper()
	g, err := graphx.New(n)
	require.NoError(t, err)
	return &instance.DominationInstance{G: g}
}

func TestParseVertexListRejectsNonInteger(t *testing.T) {
	_, err := forcefilter.ParseVertexList([]string{"1", "two"})
	require.Error(t, err)
}

func TestForceInFilterAppendsAndDeduplicates(t *testing.T) {
	inst := mkInstance(t, 5)
	inst.ForceIn = []int{1}
	f := forcefilter.NewForceInFilter([]int{1, 2, 3})
	require.NoError(t, f.Process(inst))
	require.ElementsMatch(t, []int{1, 2, 3}, inst.ForceIn)
}

func TestForceOutFilterRejectsOutOfRange(t *testing.T) {
	inst := mkInstance(t, 3)
	f := forcefilter.NewForceOutFilter([]int{5})
	require.ErrorIs(t, f.Process(inst), forcefilter.ErrInvalidVertex)
}
