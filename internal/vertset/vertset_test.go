package vertset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billbird/unidom/internal/vertset"
)

func TestResetFullAndContains(t *testing.T) {
	vs := vertset.New(5)
	vs.ResetFull(3)
	require.Equal(t, 3, vs.Len())
	require.True(t, vs.Contains(0))
	require.True(t, vs.Contains(2))
	require.False(t, vs.Contains(3))
	require.Equal(t, []int{0, 1, 2}, vs.Elements())
}

func TestAddAndRemovePop(t *testing.T) {
	vs := vertset.New(5)
	vs.Add(2)
	vs.Add(4)
	require.True(t, vs.Contains(2))
	require.True(t, vs.Contains(4))
	require.Equal(t, 2, vs.Len())

	vs.RemovePop(4)
	require.False(t, vs.Contains(4))
	require.Equal(t, 1, vs.Len())

	require.NotPanics(t, func() { vs.RemovePop(2) }, "RemovePop of the now most recent member should not panic")
}

func TestRemovePopRequiresMostRecent(t *testing.T) {
	vs := vertset.New(5)
	vs.Add(0)
	vs.Add(1)
	require.Panics(t, func() { vs.RemovePop(0) })
}

func TestRemoveSwapsWithLast(t *testing.T) {
	vs := vertset.New(5)
	vs.ResetFull(4)
	vs.Remove(1)
	require.False(t, vs.Contains(1))
	require.Equal(t, 3, vs.Len())
	require.ElementsMatch(t, []int{0, 2, 3}, vs.Elements())
}

func TestResetEmpty(t *testing.T) {
	vs := vertset.New(5)
	vs.ResetFull(5)
	vs.ResetEmpty()
	require.Equal(t, 0, vs.Len())
	for v := 0; v < 5; v++ {
		require.False(t, vs.Contains(v))
	}
}

func TestCopyFrom(t *testing.T) {
	a := vertset.New(4)
	a.Add(1)
	a.Add(3)
	b := vertset.New(4)
	b.CopyFrom(a)
	require.Equal(t, a.Elements(), b.Elements())
	b.RemovePop(3)
	require.True(t, a.Contains(3), "CopyFrom must be a deep copy")
}
