// Focus:
//  1. A graph written by WriteGraph round-trips through ReadGraph unchanged.
//  2. Malformed input (truncated, out-of-range) is rejected.
package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/ioformat"
)

func mkTriangle(t *testing.T) *graphx.Graph {
	t.Helper()
	g, err := graphx.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeSimple(0, 1))
	require.NoError(t, g.AddEdgeSimple(1, 2))
	require.NoError(t, g.AddEdgeSimple(0, 2))
	return g
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	g := mkTriangle(t)
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteGraph(&buf, g))

	got, err := ioformat.ReadGraph(&buf)
	require.NoError(t, err)
	require.Equal(t, g.N(), got.N())
	for i := 0; i < g.N(); i++ {
		require.ElementsMatch(t, g.At(i).Neighbours(), got.At(i).Neighbours())
	}
}

func TestReadGraphRejectsTruncatedInput(t *testing.T) {
	_, err := ioformat.ReadGraph(strings.NewReader("3\n2 1"))
	require.ErrorIs(t, err, ioformat.ErrMalformedGraph)
}

func TestReadGraphRejectsOutOfRangeNeighbour(t *testing.T) {
	_, err := ioformat.ReadGraph(strings.NewReader("2\n1 5\n0"))
	require.ErrorIs(t, err, ioformat.ErrMalformedGraph)
}

func TestReadGraphRejectsNegativeVertexCount(t *testing.T) {
	_, err := ioformat.ReadGraph(strings.NewReader("-1"))
	require.ErrorIs(t, err, ioformat.ErrMalformedGraph)
}
