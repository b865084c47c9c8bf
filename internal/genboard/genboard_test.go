// Focus:
//  1. Each generator produces the expected vertex count.
//  2. Rook moves stay on lines and bishop moves on diagonals; king sits
//     inside queen's on boards small enough for every direction to matter.
//  3. Degenerate sizes are rejected with ErrTooFewVertices.
//  4. Kneser respects the standard K(n,k) disjointness rule and known small
//     vertex counts.
//  5. Trigrid/Hexrook both produce the triangular vertex count and hexrook's
//     degree total is strictly larger than trigrid's.
package genboard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billbird/unidom/internal/genboard"
)

func TestQueenGraphVertexCountAndSymmetry(t *testing.T) {
	inst, err := genboard.Queen(4)
	require.NoError(t, err)
	require.Equal(t, 16, inst.G.N())
	for v := 0; v < inst.G.N(); v++ {
		for _, u := range inst.G.At(v).Neighbours() {
			require.Contains(t, inst.G.At(u).Neighbours(), v)
		}
	}
}

func TestRookGraphHasNoDiagonalMoves(t *testing.T) {
	inst, err := genboard.Rook(3)
	require.NoError(t, err)
	// Corner (0,0) = vertex 0 must not be adjacent to the centre (1,1) = vertex 4.
	require.NotContains(t, inst.G.At(0).Neighbours(), 4)
	require.Contains(t, inst.G.At(0).Neighbours(), 1) // same row
	require.Contains(t, inst.G.At(0).Neighbours(), 3) // same column
}

func TestBishopGraphOnlyHasDiagonalMoves(t *testing.T) {
	inst, err := genboard.Bishop(3)
	require.NoError(t, err)
	require.NotContains(t, inst.G.At(0).Neighbours(), 1)
	require.Contains(t, inst.G.At(0).Neighbours(), 4)
}

func TestKingGraphIsSubsetOfQueenGraph(t *testing.T) {
	queen, err := genboard.Queen(3)
	require.NoError(t, err)
	king, err := genboard.King(3)
	require.NoError(t, err)
	for v := 0; v < king.G.N(); v++ {
		for _, u := range king.G.At(v).Neighbours() {
			require.Contains(t, queen.G.At(v).Neighbours(), u)
		}
	}
	// The centre square (1,1) = vertex 4 touches all 8 others on a 3x3 board.
	require.Len(t, king.G.At(4).Neighbours(), 8)
}

func TestBoardGeneratorsRejectNonPositiveSize(t *testing.T) {
	_, err := genboard.Queen(0)
	require.ErrorIs(t, err, genboard.ErrTooFewVertices)
	_, err = genboard.Trigrid(-1)
	require.ErrorIs(t, err, genboard.ErrTooFewVertices)
}

func TestKneserGraphPetersenCase(t *testing.T) {
	// K(5,2) is the Petersen graph: 10 vertices, every vertex 3-regular.
	inst, err := genboard.Kneser(5, 2)
	require.NoError(t, err)
	require.Equal(t, 10, inst.G.N())
	for v := 0; v < inst.G.N(); v++ {
		require.Equal(t, 3, inst.G.At(v).Deg())
	}
}

func TestKneserRejectsKLargerThanN(t *testing.T) {
	_, err := genboard.Kneser(3, 4)
	require.ErrorIs(t, err, genboard.ErrTooFewVertices)
}

func TestTrigridVertexCount(t *testing.T) {
	inst, err := genboard.Trigrid(4)
	require.NoError(t, err)
	require.Equal(t, 10, inst.G.N()) // 1+2+3+4
}

func TestHexrookHasMoreEdgesThanTrigrid(t *testing.T) {
	trigrid, err := genboard.Trigrid(4)
	require.NoError(t, err)
	hexrook, err := genboard.Hexrook(4)
	require.NoError(t, err)
	require.Equal(t, trigrid.G.N(), hexrook.G.N())

	trigridDeg, hexrookDeg := 0, 0
	for v := 0; v < trigrid.G.N(); v++ {
		trigridDeg += trigrid.G.At(v).Deg()
		hexrookDeg += hexrook.G.At(v).Deg()
	}
	require.Greater(t, hexrookDeg, trigridDeg)
}
