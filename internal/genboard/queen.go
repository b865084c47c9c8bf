package genboard

import (
	"fmt"

	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
)

// Queen builds the queen's-graph domination instance on an n x n board:
// one vertex per square, edges between any two squares a queen can move
// between in one step (shared row, column, or diagonal).
func Queen(n int) (*instance.DominationInstance, error) {
	return buildBoard(n, func(g *graphx.Graph, row, col, n int) {
		addLine(g, row, col, n)
		addDiagonals(g, row, col, n)
	})
}

// Rook builds the rook's-graph domination instance on an n x n board: a
// queen's graph with the diagonal moves removed.
func Rook(n int) (*instance.DominationInstance, error) {
	return buildBoard(n, addLine)
}

// buildBoard is shared by every n x n chess-board generator: it lays out
// n*n vertices in row-major order, invokes addMoves once per square to
// populate that square's move set, and rejects boards whose resulting
// degree exceeds graphx.MaxDegree, matching the source's own guard against
// runaway board sizes.
func buildBoard(n int, addMoves func(g *graphx.Graph, row, col, n int)) (*instance.DominationInstance, error) {
	if n <= 0 {
		return nil, fmt.Errorf("genboard: n=%d: %w", n, ErrTooFewVertices)
	}
	g, err := graphx.New(n * n)
	if err != nil {
		return nil, err
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			addMoves(g, row, col, n)
		}
	}
	for v := 0; v < g.N(); v++ {
		if g.At(v).Deg() > graphx.MaxDegree {
			return nil, fmt.Errorf("genboard: square %d: %w", v, graphx.ErrDegreeTooLarge)
		}
	}
	return &instance.DominationInstance{G: g}, nil
}
