package genboard

import "github.com/billbird/unidom/internal/graphx"

// squareIndex maps an (row, col) cell of an n x n board to a single vertex
// index in row-major order, the same layout the source uses for its chess
// piece move graphs.
func squareIndex(row, col, n int) int { return row*n + col }

// addLine appends every other cell in row0's row and col0's column as a
// neighbour of (row0, col0), the rook's move set.
func addLine(g *graphx.Graph, row0, col0, n int) {
	v := squareIndex(row0, col0, n)
	for col := 0; col < n; col++ {
		if col == col0 {
			continue
		}
		g.At(v).AddNeighbourSimple(squareIndex(row0, col, n))
	}
	for row := 0; row < n; row++ {
		if row == row0 {
			continue
		}
		g.At(v).AddNeighbourSimple(squareIndex(row, col0, n))
	}
}

// addDiagonals appends every other cell on row0/col0's two diagonals as a
// neighbour of (row0, col0), the bishop's move set.
func addDiagonals(g *graphx.Graph, row0, col0, n int) {
	v := squareIndex(row0, col0, n)
	for k := -n; k < n; k++ {
		if row, col := row0+k, col0+k; inBounds(row, col, n) && !(row == row0 && col == col0) {
			g.At(v).AddNeighbourSimple(squareIndex(row, col, n))
		}
		if row, col := row0+k, col0-k; inBounds(row, col, n) && !(row == row0 && col == col0) {
			g.At(v).AddNeighbourSimple(squareIndex(row, col, n))
		}
	}
}

// addAdjacent appends the up to 8 cells at Chebyshev distance 1 from
// (row0, col0) as neighbours, the king's move set.
func addAdjacent(g *graphx.Graph, row0, col0, n int) {
	v := squareIndex(row0, col0, n)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if row, col := row0+dr, col0+dc; inBounds(row, col, n) {
				g.At(v).AddNeighbourSimple(squareIndex(row, col, n))
			}
		}
	}
}

func inBounds(row, col, n int) bool { return row >= 0 && row < n && col >= 0 && col < n }
