package genboard

import (
	"fmt"

	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
)

// Hexrook builds the hex rook's-graph domination instance of order n, using
// the same triangular vertex numbering as Trigrid: row i (0-indexed) holds
// i+1 vertices, and each vertex is adjacent to every other vertex sharing
// one of the hex board's three axes (horizontal, and its two diagonals).
func Hexrook(n int) (*instance.DominationInstance, error) {
	if n <= 0 {
		return nil, fmt.Errorf("genboard: n=%d: %w", n, ErrTooFewVertices)
	}
	total := triangleIndex(n, 0)
	g, err := graphx.New(total)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := triangleIndex(i, j)

			// Horizontal axis: every other vertex in row i.
			for k := 0; k <= i; k++ {
				if k != j {
					g.At(v).AddNeighbourSimple(triangleIndex(i, k))
				}
			}
			// First diagonal axis: column j held fixed, row k from j upward.
			for k := j; k < n; k++ {
				if k != i {
					g.At(v).AddNeighbourSimple(triangleIndex(k, j))
				}
			}
			// Second diagonal axis: row and column shifted by the same amount.
			for k := -n; k < n; k++ {
				ni, nj := i+k, j+k
				if ni < 0 || ni >= n || nj < 0 || nj >= n {
					continue
				}
				if ni == i && nj == j {
					continue
				}
				g.At(v).AddNeighbourSimple(triangleIndex(ni, nj))
			}
		}
	}
	for v := 0; v < g.N(); v++ {
		if g.At(v).Deg() > graphx.MaxDegree {
			return nil, fmt.Errorf("genboard: vertex %d: %w", v, graphx.ErrDegreeTooLarge)
		}
	}
	return &instance.DominationInstance{G: g}, nil
}
