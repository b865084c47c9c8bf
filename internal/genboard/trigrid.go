package genboard

import (
	"fmt"

	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
)

// triangleIndex maps row i (0-indexed, holding i+1 columns) and column j to
// a single vertex index, packing rows 0..n-1 into a triangular array.
func triangleIndex(row, col int) int { return row*(row+1)/2 + col }

// Trigrid builds the triangular-grid domination instance of order n: rows
// 0..n-1 where row i holds i+1 vertices, each adjacent to its immediate
// north-west/north-east, west/east, and south-west/south-east neighbours.
func Trigrid(n int) (*instance.DominationInstance, error) {
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
			// West / east, same row.
			if j > 0 {
				g.At(v).AddNeighbourSimple(triangleIndex(i, j-1))
			}
			if j < i {
				g.At(v).AddNeighbourSimple(triangleIndex(i, j+1))
			}
			// North-west / north-east, row above.
			if i > 0 {
				if j > 0 {
					g.At(v).AddNeighbourSimple(triangleIndex(i-1, j-1))
				}
				if j < i {
					g.At(v).AddNeighbourSimple(triangleIndex(i-1, j))
				}
			}
			// South-west / south-east, row below.
			if i+1 < n {
				g.At(v).AddNeighbourSimple(triangleIndex(i+1, j))
				g.At(v).AddNeighbourSimple(triangleIndex(i+1, j+1))
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
