package genboard

import "github.com/billbird/unidom/internal/instance"

// Bishop builds the bishop's-graph domination instance on an n x n board:
// edges between any two squares of the same colour lying on a shared
// diagonal, i.e. a queen's graph with the row and column moves removed.
func Bishop(n int) (*instance.DominationInstance, error) {
	return buildBoard(n, addDiagonals)
}

// King builds the king's-graph domination instance on an n x n board:
// edges between any two squares at Chebyshev distance 1.
func King(n int) (*instance.DominationInstance, error) {
	return buildBoard(n, addAdjacent)
}
