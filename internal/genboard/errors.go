// Package genboard builds DominationInstance values for the family of
// board-derived graphs the original tool ships as input generators: chess
// piece move graphs (queen, rook, bishop, king), Kneser graphs, and the
// triangular-lattice pair (trigrid, hexrook). Each constructor is a plain
// function rather than a composable Constructor closure, since a board
// graph is a complete instance in its own right, not a mutation layered
// onto a shared one.
package genboard

import "errors"

// ErrTooFewVertices is returned when a size parameter is too small to
// produce a well-formed board (n <= 0, or k out of range for Kneser).
var ErrTooFewVertices = errors.New("genboard: parameter too small")
