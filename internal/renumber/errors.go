// Package renumber implements PreprocessFilters that relabel a graph's
// vertices before search, remapping force_in/force_out through the same
// permutation so constraints stay attached to the right vertices.
package renumber

import "errors"

// ErrIncompleteBFS is returned when a BFS-order renumbering does not reach
// every vertex, meaning the graph is disconnected and the chosen root
// cannot reach the rest.
var ErrIncompleteBFS = errors.New("renumber: bfs from root does not reach every vertex")
