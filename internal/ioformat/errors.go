// Package ioformat reads and writes the plain-text graph format: a vertex
// count followed by one adjacency line per vertex ("deg u1 u2 ... udeg").
// Neighbour lists are taken as given — the format stores both directions of
// every edge explicitly, so a caller producing a graph for round-tripping
// must symmetrize it first (graphx.Graph.AddEdgeSimple already does this).
package ioformat

import "errors"

// ErrMalformedGraph is returned by ReadGraph when the input does not match
// the expected "n" / "deg u1 u2 ... udeg" shape, or a value lies outside
// the range graphx allows.
var ErrMalformedGraph = errors.New("ioformat: malformed graph input")
