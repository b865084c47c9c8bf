// Command-and-library module unidom finds and enumerates minimum
// dominating sets of a graph using exhaustive branch-and-bound search.
//
// The search core lives under internal/ (graphx, vertset, degreepq,
// mddstack, bbt); domination is the public facade a caller wires
// against, and cmd/unidom is this repository's own CLI driver over
// that facade. See SPEC_FULL.md and DESIGN.md for the full package
// layout and the grounding behind each piece.
package unidom
