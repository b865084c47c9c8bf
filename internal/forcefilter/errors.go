// Package forcefilter implements the force_in / force_out PreprocessFilter
// pair: CLI-supplied vertex indices that must (or must not) appear in the
// dominating set found by a subsequent solve.
package forcefilter

import "errors"

// ErrInvalidVertex is returned by Process when a configured vertex index
// falls outside [0, inst.G.N()).
var ErrInvalidVertex = errors.New("forcefilter: vertex index is invalid")
