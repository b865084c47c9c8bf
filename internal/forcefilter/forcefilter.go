package forcefilter

import (
	"fmt"
	"strconv"

	"github.com/billbird/unidom/internal/instance"
)

// ParseVertexList converts a slice of CLI argument strings into vertex
// indices. A non-integer token is rejected immediately rather than silently
// skipped.
func ParseVertexList(args []string) ([]int, error) {
	vertices := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("forcefilter: %q is not an integer: %w", arg, err)
		}
		vertices = append(vertices, v)
	}
	return vertices, nil
}

// ForceInFilter is an instance.PreprocessFilter that appends its configured
// vertices to inst.ForceIn, deduplicating against whatever is already
// there.
type ForceInFilter struct {
	Vertices []int
}

// NewForceInFilter builds a ForceInFilter over the given vertex indices.
func NewForceInFilter(vertices []int) *ForceInFilter {
	return &ForceInFilter{Vertices: vertices}
}

// Process validates and appends f.Vertices to inst.ForceIn.
func (f *ForceInFilter) Process(inst *instance.DominationInstance) error {
	return appendUnique(&inst.ForceIn, f.Vertices, inst.G.N())
}

// ForceOutFilter is the force_out counterpart of ForceInFilter.
type ForceOutFilter struct {
	Vertices []int
}

// NewForceOutFilter builds a ForceOutFilter over the given vertex indices.
func NewForceOutFilter(vertices []int) *ForceOutFilter {
	return &ForceOutFilter{Vertices: vertices}
}

// Process validates and appends f.Vertices to inst.ForceOut.
func (f *ForceOutFilter) Process(inst *instance.DominationInstance) error {
	return appendUnique(&inst.ForceOut, f.Vertices, inst.G.N())
}

func appendUnique(dst *[]int, vertices []int, n int) error {
	present := make(map[int]bool, len(*dst))
	for _, v := range *dst {
		present[v] = true
	}
	for _, v := range vertices {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: %d", ErrInvalidVertex, v)
		}
		if present[v] {
			continue
		}
		present[v] = true
		*dst = append(*dst, v)
	}
	return nil
}
