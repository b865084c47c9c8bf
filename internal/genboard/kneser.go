package genboard

import (
	"fmt"
	"math/bits"

	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
)

// Kneser builds the Kneser graph K(n,k) domination instance: one vertex per
// k-element subset of an n-element ground set (represented as an n-bit
// mask), with an edge between any two disjoint subsets.
func Kneser(n, k int) (*instance.DominationInstance, error) {
	if n <= 0 || k <= 0 || k > n {
		return nil, fmt.Errorf("genboard: n=%d, k=%d: %w", n, k, ErrTooFewVertices)
	}
	masks := subsetsByPopcount(n, k)
	g, err := graphx.New(len(masks))
	if err != nil {
		return nil, err
	}
	for i := range masks {
		for j := range masks {
			if i == j {
				continue
			}
			if masks[i]&masks[j] == 0 {
				g.At(i).AddNeighbourSimple(j)
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

// subsetsByPopcount enumerates every n-bit value with exactly k bits set,
// in ascending numeric order, mirroring the source's recursive
// generate_by_pop_count.
func subsetsByPopcount(n, k int) []int {
	masks := make([]int, 0)
	for m := 0; m < (1 << n); m++ {
		if bits.OnesCount(uint(m)) == k {
			masks = append(masks, m)
		}
	}
	return masks
}
