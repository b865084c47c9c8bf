package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/billbird/unidom/internal/graphx"
)

// ReadGraph parses one graph from r in the "n" / "deg u1 u2 ... udeg" text
// format: a vertex count on its own token, then one line per vertex giving
// its degree followed by that many neighbour indices.
func ReadGraph(r io.Reader) (*graphx.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	next := func() (int, bool) {
		if !scanner.Scan() {
			return 0, false
		}
		var v int
		if _, err := fmt.Sscan(scanner.Text(), &v); err != nil {
			return 0, false
		}
		return v, true
	}

	n, ok := next()
	if !ok || n < 0 || n >= graphx.MaxVertices {
		return nil, ErrMalformedGraph
	}

	g, err := graphx.New(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		deg, ok := next()
		if !ok || deg < 0 || deg >= graphx.MaxDegree {
			return nil, ErrMalformedGraph
		}
		for j := 0; j < deg; j++ {
			u, ok := next()
			if !ok || u < 0 || u >= n {
				return nil, ErrMalformedGraph
			}
			g.At(i).AddNeighbourSimple(u)
		}
	}
	return g, nil
}

// WriteGraph serializes g in the same format ReadGraph accepts.
func WriteGraph(w io.Writer, g *graphx.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, g.N()); err != nil {
		return err
	}
	for i := 0; i < g.N(); i++ {
		v := g.At(i)
		if _, err := fmt.Fprint(bw, v.Deg()); err != nil {
			return err
		}
		for _, u := range v.Neighbours() {
			if _, err := fmt.Fprintf(bw, " %d", u); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
