// Package outproxy provides the small set of built-in instance.OutputProxy
// implementations the CLI wires up by name, grounded on
// original_source/src/basic_io.cpp's OutputProxyOutputAll/OutputBest/
// OutputGraphOnly.
package outproxy

import (
	"fmt"
	"io"

	"github.com/billbird/unidom/internal/graphx"
	"github.com/billbird/unidom/internal/instance"
	"github.com/billbird/unidom/internal/ioformat"
)

// All reports every certificate as it is found, one per line as
// "<size> <real vertex indices...>", followed by a trailing "-1" line at
// Finalize — the same framing OutputProxyOutputAll uses.
type All struct {
	W              io.Writer
	totalSolutions int
}

// NewAll builds an All proxy writing to w.
func NewAll(w io.Writer) *All { return &All{W: w} }

// Initialize resets the solution counter.
func (p *All) Initialize(*instance.DominationInstance) error {
	p.totalSolutions = 0
	return nil
}

// ProcessSet writes one certificate line.
func (p *All) ProcessSet(inst *instance.DominationInstance, dominatingSet []int) error {
	p.totalSolutions++
	return writeCertificateLine(p.W, inst, dominatingSet, false)
}

// Finalize writes the terminating "-1" line.
func (p *All) Finalize(*instance.DominationInstance) error {
	_, err := fmt.Fprintln(p.W, -1)
	return err
}

// Best keeps only the last certificate reported (the optimizer's final
// improvement) and writes it at Finalize, optionally preceded by the
// original graph.
type Best struct {
	W          io.Writer
	PrintGraph bool
	SizeOnly   bool

	original *graphx.Graph
	best     []int
	inst     *instance.DominationInstance
}

// NewBest builds a Best proxy writing to w. original, if non-nil, is
// printed before the certificate when PrintGraph is set, mirroring the
// source's "-graph" flag against get_solver_context().original_input_graph.
func NewBest(w io.Writer, original *graphx.Graph) *Best {
	return &Best{W: w, original: original}
}

// Initialize resets the recorded best set.
func (p *Best) Initialize(inst *instance.DominationInstance) error {
	p.best = nil
	p.inst = inst
	return nil
}

// ProcessSet overwrites the recorded best set; for an optimizing solver
// every reported set is a strict improvement over the last.
func (p *Best) ProcessSet(_ *instance.DominationInstance, dominatingSet []int) error {
	p.best = append([]int(nil), dominatingSet...)
	return nil
}

// Finalize writes the graph (if requested) and the best certificate found,
// or a bare "0" line if no certificate was ever reported.
func (p *Best) Finalize(inst *instance.DominationInstance) error {
	if p.PrintGraph && p.original != nil {
		if err := ioformat.WriteGraph(p.W, p.original); err != nil {
			return err
		}
	}
	return writeCertificateLine(p.W, inst, p.best, p.SizeOnly)
}

// GraphOnly ignores every reported certificate and writes only the graph
// at Finalize.
type GraphOnly struct {
	W io.Writer
}

// NewGraphOnly builds a GraphOnly proxy writing to w.
func NewGraphOnly(w io.Writer) *GraphOnly { return &GraphOnly{W: w} }

func (p *GraphOnly) Initialize(*instance.DominationInstance) error { return nil }
func (p *GraphOnly) ProcessSet(*instance.DominationInstance, []int) error {
	return nil
}
func (p *GraphOnly) Finalize(inst *instance.DominationInstance) error {
	return ioformat.WriteGraph(p.W, inst.G)
}

func writeCertificateLine(w io.Writer, inst *instance.DominationInstance, set []int, sizeOnly bool) error {
	if _, err := fmt.Fprintf(w, "%d ", len(set)); err != nil {
		return err
	}
	if !sizeOnly {
		for _, v := range set {
			if _, err := fmt.Fprintf(w, "%d ", inst.G.At(v).RealIndex); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
