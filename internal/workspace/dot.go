package workspace

import (
	"errors"
	"io"

	graphlib "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// WriteDOT renders the graph in Graphviz DOT format.
func (g Graph) WriteDOT(w io.Writer) error {
	dg := graphlib.New(graphlib.StringHash, graphlib.Directed())

	addVertex := func(dir string) error {
		if err := dg.AddVertex(dir); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return err
		}
		return nil
	}

	for _, dir := range g.Dirs() {
		if err := addVertex(dir); err != nil {
			return err
		}
		for _, dep := range g.Dependencies(dir) {
			if err := addVertex(dep); err != nil {
				return err
			}
			if err := dg.AddEdge(dir, dep); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return err
			}
		}
	}

	return draw.DOT(dg, w)
}
