package gridgraph

// The methods below expose Graph through plain integer indices, the shape
// consumed by max-flow solvers (see package flow): vertex enumeration,
// edge enumeration, incidence and reverse pairing.

// Degree is OutDegree addressed by vertex index.
func (g *Graph) Degree(v int) int {
	return g.OutDegree(g.VertexAt(v))
}

// Arc returns the index of the i-th out-edge of vertex v and the index of
// its target. i must be in [0, Degree(v)).
func (g *Graph) Arc(v, i int) (edge, to int) {
	e, ok := g.OutEdgeAt(g.VertexAt(v), i)
	if !ok {
		return -1, -1
	}
	edge, _ = g.EdgeIndex(e)
	to, _ = g.VertexIndex(e.Target)
	return edge, to
}

// Reverse is ReverseIndex, named for the flow.Network contract.
func (g *Graph) Reverse(edge int) int { return g.ReverseIndex(edge) }
