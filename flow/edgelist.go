package flow

// EdgeList is a small explicit Network with built-in capacities. Every
// AddEdge call appends a forward edge (even index) and its paired reverse
// (odd index), so Reverse(e) == e^1.
type EdgeList struct {
	from, to []int
	caps     []int64
	out      [][]int
}

// NewEdgeList returns an EdgeList over vertices 0..n-1.
// Panics if n < 0.
func NewEdgeList(n int) *EdgeList {
	if n < 0 {
		panic("flow: NewEdgeList with negative vertex count")
	}
	return &EdgeList{out: make([][]int, n)}
}

// AddEdge appends u→v with capacity c and v→u with capacity revCap, and
// returns the index of the forward edge.
// Panics if u or v is out of range.
func (l *EdgeList) AddEdge(u, v int, c, revCap int64) int {
	if u < 0 || u >= len(l.out) || v < 0 || v >= len(l.out) {
		panic("flow: AddEdge endpoint out of range")
	}
	e := len(l.from)
	l.from = append(l.from, u, v)
	l.to = append(l.to, v, u)
	l.caps = append(l.caps, c, revCap)
	l.out[u] = append(l.out[u], e)
	l.out[v] = append(l.out[v], e+1)
	return e
}

// NumVertices returns n.
func (l *EdgeList) NumVertices() int { return len(l.out) }

// NumEdges returns the number of directed edges, reverses included.
func (l *EdgeList) NumEdges() int { return len(l.from) }

// Degree returns the out-degree of v.
func (l *EdgeList) Degree(v int) int { return len(l.out[v]) }

// Arc returns the i-th out-edge of v and its target.
func (l *EdgeList) Arc(v, i int) (edge, to int) {
	e := l.out[v][i]
	return e, l.to[e]
}

// Reverse returns e^1.
func (l *EdgeList) Reverse(edge int) int { return edge ^ 1 }

// Capacity returns the capacity given at AddEdge time.
func (l *EdgeList) Capacity(edge int) int64 { return l.caps[edge] }

// Endpoints returns the tail and head of edge.
func (l *EdgeList) Endpoints(edge int) (from, to int) { return l.from[edge], l.to[edge] }
