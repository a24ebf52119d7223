package flow

import (
	"context"
	"math"
)

// ctxCheckStride is how many vertices are processed between cancellation
// checks while the residual network is built.
const ctxCheckStride = 4096

// residualNet is a compressed (CSR) copy of a Network's incidence plus the
// mutable residual capacities. Arcs of vertex v are head[v]..head[v+1]-1.
type residualNet struct {
	n        int
	head     []int
	arcEdge  []int
	arcTo    []int
	residual []int64
	reverse  []int
}

// buildResidual validates the terminals, reads every capacity once and
// materialises the out-arcs of every vertex.
//
// Steps:
//  1. Check source/sink ranges and distinctness (O(1)).
//  2. Read Capacity(e) and Reverse(e) for every edge, rejecting negatives (O(E)).
//  3. Prefix-sum degrees into head and copy arcs (O(V + E)).
//
// Complexity:
//
//	Time:   O(V + E) network calls.
//	Memory: O(V + E).
func buildResidual(ctx context.Context, net Network, caps CapacityMap, source, sink int) (*residualNet, error) {
	n := net.NumVertices()
	if source < 0 || source >= n {
		return nil, ErrSourceNotFound
	}
	if sink < 0 || sink >= n {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameTerminal
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := net.NumEdges()
	rn := &residualNet{
		n:        n,
		head:     make([]int, n+1),
		residual: make([]int64, m),
		reverse:  make([]int, m),
	}
	for e := 0; e < m; e++ {
		c := caps.Capacity(e)
		if c < 0 {
			return nil, EdgeError{Edge: e, Cap: c}
		}
		rn.residual[e] = c
		rn.reverse[e] = net.Reverse(e)
	}

	for v := 0; v < n; v++ {
		rn.head[v+1] = rn.head[v] + net.Degree(v)
	}
	rn.arcEdge = make([]int, rn.head[n])
	rn.arcTo = make([]int, rn.head[n])
	for v := 0; v < n; v++ {
		if v%ctxCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for i, a := 0, rn.head[v]; a < rn.head[v+1]; i, a = i+1, a+1 {
			rn.arcEdge[a], rn.arcTo[a] = net.Arc(v, i)
		}
	}
	return rn, nil
}

// push sends f units along edge e and credits its reverse.
func (rn *residualNet) push(e int, f int64) {
	rn.residual[e] -= f
	rn.residual[rn.reverse[e]] += f
}

// augmentPath pushes the bottleneck along the path recorded in parentArc
// (arc entering each vertex) and parent, and returns it.
func (rn *residualNet) augmentPath(parentArc, parent []int, source, sink int) int64 {
	bottleneck := int64(math.MaxInt64)
	for v := sink; v != source; v = parent[v] {
		if r := rn.residual[rn.arcEdge[parentArc[v]]]; r < bottleneck {
			bottleneck = r
		}
	}
	for v := sink; v != source; v = parent[v] {
		rn.push(rn.arcEdge[parentArc[v]], bottleneck)
	}
	return bottleneck
}

// result labels every vertex reachable from source through positive
// residual capacity as SideA and packages the outcome.
func (rn *residualNet) result(source int, maxFlow int64) Result {
	sides := make([]Side, rn.n)
	sides[source] = SideA
	queue := []int{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for a := rn.head[u]; a < rn.head[u+1]; a++ {
			v := rn.arcTo[a]
			if sides[v] == SideA || rn.residual[rn.arcEdge[a]] <= 0 {
				continue
			}
			sides[v] = SideA
			queue = append(queue, v)
		}
	}
	return Result{MaxFlow: maxFlow, Residual: rn.residual, Sides: sides}
}
