package flow

// FordFulkerson computes the maximum flow from source to sink by repeatedly
// augmenting along any path found with an iterative depth-first search.
//
// Complexity: O(E · F), F = value of the maximum flow.
// Memory:     O(V + E)
func FordFulkerson(net Network, caps CapacityMap, source, sink int, opts Options) (Result, error) {
	opts.normalize()
	ctx := opts.Ctx

	rn, err := buildResidual(ctx, net, caps, source, sink)
	if err != nil {
		return Result{}, err
	}

	parent := make([]int, rn.n)
	parentArc := make([]int, rn.n)
	var maxFlow int64
	for {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		if !rn.dfsAugmentingPath(source, sink, parent, parentArc) {
			break
		}
		bottle := rn.augmentPath(parentArc, parent, source, sink)
		maxFlow += bottle
		opts.Logger.Debug("ford-fulkerson: augmented", "pushed", bottle, "total", maxFlow)
	}

	return rn.result(source, maxFlow), nil
}

// dfsAugmentingPath is bfsAugmentingPath with a stack instead of a queue.
func (rn *residualNet) dfsAugmentingPath(source, sink int, parent, parentArc []int) bool {
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	stack := []int{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for a := rn.head[u]; a < rn.head[u+1]; a++ {
			v := rn.arcTo[a]
			if parent[v] >= 0 || rn.residual[rn.arcEdge[a]] <= 0 {
				continue
			}
			parent[v] = u
			parentArc[v] = a
			if v == sink {
				return true
			}
			stack = append(stack, v)
		}
	}
	return false
}
