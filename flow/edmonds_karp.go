package flow

// EdmondsKarp computes the maximum flow from source to sink using BFS for
// shortest (fewest-edge) augmenting paths and returns the minimum cut.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(net Network, caps CapacityMap, source, sink int, opts Options) (Result, error) {
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
		if !rn.bfsAugmentingPath(source, sink, parent, parentArc) {
			break
		}
		bottle := rn.augmentPath(parentArc, parent, source, sink)
		maxFlow += bottle
		opts.Logger.Debug("edmonds-karp: augmented", "pushed", bottle, "total", maxFlow)
	}

	return rn.result(source, maxFlow), nil
}

// bfsAugmentingPath finds a fewest-arc path of positive residual capacity,
// recording it in parent/parentArc. It reports whether sink was reached.
func (rn *residualNet) bfsAugmentingPath(source, sink int, parent, parentArc []int) bool {
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	queue := []int{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
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
			queue = append(queue, v)
		}
	}
	return false
}
