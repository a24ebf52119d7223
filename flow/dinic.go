package flow

import "math"

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows) and returns the minimum cut.
//
// Steps:
//  1. Normalize options and capture context (O(1)).
//  2. Build the residual network via buildResidual (O(V + E)).
//  3. Repeat until the sink is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS to assign levels from the source (O(V + E)).
//     c. Iterative DFS blocking-flow pushes along level+1 arcs, optionally rebuilding
//     the level graph every LevelRebuildInterval augmentations.
//  4. Label the source side of the final residual network (O(V + E)).
//
// Complexity:
//
//	Time:   O(V²·E) worst case.
//	Memory: O(V + E) for residuals, levels and arc iterators.
func Dinic(net Network, caps CapacityMap, source, sink int, opts Options) (Result, error) {
	// 1) Normalize options (set default Ctx and Logger if needed)
	opts.normalize()
	ctx := opts.Ctx

	// 2) Residual network
	rn, err := buildResidual(ctx, net, caps, source, sink)
	if err != nil {
		return Result{}, err
	}

	level := make([]int, rn.n)
	iter := make([]int, rn.n)
	path := make([]int, 0, 64)
	var maxFlow int64
	augmentCount := 0

	// 3) Main loop: level graph + blocking flows
	for {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		if !rn.buildLevels(source, sink, level) {
			break
		}
		copy(iter, rn.head[:rn.n])

		for {
			if err = ctx.Err(); err != nil {
				return Result{}, err
			}
			var pushed int64
			pushed, path = rn.dinicPush(level, iter, path[:0], source, sink)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			opts.Logger.Debug("dinic: augmented", "pushed", pushed, "total", maxFlow)
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	// 4) Cut
	return rn.result(source, maxFlow), nil
}

// buildLevels runs a BFS from source over positive residual arcs, filling
// level (-1 = unreachable). It reports whether sink was reached.
func (rn *residualNet) buildLevels(source, sink int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for a := rn.head[u]; a < rn.head[u+1]; a++ {
			v := rn.arcTo[a]
			if level[v] >= 0 || rn.residual[rn.arcEdge[a]] <= 0 {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}
	return level[sink] >= 0
}

// dinicPush walks one source→sink path along the level graph with an
// explicit arc stack, advancing the per-vertex arc iterator past saturated
// or dead-end arcs, and pushes its bottleneck. It returns the amount sent
// (0 once the level graph is blocked) and the stack for reuse.
func (rn *residualNet) dinicPush(level, iter, path []int, source, sink int) (int64, []int) {
	u := source
	for {
		if u == sink {
			bottleneck := int64(math.MaxInt64)
			for _, a := range path {
				if r := rn.residual[rn.arcEdge[a]]; r < bottleneck {
					bottleneck = r
				}
			}
			for _, a := range path {
				rn.push(rn.arcEdge[a], bottleneck)
			}
			return bottleneck, path
		}

		advanced := false
		for ; iter[u] < rn.head[u+1]; iter[u]++ {
			a := iter[u]
			v := rn.arcTo[a]
			if rn.residual[rn.arcEdge[a]] > 0 && level[v] == level[u]+1 {
				path = append(path, a)
				u = v
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}

		// dead end: retreat and skip the arc that led here
		if len(path) == 0 {
			return 0, path
		}
		path = path[:len(path)-1]
		u = source
		if len(path) > 0 {
			u = rn.arcTo[path[len(path)-1]]
		}
		iter[u]++
	}
}
