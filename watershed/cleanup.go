package watershed

import (
	"image"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type cleanupJob struct {
	plane Plane
	total int
}

// cleanup removes dominated conflicting planes, smallest border first.
func (w *Worker) cleanup(amount float64) {
	p := w.opts.Cleanup
	if amount > 1 {
		amount = 1
	}
	threshold := p.ForeignPortionBase + p.ForeignPortionSpan*(1-amount)
	log := w.opts.Logger

	jobs := w.cleanupJobs()
	log.Debug("watershed: cleanup", "threshold", threshold, "candidates", len(jobs))

	removed := 0
	for _, job := range jobs {
		ld := w.peek(job.plane.Group, job.plane.Level)
		if ld == nil || len(ld.conflicts) == 0 {
			continue
		}
		total := ld.totalEdgeSize()
		if total == 0 {
			continue
		}
		foreignPortion := float64(ld.foreign) / float64(total)
		if foreignPortion <= threshold {
			continue
		}

		metrics := make([]float64, 0, len(ld.conflicts))
		for _, other := range sortedGroups(ld.conflicts) {
			if nb := w.peek(other, job.plane.Level); nb != nil {
				metrics = append(metrics, float64(nb.totalEdgeSize())/float64(total))
			}
		}
		if len(metrics) == 0 {
			log.Debug("watershed: no neighbour metrics", "group", job.plane.Group, "level", job.plane.Level)
			continue
		}
		minMetric, meanMetric := floats.Min(metrics), stat.Mean(metrics, nil)
		log.Debug("watershed: candidate", "group", job.plane.Group, "level", job.plane.Level,
			"foreign", foreignPortion, "min", minMetric, "mean", meanMetric)
		if minMetric > p.MinMetric && meanMetric > p.MeanMetric {
			w.removePlane(job.plane.Group, job.plane.Level)
			removed++
		}
	}
	log.Debug("watershed: cleanup done", "removed", removed)
}

// cleanupJobs lists every plane with conflicts ordered by ascending total
// edge size, ties by group then level.
func (w *Worker) cleanupJobs() []cleanupJob {
	var jobs []cleanupJob
	for id := 1; id < len(w.groups); id++ {
		for _, level := range sortedLevels(w.groups[id].levels) {
			ld := w.groups[id].levels[level]
			if len(ld.conflicts) == 0 {
				continue
			}
			jobs = append(jobs, cleanupJob{plane: Plane{Group: GroupID(id), Level: level}, total: ld.totalEdgeSize()})
		}
	}
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].total < jobs[j].total })
	return jobs
}

// removePlane hands the border pixels of (g, level) to the groups they
// conflict with and lets those groups flood the plane.
func (w *Worker) removePlane(g GroupID, level uint8) {
	ld := w.peek(g, level)
	if ld == nil || len(ld.conflicts) == 0 {
		return
	}
	seen := make(map[image.Point]bool)
	for _, other := range sortedGroups(ld.conflicts) {
		for _, pt := range sortedPoints(ld.conflicts[other]) {
			if seen[pt] {
				continue
			}
			seen[pt] = true
			w.push(taskPoint{x: pt.X, y: pt.Y, group: other, from: nowhere, level: level})
		}
	}
	w.opts.Logger.Debug("watershed: removing plane", "group", g, "level", level, "border", len(seen))
	w.processQueue(g)
}

func sortedGroups(m map[GroupID]pointSet) []GroupID {
	ids := make([]GroupID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sortGroupIDs(ids)
	return ids
}

func sortGroupIDs(ids []GroupID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func sortedLevels(m map[uint8]*levelData) []uint8 {
	levels := make([]uint8, 0, len(m))
	for l := range m {
		levels = append(levels, l)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}

// sortedPoints returns the distinct points of s in row-major order.
func sortedPoints(s pointSet) []image.Point {
	pts := make([]image.Point, 0, len(s))
	for p := range s {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}
