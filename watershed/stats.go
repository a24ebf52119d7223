package watershed

import "image"

// plane returns the statistics of (g, level), creating them on first use.
func (w *Worker) plane(g GroupID, level uint8) *levelData {
	grp := w.groups[g]
	ld := grp.levels[level]
	if ld == nil {
		ld = &levelData{conflicts: make(map[GroupID]pointSet)}
		grp.levels[level] = ld
	}
	return ld
}

// peek is plane without creation; nil if (g, level) has never been touched.
func (w *Worker) peek(g GroupID, level uint8) *levelData {
	if g <= 0 || int(g) >= len(w.groups) {
		return nil
	}
	return w.groups[g].levels[level]
}

func (w *Worker) colorOf(g GroupID) int {
	return w.colorID[w.groups[g].colorIndex]
}

// bump adds delta to a counter, clamping at zero with a violation report.
func (w *Worker) bump(counter *int, delta int, name string) {
	*counter += delta
	if *counter < 0 {
		w.violation("negative edge counter", "counter", name)
		*counter = 0
	}
}

// updateEdge adds (sign = +1) or removes (sign = -1) the classification of
// the edge between pa, owned by a at level la, and pb, owned by b at lb.
func (w *Worker) updateEdge(a GroupID, la uint8, pa image.Point, b GroupID, lb uint8, pb image.Point, sign int) {
	if a == b {
		if la == lb {
			return
		}
		lo, hi := la, lb
		if lo > hi {
			lo, hi = hi, lo
		}
		w.bump(&w.plane(a, lo).positive, sign, "positive")
		w.bump(&w.plane(a, hi).negative, sign, "negative")
		return
	}

	da, db := w.plane(a, la), w.plane(b, lb)
	sameColor := w.colorOf(a) == w.colorOf(b)
	if sameColor && la == lb {
		w.bump(&da.ally, sign, "ally")
		w.bump(&db.ally, sign, "ally")
		return
	}

	w.bump(&da.foreign, sign, "foreign")
	w.bump(&db.foreign, sign, "foreign")
	if la != lb {
		return
	}
	if sign > 0 {
		addConflict(da, b, pa)
		addConflict(db, a, pb)
		return
	}
	if !removeConflict(da, b, pa) || !removeConflict(db, a, pb) {
		w.violation("conflict point missing", "a", a, "b", b, "level", la)
	}
}

func addConflict(ld *levelData, other GroupID, p image.Point) {
	set := ld.conflicts[other]
	if set == nil {
		set = make(pointSet)
		ld.conflicts[other] = set
	}
	set[p]++
}

func removeConflict(ld *levelData, other GroupID, p image.Point) bool {
	set := ld.conflicts[other]
	if set[p] == 0 {
		return false
	}
	set[p]--
	if set[p] == 0 {
		delete(set, p)
	}
	if len(set) == 0 {
		delete(ld.conflicts, other)
	}
	return true
}

// updateNarrowRegions flags planes whose area is small relative to their
// border.
func (w *Worker) updateNarrowRegions() {
	ratio := w.opts.Cleanup.NarrowRegionRatio
	narrow := 0
	for _, grp := range w.groups[1:] {
		for _, ld := range grp.levels {
			total := ld.totalEdgeSize()
			ld.narrow = total > 0 && float64(ld.filled)/float64(total) < ratio
			if ld.narrow {
				narrow++
			}
		}
	}
	w.opts.Logger.Debug("watershed: narrow planes", "count", narrow)
}
