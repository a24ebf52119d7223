package watershed

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Inspector is a diagnostic view of a Worker after Run. Production code
// paths never need it.
type Inspector struct {
	w *Worker
}

// Inspector returns a diagnostic view of w.
func (w *Worker) Inspector() *Inspector { return &Inspector{w: w} }

// NumGroups returns the number of groups created from the strokes.
func (in *Inspector) NumGroups() int { return len(in.w.groups) - 1 }

// Planes lists every plane ordered by group, then level.
func (in *Inspector) Planes() []Plane {
	var planes []Plane
	for id := 1; id < len(in.w.groups); id++ {
		for _, level := range sortedLevels(in.w.groups[id].levels) {
			planes = append(planes, Plane{Group: GroupID(id), Level: level})
		}
	}
	return planes
}

// Stats returns a copy of the statistics of (g, level).
func (in *Inspector) Stats(g GroupID, level uint8) (PlaneStats, bool) {
	ld := in.w.peek(g, level)
	if ld == nil {
		return PlaneStats{}, false
	}
	s := PlaneStats{
		PositiveEdgeSize: ld.positive,
		NegativeEdgeSize: ld.negative,
		ForeignEdgeSize:  ld.foreign,
		AllyEdgeSize:     ld.ally,
		NumFilledPixels:  ld.filled,
		NarrowRegion:     ld.narrow,
		Conflicts:        make(map[GroupID]int, len(ld.conflicts)),
	}
	for other, set := range ld.conflicts {
		s.Conflicts[other] = set.size()
	}
	return s, true
}

// ConflictCount returns the size of the conflict multiset of (g, level)
// against other.
func (in *Inspector) ConflictCount(g, other GroupID, level uint8) int {
	ld := in.w.peek(g, level)
	if ld == nil {
		return 0
	}
	return ld.conflicts[other].size()
}

// GroupAt returns the owner of (x, y), 0 if unclaimed or outside the rect.
func (in *Inspector) GroupAt(x, y int) GroupID {
	return GroupID(in.w.groupMap.At(x, y))
}

// ColorIndex returns the stroke index of g, or -1 for an unknown group.
func (in *Inspector) ColorIndex(g GroupID) int {
	if g <= 0 || int(g) >= len(in.w.groups) {
		return -1
	}
	return in.w.groups[g].colorIndex
}

// RemovePlane forces removal of (g, level) as cleanup would, then repaints
// the output.
func (in *Inspector) RemovePlane(g GroupID, level uint8) {
	if in.w.peek(g, level) == nil {
		return
	}
	in.w.removePlane(g, level)
	in.w.writeColors()
}

// Dump writes a table of every plane to out.
func (in *Inspector) Dump(out io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("group", "level", "color", "filled", "positive", "negative", "foreign", "ally", "narrow", "conflicts")
	for _, p := range in.Planes() {
		s, _ := in.Stats(p.Group, p.Level)
		t.Row(
			strconv.Itoa(int(p.Group)),
			strconv.Itoa(int(p.Level)),
			strconv.Itoa(in.ColorIndex(p.Group)),
			strconv.Itoa(s.NumFilledPixels),
			strconv.Itoa(s.PositiveEdgeSize),
			strconv.Itoa(s.NegativeEdgeSize),
			strconv.Itoa(s.ForeignEdgeSize),
			strconv.Itoa(s.AllyEdgeSize),
			strconv.FormatBool(s.NarrowRegion),
			formatConflicts(s.Conflicts),
		)
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}

func formatConflicts(c map[GroupID]int) string {
	if len(c) == 0 {
		return "-"
	}
	ids := make([]GroupID, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sortGroupIDs(ids)
	s := ""
	for i, id := range ids {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d:%d", id, c[id])
	}
	return s
}
