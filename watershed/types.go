package watershed

import "image"

// GroupID identifies one seed component. 0 is the unclaimed background.
type GroupID int32

// direction names the side a task's previous pixel lies on.
type direction uint8

const (
	north direction = iota
	east
	south
	west
	nowhere
)

// neighbour is one entry of the static offset table: the step to take,
// the side the current pixel will lie on as seen from the neighbour, and
// whether the neighbour is only accounted for and never enqueued.
type neighbour struct {
	dx, dy    int
	from      direction
	statsOnly bool
}

// neighbourTable lists, per arrival side, the four neighbours to visit:
// straight on, the two sides, then the pixel just arrived from.
var neighbourTable = [5][4]neighbour{
	north: {
		{dx: 0, dy: 1, from: north},
		{dx: 1, dy: 0, from: west},
		{dx: -1, dy: 0, from: east},
		{dx: 0, dy: -1, from: south, statsOnly: true},
	},
	east: {
		{dx: -1, dy: 0, from: east},
		{dx: 0, dy: -1, from: south},
		{dx: 0, dy: 1, from: north},
		{dx: 1, dy: 0, from: west, statsOnly: true},
	},
	south: {
		{dx: 0, dy: -1, from: south},
		{dx: -1, dy: 0, from: east},
		{dx: 1, dy: 0, from: west},
		{dx: 0, dy: 1, from: north, statsOnly: true},
	},
	west: {
		{dx: 1, dy: 0, from: west},
		{dx: 0, dy: 1, from: north},
		{dx: 0, dy: -1, from: south},
		{dx: -1, dy: 0, from: east, statsOnly: true},
	},
	nowhere: {
		{dx: 0, dy: -1, from: south},
		{dx: 1, dy: 0, from: west},
		{dx: 0, dy: 1, from: north},
		{dx: -1, dy: 0, from: east},
	},
}

// taskPoint is a queued claim attempt.
type taskPoint struct {
	x, y     int
	distance int
	group    GroupID
	from     direction
	level    uint8
	seq      uint64
}

// pointSet is a multiset of pixels.
type pointSet map[image.Point]int

func (s pointSet) size() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// levelData holds the statistics of one (group, level) plane.
type levelData struct {
	positive  int
	negative  int
	foreign   int
	ally      int
	filled    int
	narrow    bool
	conflicts map[GroupID]pointSet
}

func (ld *levelData) totalEdgeSize() int {
	return ld.positive + ld.negative + ld.foreign + ld.ally
}

type group struct {
	colorIndex int
	levels     map[uint8]*levelData
}

// Plane addresses the statistics of one group at one level.
type Plane struct {
	Group GroupID
	Level uint8
}

// PlaneStats is a read-only copy of a plane's statistics.
type PlaneStats struct {
	PositiveEdgeSize int
	NegativeEdgeSize int
	ForeignEdgeSize  int
	AllyEdgeSize     int
	NumFilledPixels  int
	NarrowRegion     bool
	// Conflicts maps each opposing group to the size of the conflict multiset.
	Conflicts map[GroupID]int
}

// TotalEdgeSize is positive + negative + foreign + ally.
func (s PlaneStats) TotalEdgeSize() int {
	return s.PositiveEdgeSize + s.NegativeEdgeSize + s.ForeignEdgeSize + s.AllyEdgeSize
}
