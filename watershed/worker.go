package watershed

import (
	"container/heap"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/lazyfill/fill"
	"github.com/katalvlaran/lazyfill/progress"
	"github.com/katalvlaran/lazyfill/raster"
)

// Worker runs one watershed segmentation of rect.
type Worker struct {
	height  *raster.Gray
	dst     draw.Image
	rect    image.Rectangle
	strokes []raster.KeyStroke
	opts    Options

	groupMap  *raster.Labels
	groups    []*group // indexed by GroupID, groups[0] is nil
	colorID   []int    // per stroke, index of the first stroke with an equal paint colour
	queue     taskQueue
	seq       uint64
	unclaimed int
	meter     *progress.Meter
	bg        GroupID
	bgColor   int
}

// NewWorker prepares a segmentation of rect over the read-only heightMap,
// writing stroke colours into dst.
func NewWorker(heightMap *raster.Gray, dst draw.Image, rect image.Rectangle, opts ...Option) *Worker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if heightMap == nil {
		heightMap = raster.NewGray(image.Rectangle{})
	}
	rect = rect.Canon()
	return &Worker{
		height:   heightMap,
		dst:      dst,
		rect:     rect,
		opts:     o,
		groupMap: raster.NewLabels(rect),
		groups:   []*group{nil},
	}
}

// AddKeyStroke appends a stroke; its index is the colour index of the
// groups it produces. The seed is read, never modified.
func (w *Worker) AddKeyStroke(seed *raster.Gray, c color.NRGBA, transparent bool) {
	w.strokes = append(w.strokes, raster.KeyStroke{Seed: seed, Color: c, Transparent: transparent})
}

// Run grows all strokes over the rect, applies cleanup when cleanUpAmount
// is positive (values above 1 are clamped) and paints the result.
// An empty rect or stroke list leaves dst untouched.
func (w *Worker) Run(cleanUpAmount float64) error {
	if math.IsNaN(cleanUpAmount) {
		return ErrBadCleanupAmount
	}
	if w.rect.Empty() {
		return nil
	}
	log := w.opts.Logger

	w.resolveColors()
	w.parseSeeds()
	if len(w.groups) == 1 {
		log.Debug("watershed: nothing to grow", "strokes", len(w.strokes))
		return nil
	}

	w.unclaimed = w.rect.Dx() * w.rect.Dy()
	w.meter = progress.NewMeter(w.opts.Progress, w.unclaimed)
	w.seedQueue()
	log.Debug("watershed: queue seeded", "groups", len(w.groups)-1, "tasks", w.queue.Len())

	w.processQueue(0)
	log.Debug("watershed: growth done", "unclaimed", w.unclaimed)

	w.updateNarrowRegions()
	if cleanUpAmount > 0 {
		w.cleanup(cleanUpAmount)
	}

	w.writeColors()
	w.meter.Done()
	return nil
}

// resolveColors maps every stroke to the first stroke painting the same colour.
func (w *Worker) resolveColors() {
	w.colorID = make([]int, len(w.strokes))
	for i, k := range w.strokes {
		w.colorID[i] = i
		for j := 0; j < i; j++ {
			if w.strokes[j].PaintColor() == k.PaintColor() {
				w.colorID[i] = j
				break
			}
		}
	}
}

// parseSeeds turns every connected run of equal height under every stroke
// into a group and marks its pixels in the group map.
func (w *Worker) parseSeeds() {
	for i, k := range w.strokes {
		if k.IsEmpty(w.rect) {
			continue
		}
		merged := mergeHeightmapOntoStroke(k.Seed, w.height, w.rect)
		n := fill.ComponentsByValue(merged, w.rect,
			func(image.Point) int32 { return int32(w.newGroup(i)) },
			func(x, y int, id int32) { w.groupMap.Set(x, y, id) },
		)
		w.opts.Logger.Debug("watershed: stroke parsed", "stroke", i, "components", n)
	}
}

// mergeHeightmapOntoStroke returns a raster holding max(1, height) on seeded
// pixels and 0 elsewhere.
func mergeHeightmapOntoStroke(seed, height *raster.Gray, rect image.Rectangle) *raster.Gray {
	merged := raster.NewGray(rect)
	seed.ForEach(rect, func(x, y int, v uint8) {
		if v == 0 {
			return
		}
		h := height.Value(x, y)
		if h == 0 {
			h = 1
		}
		merged.SetValue(x, y, h)
	})
	return merged
}

func (w *Worker) newGroup(colorIndex int) GroupID {
	w.groups = append(w.groups, &group{colorIndex: colorIndex, levels: make(map[uint8]*levelData)})
	return GroupID(len(w.groups) - 1)
}

// seedQueue enqueues every marked pixel and clears the group map so seeds
// are claimed through the regular loop.
func (w *Worker) seedQueue() {
	for y := w.rect.Min.Y; y < w.rect.Max.Y; y++ {
		for x := w.rect.Min.X; x < w.rect.Max.X; x++ {
			id := GroupID(w.groupMap.At(x, y))
			if id == 0 {
				continue
			}
			w.push(taskPoint{x: x, y: y, group: id, from: nowhere, level: w.height.Value(x, y)})
			w.groupMap.Set(x, y, 0)
		}
	}
}

func (w *Worker) push(pt taskPoint) {
	pt.seq = w.seq
	w.seq++
	heap.Push(&w.queue, pt)
}

// processQueue drains the queue. Pixels owned by bg are free to claim;
// with bg > 0 (recolor mode) so are narrow planes sharing bg's colour.
// Group ids start at 1, so removing group 1 runs in recolor mode too.
func (w *Worker) processQueue(bg GroupID) {
	w.bg = bg
	w.bgColor = -1
	if bg > 0 {
		w.bgColor = w.colorOf(bg)
	}

	for w.queue.Len() > 0 {
		pt := heap.Pop(&w.queue).(taskPoint)
		old := GroupID(w.groupMap.At(pt.x, pt.y))
		if !w.claimable(old, pt.level) {
			continue
		}
		if old == pt.group {
			w.violation("pixel reclaimed by its owner", "x", pt.x, "y", pt.y, "group", old)
			continue
		}
		w.claim(pt, old)
	}
}

func (w *Worker) recolor() bool { return w.bg > 0 }

func (w *Worker) claimable(old GroupID, level uint8) bool {
	if old == w.bg {
		return true
	}
	if !w.recolor() || old == 0 || w.colorOf(old) != w.bgColor {
		return false
	}
	ld := w.peek(old, level)
	return ld != nil && ld.narrow
}

// claim assigns pt's pixel to pt.group, moving every border statistic from
// the old owner and enqueueing the neighbours that may follow.
func (w *Worker) claim(pt taskPoint, old GroupID) {
	l := pt.level
	p := image.Point{X: pt.x, Y: pt.y}
	owner := w.plane(pt.group, l)

	if old > 0 {
		w.bump(&w.plane(old, l).filled, -1, "filled")
	} else {
		w.unclaimed--
	}
	owner.filled++

	for _, nb := range neighbourTable[pt.from] {
		q := image.Point{X: pt.x + nb.dx, Y: pt.y + nb.dy}
		if !q.In(w.rect) {
			if old > 0 {
				w.bump(&w.plane(old, l).positive, -1, "positive")
			}
			owner.positive++
			continue
		}

		h := GroupID(w.groupMap.At(q.X, q.Y))
		m := w.height.Value(q.X, q.Y)
		if h > 0 {
			if old > 0 {
				w.updateEdge(old, l, p, h, m, q, -1)
			}
			w.updateEdge(pt.group, l, p, h, m, q, +1)
		}

		if nb.statsOnly || !w.enqueueable(h, m, l) {
			continue
		}
		d := 0
		if m == l {
			d = pt.distance + 1
		}
		w.push(taskPoint{x: q.X, y: q.Y, distance: d, group: pt.group, from: nb.from, level: m})
	}

	w.groupMap.Set(pt.x, pt.y, int32(pt.group))
	w.meter.Step()
}

// enqueueable decides whether a neighbour owned by h at level m may be
// claimed from a pixel at level l.
func (w *Worker) enqueueable(h GroupID, m, l uint8) bool {
	if h == 0 {
		return true
	}
	if !w.recolor() {
		return false
	}
	if h == w.bg && m == l {
		return true
	}
	if w.colorOf(h) != w.bgColor || m < l {
		return false
	}
	ld := w.peek(h, m)
	return ld != nil && ld.narrow
}

// writeColors paints every claimed pixel with its stroke colour.
func (w *Worker) writeColors() {
	if w.dst == nil {
		return
	}
	colors := make([]color.NRGBA, len(w.strokes))
	for i, k := range w.strokes {
		colors[i] = k.PaintColor()
	}
	for y := w.rect.Min.Y; y < w.rect.Max.Y; y++ {
		for x := w.rect.Min.X; x < w.rect.Max.X; x++ {
			id := GroupID(w.groupMap.At(x, y))
			if id <= 0 || int(id) >= len(w.groups) {
				continue
			}
			ci := w.groups[id].colorIndex
			if ci < 0 || ci >= len(colors) {
				continue
			}
			w.dst.Set(x, y, colors[ci])
		}
	}
}

// violation reports a broken internal invariant: a panic in strict mode,
// an error log otherwise.
func (w *Worker) violation(msg string, keyvals ...any) {
	if w.opts.Strict {
		panic(fmt.Sprintf("watershed: invariant violated: %s %v", msg, keyvals))
	}
	w.opts.Logger.Error("watershed: invariant violated: "+msg, keyvals...)
}
