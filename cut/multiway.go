package cut

import (
	"image"
	"image/color"
	"sort"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/lazyfill/fill"
	"github.com/katalvlaran/lazyfill/raster"
)

// MultiwayCut labels a rectangle with N key strokes by repeated two-label
// cuts. It owns its lock-mask and is good for one Run.
type MultiwayCut struct {
	src     *raster.Gray
	dst     draw.Image
	rect    image.Rectangle
	mask    *raster.Gray
	strokes []raster.KeyStroke
	opts    Options
}

// NewMultiwayCut prepares a cut of rect using src as intensity, writing the
// winning colours into dst.
func NewMultiwayCut(src *raster.Gray, dst draw.Image, rect image.Rectangle, opts ...Option) *MultiwayCut {
	rect = rect.Canon()
	return &MultiwayCut{
		src:  src,
		dst:  dst,
		rect: rect,
		mask: raster.NewGray(rect),
		opts: buildOptions(opts),
	}
}

// AddKeyStroke appends a stroke. The seed is cloned on Run, never modified.
func (m *MultiwayCut) AddKeyStroke(seed *raster.Gray, c color.NRGBA, transparent bool) {
	m.strokes = append(m.strokes, raster.KeyStroke{Seed: seed, Color: c, Transparent: transparent})
}

// LockMask returns the lock-mask; non-zero pixels have been decided.
func (m *MultiwayCut) LockMask() *raster.Gray { return m.mask }

// Run performs the cut sequence. Only solver errors are returned; empty
// strokes and an empty rect are silently skipped.
func (m *MultiwayCut) Run() error {
	if m.rect.Empty() {
		return nil
	}
	log := m.opts.Logger

	queue := make([]raster.KeyStroke, 0, len(m.strokes))
	for _, k := range m.strokes {
		if k.Seed != nil {
			k.Seed = k.Seed.Clone()
		}
		queue = append(queue, k)
	}
	sortStrokes(queue)

	other := raster.NewGray(m.rect)
	for len(queue) > 1 {
		current := queue[0]
		queue = queue[1:]
		if current.IsEmpty(m.rect) {
			log.Debug("multiway: empty stroke dropped", "color", current.Color)
			continue
		}

		other.Clear(m.rect)
		for _, k := range queue {
			if k.Seed != nil {
				draw.Draw(other, m.rect, k.Seed, m.rect.Min, draw.Over)
			}
		}
		if other.IsEmpty() {
			log.Debug("multiway: no competitor left", "color", current.Color)
			queue = []raster.KeyStroke{current}
			break
		}

		if err := CutOneWay(m.src, current.Seed, other, m.mask, m.dst, m.rect, current.PaintColor(), m.withOptions()); err != nil {
			return err
		}
	}

	if len(queue) == 1 {
		m.fillLast(queue[0])
	}
	return nil
}

func (m *MultiwayCut) withOptions() Option {
	return func(o *Options) { *o = m.opts }
}

// fillLast paints the unlocked area connected to the last stroke's seed.
func (m *MultiwayCut) fillLast(k raster.KeyStroke) {
	if k.Seed == nil {
		return
	}
	seed := k.Seed
	seed.ForEach(m.rect, func(x, y int, v uint8) {
		if v != 0 && m.mask.Value(x, y) != 0 {
			seed.SetValue(x, y, 0)
		}
	})

	c := k.PaintColor()
	unlocked := func(x, y int) bool { return m.mask.Value(x, y) == 0 }
	paint := func(x, y int) {
		m.dst.Set(x, y, c)
		m.mask.SetValue(x, y, LockDecided)
	}
	painted := 0
	points := fill.SplitIntoComponents(seed, m.rect)
	for _, pt := range points {
		painted += fill.Scanline(m.rect, pt, unlocked, paint)
	}
	m.opts.Logger.Debug("multiway: terminal fill", "color", k.Color, "components", len(points), "painted", painted)
}

// sortStrokes orders transparent strokes first, then by descending seed
// area, keeping input order among equals.
func sortStrokes(strokes []raster.KeyStroke) {
	type keyed struct {
		k           raster.KeyStroke
		area        int
		transparent bool
	}
	tmp := make([]keyed, len(strokes))
	for i, k := range strokes {
		tmp[i] = keyed{k: k, area: k.Area(), transparent: k.IsTransparent()}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		if tmp[i].transparent != tmp[j].transparent {
			return tmp[i].transparent
		}
		return tmp[i].area > tmp[j].area
	})
	for i := range tmp {
		strokes[i] = tmp[i].k
	}
}
