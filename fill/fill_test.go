package fill_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazyfill/fill"
	"github.com/katalvlaran/lazyfill/raster"
)

// grid builds a Gray from rows of '#' (255) and '.' (0).
func grid(rows ...string) *raster.Gray {
	g := raster.NewGray(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				g.SetValue(x, y, 255)
			}
		}
	}
	return g
}

func TestScanline_FillsOnlyConnectedRegion(t *testing.T) {
	g := grid(
		"##..#",
		".#..#",
		".####",
		".....",
		"##...",
	)
	n := fill.Scanline(g.Bounds(), image.Pt(0, 0),
		func(x, y int) bool { return g.Value(x, y) != 0 },
		func(x, y int) { g.SetValue(x, y, 0) },
	)
	require.Equal(t, 9, n)
	require.Equal(t, 2, g.CountNonZero(g.Bounds()), "the bottom-left island must survive")
}

func TestScanline_UShapeNeedsBothRowDirections(t *testing.T) {
	g := grid(
		"#.#",
		"#.#",
		"###",
	)
	n := fill.Scanline(g.Bounds(), image.Pt(2, 0),
		func(x, y int) bool { return g.Value(x, y) != 0 },
		func(x, y int) { g.SetValue(x, y, 0) },
	)
	require.Equal(t, 7, n)
	require.True(t, g.IsEmpty())
}

func TestScanline_RespectsRect(t *testing.T) {
	g := raster.NewGray(image.Rect(0, 0, 10, 10))
	g.Fill(g.Bounds(), 1)
	n := fill.Scanline(image.Rect(2, 2, 5, 4), image.Pt(3, 3),
		func(x, y int) bool { return g.Value(x, y) != 0 },
		func(x, y int) { g.SetValue(x, y, 0) },
	)
	require.Equal(t, 6, n)
}

func TestScanline_StartOutside(t *testing.T) {
	g := grid("#")
	called := false
	n := fill.Scanline(image.Rect(0, 0, 1, 1), image.Pt(3, 3),
		func(x, y int) bool { return true },
		func(x, y int) { called = true },
	)
	require.Zero(t, n)
	require.False(t, called)
	require.Equal(t, uint8(255), g.Value(0, 0))
}

func TestSplitIntoComponents(t *testing.T) {
	g := grid(
		"#...#",
		"#..##",
		".....",
		"..#..",
	)
	pts := fill.SplitIntoComponents(g, g.Bounds())
	require.Equal(t, []image.Point{{0, 0}, {4, 0}, {2, 3}}, pts)
	require.True(t, g.IsEmpty(), "splitting is destructive")
}

func TestComponents_LabelsAndKeepsSeed(t *testing.T) {
	g := grid(
		"##.#",
		"...#",
	)
	labels := raster.NewLabels(g.Bounds())
	next := int32(0)
	n := fill.Components(g, g.Bounds(),
		func(image.Point) int32 { next++; return next },
		func(x, y int, l int32) { labels.Set(x, y, l) },
	)
	require.Equal(t, 2, n)
	require.Equal(t, int32(1), labels.At(1, 0))
	require.Equal(t, int32(2), labels.At(3, 1))
	require.Equal(t, int32(0), labels.At(2, 0))
	require.Equal(t, 4, g.CountNonZero(g.Bounds()), "seed must be untouched")
}

func TestComponentsByValue_SplitsOnValueChange(t *testing.T) {
	g := raster.NewGray(image.Rect(0, 0, 5, 2))
	for x, v := range []uint8{2, 2, 5, 5, 0} {
		g.SetValue(x, 0, v)
	}
	g.SetValue(0, 1, 2)
	g.SetValue(3, 1, 7)

	labels := raster.NewLabels(g.Bounds())
	next := int32(0)
	n := fill.ComponentsByValue(g, g.Bounds(),
		func(image.Point) int32 { next++; return next },
		func(x, y int, l int32) { labels.Set(x, y, l) },
	)
	require.Equal(t, 3, n)
	require.Equal(t, []int32{1, 1, 2, 2, 0}, []int32{labels.At(0, 0), labels.At(1, 0), labels.At(2, 0), labels.At(3, 0), labels.At(4, 0)})
	require.Equal(t, int32(1), labels.At(0, 1))
	require.Equal(t, int32(3), labels.At(3, 1))

	require.Equal(t, 1, fill.Components(g, g.Bounds(),
		func(image.Point) int32 { return 1 },
		func(int, int, int32) {},
	), "plain components ignore values")
}
