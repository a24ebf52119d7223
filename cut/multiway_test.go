package cut_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"

	"github.com/katalvlaran/lazyfill/cut"
	"github.com/katalvlaran/lazyfill/raster"
)

// wallScene is a 20×10 bright rect split by a dark column at x = 10, with
// 5-column seeds hugging each side.
func wallScene() (rect image.Rectangle, src, left, right *raster.Gray) {
	rect = image.Rect(0, 0, 20, 10)
	src = raster.NewGray(rect)
	src.Fill(rect, 255)
	src.Fill(image.Rect(10, 0, 11, 10), 0)

	left = raster.NewGray(rect)
	left.Fill(image.Rect(0, 0, 5, 10), 255)
	right = raster.NewGray(rect)
	right.Fill(image.Rect(15, 0, 20, 10), 255)
	return rect, src, left, right
}

func requireSplitAtWall(t *testing.T, dst *image.NRGBA, rect image.Rectangle, l, r color.NRGBA) {
	t.Helper()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			want := l
			if x >= 10 {
				want = r
			}
			require.Equal(t, want, dst.NRGBAAt(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestMultiwayCut_TwoStrokes(t *testing.T) {
	rect, src, left, right := wallScene()
	dst := image.NewNRGBA(rect)

	mc := cut.NewMultiwayCut(src, dst, rect)
	mc.AddKeyStroke(left, red, false)
	mc.AddKeyStroke(right, blue, false)
	require.NoError(t, mc.Run())

	requireSplitAtWall(t, dst, rect, red, blue)
	require.Equal(t, rect.Dx()*rect.Dy(), mc.LockMask().CountNonZero(rect), "every pixel decided")
	require.Equal(t, 50, left.CountNonZero(rect), "input seeds are not consumed")
	require.Equal(t, 50, right.CountNonZero(rect))
}

func TestMultiwayCut_EmptyStrokeAmongOthers(t *testing.T) {
	rect, src, left, right := wallScene()
	dst := image.NewNRGBA(rect)

	mc := cut.NewMultiwayCut(src, dst, rect)
	mc.AddKeyStroke(raster.NewGray(rect), green, false)
	mc.AddKeyStroke(left, red, false)
	mc.AddKeyStroke(right, blue, false)
	require.NoError(t, mc.Run())

	requireSplitAtWall(t, dst, rect, red, blue)
}

func TestMultiwayCut_SingleStrokeFloodsConnectedArea(t *testing.T) {
	rect, src, left, _ := wallScene()
	dst := image.NewNRGBA(rect)

	mc := cut.NewMultiwayCut(src, dst, rect)
	mc.AddKeyStroke(raster.NewGray(rect), color.NRGBA{}, true)
	mc.AddKeyStroke(left, red, false)
	require.NoError(t, mc.Run())

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			require.Equal(t, red, dst.NRGBAAt(x, y))
		}
	}
}

func TestMultiwayCut_AllEmptyIsIdempotent(t *testing.T) {
	rect, src, _, _ := wallScene()
	dst := image.NewNRGBA(rect)
	draw.Draw(dst, rect, image.NewUniform(green), image.Point{}, draw.Src)

	mc := cut.NewMultiwayCut(src, dst, rect)
	mc.AddKeyStroke(raster.NewGray(rect), red, false)
	mc.AddKeyStroke(raster.NewGray(rect), blue, true)
	mc.AddKeyStroke(nil, blue, false)
	require.NoError(t, mc.Run())

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			require.Equal(t, green, dst.NRGBAAt(x, y))
		}
	}
	require.True(t, mc.LockMask().IsEmpty())
}

func TestMultiwayCut_NoStrokes(t *testing.T) {
	rect, src, _, _ := wallScene()
	dst := image.NewNRGBA(rect)
	require.NoError(t, cut.NewMultiwayCut(src, dst, rect).Run())
	require.NoError(t, cut.NewMultiwayCut(src, dst, image.Rectangle{}).Run())
}
