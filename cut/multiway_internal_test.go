package cut

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazyfill/raster"
)

func TestSortStrokes(t *testing.T) {
	rect := image.Rect(0, 0, 10, 10)
	seed := func(r image.Rectangle) *raster.Gray {
		g := raster.NewGray(rect)
		g.Fill(r, 255)
		return g
	}
	small := raster.KeyStroke{Seed: seed(image.Rect(0, 0, 2, 2)), Color: color.NRGBA{R: 1, A: 255}}
	big := raster.KeyStroke{Seed: seed(image.Rect(0, 0, 5, 5)), Color: color.NRGBA{R: 2, A: 255}}
	smallToo := raster.KeyStroke{Seed: seed(image.Rect(5, 5, 7, 7)), Color: color.NRGBA{R: 3, A: 255}}
	clearColor := raster.KeyStroke{Seed: seed(image.Rect(0, 0, 1, 1)), Color: color.NRGBA{R: 4}}
	flagged := raster.KeyStroke{Seed: seed(image.Rect(0, 0, 3, 3)), Color: color.NRGBA{R: 5, A: 255}, Transparent: true}
	empty := raster.KeyStroke{Seed: raster.NewGray(rect), Color: color.NRGBA{R: 6, A: 255}}

	strokes := []raster.KeyStroke{small, empty, big, clearColor, smallToo, flagged}
	sortStrokes(strokes)

	var got []uint8
	for _, k := range strokes {
		got = append(got, k.Color.R)
	}
	// transparent by area (flagged 9 > clear 1), then 25, 4, 4 (stable), 0
	require.Equal(t, []uint8{5, 4, 2, 1, 3, 6}, got)
}
