package cli

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStroke(t *testing.T) {
	tests := []struct {
		in   string
		want strokeArg
	}{
		{"sky.png=#ff0000", strokeArg{Path: "sky.png", Color: color.NRGBA{R: 255, A: 255}}},
		{"a=b.png=#0000ff", strokeArg{Path: "a=b.png", Color: color.NRGBA{B: 255, A: 255}}},
		{"dir/x.png=#fff", strokeArg{Path: "dir/x.png", Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}},
		{"hole.png=transparent", strokeArg{Path: "hole.png", Transparent: true}},
		{"hole.png=Transparent", strokeArg{Path: "hole.png", Transparent: true}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseStroke(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseStrokeRejects(t *testing.T) {
	for _, in := range []string{"sky.png", "=#ff0000", "sky.png=", "sky.png=red", "sky.png=#12"} {
		t.Run(in, func(t *testing.T) {
			_, err := parseStroke(in)
			require.ErrorIs(t, err, ErrBadStroke)
		})
	}
}

func TestParseRect(t *testing.T) {
	bounds := image.Rect(0, 0, 20, 10)

	r, err := parseRect("", bounds)
	require.NoError(t, err)
	require.Equal(t, bounds, r)

	r, err = parseRect("2, 3, 5, 4", bounds)
	require.NoError(t, err)
	require.Equal(t, image.Rect(2, 3, 7, 7), r)

	r, err = parseRect("15,5,10,10", bounds)
	require.NoError(t, err)
	require.Equal(t, image.Rect(15, 5, 20, 10), r, "clipped to bounds")

	for _, in := range []string{"1,2,3", "a,b,c,d", "0,0,-1,4"} {
		_, err = parseRect(in, bounds)
		require.ErrorIs(t, err, ErrBadRect, in)
	}
}
