package imageio_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazyfill/internal/imageio"
)

func fixture() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 200, B: 30, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{A: 128})
	img.SetNRGBA(3, 2, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	return img
}

func TestRoundTrip(t *testing.T) {
	for _, ext := range []string{".png", ".tiff", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "img"+ext)
			src := fixture()
			require.NoError(t, imageio.Save(path, src))

			got, err := imageio.Load(path)
			require.NoError(t, err)
			require.Equal(t, src.Bounds(), got.Bounds())
			n := imageio.NRGBA(got)
			require.Equal(t, src.NRGBAAt(1, 0), n.NRGBAAt(1, 0))
			require.Equal(t, src.NRGBAAt(3, 2), n.NRGBAAt(3, 2))
		})
	}
}

func TestSaveUnsupported(t *testing.T) {
	err := imageio.Save(filepath.Join(t.TempDir(), "img.gif"), fixture())
	require.ErrorIs(t, err, imageio.ErrUnsupportedFormat)
}

func TestLoadErrors(t *testing.T) {
	_, err := imageio.Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestLuminanceAndAlpha(t *testing.T) {
	img := fixture()

	lum := imageio.Luminance(img)
	require.Equal(t, uint8(255), lum.Value(0, 0))
	require.Equal(t, uint8(90), lum.Value(3, 2))
	require.Zero(t, lum.Value(1, 1))

	alpha := imageio.Alpha(img)
	require.Equal(t, uint8(255), alpha.Value(1, 0))
	require.Equal(t, uint8(128), alpha.Value(2, 1))
	require.Zero(t, alpha.Value(1, 1))
}
