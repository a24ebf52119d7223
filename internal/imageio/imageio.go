// Package imageio reads and writes the rasters the CLI works on.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoding
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/katalvlaran/lazyfill/raster"
)

// ErrUnsupportedFormat is returned by Save for an unknown file extension.
var ErrUnsupportedFormat = errors.New("imageio: unsupported output format")

// Load decodes any registered format (PNG, JPEG, TIFF, BMP, WebP).
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img by the extension of path: .png, .tif/.tiff or .bmp.
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	var encode func(f *os.File) error
	switch ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".tif", ".tiff":
		encode = func(f *os.File) error { return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate}) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = encode(f); err != nil {
		f.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return f.Close()
}

// Luminance converts img to an 8-bit plane of its gray level. Heightmaps
// and intensity images are read this way.
func Luminance(img image.Image) *raster.Gray {
	b := img.Bounds()
	g := raster.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.SetValue(x, y, color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
		}
	}
	return g
}

// Alpha converts img to an 8-bit plane of its coverage. Stroke seeds are
// read this way: any painted pixel counts, whatever its colour.
func Alpha(img image.Image) *raster.Gray {
	b := img.Bounds()
	g := raster.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			g.SetValue(x, y, uint8(a>>8))
		}
	}
	return g
}

// NRGBA copies img into a fresh NRGBA canvas with the same bounds.
func NRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
