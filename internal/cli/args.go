package cli

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/lazyfill/internal/imageio"
	"github.com/katalvlaran/lazyfill/raster"
)

var (
	// ErrBadStroke is returned for a --stroke value not of the form path=colour.
	ErrBadStroke = errors.New("cli: stroke must be path=#rrggbb or path=transparent")

	// ErrBadRect is returned for a --rect value not of the form x,y,w,h.
	ErrBadRect = errors.New("cli: rect must be x,y,w,h")

	// ErrBaseBounds is returned when --base differs in size from the input.
	ErrBaseBounds = errors.New("cli: base image bounds differ from input")
)

// strokeArg is one parsed --stroke flag.
type strokeArg struct {
	Path        string
	Color       color.NRGBA
	Transparent bool
}

// parseStroke parses "path=#rrggbb", "path=#rgb" or "path=transparent".
// The last '=' separates path and colour so paths may contain '='.
func parseStroke(s string) (strokeArg, error) {
	i := strings.LastIndexByte(s, '=')
	if i <= 0 || i == len(s)-1 {
		return strokeArg{}, fmt.Errorf("%w: %q", ErrBadStroke, s)
	}
	path, value := s[:i], strings.TrimSpace(s[i+1:])
	if strings.EqualFold(value, "transparent") {
		return strokeArg{Path: path, Transparent: true}, nil
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return strokeArg{}, fmt.Errorf("%w: %q: %v", ErrBadStroke, s, err)
	}
	r, g, b := c.RGB255()
	return strokeArg{Path: path, Color: color.NRGBA{R: r, G: g, B: b, A: 255}}, nil
}

// parseRect parses "x,y,w,h". The empty string selects bounds; a rect
// reaching outside bounds is clipped.
func parseRect(s string, bounds image.Rectangle) (image.Rectangle, error) {
	if strings.TrimSpace(s) == "" {
		return bounds, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("%w: %q", ErrBadRect, s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("%w: %q", ErrBadRect, s)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return image.Rectangle{}, fmt.Errorf("%w: negative size in %q", ErrBadRect, s)
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]).Intersect(bounds), nil
}

// loadStrokes parses every --stroke value and reads its seed by alpha.
func loadStrokes(args []string) ([]raster.KeyStroke, error) {
	strokes := make([]raster.KeyStroke, 0, len(args))
	for _, a := range args {
		sa, err := parseStroke(a)
		if err != nil {
			return nil, err
		}
		img, err := imageio.Load(sa.Path)
		if err != nil {
			return nil, err
		}
		strokes = append(strokes, raster.KeyStroke{
			Seed:        imageio.Alpha(img),
			Color:       sa.Color,
			Transparent: sa.Transparent,
		})
	}
	return strokes, nil
}

// newCanvas returns the output canvas: a copy of the image at base, or a
// transparent canvas over bounds when base is empty.
func newCanvas(base string, bounds image.Rectangle) (*image.NRGBA, error) {
	if base == "" {
		return image.NewNRGBA(bounds), nil
	}
	img, err := imageio.Load(base)
	if err != nil {
		return nil, err
	}
	if img.Bounds() != bounds {
		return nil, fmt.Errorf("%w: %v vs %v", ErrBaseBounds, img.Bounds(), bounds)
	}
	return imageio.NRGBA(img), nil
}
