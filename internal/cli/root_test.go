package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lazyfill/internal/imageio"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// CommandSuite runs the command tree end to end on a 20×10 scene: a bright
// image split by a dark column at x = 10, with 5-column strokes hugging
// each side.
type CommandSuite struct {
	suite.Suite
	dir   string
	image string
	left  string
	right string
}

func (s *CommandSuite) SetupTest() {
	s.dir = s.T().TempDir()
	rect := image.Rect(0, 0, 20, 10)

	img := image.NewGray(rect)
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if x != 10 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	s.image = s.save("scene.png", img)

	left := image.NewNRGBA(rect)
	right := image.NewNRGBA(rect)
	for y := 0; y < 10; y++ {
		for x := 0; x < 5; x++ {
			left.SetNRGBA(x, y, color.NRGBA{A: 255})
			right.SetNRGBA(19-x, y, color.NRGBA{A: 255})
		}
	}
	s.left = s.save("left.png", left)
	s.right = s.save("right.png", right)
}

func (s *CommandSuite) save(name string, img image.Image) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(imageio.Save(path, img))
	return path
}

func (s *CommandSuite) run(ctx context.Context, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func (s *CommandSuite) load(path string) *image.NRGBA {
	img, err := imageio.Load(path)
	s.Require().NoError(err)
	return imageio.NRGBA(img)
}

func (s *CommandSuite) requireSplit(img *image.NRGBA) {
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			want := red
			if x >= 10 {
				want = blue
			}
			s.Require().Equal(want, img.NRGBAAt(x, y), "(%d,%d)", x, y)
		}
	}
}

func (s *CommandSuite) TestMultiway() {
	outPath := filepath.Join(s.dir, "out.png")
	out, err := s.run(context.Background(), "multiway",
		"--source", s.image,
		"--stroke", s.left+"=#ff0000",
		"--stroke", s.right+"=#0000ff",
		"-o", outPath)
	s.Require().NoError(err)
	s.Require().Contains(out, "Multiway cut complete")
	s.Require().Contains(out, outPath)
	s.requireSplit(s.load(outPath))
}

func (s *CommandSuite) TestMultiwaySolverFlag() {
	outPath := filepath.Join(s.dir, "out.png")
	out, err := s.run(context.Background(), "multiway", "--solver", "edmonds-karp",
		"--source", s.image, "-s", s.left+"=#ff0000", "-s", s.right+"=#0000ff", "-o", outPath)
	s.Require().NoError(err)
	s.Require().Contains(out, "edmonds-karp")
	s.requireSplit(s.load(outPath))

	_, err = s.run(context.Background(), "multiway", "--solver", "simplex",
		"--source", s.image, "-s", s.left+"=#ff0000", "-o", outPath)
	s.Require().Error(err)
}

func (s *CommandSuite) TestMultiwayCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.run(ctx, "multiway", "--source", s.image,
		"-s", s.left+"=#ff0000", "-s", s.right+"=#0000ff", "-o", filepath.Join(s.dir, "out.png"))
	s.Require().ErrorIs(err, context.Canceled)
}

func (s *CommandSuite) TestWatershed() {
	outPath := filepath.Join(s.dir, "out.tiff")
	out, err := s.run(context.Background(), "watershed",
		"--height", s.image,
		"--stroke", s.left+"=#ff0000",
		"--stroke", s.right+"=#0000ff",
		"--stats",
		"-o", outPath)
	s.Require().NoError(err)
	s.Require().Contains(out, "Watershed complete")
	s.Require().Contains(out, "Planes")

	img := s.load(outPath)
	s.Require().Equal(red, img.NRGBAAt(0, 5))
	s.Require().Equal(blue, img.NRGBAAt(19, 5))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			s.Require().Equal(uint8(255), img.NRGBAAt(x, y).A, "(%d,%d) left unpainted", x, y)
		}
	}
}

func (s *CommandSuite) TestWatershedRect() {
	outPath := filepath.Join(s.dir, "out.png")
	_, err := s.run(context.Background(), "watershed", "--height", s.image,
		"-s", s.left+"=#ff0000", "--rect", "0,0,5,10", "-o", outPath)
	s.Require().NoError(err)

	img := s.load(outPath)
	s.Require().Equal(red, img.NRGBAAt(4, 9))
	s.Require().Equal(color.NRGBA{}, img.NRGBAAt(5, 0), "outside the rect stays untouched")
}

func (s *CommandSuite) TestWatershedBase() {
	green := color.NRGBA{G: 255, A: 255}
	base := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			base.SetNRGBA(x, y, green)
		}
	}
	basePath := s.save("base.png", base)
	outPath := filepath.Join(s.dir, "out.png")

	_, err := s.run(context.Background(), "watershed", "--height", s.image, "--base", basePath,
		"-s", s.left+"=#ff0000", "--rect", "0,0,5,10", "-o", outPath)
	s.Require().NoError(err)
	img := s.load(outPath)
	s.Require().Equal(red, img.NRGBAAt(4, 9))
	s.Require().Equal(green, img.NRGBAAt(5, 0), "outside the rect keeps the base")

	small := s.save("small.png", image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	_, err = s.run(context.Background(), "multiway", "--source", s.image, "--base", small,
		"-s", s.left+"=#ff0000", "-o", outPath)
	s.Require().ErrorIs(err, ErrBaseBounds)
}

func (s *CommandSuite) TestConfigFile() {
	cfgPath := filepath.Join(s.dir, "lazyfill.toml")
	s.Require().NoError(os.WriteFile(cfgPath, []byte("[cut]\nsolver = \"ford-fulkerson\"\n"), 0o600))
	outPath := filepath.Join(s.dir, "out.png")

	out, err := s.run(context.Background(), "--config", cfgPath, "multiway", "--source", s.image,
		"-s", s.left+"=#ff0000", "-s", s.right+"=#0000ff", "-o", outPath)
	s.Require().NoError(err)
	s.Require().Contains(out, "ford-fulkerson")

	s.Require().NoError(os.WriteFile(cfgPath, []byte("[cut]\nsolvr = 1\n"), 0o600))
	_, err = s.run(context.Background(), "--config", cfgPath, "multiway", "--source", s.image,
		"-s", s.left+"=#ff0000", "-o", outPath)
	s.Require().Error(err)
}

func (s *CommandSuite) TestInputErrors() {
	outPath := filepath.Join(s.dir, "out.png")

	_, err := s.run(context.Background(), "watershed", "--height", s.image, "-o", outPath)
	s.Require().ErrorIs(err, ErrNoStrokes)

	_, err = s.run(context.Background(), "watershed", "--height", s.image, "-s", s.left+"=#ff0000")
	s.Require().Error(err, "missing --output")

	_, err = s.run(context.Background(), "multiway", "--source", s.image, "-s", s.left, "-o", outPath)
	s.Require().ErrorIs(err, ErrBadStroke)

	_, err = s.run(context.Background(), "multiway", "--source", filepath.Join(s.dir, "absent.png"),
		"-s", s.left+"=#ff0000", "-o", outPath)
	s.Require().Error(err)
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandSuite))
}

func TestVersionTemplate(t *testing.T) {
	SetVersion("v0.1.0", "abc123", "2026-10-18")
	defer SetVersion("", "", "")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "lazyfill v0.1.0")
	require.Contains(t, out.String(), "commit: abc123")
}
