package config_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazyfill/config"
	"github.com/katalvlaran/lazyfill/cut"
	"github.com/katalvlaran/lazyfill/raster"
	"github.com/katalvlaran/lazyfill/watershed"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, watershed.DefaultCleanupParams(), cfg.CleanupParams())
	require.Equal(t, log.InfoLevel, cfg.LogLevel())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lazyfill.toml")
	doc := `
[watershed]
cleanup = 0.7
min_metric = 1.5
strict = true

[cut]
solver = "edmonds-karp"
level_rebuild_interval = 4

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.7, cfg.Watershed.Cleanup)
	require.Equal(t, 1.5, cfg.Watershed.MinMetric)
	require.Equal(t, 1.2, cfg.Watershed.MeanMetric, "unset keys keep defaults")
	require.True(t, cfg.Watershed.Strict)
	require.Equal(t, "edmonds-karp", cfg.Cut.Solver)
	require.Equal(t, 4, cfg.Cut.LevelRebuildInterval)
	require.Equal(t, log.DebugLevel, cfg.LogLevel())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"cleanup above one", "[watershed]\ncleanup = 1.5\n", config.ErrInvalid},
		{"negative metric", "[watershed]\nmean_metric = -1.0\n", config.ErrInvalid},
		{"unknown solver", "[cut]\nsolver = \"push-relabel\"\n", config.ErrInvalid},
		{"negative interval", "[cut]\nlevel_rebuild_interval = -2\n", config.ErrInvalid},
		{"bad level", "[log]\nlevel = \"loud\"\n", config.ErrInvalid},
		{"unknown key", "[watershed]\nclean_up = 0.5\n", config.ErrUnknownKey},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse(tc.doc)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := config.Parse("[watershed\n")
	require.Error(t, err)
}

func TestOptionsDriveEngines(t *testing.T) {
	cfg, err := config.Parse("[cut]\nsolver = \"ford-fulkerson\"\n[watershed]\nstrict = true\n")
	require.NoError(t, err)

	rect := image.Rect(0, 0, 6, 1)
	seed := raster.NewGray(rect)
	seed.SetValue(0, 0, 255)
	dst := image.NewNRGBA(rect)

	w := watershed.NewWorker(raster.NewGray(rect), dst, rect, cfg.WatershedOptions(nil, nil)...)
	w.AddKeyStroke(seed, color.NRGBA{R: 255, A: 255}, false)
	require.NoError(t, w.Run(cfg.Watershed.Cleanup))
	require.Equal(t, color.NRGBA{R: 255, A: 255}, dst.NRGBAAt(5, 0))

	opts, err := cfg.CutOptions(nil)
	require.NoError(t, err)
	mc := cut.NewMultiwayCut(raster.NewGray(rect), dst, rect, opts...)
	mc.AddKeyStroke(seed, color.NRGBA{B: 255, A: 255}, false)
	require.NoError(t, mc.Run())
	require.Equal(t, color.NRGBA{B: 255, A: 255}, dst.NRGBAAt(5, 0))
}
