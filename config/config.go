// Package config loads lazyfill settings from TOML.
//
// A complete file looks like:
//
//	[watershed]
//	cleanup = 0.7
//	foreign_portion_base = 0.05
//	foreign_portion_span = 0.45
//	min_metric = 1.0
//	mean_metric = 1.2
//	narrow_region_ratio = 2.0
//	strict = false
//
//	[cut]
//	solver = "dinic"            # dinic | edmonds-karp | ford-fulkerson
//	level_rebuild_interval = 0
//
//	[log]
//	level = "info"
//
// Missing keys keep their Default value; unknown keys are an error.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lazyfill/cut"
	"github.com/katalvlaran/lazyfill/flow"
	"github.com/katalvlaran/lazyfill/progress"
	"github.com/katalvlaran/lazyfill/watershed"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey is returned for keys the schema does not define.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the root of the TOML document.
type Config struct {
	Watershed Watershed `toml:"watershed"`
	Cut       Cut       `toml:"cut"`
	Log       Log       `toml:"log"`
}

// Watershed holds the growth engine settings.
type Watershed struct {
	Cleanup            float64 `toml:"cleanup"`
	ForeignPortionBase float64 `toml:"foreign_portion_base"`
	ForeignPortionSpan float64 `toml:"foreign_portion_span"`
	MinMetric          float64 `toml:"min_metric"`
	MeanMetric         float64 `toml:"mean_metric"`
	NarrowRegionRatio  float64 `toml:"narrow_region_ratio"`
	Strict             bool    `toml:"strict"`
}

// Cut holds the max-flow settings.
type Cut struct {
	Solver               string `toml:"solver"`
	LevelRebuildInterval int    `toml:"level_rebuild_interval"`
}

// Log holds the logger settings.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := watershed.DefaultCleanupParams()
	return Config{
		Watershed: Watershed{
			Cleanup:            0,
			ForeignPortionBase: p.ForeignPortionBase,
			ForeignPortionSpan: p.ForeignPortionSpan,
			MinMetric:          p.MinMetric,
			MeanMetric:         p.MeanMetric,
			NarrowRegionRatio:  p.NarrowRegionRatio,
		},
		Cut: Cut{Solver: "dinic"},
		Log: Log{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return finish(cfg, md)
}

// Parse decodes a TOML document over Default and validates the result.
func Parse(doc string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	return finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	w := c.Watershed
	if math.IsNaN(w.Cleanup) || w.Cleanup < 0 || w.Cleanup > 1 {
		return fmt.Errorf("%w: watershed.cleanup %v not in [0, 1]", ErrInvalid, w.Cleanup)
	}
	for name, v := range map[string]float64{
		"foreign_portion_base": w.ForeignPortionBase,
		"foreign_portion_span": w.ForeignPortionSpan,
		"min_metric":           w.MinMetric,
		"mean_metric":          w.MeanMetric,
		"narrow_region_ratio":  w.NarrowRegionRatio,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: watershed.%s %v", ErrInvalid, name, v)
		}
	}
	if _, err := flow.SolverByName(c.Cut.Solver); err != nil {
		return fmt.Errorf("%w: cut.solver: %v", ErrInvalid, err)
	}
	if c.Cut.LevelRebuildInterval < 0 {
		return fmt.Errorf("%w: cut.level_rebuild_interval %d", ErrInvalid, c.Cut.LevelRebuildInterval)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// LogLevel returns the parsed log level; invalid names fall back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// CleanupParams converts the watershed section into engine tuning.
func (c Config) CleanupParams() watershed.CleanupParams {
	return watershed.CleanupParams{
		ForeignPortionBase: c.Watershed.ForeignPortionBase,
		ForeignPortionSpan: c.Watershed.ForeignPortionSpan,
		MinMetric:          c.Watershed.MinMetric,
		MeanMetric:         c.Watershed.MeanMetric,
		NarrowRegionRatio:  c.Watershed.NarrowRegionRatio,
	}
}

// WatershedOptions returns the engine options for a validated Config.
func (c Config) WatershedOptions(l *log.Logger, p progress.Updater) []watershed.Option {
	opts := []watershed.Option{
		watershed.WithCleanupParams(c.CleanupParams()),
		watershed.WithStrict(c.Watershed.Strict),
	}
	if l != nil {
		opts = append(opts, watershed.WithLogger(l))
	}
	if p != nil {
		opts = append(opts, watershed.WithProgress(p))
	}
	return opts
}

// CutOptions returns the cut options for a validated Config.
func (c Config) CutOptions(l *log.Logger) ([]cut.Option, error) {
	solver, err := flow.SolverByName(c.Cut.Solver)
	if err != nil {
		return nil, err
	}
	opts := []cut.Option{
		cut.WithSolver(solver),
		cut.WithLevelRebuildInterval(c.Cut.LevelRebuildInterval),
	}
	if l != nil {
		opts = append(opts, cut.WithLogger(l))
	}
	return opts, nil
}
